package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateStartsAnonymous(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Authenticated())
	assert.Nil(t, g.Current())
}

func TestGateSetAndClear(t *testing.T) {
	g := NewGate()

	g.Set(Session{AdminID: "id-1", Email: "admin@example.com"})
	require.True(t, g.Authenticated())
	require.NotNil(t, g.Current())
	assert.Equal(t, "admin@example.com", g.Current().Email)

	g.Clear()
	assert.False(t, g.Authenticated())
	assert.Nil(t, g.Current())
}

func TestGateNotifiesSubscribers(t *testing.T) {
	g := NewGate()

	var events []*Session
	sub := g.Subscribe(func(s *Session) {
		events = append(events, s)
	})

	g.Set(Session{AdminID: "id-1", Email: "admin@example.com"})
	g.Clear()

	require.Len(t, events, 2)
	require.NotNil(t, events[0])
	assert.Equal(t, "id-1", events[0].AdminID)
	assert.Nil(t, events[1])

	sub.Cancel()
	g.Set(Session{AdminID: "id-2"})
	assert.Len(t, events, 2)
}

func TestGateCurrentReturnsCopy(t *testing.T) {
	g := NewGate()
	g.Set(Session{AdminID: "id-1", Email: "admin@example.com"})

	s := g.Current()
	s.Email = "mutated"

	assert.Equal(t, "admin@example.com", g.Current().Email)
}
