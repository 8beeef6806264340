package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPrependOrder(t *testing.T) {
	c := NewCatalog()
	c.Prepend(Card{ID: "a"})
	c.Prepend(Card{ID: "b"})
	c.Prepend(Card{ID: "c"})

	cards := c.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, "c", cards[0].ID)
	assert.Equal(t, "b", cards[1].ID)
	assert.Equal(t, "a", cards[2].ID)
}

func TestCatalogReplaceAll(t *testing.T) {
	c := NewCatalog()
	c.Prepend(Card{ID: "stale"})

	c.ReplaceAll([]Card{{ID: "x"}, {ID: "y"}})
	cards := c.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "x", cards[0].ID)

	_, err := c.Get("stale")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRemove(t *testing.T) {
	c := NewCatalog()
	c.ReplaceAll([]Card{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	assert.True(t, c.Remove("b"))
	assert.False(t, c.Remove("b"))

	cards := c.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "a", cards[0].ID)
	assert.Equal(t, "c", cards[1].ID)
}

func TestCatalogCardsReturnsCopy(t *testing.T) {
	c := NewCatalog()
	c.ReplaceAll([]Card{{ID: "a"}})

	cards := c.Cards()
	cards[0].ID = "mutated"

	got, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	cards := []Card{
		{ID: "1", Category: "Leo"},
		{ID: "2", Category: "GOAT"},
		{ID: "3", Category: "Leo"},
		{ID: "4", Category: "Master"},
	}

	leo := FilterByCategory(cards, "Leo")
	require.Len(t, leo, 2)
	assert.Equal(t, "1", leo[0].ID)
	assert.Equal(t, "3", leo[1].ID)

	assert.Len(t, FilterByCategory(cards, ""), 4)
	assert.Empty(t, FilterByCategory(cards, "Beast"))
}

func TestCategoriesDefaultsFirstDiscoveredAppended(t *testing.T) {
	cards := []Card{
		{Category: "Thupaki"},
		{Category: "Leo"}, // already a default, not duplicated
		{Category: ""},    // empty never listed
		{Category: "Kaththi"},
		{Category: "Thupaki"}, // duplicate discovered label
	}

	got := Categories(cards)

	require.Len(t, got, len(DefaultCategories)+2)
	assert.Equal(t, DefaultCategories, got[:len(DefaultCategories)])
	assert.Equal(t, "Thupaki", got[len(DefaultCategories)])
	assert.Equal(t, "Kaththi", got[len(DefaultCategories)+1])
}
