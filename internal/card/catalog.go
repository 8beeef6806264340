package card

import "sync"

// Catalog is the in-memory, newest-first sequence of cards mirroring the
// metadata store at last fetch/mutation time. It is a cache, not the source
// of truth. The mutex protects memory, not business invariants: concurrent
// mutations on the same card are resolved by the pipelines, not here.
type Catalog struct {
	mu    sync.RWMutex
	cards []Card
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// ReplaceAll swaps the catalog contents for a full refresh from the store.
func (c *Catalog) ReplaceAll(cards []Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = make([]Card, len(cards))
	copy(c.cards, cards)
}

// Prepend inserts a freshly created card at the head of the sequence.
func (c *Catalog) Prepend(card Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards = append([]Card{card}, c.cards...)
}

// Remove deletes the card with the given id, reporting whether it was present.
func (c *Catalog) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, card := range c.cards {
		if card.ID == id {
			c.cards = append(c.cards[:i], c.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the card with the given id, or ErrNotFound.
func (c *Catalog) Get(id string) (Card, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, card := range c.cards {
		if card.ID == id {
			return card, nil
		}
	}
	return Card{}, ErrNotFound
}

// Cards returns a copy of the current sequence, newest first.
func (c *Catalog) Cards() []Card {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards currently held.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cards)
}

// FilterByCategory returns the subsequence of cards whose category equals
// active, preserving relative order. An empty active returns everything.
func FilterByCategory(cards []Card, active string) []Card {
	if active == "" {
		return cards
	}
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Category == active {
			out = append(out, c)
		}
	}
	return out
}

// Categories derives the selectable label set: the fixed defaults first,
// then every distinct non-empty category observed in cards, in first-seen
// order.
func Categories(cards []Card) []string {
	seen := make(map[string]bool, len(DefaultCategories))
	out := make([]string, 0, len(DefaultCategories))
	for _, label := range DefaultCategories {
		seen[label] = true
		out = append(out, label)
	}
	for _, c := range cards {
		if c.Category == "" || seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}
