// Package deck holds the party hand: every hero card the player can place.
// There are no draw or discard piles; all cards stay in hand until placed.
package deck

import (
	"fmt"

	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/rng"
)

// Hand is the live, ordered collection of available hero cards.
type Hand struct {
	cards []game.CardDefinition
}

// NewHand wraps the given cards without reordering them.
func NewHand(cards []game.CardDefinition) *Hand {
	return &Hand{cards: append([]game.CardDefinition(nil), cards...)}
}

// Build looks up every id in defs (first match wins) and shuffles the result
// with r when r is not nil. Unknown ids are an error.
func Build(defs []game.CardDefinition, ids []string, r rng.Source) (*Hand, error) {
	byID := make(map[string]game.CardDefinition, len(defs))
	for _, d := range defs {
		if _, ok := byID[d.ID]; !ok {
			byID[d.ID] = d
		}
	}
	cards := make([]game.CardDefinition, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown card id %q", id)
		}
		cards = append(cards, d)
	}
	if r != nil {
		r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	}
	return &Hand{cards: cards}, nil
}

// Cards returns a copy of the cards currently in hand.
func (h *Hand) Cards() []game.CardDefinition {
	return append([]game.CardDefinition(nil), h.cards...)
}

// Len returns the number of cards in hand.
func (h *Hand) Len() int { return len(h.cards) }

// PlayFromHand removes and returns the card at index.
func (h *Hand) PlayFromHand(index int) (game.CardDefinition, bool) {
	if index < 0 || index >= len(h.cards) {
		return game.CardDefinition{}, false
	}
	c := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return c, true
}

// Push appends a card to the end of the hand.
func (h *Hand) Push(card game.CardDefinition) {
	h.cards = append(h.cards, card)
}

// IndexOf returns the index of the first card with id, or -1.
func (h *Hand) IndexOf(id string) int {
	for i := range h.cards {
		if h.cards[i].ID == id {
			return i
		}
	}
	return -1
}
