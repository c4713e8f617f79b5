package engine

import "github.com/ericogr/vecna-cards/internal/game"

// PlaceHero puts card into an empty slot at full health and removes one
// matching card from the hand. Placement costs no AP.
func PlaceHero(s *State, slot int, card game.CardDefinition) (int, error) {
	if !validSlot(slot) {
		return -1, ErrInvalidSlot
	}
	if s.Playfield[slot] != nil {
		return -1, ErrSlotOccupied
	}
	s.Playfield[slot] = game.NewHero(card)
	s.takeFromHand(card.ID)
	return slot, nil
}

// PlaceHeroAuto places card into the first empty slot.
func PlaceHeroAuto(s *State, card game.CardDefinition) (int, error) {
	for i := range s.Playfield {
		if s.Playfield[i] == nil {
			return PlaceHero(s, i, card)
		}
	}
	return -1, ErrSlotOccupied
}

// ReplaceResult describes a replacement.
type ReplaceResult struct {
	Slot int `json:"slot"`
	// Returned is the displaced card pushed back into the hand, carrying
	// the hero's current hp.
	Returned *game.CardDefinition `json:"returned,omitempty"`
	APSpent  int                  `json:"ap_spent"`
}

// ReplaceHero installs newCard in slot. An empty slot is filled for free.
// Swapping out an occupied slot costs 1 AP and returns the displaced card
// to the hand with its current hp; its original maximum is kept.
func ReplaceHero(s *State, slot int, newCard game.CardDefinition) (ReplaceResult, error) {
	if !validSlot(slot) {
		return ReplaceResult{}, ErrInvalidSlot
	}
	old := s.Playfield[slot]
	if old == nil {
		s.Playfield[slot] = game.NewHero(newCard)
		s.takeFromHand(newCard.ID)
		return ReplaceResult{Slot: slot}, nil
	}
	if s.AP <= 0 {
		return ReplaceResult{}, ErrNoAP
	}
	returned := old.Base
	returned.MaxHP = old.Base.MaxHitPoints()
	returned.HP = old.HP

	s.takeFromHand(newCard.ID)
	if s.Hand != nil {
		s.Hand.Push(returned)
	}
	s.Playfield[slot] = game.NewHero(newCard)
	s.AP--
	return ReplaceResult{Slot: slot, Returned: &returned, APSpent: 1}, nil
}
