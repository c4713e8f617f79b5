package service

import (
	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
)

// PlaceResult reports where a hero landed.
type PlaceResult struct {
	Slot   int    `json:"slot"`
	CardID string `json:"card_id"`
}

// DefendResult confirms a hero is defending.
type DefendResult struct {
	Slot      int  `json:"slot"`
	Defending bool `json:"defending"`
}

// cardFromHand returns the hand's copy of cardID so damaged cards keep
// their current hp.
func (s *session) cardFromHand(cardID string) (game.CardDefinition, error) {
	i := s.hand.IndexOf(cardID)
	if i < 0 {
		return game.CardDefinition{}, ErrCardNotInHand
	}
	return s.hand.Cards()[i], nil
}

// Place puts a card from the hand into slot.
func (m *Manager) Place(id string, slot int, cardID string) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		c, err := s.cardFromHand(cardID)
		if err != nil {
			return nil, err
		}
		got, err := engine.PlaceHero(s.state, slot, c)
		if err != nil {
			return nil, err
		}
		s.placed[cardID]++
		return PlaceResult{Slot: got, CardID: cardID}, nil
	})
}

// PlaceAuto puts a card from the hand into the first empty slot.
func (m *Manager) PlaceAuto(id string, cardID string) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		c, err := s.cardFromHand(cardID)
		if err != nil {
			return nil, err
		}
		got, err := engine.PlaceHeroAuto(s.state, c)
		if err != nil {
			return nil, err
		}
		s.placed[cardID]++
		return PlaceResult{Slot: got, CardID: cardID}, nil
	})
}

func (m *Manager) Attack(id string, slot int) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		return engine.PlayHeroAttack(s.state, slot)
	})
}

// Act plays the card action of the hero in slot.
func (m *Manager) Act(id string, slot int, target engine.Target) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		return engine.PlayHeroAction(s.state, slot, target)
	})
}

func (m *Manager) Defend(id string, slot int) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		if err := engine.DefendHero(s.state, slot); err != nil {
			return nil, err
		}
		return DefendResult{Slot: slot, Defending: true}, nil
	})
}

// Replace swaps the hero in slot for a card from the hand.
func (m *Manager) Replace(id string, slot int, cardID string) (*Outcome, error) {
	return m.with(id, func(s *session) (interface{}, error) {
		c, err := s.cardFromHand(cardID)
		if err != nil {
			return nil, err
		}
		res, err := engine.ReplaceHero(s.state, slot, c)
		if err != nil {
			return nil, err
		}
		s.placed[cardID]++
		return res, nil
	})
}

// Summon casts summonID. Summons are available to every party.
func (m *Manager) Summon(id string, summonID string, target engine.Target) (*Outcome, error) {
	def, ok := m.catalog.Summon(summonID)
	if !ok {
		return nil, ErrUnknownSummon
	}
	return m.with(id, func(s *session) (interface{}, error) {
		res, err := engine.UseSummon(s.state, def, target)
		if err != nil {
			return nil, err
		}
		s.cast[summonID]++
		return res, nil
	})
}
