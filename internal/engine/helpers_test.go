package engine

import (
	"github.com/ericogr/vecna-cards/internal/deck"
	"github.com/ericogr/vecna-cards/internal/game"
	"github.com/ericogr/vecna-cards/internal/rng"
)

func intp(v int) *int { return &v }

func card(id string, hp int, ability string) game.CardDefinition {
	return game.CardDefinition{ID: id, Name: id, HP: hp, Ability: ability}
}

func biter(hp int) game.EnemyDefinition {
	return game.EnemyDefinition{
		ID:      "wolf",
		Name:    "Wolf",
		HP:      hp,
		Attacks: []game.EnemyAttack{{Name: "Bite", Type: game.AttackSingle, Dmg: intp(4)}},
	}
}

func newState(enemy game.EnemyDefinition, r rng.Source, hand ...game.CardDefinition) (*State, *deck.Hand) {
	h := deck.NewHand(hand)
	return StartEncounter(enemy, h, r, Options{}), h
}

// place puts card on the field and panics on failure.
func place(s *State, slot int, c game.CardDefinition) int {
	got, err := PlaceHero(s, slot, c)
	if err != nil {
		panic(err)
	}
	return got
}
