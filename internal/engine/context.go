package engine

import (
	"fmt"
	"strings"

	"github.com/ericogr/vecna-cards/internal/game"
)

// turnContext collects the events and summary lines of one enemy turn.
type turnContext struct {
	s       *State
	events  []game.Event
	summary []string
}

func newTurnContext(s *State) *turnContext {
	return &turnContext{s: s, events: make([]game.Event, 0, SlotCount+2), summary: make([]string, 0, 8)}
}

func (tc *turnContext) add(msg string) { tc.summary = append(tc.summary, msg) }

// emit records ev and its summary line.
func (tc *turnContext) emit(ev game.Event) {
	if ev.Message == "" {
		ev.Message = describe(ev)
	}
	tc.events = append(tc.events, ev)
	tc.add(ev.Message)
}

func describe(ev game.Event) string {
	switch ev.Type {
	case game.EventStunned:
		return "Enemy stunned and skipped its turn"
	case game.EventEnemyDamage:
		return fmt.Sprintf("%s dealt %d delayed damage, enemy HP: %d", ev.Source, ev.Dmg, ev.EnemyHP)
	}
	prefix := ""
	if ev.AttackName != "" {
		prefix = "Enemy used " + ev.AttackName + " and "
	}
	name := ev.HeroName
	if name == "" {
		name = fmt.Sprintf("space %d", ev.Slot+1)
	}
	total := ev.TempTaken + ev.HPTaken
	switch {
	case ev.Died:
		return fmt.Sprintf("%shit %s for %d and killed it", prefix, name, total)
	case total == 0:
		return fmt.Sprintf("%sattacked %s but dealt no damage", prefix, name)
	}
	return fmt.Sprintf("%shit %s for %d, remaining HP: %d", prefix, name, total, ev.RemainingHP)
}

func (tc *turnContext) joinSummary() string {
	return strings.Join(tc.summary, "\n")
}
