// Package catalog is the read-only lookup of hero cards, summons and enemies
// loaded at startup.
package catalog

import "github.com/ericogr/vecna-cards/internal/game"

// Catalog indexes definitions by id while keeping their file order.
type Catalog struct {
	cards   []game.CardDefinition
	summons []game.SummonDefinition
	enemies []game.EnemyDefinition

	cardByID   map[string]game.CardDefinition
	summonByID map[string]game.SummonDefinition
	enemyByID  map[string]game.EnemyDefinition
}

// New builds a catalog. When ids repeat, the first definition wins.
func New(cards []game.CardDefinition, summons []game.SummonDefinition, enemies []game.EnemyDefinition) *Catalog {
	c := &Catalog{
		cards:      append([]game.CardDefinition(nil), cards...),
		summons:    append([]game.SummonDefinition(nil), summons...),
		enemies:    append([]game.EnemyDefinition(nil), enemies...),
		cardByID:   make(map[string]game.CardDefinition, len(cards)),
		summonByID: make(map[string]game.SummonDefinition, len(summons)),
		enemyByID:  make(map[string]game.EnemyDefinition, len(enemies)),
	}
	for _, d := range cards {
		if _, ok := c.cardByID[d.ID]; !ok {
			c.cardByID[d.ID] = d
		}
	}
	for _, d := range summons {
		if _, ok := c.summonByID[d.ID]; !ok {
			c.summonByID[d.ID] = d
		}
	}
	for _, d := range enemies {
		if _, ok := c.enemyByID[d.ID]; !ok {
			c.enemyByID[d.ID] = d
		}
	}
	return c
}

func (c *Catalog) Card(id string) (game.CardDefinition, bool) {
	d, ok := c.cardByID[id]
	return d, ok
}

func (c *Catalog) Summon(id string) (game.SummonDefinition, bool) {
	d, ok := c.summonByID[id]
	return d, ok
}

// Enemy returns a copy of the enemy definition; its attack table is not
// shared with the catalog.
func (c *Catalog) Enemy(id string) (game.EnemyDefinition, bool) {
	d, ok := c.enemyByID[id]
	if ok {
		d.Attacks = append([]game.EnemyAttack(nil), d.Attacks...)
	}
	return d, ok
}

// Cards returns every hero card in file order.
func (c *Catalog) Cards() []game.CardDefinition {
	return append([]game.CardDefinition(nil), c.cards...)
}

func (c *Catalog) Summons() []game.SummonDefinition {
	return append([]game.SummonDefinition(nil), c.summons...)
}

func (c *Catalog) Enemies() []game.EnemyDefinition {
	return append([]game.EnemyDefinition(nil), c.enemies...)
}
