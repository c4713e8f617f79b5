package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericogr/vecna-cards/internal/engine"
	"github.com/ericogr/vecna-cards/internal/game"
)

type rawConfig struct {
	CardList   []game.CardDefinition   `yaml:"card_list"`
	SummonList []game.SummonDefinition `yaml:"summon_list"`
	EnemyList  []game.EnemyDefinition  `yaml:"enemy_list"`
	Encounter  *struct {
		APPerTurn int `yaml:"ap_per_turn"`
	} `yaml:"encounter"`
	Server *struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
}

// LoadedConfig holds the game catalog and the server settings.
type LoadedConfig struct {
	Cards         []game.CardDefinition
	Summons       []game.SummonDefinition
	Enemies       []game.EnemyDefinition
	APPerTurn     int
	ServerAddress string
}

// LoadConfig reads the data file at path. JSON files are accepted too since
// they parse as YAML. The keys `card_list` and `enemy_list` are required.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a data document.
func Parse(b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("card_list is empty (provide 'card_list' array)")
	}
	if len(rc.EnemyList) == 0 {
		return nil, fmt.Errorf("enemy_list is empty (provide 'enemy_list' array)")
	}
	if err := validateCards(rc.CardList); err != nil {
		return nil, err
	}
	if err := validateSummons(rc.SummonList); err != nil {
		return nil, err
	}
	if err := validateEnemies(rc.EnemyList); err != nil {
		return nil, err
	}

	ap := engine.DefaultAPPerTurn
	if rc.Encounter != nil {
		if rc.Encounter.APPerTurn < 0 {
			return nil, fmt.Errorf("encounter.ap_per_turn must not be negative")
		}
		if rc.Encounter.APPerTurn > 0 {
			ap = rc.Encounter.APPerTurn
		}
	}
	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Cards:         rc.CardList,
		Summons:       rc.SummonList,
		Enemies:       rc.EnemyList,
		APPerTurn:     ap,
		ServerAddress: addr,
	}, nil
}

// uniqueIDs tracks ids case-insensitively.
type uniqueIDs map[string]struct{}

func (u uniqueIDs) add(kind, id string) error {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		return fmt.Errorf("%s entry missing 'id'", kind)
	}
	if _, exists := u[key]; exists {
		return fmt.Errorf("duplicate %s id '%s'", kind, id)
	}
	u[key] = struct{}{}
	return nil
}

func validateCards(cards []game.CardDefinition) error {
	seen := uniqueIDs{}
	for _, c := range cards {
		if err := seen.add("card", c.ID); err != nil {
			return err
		}
		if c.HP <= 0 {
			return fmt.Errorf("card '%s': hp must be positive", c.ID)
		}
		switch c.ActionType.Normalize() {
		case game.ActionTypeNone, game.ActionTypeDPS, game.ActionTypeHealer, game.ActionTypeSupport:
		default:
			return fmt.Errorf("card '%s': unknown action_type '%s'", c.ID, c.ActionType)
		}
		if c.Magnitude != nil && *c.Magnitude < 0 {
			return fmt.Errorf("card '%s': magnitude must not be negative", c.ID)
		}
	}
	return nil
}

func validateSummons(summons []game.SummonDefinition) error {
	seen := uniqueIDs{}
	for _, s := range summons {
		if err := seen.add("summon", s.ID); err != nil {
			return err
		}
		if s.Cooldown < 0 {
			return fmt.Errorf("summon '%s': cooldown must not be negative", s.ID)
		}
	}
	return nil
}

func validateEnemies(enemies []game.EnemyDefinition) error {
	seen := uniqueIDs{}
	for _, e := range enemies {
		if err := seen.add("enemy", e.ID); err != nil {
			return err
		}
		if e.HP <= 0 {
			return fmt.Errorf("enemy '%s': hp must be positive", e.ID)
		}
		if e.Attack < 0 || e.IPReward < 0 {
			return fmt.Errorf("enemy '%s': attack and ip_reward must not be negative", e.ID)
		}
		for i, a := range e.Attacks {
			switch game.AttackType(strings.ToLower(string(a.Type))) {
			case "", game.AttackSingle, game.AttackAOE:
			default:
				return fmt.Errorf("enemy '%s': attack %d has unknown type '%s'", e.ID, i+1, a.Type)
			}
			if a.Dmg != nil && *a.Dmg < 0 {
				return fmt.Errorf("enemy '%s': attack %d has negative dmg", e.ID, i+1)
			}
		}
	}
	return nil
}
