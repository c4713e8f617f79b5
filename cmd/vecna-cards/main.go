package main

import (
	"github.com/ericogr/vecna-cards/internal/api"
	"github.com/ericogr/vecna-cards/internal/catalog"
	"github.com/ericogr/vecna-cards/internal/constants"
	"github.com/ericogr/vecna-cards/internal/logging"
	"github.com/ericogr/vecna-cards/internal/service"
	"github.com/ericogr/vecna-cards/internal/version"
)

func main() {
	defer logging.Sync()

	env := loadEnvOrExit()
	cfg := loadConfigOrExit(env.ConfigPath)

	// VECNA_ADDR overrides server.address from the data file.
	addr := cfg.ServerAddress
	if env.Address != "" {
		addr = env.Address
	}

	if env.Seed != 0 {
		logging.Warn("Fixed seed configured, every encounter without its own seed replays the same rolls", logging.Fields{constants.LogFieldSeed: env.Seed})
	}

	repo := createRepositoryOrExit(env.DBPath)
	cat := catalog.New(cfg.Cards, cfg.Summons, cfg.Enemies)
	manager := service.NewManager(repo, cat, service.Options{
		APPerTurn:  cfg.APPerTurn,
		SessionTTL: env.SessionTTL,
		FixedSeed:  env.Seed,
	})
	router := api.NewRouter(api.NewEncounterHandler(manager, cat))

	logging.Info("Catalog loaded", logging.Fields{
		constants.LogFieldSource: env.ConfigPath,
		"cards":                  len(cfg.Cards),
		"summons":                len(cfg.Summons),
		"enemies":                len(cfg.Enemies),
	})
	logging.Info("Server starting", logging.Fields{
		constants.LogFieldAddr:    addr,
		constants.LogFieldVersion: version.Current().Version,
	})
	if err := serve(addr, router, manager, env.SessionTTL); err != nil {
		logging.Fatal("Server stopped", err, nil)
	}
}
