package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/mfadel/papertrade/infra"
	infracache "github.com/mfadel/papertrade/infra/cache"
	infraprovider "github.com/mfadel/papertrade/infra/provider"
	infrarepo "github.com/mfadel/papertrade/infra/repository"
	infraledger "github.com/mfadel/papertrade/infra/repository/ledger"
	infrauser "github.com/mfadel/papertrade/infra/repository/user"
	"github.com/mfadel/papertrade/pkg/config"
	authsvc "github.com/mfadel/papertrade/pkg/service/auth"
	tradingsvc "github.com/mfadel/papertrade/pkg/service/trading"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/mfadel/papertrade/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&infrauser.User{}, &infraledger.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	quotes := infraprovider.NewCachedQuoteProvider(
		infraprovider.NewQuoteAPIProvider(cfg.Quote, logger),
		infracache.NewMemoryCache(),
		cfg.Quote.CacheTTL,
		logger,
	)

	authSvc := authsvc.New(uow, cfg.Jwt, logger)
	userSvc := usersvc.New(uow, cfg.Trading.StartingCash, logger)
	tradingSvc := tradingsvc.New(uow, quotes, logger)

	app := webapi.SetupApp(cfg, authSvc, userSvc, tradingSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
