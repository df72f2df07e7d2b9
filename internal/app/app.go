package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/iamsli/trading-service/config"
	"github.com/iamsli/trading-service/internal/api"
	"github.com/iamsli/trading-service/internal/service"
	"github.com/iamsli/trading-service/internal/storage"
)

// InitializeApp wires all application dependencies and returns a fully
// configured gin router, a cleanup function for graceful shutdown, and
// any initialization error.
//
// Wiring order: config → postgres → repository → services → handler →
// router → health probes. The store handle is injected explicitly at each
// layer; nothing reads it from global state.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewTradesRepository(db)

	submitSvc := service.NewSubmissionService(repo)
	statsSvc := service.NewStatsService(repo)
	historySvc := service.NewHistoryService(repo)

	handler := api.NewHandler(submitSvc, statsSvc, historySvc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
