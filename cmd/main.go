// Package main runs the bar store API server.
package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/barstore/cmd/httpserver"
	"github.com/go-petr/barstore/internal/middleware"
	"github.com/go-petr/barstore/pkg/configpkg"
	"github.com/go-petr/barstore/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	pool, err := dbpkg.SetupPool(context.Background(), config.DBSource, config.DBMaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create connection pool")
	}
	defer pool.Close()

	gin.SetMode(gin.ReleaseMode)
	server := httpserver.New(db, pool, logger, config)

	logger.Info().Str("address", config.ServerAddress).Msg("BAR STORE SERVER HAS STARTED")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
