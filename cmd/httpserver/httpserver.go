// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/barstore/internal/bardelivery"
	"github.com/go-petr/barstore/internal/barquery"
	"github.com/go-petr/barstore/internal/barservice"
	"github.com/go-petr/barstore/internal/middleware"
	"github.com/go-petr/barstore/pkg/configpkg"
)

// Server holds db connections, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// Single deletes block on conn, batch deletes are fanned out over pool.
func New(conn *sql.DB, pool barquery.PgxConn, logger zerolog.Logger, config configpkg.Config) *Server {
	barService := barservice.New(barquery.NewQuerier(conn), barquery.NewAsyncQuerier(pool))
	barHandler := bardelivery.NewHandler(barService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.DELETE("/bars/:id", barHandler.Delete)
	engine.POST("/bars/delete", barHandler.DeleteMany)

	return &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}
}
