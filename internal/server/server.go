// Package server implements the Kakao skill webhook HTTP server.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"qtbot/internal/game"
	"qtbot/internal/kakao"
	"qtbot/internal/qt"
	"qtbot/internal/storage"
)

// Devotionals is the interface the QT skill handler depends on.
type Devotionals interface {
	Today(ctx context.Context) (*qt.Devotional, error)
}

// Server routes Kakao skill requests to the QT pipeline and game commands.
type Server struct {
	qt     Devotionals
	game   *game.Service
	store  storage.Storage
	log    *slog.Logger
	router *gin.Engine
}

// New creates a Server and builds its routes.
func New(qtSvc Devotionals, gameSvc *game.Service, store storage.Storage, log *slog.Logger) *Server {
	s := &Server{
		qt:    qtSvc,
		game:  gameSvc,
		store: store,
		log:   log,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)

	skill := r.Group("/skill")
	skill.POST("/qt", s.handleQT)

	user := skill.Group("/user")
	user.POST("/register", s.handleRegister)
	user.POST("/status", s.handleStatus)

	monster := skill.Group("/monster")
	monster.POST("/summon", s.handleSummon)
	monster.POST("/list", s.handleMonsterList)

	dungeon := skill.Group("/dungeon")
	dungeon.POST("/expand", s.handleExpand)
	dungeon.POST("/info", s.handleDungeonInfo)

	battle := skill.Group("/battle")
	battle.POST("/raid", s.handleRaid)

	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "KakaoTalk QT Bot Server is Running!",
		"service": "qtbot",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.log.Error("health check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// payload decodes the Kakao skill request body. A malformed body yields an
// empty payload; the platform contract requires a well-formed reply envelope
// regardless, so handlers never reject the request.
func payload(c *gin.Context) *kakao.SkillPayload {
	var p kakao.SkillPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		return &kakao.SkillPayload{}
	}
	return &p
}

func reply(c *gin.Context, resp kakao.SkillResponse) {
	c.JSON(http.StatusOK, resp)
}
