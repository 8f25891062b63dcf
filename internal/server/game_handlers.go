package server

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"qtbot/internal/game"
	"qtbot/internal/kakao"
)

const gameApologyText = "잠시 문제가 발생했습니다. 다시 시도해 주세요."

func (s *Server) handleRegister(c *gin.Context) {
	p := payload(c)
	name := registerName(p.UserRequest.Utterance)

	player, err := s.game.Register(c.Request.Context(), p.UserID(), name)
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatRegistered(player)))
}

func (s *Server) handleStatus(c *gin.Context) {
	report, err := s.game.Status(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatStatus(report)))
}

func (s *Server) handleSummon(c *gin.Context) {
	m, player, err := s.game.Summon(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatSummon(m, player)))
}

func (s *Server) handleMonsterList(c *gin.Context) {
	monsters, err := s.game.Monsters(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatMonsterList(monsters)))
}

func (s *Server) handleExpand(c *gin.Context) {
	player, cost, err := s.game.Expand(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatExpand(player, cost)))
}

func (s *Server) handleDungeonInfo(c *gin.Context) {
	report, err := s.game.Status(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatDungeonInfo(report)))
}

func (s *Server) handleRaid(c *gin.Context) {
	report, err := s.game.Raid(c.Request.Context(), payload(c).UserID())
	if err != nil {
		s.replyGameError(c, err)
		return
	}
	reply(c, kakao.TextResponse(game.FormatRaid(report)))
}

// replyGameError maps command errors onto fixed reply bubbles. Unexpected
// errors are logged and answered with a generic apology, still HTTP 200.
func (s *Server) replyGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrNotRegistered):
		reply(c, kakao.TextResponse(game.MsgNotRegistered))
	case errors.Is(err, game.ErrAlreadyRegistered):
		reply(c, kakao.TextResponse(game.MsgAlreadyRegistered))
	case errors.Is(err, game.ErrNotEnoughGold):
		reply(c, kakao.TextResponse(game.MsgNotEnoughGold))
	default:
		s.log.Error("game command failed", "path", c.FullPath(), "error", err)
		reply(c, kakao.TextResponse(gameApologyText))
	}
}

// registerName extracts the dungeon owner's name from a register utterance
// like "던전 등록 홍길동". Without a name the game assigns a default title.
func registerName(utterance string) string {
	rest := strings.TrimPrefix(strings.TrimSpace(utterance), "던전 등록")
	return strings.TrimSpace(rest)
}
