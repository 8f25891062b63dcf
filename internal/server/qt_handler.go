package server

import (
	"github.com/gin-gonic/gin"

	"qtbot/internal/kakao"
	"qtbot/internal/qt"
)

const apologyText = "죄송합니다. 큐티 정보를 가져오는데 실패했습니다."

var refreshQuickReply = kakao.QuickReply{
	MessageText: "오늘의 QT",
	Action:      "message",
	Label:       "🔄 다시보기",
}

// handleQT runs the devotional pipeline. The request body is ignored; every
// invocation fetches the page fresh. A fetch failure becomes a single apology
// bubble with HTTP 200, never an error status.
func (s *Server) handleQT(c *gin.Context) {
	d, err := s.qt.Today(c.Request.Context())
	if err != nil {
		s.log.Error("qt pipeline failed", "error", err)
		reply(c, kakao.TextResponse(apologyText))
		return
	}

	reply(c, kakao.TextResponse(qt.Bubbles(d)...).WithQuickReplies(refreshQuickReply))
}
