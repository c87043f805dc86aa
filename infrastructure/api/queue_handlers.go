package api

import (
	"chat-relay/errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ackRequest struct {
	MessageIDs []string `json:"messageIds" binding:"required"`
}

type attemptRequest struct {
	MessageID string `json:"messageId" binding:"required"`
}

func (s *Server) pending(c *gin.Context) {
	userID, ok := s.user(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(c, errors.ErrInvalidLimit)
			return
		}
		limit = parsed
	}
	page, err := s.queue.Pending(c.Request.Context(), userID, limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) acknowledge(c *gin.Context) {
	userID, ok := s.user(c)
	if !ok {
		return
	}
	var body ackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	if err := s.queue.Acknowledge(c.Request.Context(), userID, body.MessageIDs); err != nil {
		s.fail(c, err)
		return
	}
	success(c)
}

func (s *Server) clear(c *gin.Context) {
	userID, ok := s.user(c)
	if !ok {
		return
	}
	if err := s.queue.Clear(c.Request.Context(), userID); err != nil {
		s.fail(c, err)
		return
	}
	success(c)
}

func (s *Server) status(c *gin.Context) {
	userID, ok := s.user(c)
	if !ok {
		return
	}
	status, err := s.queue.Status(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) recordAttempt(c *gin.Context) {
	userID, ok := s.user(c)
	if !ok {
		return
	}
	var body attemptRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	if err := s.queue.RecordAttempt(c.Request.Context(), userID, body.MessageID); err != nil {
		s.fail(c, err)
		return
	}
	success(c)
}
