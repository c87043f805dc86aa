package api

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"time"

	"github.com/gin-gonic/gin"
)

type receiptRequest struct {
	SenderID  domain.UserID `json:"senderId" binding:"required"`
	MessageID string        `json:"messageId" binding:"required"`
	At        time.Time     `json:"at"`
}

func (r receiptRequest) at() time.Time {
	if r.At.IsZero() {
		return time.Now().UTC()
	}
	return r.At
}

func (s *Server) messageCreated(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	if err := s.notifications.MessageCreated(c.Request.Context(), msg); err != nil {
		s.fail(c, err)
		return
	}
	success(c)
}

func (s *Server) notifyUser(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	if err := s.notifications.NotifyUser(c.Request.Context(), domain.UserID(c.Param("userId")), msg); err != nil {
		s.fail(c, err)
		return
	}
	success(c)
}

func (s *Server) messageUpdated(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	s.notifications.MessageUpdated(c.Request.Context(), msg)
	success(c)
}

func (s *Server) messageDeleted(c *gin.Context) {
	s.notifications.MessageDeleted(c.Request.Context(),
		domain.ConversationID(c.Param("conversationId")), c.Param("messageId"))
	success(c)
}

func (s *Server) reactionChanged(c *gin.Context) {
	var reaction event.ReactionChanged
	if err := c.ShouldBindJSON(&reaction); err != nil || reaction.MessageID == "" {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	s.notifications.ReactionChanged(c.Request.Context(), domain.ConversationID(c.Param("conversationId")), reaction)
	success(c)
}

func (s *Server) messageRead(c *gin.Context) {
	var body receiptRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	s.notifications.MessageRead(c.Request.Context(), body.SenderID,
		event.ReadReceipt{MessageID: body.MessageID, ReadAt: body.at()})
	success(c)
}

func (s *Server) messageDelivered(c *gin.Context) {
	var body receiptRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.fail(c, errors.ErrInvalidPayload)
		return
	}
	s.notifications.MessageDelivered(c.Request.Context(), body.SenderID,
		event.DeliveryReceipt{MessageID: body.MessageID, DeliveredAt: body.at()})
	success(c)
}
