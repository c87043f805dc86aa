package api

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const InternalKeyHeader = "X-Internal-Key"

type Server struct {
	log           *slog.Logger
	notifications contract.INotificationService
	queue         contract.IQueueService
	monitoring    *observability.MonitoringManager
	verifier      contract.TokenVerifier
	socket        http.Handler
	internalKey   string
}

func NewServer(log *slog.Logger,
	notifications contract.INotificationService,
	queue contract.IQueueService,
	monitoring *observability.MonitoringManager,
	verifier contract.TokenVerifier,
	socket http.Handler,
	internalKey string) *Server {
	return &Server{
		log:           log,
		notifications: notifications,
		queue:         queue,
		monitoring:    monitoring,
		verifier:      verifier,
		socket:        socket,
		internalKey:   internalKey,
	}
}

// Routes builds the gin engine. The /internal group is only mounted when an internal key is configured.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/ws", gin.WrapH(s.socket))

	api := r.Group("/api", auth.Interceptor(s.verifier))
	api.GET("/queue", s.pending)
	api.POST("/queue/ack", s.acknowledge)
	api.DELETE("/queue", s.clear)
	api.GET("/queue/status", s.status)
	api.POST("/queue/attempts", s.recordAttempt)
	api.GET("/presence/stats", s.presenceStats)
	api.GET("/presence/:userId", s.presence)

	if s.internalKey != "" {
		internal := r.Group("/internal", s.requireInternalKey())
		internal.POST("/messages", s.messageCreated)
		internal.POST("/users/:userId/messages", s.notifyUser)
		internal.PUT("/messages", s.messageUpdated)
		internal.DELETE("/conversations/:conversationId/messages/:messageId", s.messageDeleted)
		internal.POST("/conversations/:conversationId/reactions", s.reactionChanged)
		internal.POST("/receipts/read", s.messageRead)
		internal.POST("/receipts/delivered", s.messageDelivered)
	}
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) requireInternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(InternalKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(s.internalKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrInvalidToken.Error()})
			return
		}
		c.Next()
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) user(c *gin.Context) (domain.UserID, bool) {
	userID, ok := auth.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrMissingToken.Error()})
	}
	return userID, ok
}

func success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
