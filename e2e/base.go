package e2e

import (
	"bytes"
	"chat-relay/auth"
	"chat-relay/delivery"
	"chat-relay/domain"
	"chat-relay/infrastructure/api"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseRelaySuite struct {
	suite.Suite
	Config Config
	tokens *auth.TokenManager
}

// SetupSuite loads the environment configuration and skips when no relay is configured
func (s *BaseRelaySuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if !s.Config.Enabled() {
		s.T().Skip("RELAY_URL, JWT_SECRET, INTERNAL_API_KEY and E2E_* members are required")
	}
	s.tokens = auth.NewTokenManager(s.Config.JWTSecret, s.Config.JWTIssuer, time.Hour)
}

// Step prints a colorized header and runs fn with a bounded context
func (s *BaseRelaySuite) Step(t *testing.T, name string, fn func(ctx context.Context)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fn(ctx)
}

func (s *BaseRelaySuite) Token(userID string) string {
	token, err := s.tokens.Generate(domain.UserID(userID), nil)
	s.Require().NoError(err)
	return token
}

// Coordinator builds a delivery coordinator for userID without starting it.
func (s *BaseRelaySuite) Coordinator(userID string) *delivery.Coordinator {
	c, err := delivery.New(logs.GetLoggerFromLevel(slog.LevelDebug), delivery.Config{
		BaseURL:              s.Config.RelayURL,
		Token:                s.Token(userID),
		AutoReconnect:        true,
		MaxReconnectAttempts: 3,
	})
	s.Require().NoError(err)
	return c
}

func (s *BaseRelaySuite) Queue(userID string) *delivery.QueueClient {
	return delivery.NewQueueClient(s.Config.RelayURL, s.Token(userID), nil)
}

// Publish hands a persisted message to the relay the way the message store does.
func (s *BaseRelaySuite) Publish(ctx context.Context, t *testing.T, msg domain.Message) {
	body, err := json.Marshal(msg)
	s.Require().NoError(err)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Config.RelayURL+"/internal/messages", bytes.NewReader(body))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.InternalKeyHeader, s.Config.InternalAPIKey)

	start := time.Now()
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	answer, _ := io.ReadAll(resp.Body)

	t.Logf("POST /internal/messages [%d] in %v", resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Logf("REQUEST:\n%s\nRESPONSE:\n%s", body, answer)
	}
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(answer))
}
