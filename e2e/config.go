package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the suites at a running relay. The conversation and both
// users must already exist in the membership store the relay reads.
type Config struct {
	RelayURL       string `envconfig:"RELAY_URL"`
	GrpcAddr       string `envconfig:"RELAY_GRPC_ADDR" default:"localhost:9090"`
	JWTSecret      string `envconfig:"JWT_SECRET"`
	JWTIssuer      string `envconfig:"JWT_ISSUER" default:"chat-relay"`
	InternalAPIKey string `envconfig:"INTERNAL_API_KEY"`
	ConversationID string `envconfig:"E2E_CONVERSATION_ID"`
	SenderID       string `envconfig:"E2E_SENDER_ID"`
	RecipientID    string `envconfig:"E2E_RECIPIENT_ID"`
	// E2E_DEBUG_JSON dumps request and response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func (c Config) Enabled() bool {
	return c.RelayURL != "" && c.JWTSecret != "" && c.InternalAPIKey != "" &&
		c.ConversationID != "" && c.SenderID != "" && c.RecipientID != ""
}
