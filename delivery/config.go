package delivery

import (
	"net/http"
	"time"
)

// Config configures a Coordinator. Zero values are replaced by defaults.
type Config struct {
	BaseURL              string
	Token                string
	HTTPClient           *http.Client
	AutoReconnect        bool
	MaxReconnectAttempts int
	ReconnectBaseDelay   time.Duration
	ReconnectMaxDelay    time.Duration
	HandshakeTimeout     time.Duration
	DrainPageSize        int
	MaxDeliveryAttempts  int
	DedupSize            int
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if c.MaxReconnectAttempts == 0 {
		c.MaxReconnectAttempts = 10
	}
	if c.ReconnectBaseDelay == 0 {
		c.ReconnectBaseDelay = time.Second
	}
	if c.ReconnectMaxDelay == 0 {
		c.ReconnectMaxDelay = 30 * time.Second
	}
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = 10 * time.Second
	}
	if c.DrainPageSize == 0 {
		c.DrainPageSize = 50
	}
	if c.MaxDeliveryAttempts == 0 {
		c.MaxDeliveryAttempts = 5
	}
	if c.DedupSize == 0 {
		c.DedupSize = 1024
	}
}
