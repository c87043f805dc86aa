package main

import (
	"chat-relay/delivery"
	"fmt"
	"log/slog"

	"github.com/mama165/sdk-go/logs"
)

func newLogger() *slog.Logger {
	return logs.GetLoggerFromString(logLevel)
}

func (c *Config) deliveryConfig() (delivery.Config, error) {
	if c.Relay.Token == "" {
		return delivery.Config{}, fmt.Errorf("no token configured, run 'relay config set relay.token <token>' or set RELAY_TOKEN")
	}
	return delivery.Config{
		BaseURL:              c.Relay.BaseURL,
		Token:                c.Relay.Token,
		AutoReconnect:        true,
		MaxReconnectAttempts: c.Delivery.MaxReconnectAttempts,
		DrainPageSize:        c.Delivery.PageSize,
		MaxDeliveryAttempts:  c.Delivery.MaxAttempts,
	}, nil
}

func newCoordinator() (*delivery.Coordinator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dc, err := cfg.deliveryConfig()
	if err != nil {
		return nil, err
	}
	return delivery.New(newLogger(), dc)
}

func newQueueClient() (*delivery.QueueClient, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dc, err := cfg.deliveryConfig()
	if err != nil {
		return nil, err
	}
	return delivery.NewQueueClient(dc.BaseURL, dc.Token, nil), nil
}
