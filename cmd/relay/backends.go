package main

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/infrastructure/membership"
	"chat-relay/infrastructure/storage"
	"chat-relay/repositories"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/redis/go-redis/v9"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type membershipStore interface {
	contract.MembershipLookup
	pinger
}

// openQueueBackend returns the selected store and the function releasing it.
func openQueueBackend(ctx context.Context, config Config, log *slog.Logger) (contract.QueueBackend, func(), error) {
	switch config.QueueBackend {
	case queueBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		if log.Enabled(ctx, slog.LevelDebug) {
			endpoint := "/inspect"
			log.Info("Debug Badger inspector available",
				"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
			database.StartDebugServer(db, config.DebugPort, endpoint, QueueMapper)
		}
		return storage.NewBadgerListStore(db, log), func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	case queueRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", config.RedisAddr, err)
		}
		return storage.NewRedisListStore(client, log), func() {
			log.Info("Closing Redis client...")
			_ = client.Close()
		}, nil
	}
	return nil, nil, fmt.Errorf("%w: queue %q", errors.ErrUnknownBackend, config.QueueBackend)
}

func openMembership(ctx context.Context, config Config, log *slog.Logger) (membershipStore, func(), error) {
	switch config.MembershipBackend {
	case membershipPostgres:
		db, err := membership.OpenPostgres(ctx, config.PostgresDSN, log)
		if err != nil {
			return nil, nil, err
		}
		return membership.NewPostgresMembership(db, log), func() {
			log.Info("Closing Postgres pool...")
			_ = db.Close()
		}, nil
	case membershipMongo:
		client, err := membership.ConnectMongo(ctx, config.MongoURI, "chat-relay", 10*time.Second)
		if err != nil {
			return nil, nil, err
		}
		store := membership.NewMongoMembership(client.Database(config.MongoDatabase), log)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return store, func() {
			log.Info("Closing Mongo client...")
			_ = client.Disconnect(context.Background())
		}, nil
	}
	return nil, nil, fmt.Errorf("%w: membership %q", errors.ErrUnknownBackend, config.MembershipBackend)
}

// QueueMapper renders one badger entry of the offline queue on the debug inspector.
func QueueMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	list, ok := storage.ListName([]byte(key))
	if !ok {
		row.Type = "META"
		return row
	}
	owner, _ := repositories.QueueOwner(list)

	var n domain.QueuedNotification
	if err := json.Unmarshal(val, &n); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = string(n.Type)
	row.Detail = fmt.Sprintf("to=%s from=%s conversation=%s id=%s attempts=%d",
		owner, n.SenderID, n.ConversationID, n.ID, n.Attempts)
	return row
}
