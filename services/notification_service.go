package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// NotificationService is called by the message write path once a change is durable.
// Live delivery is best effort, offline recipients get a queued copy.
type NotificationService struct {
	log        *slog.Logger
	router     contract.IRouter
	presence   contract.IPresenceRegistry
	membership contract.MembershipLookup
	queue      contract.IOfflineQueue
	monitoring *observability.MonitoringManager
	validate   *validator.Validate
}

func NewNotificationService(log *slog.Logger,
	router contract.IRouter,
	presence contract.IPresenceRegistry,
	membership contract.MembershipLookup,
	queue contract.IOfflineQueue,
	monitoring *observability.MonitoringManager) *NotificationService {
	return &NotificationService{
		log:        log,
		router:     router,
		presence:   presence,
		membership: membership,
		queue:      queue,
		monitoring: monitoring,
		validate:   validator.New(),
	}
}

// MessageCreated pushes message:new to the conversation room, then queues a copy
// for every participant who is neither the sender nor online.
func (s *NotificationService) MessageCreated(ctx context.Context, msg domain.Message) error {
	if err := s.validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	s.router.DeliverToConversation(ctx, msg.ConversationID, event.MessageCreated{Message: msg})

	members, err := s.membership.MemberIDs(ctx, msg.ConversationID)
	if err != nil {
		s.log.Error("Cannot resolve recipients", "conversation", msg.ConversationID, "message", msg.ID, "error", err)
		return fmt.Errorf("resolve recipients of %s: %w", msg.ConversationID, err)
	}
	offline := lo.Filter(members, func(userID domain.UserID, _ int) bool {
		return userID != msg.SenderID && !s.presence.IsOnline(userID)
	})
	if len(offline) == 0 {
		return nil
	}

	err = s.queue.EnqueueMany(ctx, offline, msg.ToNotification())
	var partial *repositories.PartialEnqueueError
	switch {
	case err == nil:
		s.monitoring.IncrEnqueued(len(offline))
	case stderrors.As(err, &partial):
		s.monitoring.IncrEnqueued(len(offline) - len(partial.Failed))
		s.monitoring.IncrEnqueueFailures(len(partial.Failed))
	default:
		s.monitoring.IncrEnqueueFailures(len(offline))
	}
	if err != nil {
		s.log.Error("Offline copies not stored", "message", msg.ID, "recipients", len(offline), "error", err)
		return err
	}
	s.log.Debug("Queued for offline recipients", "message", msg.ID, "recipients", len(offline))
	return nil
}

func (s *NotificationService) MessageUpdated(ctx context.Context, msg domain.Message) {
	s.router.DeliverToConversation(ctx, msg.ConversationID, event.MessageUpdated{Message: msg})
}

func (s *NotificationService) MessageDeleted(ctx context.Context, conversationID domain.ConversationID, messageID string) {
	s.router.DeliverToConversation(ctx, conversationID, event.MessageDeleted{MessageID: messageID})
}

func (s *NotificationService) ReactionChanged(ctx context.Context, conversationID domain.ConversationID, reaction event.ReactionChanged) {
	s.router.DeliverToConversation(ctx, conversationID, reaction)
}

// MessageRead tells the sender of the message, in their user room.
func (s *NotificationService) MessageRead(ctx context.Context, senderID domain.UserID, receipt event.ReadReceipt) {
	s.router.DeliverToUser(ctx, senderID, receipt)
}

func (s *NotificationService) MessageDelivered(ctx context.Context, senderID domain.UserID, receipt event.DeliveryReceipt) {
	s.router.DeliverToUser(ctx, senderID, receipt)
}

// NotifyUser sends message:new to a single participant of the message's
// conversation and queues it only when nobody received it.
func (s *NotificationService) NotifyUser(ctx context.Context, userID domain.UserID, msg domain.Message) error {
	if err := s.validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	member, err := s.membership.IsMember(ctx, msg.ConversationID, userID)
	if err != nil {
		return fmt.Errorf("resolve membership of %s in %s: %w", userID, msg.ConversationID, err)
	}
	if !member {
		return errors.ErrNotMember
	}

	if s.router.DeliverToUser(ctx, userID, event.MessageCreated{Message: msg}) {
		return nil
	}
	if err := s.queue.Enqueue(ctx, userID, msg.ToNotification()); err != nil {
		s.monitoring.IncrEnqueueFailures(1)
		return err
	}
	s.monitoring.IncrEnqueued(1)
	return nil
}

func (s *NotificationService) IsOnline(userID domain.UserID) bool {
	return s.presence.IsOnline(userID)
}

func (s *NotificationService) OnlineStats() domain.OnlineStats {
	return s.presence.Stats()
}
