package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/repositories"
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const DefaultPageSize = 50

type pageRequest struct {
	Limit int `validate:"min=1,max=100"`
}

type ackRequest struct {
	MessageIDs []string `validate:"dive,required,max=128"`
}

type attemptRequest struct {
	MessageID string `validate:"required,max=128"`
}

// QueueService exposes the offline queue of the authenticated user only.
type QueueService struct {
	queue    contract.IOfflineQueue
	validate *validator.Validate
}

func NewQueueService(queue contract.IOfflineQueue) *QueueService {
	return &QueueService{queue: queue, validate: validator.New()}
}

// Pending returns the oldest notifications. A zero limit means DefaultPageSize.
func (s *QueueService) Pending(ctx context.Context, userID domain.UserID, limit int) (domain.QueuePage, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if err := s.validate.Struct(pageRequest{Limit: limit}); err != nil {
		return domain.QueuePage{}, errors.ErrInvalidLimit
	}
	return s.queue.List(ctx, userID, min(limit, repositories.MaxPageSize))
}

func (s *QueueService) Acknowledge(ctx context.Context, userID domain.UserID, messageIDs []string) error {
	if err := s.validate.Struct(ackRequest{MessageIDs: messageIDs}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return s.queue.ClearDelivered(ctx, userID, messageIDs)
}

func (s *QueueService) Clear(ctx context.Context, userID domain.UserID) error {
	return s.queue.ClearAll(ctx, userID)
}

func (s *QueueService) Status(ctx context.Context, userID domain.UserID) (domain.QueueStatus, error) {
	return s.queue.Status(ctx, userID)
}

func (s *QueueService) RecordAttempt(ctx context.Context, userID domain.UserID, messageID string) error {
	if err := s.validate.Struct(attemptRequest{MessageID: messageID}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return s.queue.IncrementAttempts(ctx, userID, messageID)
}
