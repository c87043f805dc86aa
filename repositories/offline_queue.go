package repositories

import (
	"bytes"
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	queueKeyPrefix   = "offline_queue:"
	DefaultRetention = 7 * 24 * time.Hour
	MaxPageSize      = 100
)

func QueueKey(userID domain.UserID) string {
	return queueKeyPrefix + string(userID)
}

// QueueOwner is the inverse of QueueKey.
func QueueOwner(key string) (domain.UserID, bool) {
	userID, ok := strings.CutPrefix(key, queueKeyPrefix)
	return domain.UserID(userID), ok && userID != ""
}

// PartialEnqueueError lists the recipients whose queue was not written.
// Queues of the other recipients were appended and can be left as they are.
type PartialEnqueueError struct {
	Failed []domain.UserID
	Err    error
}

func (e *PartialEnqueueError) Error() string {
	return fmt.Sprintf("%s: enqueue failed for %d recipient(s): %v", errors.ErrQueueUnavailable, len(e.Failed), e.Err)
}

func (e *PartialEnqueueError) Unwrap() []error {
	return []error{errors.ErrQueueUnavailable, e.Err}
}

// OfflineQueue is the per recipient FIFO of notifications waiting for a reconnect.
// Each user's list expires as a whole once it has not been written for the retention period.
type OfflineQueue struct {
	log       *slog.Logger
	backend   contract.QueueBackend
	retention time.Duration
}

func NewOfflineQueue(log *slog.Logger, backend contract.QueueBackend, retention time.Duration) *OfflineQueue {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &OfflineQueue{log: log, backend: backend, retention: retention}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", errors.ErrQueueUnavailable, op, err)
}

// Enqueue appends the notification and refreshes the queue expiry in one step.
// Identical notifications are not deduplicated.
func (q *OfflineQueue) Enqueue(ctx context.Context, userID domain.UserID, n domain.QueuedNotification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := q.backend.Append(ctx, QueueKey(userID), [][]byte{data}, q.retention); err != nil {
		return unavailable("enqueue", err)
	}
	return nil
}

// EnqueueMany appends the same notification to several queues. Each queue is
// written atomically, the batch as a whole is not.
func (q *OfflineQueue) EnqueueMany(ctx context.Context, userIDs []domain.UserID, n domain.QueuedNotification) error {
	if len(userIDs) == 0 {
		return nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}

	var partial *PartialEnqueueError
	for _, userID := range lo.Uniq(userIDs) {
		if err := q.backend.Append(ctx, QueueKey(userID), [][]byte{data}, q.retention); err != nil {
			q.log.Warn("Enqueue failed", "user", userID, "message", n.ID, "error", err)
			if partial == nil {
				partial = &PartialEnqueueError{Err: err}
			}
			partial.Failed = append(partial.Failed, userID)
		}
	}
	if partial != nil {
		return partial
	}
	return nil
}

// List returns the oldest limit notifications, never a tail slice.
func (q *OfflineQueue) List(ctx context.Context, userID domain.UserID, limit int) (domain.QueuePage, error) {
	if limit < 1 {
		return domain.QueuePage{}, errors.ErrInvalidLimit
	}
	key := QueueKey(userID)

	total, err := q.backend.Len(ctx, key)
	if err != nil {
		return domain.QueuePage{}, unavailable("list", err)
	}
	values, err := q.backend.Range(ctx, key, 0, int64(limit-1))
	if err != nil {
		return domain.QueuePage{}, unavailable("list", err)
	}

	items := make([]domain.QueuedNotification, 0, len(values))
	for _, value := range values {
		n, ok := q.decode(userID, value)
		if !ok {
			continue
		}
		items = append(items, n)
	}
	return domain.QueuePage{
		Items:   items,
		Total:   int(total),
		HasMore: int(total) > limit,
	}, nil
}

// ClearDelivered removes the named notifications and keeps the others in order.
// An empty id list leaves the queue untouched.
func (q *OfflineQueue) ClearDelivered(ctx context.Context, userID domain.UserID, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}
	key := QueueKey(userID)
	delivered := lo.SliceToMap(messageIDs, func(id string) (string, struct{}) { return id, struct{}{} })

	values, err := q.backend.Range(ctx, key, 0, -1)
	if err != nil {
		return unavailable("clear delivered", err)
	}

	// Acknowledging the head of the queue is the common case after a drain
	if head, ok := q.deliveredPrefix(userID, values, delivered); ok {
		if len(head) == 0 {
			return nil
		}
		trimmed, err := q.backend.TrimFront(ctx, key, head, q.retention)
		if err != nil {
			return unavailable("clear delivered", err)
		}
		if trimmed {
			return nil
		}
	}

	err = q.backend.Rewrite(ctx, key, func(current [][]byte) ([][]byte, error) {
		return lo.Reject(current, func(value []byte, _ int) bool {
			n, ok := q.decode(userID, value)
			if !ok {
				return false
			}
			_, hit := delivered[n.ID]
			return hit
		}), nil
	}, q.retention)
	if err != nil {
		return unavailable("clear delivered", err)
	}
	return nil
}

// deliveredPrefix reports whether every delivered entry sits at the front of values.
func (q *OfflineQueue) deliveredPrefix(userID domain.UserID, values [][]byte,
	delivered map[string]struct{}) ([][]byte, bool) {
	cut := 0
	for cut < len(values) {
		n, ok := q.decode(userID, values[cut])
		if !ok {
			break
		}
		if _, hit := delivered[n.ID]; !hit {
			break
		}
		cut++
	}
	for _, value := range values[cut:] {
		n, ok := q.decode(userID, value)
		if !ok {
			continue
		}
		if _, hit := delivered[n.ID]; hit {
			return nil, false
		}
	}
	return values[:cut], true
}

func (q *OfflineQueue) ClearAll(ctx context.Context, userID domain.UserID) error {
	if err := q.backend.Delete(ctx, QueueKey(userID)); err != nil {
		return unavailable("clear", err)
	}
	return nil
}

func (q *OfflineQueue) Status(ctx context.Context, userID domain.UserID) (domain.QueueStatus, error) {
	key := QueueKey(userID)
	pending, err := q.backend.Len(ctx, key)
	if err != nil {
		return domain.QueueStatus{}, unavailable("status", err)
	}
	if pending == 0 {
		return domain.QueueStatus{}, nil
	}

	head, err := q.backend.Range(ctx, key, 0, 0)
	if err != nil {
		return domain.QueueStatus{}, unavailable("status", err)
	}
	status := domain.QueueStatus{Pending: int(pending)}
	if len(head) == 1 {
		if oldest, ok := q.decode(userID, head[0]); ok {
			status.Oldest = &oldest
		}
	}
	return status, nil
}

// IncrementAttempts bumps the counter of every entry carrying messageID.
// Unknown ids are ignored.
func (q *OfflineQueue) IncrementAttempts(ctx context.Context, userID domain.UserID, messageID string) error {
	err := q.backend.Rewrite(ctx, QueueKey(userID), func(current [][]byte) ([][]byte, error) {
		next := make([][]byte, 0, len(current))
		for _, value := range current {
			n, ok := q.decode(userID, value)
			if !ok || n.ID != messageID {
				next = append(next, value)
				continue
			}
			n.Attempts++
			data, err := json.Marshal(n)
			if err != nil {
				return nil, err
			}
			next = append(next, data)
		}
		return next, nil
	}, q.retention)
	if err != nil {
		return unavailable("increment attempts", err)
	}
	return nil
}

func (q *OfflineQueue) decode(userID domain.UserID, value []byte) (domain.QueuedNotification, bool) {
	var n domain.QueuedNotification
	if err := json.Unmarshal(bytes.TrimSpace(value), &n); err != nil {
		q.log.Warn("Skipping unreadable queue entry", "user", userID, "error", err)
		return domain.QueuedNotification{}, false
	}
	return n, true
}
