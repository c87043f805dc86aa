package delivery

import (
	"bytes"
	"chat-relay/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// QueueClient calls the offline queue endpoints on behalf of the token owner.
type QueueClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewQueueClient(baseURL, token string, client *http.Client) *QueueClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &QueueClient{baseURL: strings.TrimRight(baseURL, "/"), token: token, http: client}
}

// APIError is a non 2xx answer of the relay.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("relay answered %d: %s", e.Status, e.Message)
}

func (q *QueueClient) Pending(ctx context.Context, limit int) (domain.QueuePage, error) {
	var page domain.QueuePage
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	err := q.do(ctx, http.MethodGet, "/api/queue?"+query.Encode(), nil, &page)
	return page, err
}

func (q *QueueClient) Acknowledge(ctx context.Context, messageIDs []string) error {
	return q.do(ctx, http.MethodPost, "/api/queue/ack", map[string][]string{"messageIds": messageIDs}, nil)
}

func (q *QueueClient) RecordAttempt(ctx context.Context, messageID string) error {
	return q.do(ctx, http.MethodPost, "/api/queue/attempts", map[string]string{"messageId": messageID}, nil)
}

func (q *QueueClient) Status(ctx context.Context) (domain.QueueStatus, error) {
	var status domain.QueueStatus
	err := q.do(ctx, http.MethodGet, "/api/queue/status", nil, &status)
	return status, err
}

func (q *QueueClient) Clear(ctx context.Context) error {
	return q.do(ctx, http.MethodDelete, "/api/queue", nil, nil)
}

func (q *QueueClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, q.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+q.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := q.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
