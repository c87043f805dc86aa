package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Handshake rejections
	ErrMissingToken = fmt.Errorf("authorization token is missing")
	ErrInvalidToken = fmt.Errorf("invalid or expired token")

	// Session and transport
	ErrSessionClosed  = fmt.Errorf("session closed")
	ErrSendQueueFull  = fmt.Errorf("send queue full")
	ErrNotMember      = fmt.Errorf("user is not a participant of this conversation")
	ErrInvalidPayload = fmt.Errorf("invalid payload")
	ErrUnknownEvent   = fmt.Errorf("unknown event")

	// Offline queue
	ErrQueueUnavailable = fmt.Errorf("offline queue unavailable")
	ErrInvalidLimit     = fmt.Errorf("limit must be between 1 and 100")

	// Delivery coordinator
	ErrNotConnected       = fmt.Errorf("not connected to the relay")
	ErrHandshake          = fmt.Errorf("relay handshake failed")
	ErrReconnectExhausted = fmt.Errorf("reconnect attempts exhausted")

	ErrUnknownBackend = fmt.Errorf("unknown backend")
)
