//go:build tools

// Package tools pins the code generators used by go:generate so that
// go.mod and go.sum track them.
package chat_relay

import (
	_ "go.uber.org/mock/mockgen"
)
