package main

import (
	"chat-relay/delivery"
	"chat-relay/domain"
	"context"
	"fmt"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var typingFor time.Duration

func init() {
	typingCmd.Flags().DurationVar(&typingFor, "for", 3*time.Second, "how long the indicator stays on")
	rootCmd.AddCommand(typingCmd)
}

var typingCmd = &cobra.Command{
	Use:   "typing <conversationId>",
	Short: "Show a typing indicator in a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coordinator, err := newCoordinator()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), typingFor+requestTimeout)
		defer cancel()

		conversationID := domain.ConversationID(args[0])
		err = whileConnected(ctx, coordinator, func(ctx context.Context) error {
			if err := coordinator.StartTyping(ctx, conversationID); err != nil {
				return err
			}
			color.Info.Printf("Typing in %s for %s\n", conversationID, typingFor)
			select {
			case <-time.After(typingFor):
			case <-ctx.Done():
				return ctx.Err()
			}
			return coordinator.StopTyping(ctx, conversationID)
		})
		if err != nil {
			return fmt.Errorf("typing: %w", err)
		}
		return nil
	},
}

// whileConnected runs the coordinator until fn has run once on a live connection.
func whileConnected(ctx context.Context, c *delivery.Coordinator, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	connected := make(chan struct{}, 1)
	c.OnStateChange(func(state delivery.State) {
		if state != delivery.StateConnected {
			return
		}
		select {
		case connected <- struct{}{}:
		default:
		}
	})

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case <-connected:
	case err := <-done:
		if err == nil {
			err = ctx.Err()
		}
		return err
	}
	err := fn(ctx)
	cancel()
	<-done
	return err
}
