package main

import (
	"chat-relay/delivery"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var quiet bool

func init() {
	listenCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print messages")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Stay connected and print every message addressed to you",
	Long: "Connects to the relay, drains the offline queue and prints live messages\n" +
		"until interrupted. The connection is re-established with backoff.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		coordinator, err := newCoordinator()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watch(coordinator, cmd.OutOrStdout(), quiet)
		if err := coordinator.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

// watch prints what the coordinator receives.
func watch(c *delivery.Coordinator, out io.Writer, quiet bool) {
	c.OnMessage(func(_ context.Context, msg domain.Message) error {
		printMessage(out, msg)
		return nil
	})
	if quiet {
		return
	}
	c.OnStateChange(func(state delivery.State) {
		fmt.Fprintln(out, color.Gray.Sprintf("-- %s", state))
	})
	c.On(event.UserTyping, func(_ context.Context, _ event.Name, data json.RawMessage) {
		var typing event.TypingChanged
		if json.Unmarshal(data, &typing) != nil || !typing.IsTyping {
			return
		}
		fmt.Fprintln(out, color.Gray.Sprintf("%s is typing in %s", typing.UserID, typing.ConversationID))
	})
	presence := func(_ context.Context, name event.Name, data json.RawMessage) {
		var p event.PresenceChanged
		if json.Unmarshal(data, &p) != nil {
			return
		}
		if name == event.UserOnline {
			fmt.Fprintln(out, color.Green.Sprintf("%s is online", p.UserID))
			return
		}
		fmt.Fprintln(out, color.Yellow.Sprintf("%s went offline", p.UserID))
	}
	c.On(event.UserOnline, presence)
	c.On(event.UserOffline, presence)
	c.On(event.Failure, func(_ context.Context, _ event.Name, data json.RawMessage) {
		var e event.Error
		if json.Unmarshal(data, &e) != nil {
			return
		}
		fmt.Fprintln(out, color.Red.Sprintf("%s rejected: %s", e.Event, e.Message))
	})
}

func printMessage(out io.Writer, msg domain.Message) {
	body := string(msg.Type)
	if msg.Content != nil {
		body = *msg.Content
	} else if msg.MediaURL != nil {
		body = fmt.Sprintf("[%s] %s", msg.Type, *msg.MediaURL)
	}
	fmt.Fprintf(out, "%s %s %s %s\n",
		color.Gray.Sprint(msg.CreatedAt.Local().Format(time.TimeOnly)),
		color.Cyan.Sprintf("#%s", msg.ConversationID),
		color.Bold.Sprint(msg.SenderID),
		body)
}
