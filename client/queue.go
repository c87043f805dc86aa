package main

import (
	"chat-relay/domain"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

var pageSize int

func init() {
	queueListCmd.Flags().IntVarP(&pageSize, "limit", "n", 50, "number of entries to show (1-100)")
	queueCmd.AddCommand(queueStatusCmd)
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueClearCmd)
	rootCmd.AddCommand(queueCmd)
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect your offline queue",
}

var queueStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many messages wait for you",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueueClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		status, err := client.Status(ctx)
		if err != nil {
			return fmt.Errorf("queue status: %w", err)
		}
		renderStatus(cmd.OutOrStdout(), status)
		return nil
	},
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the oldest pending messages without acknowledging them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueueClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		page, err := client.Pending(ctx, pageSize)
		if err != nil {
			return fmt.Errorf("queue list: %w", err)
		}
		renderPage(cmd.OutOrStdout(), page)
		return nil
	},
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every pending message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newQueueClient()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
		defer cancel()

		if err := client.Clear(ctx); err != nil {
			return fmt.Errorf("queue clear: %w", err)
		}
		color.Success.Println("Offline queue cleared")
		return nil
	},
}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderStatus(out io.Writer, status domain.QueueStatus) {
	table := newTable(out, []string{"Pending", "Oldest", "Conversation", "Sender", "Attempts"})
	row := []string{strconv.Itoa(status.Pending), "-", "-", "-", "-"}
	if status.Oldest != nil {
		row = []string{
			strconv.Itoa(status.Pending),
			status.Oldest.CreatedAt,
			string(status.Oldest.ConversationID),
			string(status.Oldest.SenderID),
			strconv.Itoa(status.Oldest.Attempts),
		}
	}
	table.Append(row)
	table.Render()
}

func renderPage(out io.Writer, page domain.QueuePage) {
	table := newTable(out, []string{"ID", "Created", "Conversation", "Sender", "Type", "Attempts"})
	for _, n := range page.Items {
		table.Append([]string{
			n.ID,
			n.CreatedAt,
			string(n.ConversationID),
			string(n.SenderID),
			string(n.Type),
			strconv.Itoa(n.Attempts),
		})
	}
	table.Render()
	if page.HasMore {
		fmt.Fprintf(out, "%d of %d shown\n", len(page.Items), page.Total)
	}
}
