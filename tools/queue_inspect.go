package main

import (
	"chat-relay/domain"
	"chat-relay/infrastructure/storage"
	"chat-relay/repositories"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	user := flag.String("user", "", "Only show the queue of this user")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Message", "Conversation", "Sender", "Type", "Created", "Attempts", "Expires"})
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

	prefix := storage.ScanPrefix("")
	if *user != "" {
		prefix = storage.ScanPrefix(repositories.QueueKey(domain.UserID(*user)))
	}

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			list, ok := storage.ListName(item.Key())
			if !ok {
				continue
			}
			owner, ok := repositories.QueueOwner(list)
			if !ok {
				continue
			}

			err := item.Value(func(v []byte) error {
				var n domain.QueuedNotification
				if err := json.Unmarshal(v, &n); err != nil {
					fmt.Printf("Error decoding entry of %s: %v\n", owner, err)
					return nil
				}
				expires := "-"
				if at := item.ExpiresAt(); at > 0 {
					expires = time.Unix(int64(at), 0).UTC().Format(time.RFC3339)
				}
				table.Append([]string{
					string(owner),
					n.ID,
					string(n.ConversationID),
					string(n.SenderID),
					string(n.Type),
					n.CreatedAt,
					strconv.Itoa(n.Attempts),
					expires,
				})
				rows++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("%d pending notification(s)\n", rows)
}
