package main

import (
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "relay",
	Short: "Command line client for the chat relay",
	Long: "Connects to the chat relay as one user, prints live and queued messages,\n" +
		"and inspects the offline queue. Settings are read from ~/.chat-relay/config.toml.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.chat-relay/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		color.Error.Println(err.Error())
		return exitRuntime
	}
	return exitOK
}
