package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/notewire/notewire"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	baseURL string
)

// commandTimeout bounds every remote round-trip a command performs. The
// transport itself imposes no timeout; without this a dead gateway would
// leave the command pending forever.
const commandTimeout = 30 * time.Second

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notewire",
	Short: "A synchronized client for your remote notes",
	Long: `Notewire keeps a locally ordered view of your notes in sync with the
remote notes stack. Every command restores your session from the persisted
token, talks to the services, and reconciles the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Gateway base URL (default from config/env)")
}

// commandContext returns the bounded context used by every command.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

// newController assembles the default client configuration plus any
// command-specific options.
func newController(extra ...notewire.Option) (*notewire.Controller, error) {
	opts := []notewire.Option{
		notewire.WithBaseURL(baseURL),
		notewire.WithLogger(slog.Default()),
	}
	opts = append(opts, extra...)
	return notewire.New(opts...)
}

// activeCollection restores the session and hands back the live collection.
// Commands that need an identity funnel through here.
func activeCollection(ctx context.Context, extra ...notewire.Option) (*notewire.Controller, *notewire.Collection, error) {
	ctrl, err := newController(extra...)
	if err != nil {
		return nil, nil, err
	}
	if err := ctrl.Start(ctx); err != nil {
		return nil, nil, err
	}

	coll, err := ctrl.Collection()
	if err != nil {
		return nil, nil, fmt.Errorf("not logged in (run 'notewire login' first)")
	}
	return ctrl, coll, nil
}

// promptConfirm asks on stdin before a deletion goes out.
func promptConfirm(ctx context.Context, n notewire.Note) (bool, error) {
	fmt.Printf("Delete note %q? [y/N]: ", n.Title)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
