package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/pyama86/irtrack/handler"
	"github.com/spf13/cobra"
)

var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "irtrack",
	Short:         "irtrack is an in-memory incident response tracker",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// デフォルトはホームディレクトリのirtrack.toml
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Error("Failed to get user home directory", slog.Any("error", err))
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", path.Join(home, "irtrack.toml"), "config file path")
}

// run はハンドラを組み立ててfnを実行する
func run(cmd *cobra.Command, fn func(h *handler.Handler) error) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	h, stop, err := handler.Setup(ctx, configPath, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to setup: %w", err)
	}
	defer stop()

	return fn(h)
}
