package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/stmtscan/internal/api"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			logger.Info("starting statement API", "addr", addr, "version", version)

			return api.NewApp().Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
