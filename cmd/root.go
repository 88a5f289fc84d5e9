package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/laurisseau/app-dev/internal/config"
	"github.com/laurisseau/app-dev/internal/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "app-dev",
	Short: "Serves a static greeting on port 8080",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.New(config.Default())

		if err != nil {
			return err
		}

		l, err := srv.Listen()

		if err != nil {
			return err
		}

		log.Infof("Listening on http://%s", l.Addr())

		return srv.Serve(l)
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
