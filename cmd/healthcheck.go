package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/laurisseau/app-dev/internal/config"
	"github.com/laurisseau/app-dev/internal/server"
	"github.com/spf13/cobra"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Checks that the local server answers with the greeting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		return server.Probe(ctx, &http.Client{Timeout: timeout}, url)
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().String("url", server.ProbeURL(config.Default()), "URL to probe")
	healthcheckCmd.Flags().Duration("timeout", 5*time.Second, "Maximum time to wait for the response")
}
