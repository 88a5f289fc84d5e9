package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// set via -ldflags "-X github.com/laurisseau/app-dev/cmd.version=..."
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the build version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
			Row("Version", version).
			Row("Go", runtime.Version()).
			Row("Platform", runtime.GOOS+"/"+runtime.GOARCH)

		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())

		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
