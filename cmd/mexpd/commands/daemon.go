package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.mexp.dev/mexpd/internal/core/ports"
	"go.mexp.dev/mexpd/internal/ui/style"
)

func (c *CLI) newDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the background daemon",
	}

	cmd.AddCommand(c.newDaemonServeCmd())
	cmd.AddCommand(c.newDaemonStatusCmd())
	cmd.AddCommand(c.newDaemonStopCmd())

	return cmd
}

func (c *CLI) newDaemonServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "serve",
		Short:  "Start the daemon server (internal use)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ServeDaemon(cmd.Context())
		},
	}
}

func (c *CLI) newDaemonStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.DaemonStatus(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatStatus(status))
			return nil
		},
	}
}

func (c *CLI) newDaemonStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.StopDaemon(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "daemon stopped")
			return nil
		},
	}
}

// formatStatus renders the daemon status block.
func formatStatus(status *ports.DaemonStatus) string {
	var b strings.Builder

	b.WriteString(style.Header.Render("daemon"))
	b.WriteString("\n")

	if !status.Running {
		b.WriteString("  " + style.StatusBad.Render(style.Circle+" not running") + "\n")
		return b.String()
	}

	b.WriteString("  " + style.StatusGood.Render(style.Dot+" running") + "\n")
	fmt.Fprintf(&b, "  pid:              %d\n", status.PID)
	fmt.Fprintf(&b, "  uptime:           %s\n", status.Uptime.Round(time.Second))
	fmt.Fprintf(&b, "  idle shutdown in: %s\n", status.IdleRemaining.Round(time.Second))
	fmt.Fprintf(&b, "  loaded artifacts: %d\n", status.LoadedArtifacts)
	if status.RestoreFailures > 0 {
		b.WriteString("  " + style.StatusBad.Render(
			fmt.Sprintf("%s %d environment restore failures", style.Warning, status.RestoreFailures)) + "\n")
	}

	return b.String()
}
