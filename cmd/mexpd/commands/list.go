package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.mexp.dev/mexpd/abi"
	"go.mexp.dev/mexpd/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <artifact>",
		Short: "List the macros an artifact exports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noDaemon, _ := cmd.Flags().GetBool("no-daemon")

			macros, err := c.app.List(cmd.Context(), args[0], noDaemon)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatCapabilities(args[0], macros))
			return nil
		},
	}

	cmd.Flags().Bool("no-daemon", false, "Query the artifact in this process instead of the daemon")

	return cmd
}

// formatCapabilities renders the capability listing for one artifact.
func formatCapabilities(path string, macros []abi.Macro) string {
	var b strings.Builder

	b.WriteString(style.Header.Render(path))
	b.WriteString("\n")

	if len(macros) == 0 {
		b.WriteString("  no macros exported\n")
		return b.String()
	}

	for _, m := range macros {
		b.WriteString("  ")
		b.WriteString(style.MacroName.Render(m.Name))
		b.WriteString(" ")
		b.WriteString(style.MacroKind.Render("(" + m.Kind.String() + ")"))
		b.WriteString("\n")
	}

	return b.String()
}
