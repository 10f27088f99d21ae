package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.mexp.dev/mexpd/internal/app"
	"go.mexp.dev/mexpd/internal/core/domain"
	"go.mexp.dev/mexpd/internal/ui/style"
	"go.mexp.dev/mexpd/tt"
	"go.trai.ch/zerr"
)

func (c *CLI) newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <artifact> <macro>",
		Short: "Run one macro expansion and print the result tree",
		Long: `Expand applies a macro from a transformer artifact to an input token tree.

The input tree is read as flattened JSON from --input (or stdin) and the
expansion is written in the same form to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			attrsPath, _ := cmd.Flags().GetString("attrs")
			envPairs, _ := cmd.Flags().GetStringArray("env")
			workDir, _ := cmd.Flags().GetString("workdir")
			noDaemon, _ := cmd.Flags().GetBool("no-daemon")

			input, err := readTree(cmd.InOrStdin(), inputPath)
			if err != nil {
				return zerr.Wrap(err, "failed to read input tree")
			}

			var attrs *tt.Tree
			if attrsPath != "" {
				attrs, err = readTree(nil, attrsPath)
				if err != nil {
					return zerr.Wrap(err, "failed to read attrs tree")
				}
			}

			env, err := parseEnv(envPairs)
			if err != nil {
				return err
			}

			result, runErr := c.app.Expand(cmd.Context(), app.ExpandOptions{
				Path:     args[0],
				Macro:    args[1],
				Input:    input,
				Attrs:    attrs,
				Env:      env,
				WorkDir:  workDir,
				NoDaemon: noDaemon,
			})
			if runErr != nil {
				if errors.Is(runErr, domain.ErrExpandFailed) {
					fmt.Fprintln(cmd.ErrOrStderr(),
						style.StatusBad.Render(style.Cross)+" "+runErr.Error())
					return domain.ErrExpansionFailed
				}
				return runErr
			}

			out, err := json.Marshal(tt.Flatten(result))
			if err != nil {
				return zerr.Wrap(err, "failed to encode expansion")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Input tree file in flattened JSON (default: stdin)")
	cmd.Flags().StringP("attrs", "a", "", "Attribute tree file, for attribute macros")
	cmd.Flags().StringArrayP("env", "e", nil, "Environment variable for this call (KEY=VALUE, repeatable)")
	cmd.Flags().StringP("workdir", "w", "", "Working directory for this call")
	cmd.Flags().Bool("no-daemon", false, "Run the expansion in this process instead of the daemon")

	return cmd
}

// readTree reads a flattened token tree from path, or from stdin when path
// is empty or "-".
func readTree(stdin io.Reader, path string) (*tt.Tree, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // user-supplied tree file
	}
	if err != nil {
		return nil, err
	}

	var flat tt.FlatTree
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return tt.Inflate(&flat)
}

// parseEnv converts KEY=VALUE flags into a map.
func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, zerr.With(zerr.New("invalid env flag, expected KEY=VALUE"), "flag", pair)
		}
		env[key] = value
	}
	return env, nil
}
