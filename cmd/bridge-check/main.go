// Command bridge-check verifies a semver-trick bridge release: every
// symbol of the old release must still resolve under its old import
// path, and every re-export must land on a type declared in the new
// major version.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c0deZ3R0/semver-trick/internal/bridgecheck"
	"github.com/c0deZ3R0/semver-trick/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Fatal("bridge-check failed", slog.String("error", err.Error()))
	}
}

func newRootCmd() *cobra.Command {
	var (
		oldDir    string
		bridgeDir string
		newDir    string
		format    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "bridge-check",
		Short: "Verify a semver-trick bridge release",
		Long: `bridge-check loads three snapshots of a library - the old release,
the bridge, and the new major version - and verifies that the bridge
papers over the breaking change: old import paths still resolve, and
type aliases land on identical types in the new module.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q, want text or json", format)
			}

			levelVar := logging.InitDynamic(logging.GetConfigFromEnv())
			if verbose {
				levelVar.SetFromString("debug")
			}

			report, err := bridgecheck.Run(cmd.Context(), bridgecheck.Options{
				OldDir:    oldDir,
				BridgeDir: bridgeDir,
				NewDir:    newDir,
			})
			if err != nil {
				logging.LogError(cmd.Context(), err, "bridge check did not complete")
				return err
			}

			if format == "json" {
				if err := report.RenderJSON(os.Stdout); err != nil {
					return err
				}
			} else {
				if err := report.Render(os.Stdout); err != nil {
					return err
				}
			}

			if !report.Ok() {
				logging.Error("bridge is broken",
					slog.Int("breaking", len(report.Breaking())),
					slog.Int("graph_problems", len(report.GraphProblems)),
				)
				return fmt.Errorf("bridge %s is broken", report.BridgeModule)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&oldDir, "old", "", "directory of the old release (enables the coverage pass)")
	cmd.Flags().StringVar(&bridgeDir, "bridge", ".", "directory of the bridge release")
	cmd.Flags().StringVar(&newDir, "new", "./v2", "directory of the new major version")
	cmd.Flags().StringVar(&format, "format", "text", "report format: text or json")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	return cmd
}
