package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RunFunc is the function signature for the snapshot pipeline handler.
// It is injected by the wiring layer (cmd/apisnap/main.go).
type RunFunc func(ctx context.Context) error

// NewRootCmd creates the top-level apisnap command. The tool takes no
// arguments: it reads the API definitions payload on stdin and writes the
// stable-channel symbol table on stdout. Unknown flags and positional
// arguments are usage errors.
func NewRootCmd(version string, runFunc RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apisnap",
		Short: "Extract the stable-channel API symbol table",
		Long: "Apisnap reads a structured API definitions payload on stdin and emits a\n" +
			"deterministically ordered table of stable-channel symbols for history diffing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage guidance only helps with flag and argument mistakes;
			// pipeline failures print the error alone.
			cmd.SilenceUsage = true
			return runFunc(cmd.Context())
		},
	}

	cmd.Version = version

	return cmd
}
