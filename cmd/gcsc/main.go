// Package main is the gcsc compiler CLI. It compiles .gcs sources into a tree
// blob and index, optionally publishes them to the object store, and can read
// a compiled story back for inspection.
//
//	gcsc build -o build/source.gcstree intro.gcs chapter1.gcs
//	gcsc acts build/source.gcstree
//	gcsc show build/source.gcstree intro
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultProfile = "local"

// errReported marks failures whose details were already written to stderr.
var errReported = errors.New("failed")

func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:]))
}

// execute runs the command tree and maps the outcome to an exit code:
// 0 on success, 1 on a failed build or read, 2 on a usage error.
func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	case isUsageError(err):
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return 2
	default:
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
}

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}

// rootOptions are flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "gcsc",
		Short: "Compile branching dialogue scripts",
		Long: `gcsc compiles .gcs dialogue scripts into a tree blob and a JSON index that
game engines load one act at a time.

Configuration is read from {config-dir}/base.yaml and {config-dir}/{profile}.yaml,
then overridden by APP_* environment variables. Missing files fall back to
built-in defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}
	root.PersistentFlags().StringVar(&opts.profile, "profile", profile, "config profile (defaults to $APP_PROFILE or local)")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs", "directory holding the config YAML files")

	root.AddCommand(
		newBuildCmd(opts),
		newActsCmd(),
		newShowCmd(),
	)
	return root
}

// exactArgs wraps cobra.ExactArgs so that a wrong argument count is a usage
// error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
