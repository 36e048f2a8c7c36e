package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go-fundamentals/internal/memory"
)

// NewRootCmd builds the base command with every program attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-fundamentals",
		Short: "Small programs demonstrating Go fundamentals",
		Long: `Each subcommand is an independent program: dynamic allocation, fixed arrays,
conditionals, passing by value and by address, pointers, slices, structs, loops
and methods.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Trace allocations and releases on stderr")

	rootCmd.AddCommand(
		newAllocCmd(),
		newArrayCmd(),
		newIfCmd(),
		newFuncCmd(),
		newPointerCmd(),
		newSliceCmd(),
		newStructCmd(),
		newLoopCmd(),
		newMaxCmd(),
		newWordsCmd(),
		newBookCmd(),
		newVarsCmd(),
		newBenchCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		if !reported(err) {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}

// reportedError marks errors whose diagnostic the program already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) bool {
	_, ok := err.(reportedError)
	return ok
}

func tracef(cmd *cobra.Command, format string, args ...any) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cmd.PrintErrf(format+"\n", args...)
	}
}

// createSource builds the memory source selected by --source. A --fail flag,
// where the command has one, injects the failure underneath the --verbose
// tracing so injected failures are traced too.
func createSource(cmd *cobra.Command) (memory.Source, func() error, error) {
	flags := cmd.Flags()
	name, err := flags.GetString("source")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get source: %w", err)
	}

	src, err := memory.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	closeSource := func() error { return nil }
	if c, ok := src.(io.Closer); ok {
		closeSource = c.Close
	}

	if flags.Lookup("fail") != nil {
		fail, err := flags.GetBool("fail")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get fail: %w", err)
		}
		if fail {
			src = &memory.FailingSource{Source: src}
		}
	}

	if verbose, _ := flags.GetBool("verbose"); verbose {
		src = &memory.ObservedSource{
			Source: src,
			OnAlloc: func(n int, err error) {
				if err != nil {
					tracef(cmd, "%s: acquire %d ints failed: %v", name, n, err)
					return
				}
				tracef(cmd, "%s: acquired %d ints", name, n)
			},
			OnRelease: func(n int) {
				tracef(cmd, "%s: released %d ints", name, n)
			},
		}
	}
	return src, closeSource, nil
}

func getCount(flags *pflag.FlagSet) (int, error) {
	count, err := flags.GetInt("count")
	if err != nil {
		return 0, fmt.Errorf("failed to get count: %w", err)
	}
	if count <= 0 {
		return 0, fmt.Errorf("--count must be positive, got %d", count)
	}
	return count, nil
}
