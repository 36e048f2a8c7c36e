package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"go-fundamentals/internal/basics"
	"go-fundamentals/internal/memory"
)

func newAllocCmd() *cobra.Command {
	allocCmd := &cobra.Command{
		Use:   "alloc",
		Short: "Allocate a buffer of ints, fill it with squares, print and release it",
		Long: `Requests storage for --count ints from a dynamic-memory source. On success
element i is set to i*i, the values are printed space separated and the storage is
released. If the source cannot supply the storage the program prints
"Memory allocation failed." and exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: runAlloc,
	}

	allocCmd.Flags().StringP("source", "s", "heap", "Dynamic-memory source (heap, mmap, cgo)")
	allocCmd.Flags().IntP("count", "n", basics.SquaresCount, "Number of ints to allocate")
	allocCmd.Flags().Bool("fail", false, "Inject an allocation failure")
	return allocCmd
}

func runAlloc(cmd *cobra.Command, args []string) error {
	count, err := getCount(cmd.Flags())
	if err != nil {
		return err
	}

	src, closeSource, err := createSource(cmd)
	if err != nil {
		return err
	}
	defer closeSource()

	if err := basics.Squares(cmd.OutOrStdout(), src, count); err != nil {
		if errors.Is(err, memory.ErrAllocFailed) {
			return reportedError{err}
		}
		return err
	}
	return nil
}
