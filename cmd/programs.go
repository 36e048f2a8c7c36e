package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go-fundamentals/internal/basics"
)

func newArrayCmd() *cobra.Command {
	arrayCmd := &cobra.Command{
		Use:   "array",
		Short: "Fill a fixed array of 5 ints with its indices and print element 2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			walkthrough, err := cmd.Flags().GetBool("walkthrough")
			if err != nil {
				return fmt.Errorf("failed to get walkthrough: %w", err)
			}
			if walkthrough {
				basics.ArrayWalkthrough(cmd.OutOrStdout())
			} else {
				basics.Array(cmd.OutOrStdout())
			}
			return nil
		},
	}

	arrayCmd.Flags().Bool("walkthrough", false, "Assign, read, modify and measure an array of 10..50 instead")
	return arrayCmd
}

func newIfCmd() *cobra.Command {
	ifCmd := &cobra.Command{
		Use:   "if",
		Short: "Print whether a value is greater than a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cmd.Flags().GetInt("value")
			if err != nil {
				return fmt.Errorf("failed to get value: %w", err)
			}
			threshold, err := cmd.Flags().GetInt("threshold")
			if err != nil {
				return fmt.Errorf("failed to get threshold: %w", err)
			}
			threeWay, err := cmd.Flags().GetBool("three-way")
			if err != nil {
				return fmt.Errorf("failed to get three-way: %w", err)
			}

			if threeWay {
				basics.CompareThreeWay(cmd.OutOrStdout(), value, threshold)
			} else {
				basics.Compare(cmd.OutOrStdout(), value, threshold)
			}
			return nil
		},
	}

	ifCmd.Flags().IntP("value", "x", 10, "Value to compare")
	ifCmd.Flags().IntP("threshold", "t", 5, "Threshold the value is compared against")
	ifCmd.Flags().Bool("three-way", false, "Distinguish less than, equal to and greater than")
	return ifCmd
}

func newFuncCmd() *cobra.Command {
	funcCmd := &cobra.Command{
		Use:   "func",
		Short: "Double a value by value and by address",
		Long: `Prints the result of doubling the start value by value, the unchanged start
value, and the start value after doubling it in place through its address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := cmd.Flags().GetInt("start")
			if err != nil {
				return fmt.Errorf("failed to get start: %w", err)
			}
			basics.Functions(cmd.OutOrStdout(), start)
			return nil
		},
	}

	funcCmd.Flags().Int("start", 5, "Initial value")
	return funcCmd
}

func newPointerCmd() *cobra.Command {
	pointerCmd := &cobra.Command{
		Use:   "pointer",
		Short: "Print a variable, its address, a pointer to it and the pointed-to value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := cmd.Flags().GetInt("value")
			if err != nil {
				return fmt.Errorf("failed to get value: %w", err)
			}

			double, err := cmd.Flags().GetBool("double")
			if err != nil {
				return fmt.Errorf("failed to get double: %w", err)
			}
			if double {
				basics.PointerToPointer(cmd.OutOrStdout(), value, 10, 20)
				return nil
			}

			var mutate *int
			if cmd.Flags().Changed("mutate") {
				m, err := cmd.Flags().GetInt("mutate")
				if err != nil {
					return fmt.Errorf("failed to get mutate: %w", err)
				}
				mutate = &m
			}

			basics.Pointer(cmd.OutOrStdout(), value, mutate)
			return nil
		},
	}

	pointerCmd.Flags().IntP("value", "x", 5, "Initial value of the variable")
	pointerCmd.Flags().Int("mutate", 0, "Write this value through the pointer afterwards")
	pointerCmd.Flags().Bool("double", false, "Write 10 through a pointer, then 20 through a pointer to that pointer")
	return pointerCmd
}

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice",
		Short: "Append to, index, shrink and copy a slice of ints",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			basics.Slices(cmd.OutOrStdout())
		},
	}
}

func newStructCmd() *cobra.Command {
	structCmd := &cobra.Command{
		Use:   "struct",
		Short: "Print the fields of a Person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				return fmt.Errorf("failed to get name: %w", err)
			}
			age, err := cmd.Flags().GetInt("age")
			if err != nil {
				return fmt.Errorf("failed to get age: %w", err)
			}
			basics.PrintPerson(cmd.OutOrStdout(), basics.Person{Name: name, Age: age})
			return nil
		},
	}

	structCmd.Flags().String("name", "John Doe", "Person's name")
	structCmd.Flags().Int("age", 30, "Person's age")
	return structCmd
}

func newLoopCmd() *cobra.Command {
	loopCmd := &cobra.Command{
		Use:   "loop",
		Short: "Count with a range loop, a condition loop and a loop left with break",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := getCount(cmd.Flags())
			if err != nil {
				return err
			}
			basics.Loops(cmd.OutOrStdout(), count)
			return nil
		},
	}

	loopCmd.Flags().IntP("count", "n", 10, "Number of iterations per loop")
	return loopCmd
}

func newMaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max [numbers...]",
		Short: "Print the largest of the given integers",
		Long:  `Prints the largest argument, or "The slice is empty" when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				numbers = append(numbers, n)
			}
			basics.PrintMax(cmd.OutOrStdout(), numbers)
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	wordsCmd := &cobra.Command{
		Use:   "words",
		Short: "Count the words of a message through a pointer, then print the message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := cmd.Flags().GetString("text")
			if err != nil {
				return fmt.Errorf("failed to get text: %w", err)
			}
			basics.Words(cmd.OutOrStdout(), text)
			return nil
		},
	}

	wordsCmd.Flags().String("text", "Go is awesome!", "Message to count")
	return wordsCmd
}

func newBookCmd() *cobra.Command {
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Build a Book and print its page count and rating through its methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := cmd.Flags().GetUint32("pages")
			if err != nil {
				return fmt.Errorf("failed to get pages: %w", err)
			}
			rating, err := cmd.Flags().GetUint8("rating")
			if err != nil {
				return fmt.Errorf("failed to get rating: %w", err)
			}

			book := basics.NewBook(pages, rating)
			book.DisplayPageCount(cmd.OutOrStdout())
			book.DisplayRating(cmd.OutOrStdout())
			return nil
		},
	}

	bookCmd.Flags().Uint32("pages", 300, "Page count")
	bookCmd.Flags().Uint8("rating", 4, "Rating out of 5")
	return bookCmd
}

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "Declare and print an int, a string and a bool",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			basics.Variables(cmd.OutOrStdout())
		},
	}
}
