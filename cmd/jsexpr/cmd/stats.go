package cmd

import (
	"fmt"

	"github.com/go-jsexpr/jsexpr/pkg/jsexpr"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Evaluate an expression and print arena counters",
	Long: `Evaluate an expression, like "eval", but print the evaluation
arena's counters instead of the result: slab size and bytes used, the
number of slab allocations, and any overflow heap allocations.

Useful for tuning --slab-size against a given workload of expressions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline text instead of reading from file or stdin")
	statsCmd.Flags().IntVar(&slabSize, "slab-size", 0, "arena slab size in bytes (0 = default 1024)")
}

func runStats(cmd *cobra.Command, args []string) error {
	input, _, err := readExprOrStdin(args)
	if err != nil {
		return err
	}

	engine, err := jsexpr.New(jsexpr.WithSlabSize(slabSize))
	if err != nil {
		return fmt.Errorf("failed to build engine: %w", err)
	}

	if _, err := engine.Eval(input); err != nil {
		fmt.Printf("evaluation error: %v\n", err)
	}

	stats := engine.MemStats()
	fmt.Printf("slab_size:   %d\n", stats.SlabSize)
	fmt.Printf("slab_used:   %d\n", stats.SlabUsed)
	fmt.Printf("slab_allocs: %d\n", stats.SlabAllocs)
	fmt.Printf("heap_allocs: %d\n", stats.HeapAllocs)
	fmt.Printf("heap_bytes:  %d\n", stats.HeapBytes)
	return nil
}
