package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thruflo/pipemaze/internal/logging"
	"github.com/thruflo/pipemaze/internal/solver"
)

var solveJSON bool

var solveCmd = &cobra.Command{
	Use:   "solve [file ...]",
	Short: "Report the farthest loop distance and enclosed cell count",
	Long: `Solves each grid file in turn. With no file, or with "-", the grid is
read from standard input.

For a single grid the answers are printed one per line. For several grids a
table is printed with one row per input. Solving stops at the first grid that
cannot be solved.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print one JSON object per input")
	rootCmd.AddCommand(solveCmd)
}

type solved struct {
	Input string `json:"input"`
	solver.Result
}

func runSolve(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	names := inputNames(args)
	results := make([]solved, 0, len(names))
	for _, name := range names {
		data, err := readInput(cmd, name)
		if err != nil {
			return err
		}
		res, err := rt.solver.Solve(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logging.With("input", name).Info("solved grid",
			"farthest", res.Farthest, "interior", res.Interior)
		results = append(results, solved{Input: name, Result: res})
	}

	out := cmd.OutOrStdout()
	switch {
	case solveJSON:
		return writeJSON(out, results)
	case len(results) == 1:
		fmt.Fprintf(out, "farthest: %d\n", results[0].Farthest)
		fmt.Fprintf(out, "interior: %d\n", results[0].Interior)
		return nil
	default:
		writeTable(out, results)
		return nil
	}
}

func writeJSON(w io.Writer, results []solved) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}
	return nil
}

func writeTable(w io.Writer, results []solved) {
	inputWidth := len("INPUT")
	for _, r := range results {
		if len(r.Input) > inputWidth {
			inputWidth = len(r.Input)
		}
	}

	fmt.Fprintf(w, "%-*s  %8s  %8s\n", inputWidth, "INPUT", "FARTHEST", "INTERIOR")
	fmt.Fprintf(w, "%s  %s  %s\n", strings.Repeat("-", inputWidth), strings.Repeat("-", 8), strings.Repeat("-", 8))
	for _, r := range results {
		fmt.Fprintf(w, "%-*s  %8d  %8d\n", inputWidth, r.Input, r.Farthest, r.Interior)
	}
}
