package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/pipemaze/internal/config"
	"github.com/thruflo/pipemaze/internal/grid"
	"github.com/thruflo/pipemaze/internal/interior"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the grid with inside and outside cells marked",
	Long: `Prints the grid with loop tiles kept as they are and every other cell
replaced by the inside or outside marker from config, followed by the
farthest distance and the interior count.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	name := inputNames(args)[0]
	data, err := readInput(cmd, name)
	if err != nil {
		return err
	}
	g, err := grid.New(grid.Normalize(data))
	if err != nil {
		return fmt.Errorf("%s: failed to load grid: %w", name, err)
	}

	loop, classes, err := rt.solver.Analyze(g)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(render(g, classes, rt.cfg.Render)); err != nil {
		return err
	}
	_, inside, _ := classes.Counts()
	fmt.Fprintf(out, "farthest: %d\n", loop.Farthest())
	fmt.Fprintf(out, "interior: %d\n", inside)
	return nil
}

// render draws g with off-loop cells replaced by markers. Every row,
// including the last, ends with a terminator.
func render(g *grid.Grid, classes interior.Map, markers config.RenderConfig) []byte {
	src := g.Bytes()
	var buf bytes.Buffer
	buf.Grow(g.Rows() * (g.Width() + 1))

	for p, c := range classes {
		switch c {
		case interior.Terminator:
			buf.WriteByte(grid.Terminator)
		case interior.Loop:
			buf.WriteByte(src[p])
		case interior.Inside:
			buf.WriteByte(markers.InsideMarker[0])
		default:
			buf.WriteByte(markers.OutsideMarker[0])
		}
	}
	if len(src) > 0 && src[len(src)-1] != grid.Terminator {
		buf.WriteByte(grid.Terminator)
	}
	return buf.Bytes()
}
