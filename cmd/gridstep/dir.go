package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridstep/internal/direction"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Inspect direction conversions",
	Long: `Convert between direction names, vectors and rotations.

Examples:
  gridstep dir info left
  gridstep dir parse UP
  gridstep dir exact 0 -3
  gridstep dir round 3 -1`,
}

var dirInfoCmd = &cobra.Command{
	Use:   "info <direction>",
	Short: "Show vectors, rotation and neighbours of a direction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := direction.Parse(args[0])
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), d)
		return nil
	},
}

var dirParseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Parse a direction name (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := direction.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

var dirExactCmd = &cobra.Command{
	Use:   "exact <x> <y>",
	Short: "Convert a vector with exactly one non-zero axis",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseVec2(args)
		if err != nil {
			return err
		}
		d, err := direction.FromVectorExact(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

var dirRoundCmd = &cobra.Command{
	Use:   "round <x> <y>",
	Short: "Round a vector to the closest direction (ties go to the y axis)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseVec2(args)
		if err != nil {
			return err
		}
		d, err := direction.RoundedFromVector(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	// Negative components must not be taken for flags.
	dirExactCmd.DisableFlagParsing = true
	dirRoundCmd.DisableFlagParsing = true

	dirCmd.AddCommand(dirInfoCmd)
	dirCmd.AddCommand(dirParseCmd)
	dirCmd.AddCommand(dirExactCmd)
	dirCmd.AddCommand(dirRoundCmd)
}

// parseVec2 parses two command-line arguments as a vector.
func parseVec2(args []string) (mgl64.Vec2, error) {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("invalid y %q: %w", args[1], err)
	}
	return mgl64.Vec2{x, y}, nil
}

func printInfo(w io.Writer, d direction.Direction) {
	x, y := d.Vector2Int()
	q := d.Rotation()

	fmt.Fprintf(w, "%s %c\n", d, d.Glyph())
	fmt.Fprintf(w, "  vector:        (%d, %d)\n", x, y)
	fmt.Fprintf(w, "  rotation:      %g° (w=%.4f z=%.4f)\n", d.Degrees(), q.W, q.V.Z())
	fmt.Fprintf(w, "  opposite:      %s\n", d.Opposite())
	fmt.Fprintf(w, "  clockwise:     %s\n", d.RotateClockwise())
	fmt.Fprintf(w, "  anticlockwise: %s\n", d.RotateAntiClockwise())
}
