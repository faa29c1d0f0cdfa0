package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/crystalix007/quadratic-rtree/rtree"
)

func newBuildCmd(opts *options) *cobra.Command {
	var printTree bool

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Insert every point and report the resulting tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := loadPoints(cmd, args, opts.dimensions)
			if err != nil {
				return err
			}

			tree, err := buildTree(opts.config(), points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeStats(out, tree)

			if printTree {
				return tree.Fprint(out)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&printTree, "print", false, "Print the whole tree")

	return cmd
}

func newQueryCmd(opts *options) *cobra.Command {
	var rect string

	cmd := &cobra.Command{
		Use:   "query --rect min,...,max,... [file]",
		Short: "Print the labels of every point inside a rectangle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseRect(rect, opts.dimensions)
			if err != nil {
				return err
			}

			points, err := loadPoints(cmd, args, opts.dimensions)
			if err != nil {
				return err
			}

			tree, err := buildTree(opts.config(), points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			labels, ok := tree.Search(query)
			if !ok {
				fmt.Fprintln(out, "no matches")

				return nil
			}

			slices.Sort(labels)

			for _, label := range labels {
				fmt.Fprintln(out, label)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rect, "rect", "", "Query rectangle as min corner then max corner, comma separated")
	_ = cmd.MarkFlagRequired("rect")

	return cmd
}

// examplePoints is split when no input is given: two diagonal clusters with a
// point in between.
var examplePoints = []labelledPoint{
	{rtree.Point{0, 0}, "a"},
	{rtree.Point{1, 1}, "b"},
	{rtree.Point{10, 10}, "c"},
	{rtree.Point{11, 11}, "d"},
	{rtree.Point{5, 5}, "e"},
}

func newSplitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "split [file]",
		Short: "Split a single leaf of max-fill+1 points and show both halves",
		Long: `split inserts exactly max-fill+1 points into an empty tree, which overflows
the root leaf once, and prints the two leaves it was split into.

Without a file a built-in set of five two-dimensional points is split with
min-fill 2 and max-fill 4 unless those flags are given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config()

			var points []labelledPoint

			if len(args) == 0 {
				points = examplePoints
				cfg.Dimensions = 2

				if !cmd.Flags().Changed("min-fill") && !cmd.Flags().Changed("max-fill") {
					cfg.MinFill, cfg.MaxFill = 2, 4
				}
			} else {
				var err error

				points, err = loadPoints(cmd, args, cfg.Dimensions)
				if err != nil {
					return err
				}
			}

			if len(points) != cfg.MaxFill+1 {
				return fmt.Errorf("split needs exactly %d points, got %d", cfg.MaxFill+1, len(points))
			}

			tree, err := buildTree(cfg, points)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			for i, leaf := range tree.Children(tree.Root()) {
				fmt.Fprintf(out, "group %d: leaf %d bound=%v\n", i+1, leaf, tree.Bound(leaf))

				values := tree.Values(leaf)
				for j, p := range tree.Points(leaf) {
					fmt.Fprintf(out, "  %v %s\n", p, values[j])
				}
			}

			return nil
		},
	}
}

func writeStats(w io.Writer, tree *rtree.Tree[string]) {
	stats := tree.Stats()

	fmt.Fprintf(w, "points: %d\n", tree.Len())
	fmt.Fprintf(w, "height: %d\n", tree.Height())
	fmt.Fprintf(w, "leaf splits: %d\n", stats.LeafSplits)
	fmt.Fprintf(w, "internal splits: %d\n", stats.InternalSplits)
	fmt.Fprintf(w, "root splits: %d\n", stats.RootSplits)
}
