package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crystalix007/quadratic-rtree/rtree"
)

// labelledPoint is one CSV row.
type labelledPoint struct {
	point rtree.Point
	label string
}

// openInput returns the file named by args[0], or stdin when no file or "-"
// is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open points: %w", err)
	}

	return f, nil
}

// readPoints parses rows of dims coordinates followed by an optional label.
// Rows without a label are labelled with their line number.
func readPoints(r io.Reader, dims int) ([]labelledPoint, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var points []labelledPoint

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return points, nil
		}

		if err != nil {
			return nil, fmt.Errorf("read points: %w", err)
		}

		line, _ := reader.FieldPos(0)

		if len(record) != dims && len(record) != dims+1 {
			return nil, fmt.Errorf("line %d: %d columns, want %d coordinates and an optional label", line, len(record), dims)
		}

		p := make(rtree.Point, dims)
		for k := range dims {
			p[k], err = strconv.ParseFloat(strings.TrimSpace(record[k]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: coordinate %d: %w", line, k, err)
			}
		}

		if _, err := rtree.NewRect(p, p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		label := strconv.Itoa(line)
		if len(record) == dims+1 {
			label = strings.TrimSpace(record[dims])
		}

		points = append(points, labelledPoint{point: p, label: label})
	}
}

// loadPoints reads the CSV input selected by args.
func loadPoints(cmd *cobra.Command, args []string, dims int) ([]labelledPoint, error) {
	in, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return readPoints(in, dims)
}

// buildTree inserts every point into a new tree.
func buildTree(cfg rtree.Config, points []labelledPoint) (*rtree.Tree[string], error) {
	tree, err := rtree.New[string](cfg)
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		if err := tree.Insert(p.point, p.label); err != nil {
			return nil, fmt.Errorf("insert %q: %w", p.label, err)
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}

	return tree, nil
}

// parseRect parses "min1,...,minD,max1,...,maxD".
func parseRect(s string, dims int) (rtree.Rect, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2*dims {
		return rtree.Rect{}, fmt.Errorf("rect %q: %d values, want %d", s, len(fields), 2*dims)
	}

	coords := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return rtree.Rect{}, fmt.Errorf("rect %q: %w", s, err)
		}

		coords[i] = v
	}

	return rtree.NewRect(coords[:dims], coords[dims:])
}
