package rtree

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	// defaultMinFill is the minimum number of entries a non-root node holds
	// when no configuration is given.
	defaultMinFill = 4

	// defaultMaxFill is the maximum number of entries a node holds before it
	// is split.
	//
	// Seed selection is quadratic in this value, so it should stay small.
	defaultMaxFill = 8

	// defaultDimensions is the number of axes of every point and rectangle.
	defaultDimensions = 2
)

var (
	// ErrInvalidFill is returned when the fill bounds cannot guarantee that an
	// overflowing node splits into two valid nodes.
	ErrInvalidFill = errors.New("invalid fill bounds")

	// ErrInvalidDimensions is returned for a configuration with fewer than one
	// axis.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrDimensionMismatch is returned when a point or rectangle does not have
	// the tree's number of axes.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidPoint is returned for a point or corner with a NaN or
	// infinite coordinate.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrCorrupt is wrapped by every error returned from [Tree.Validate].
	ErrCorrupt = errors.New("corrupt tree")
)

// Config holds the fixed parameters of a tree.
type Config struct {
	// MinFill is the minimum number of entries in a non-root node (m).
	MinFill int

	// MaxFill is the maximum number of entries in any node (M). A node holding
	// MaxFill+1 entries is split.
	MaxFill int

	// Dimensions is the number of axes of every inserted point.
	Dimensions int

	// Logger receives debug records for every split. A nil Logger discards
	// them.
	Logger *slog.Logger
}

// DefaultConfig returns a two-dimensional configuration with m = 4, M = 8.
func DefaultConfig() Config {
	return Config{
		MinFill:    defaultMinFill,
		MaxFill:    defaultMaxFill,
		Dimensions: defaultDimensions,
	}
}

// Validate checks that M >= 2m and m >= 1, which together guarantee that any
// set of M+1 entries can be partitioned into two groups each holding between
// m and M entries.
func (c Config) Validate() error {
	if c.MinFill < 1 {
		return fmt.Errorf("min fill %d is below 1: %w", c.MinFill, ErrInvalidFill)
	}

	if c.MaxFill < 2*c.MinFill {
		return fmt.Errorf("max fill %d is below twice the min fill %d: %w", c.MaxFill, c.MinFill, ErrInvalidFill)
	}

	if c.Dimensions < 1 {
		return fmt.Errorf("%d dimensions: %w", c.Dimensions, ErrInvalidDimensions)
	}

	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return c.Logger
}
