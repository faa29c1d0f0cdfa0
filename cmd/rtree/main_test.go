package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/quadratic-rtree/rtree"
)

const clusters = `# x, y, label
0, 0, a
1, 1, b
10, 10, c
11, 11, d
5, 5, e
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestBuild(t *testing.T) {
	t.Parallel()

	out, err := run(t, clusters, "build", "--min-fill", "2", "--max-fill", "4", "--print")
	require.NoError(t, err)

	require.Contains(t, out, "points: 5\nheight: 2\nleaf splits: 1\ninternal splits: 0\nroot splits: 1\n")
	require.Contains(t, out, "leaf 1 level=0 entries=2 bound=(10, 10)-(11, 11)")
	require.Contains(t, out, "(5, 5) = e")
}

func TestBuild_file(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o600))

	out, err := run(t, "", "build", path)
	require.NoError(t, err)

	require.Contains(t, out, "points: 2\nheight: 1\n")
}

func TestBuild_badInput(t *testing.T) {
	t.Parallel()

	_, err := run(t, "1,2,3,4\n", "build")
	require.ErrorContains(t, err, "line 1: 4 columns")

	_, err = run(t, "1,x\n", "build")
	require.ErrorContains(t, err, "coordinate 1")

	_, err = run(t, "nan,1\n", "build")
	require.ErrorIs(t, err, rtree.ErrInvalidPoint)
	require.ErrorContains(t, err, "line 1: point (NaN, 1): coordinate 0 is NaN")

	_, err = run(t, "0,0\n1,-inf\n", "build")
	require.ErrorIs(t, err, rtree.ErrInvalidPoint)
	require.ErrorContains(t, err, "line 2:")

	_, err = run(t, clusters, "build", "--min-fill", "3", "--max-fill", "4")
	require.ErrorContains(t, err, "invalid fill bounds")

	_, err = run(t, clusters, "build", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log level")
}

func TestQuery(t *testing.T) {
	t.Parallel()

	out, err := run(t, clusters, "query", "--rect", "1,1,10,10", "--max-fill", "4", "--min-fill", "2")
	require.NoError(t, err)
	require.Equal(t, "b\nc\ne\n", out)

	out, err = run(t, clusters, "query", "--rect", "20,20,30,30")
	require.NoError(t, err)
	require.Equal(t, "no matches\n", out)

	_, err = run(t, clusters, "query", "--rect", "1,1,10")
	require.ErrorContains(t, err, "3 values, want 4")
}

func TestSplit_default(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "split", "--log-level", "debug")
	require.NoError(t, err)

	require.Contains(t, out, "group 1: leaf 0 bound=(0, 0)-(5, 5)\n  (0, 0) a\n  (1, 1) b\n  (5, 5) e\n")
	require.Contains(t, out, "group 2: leaf 1 bound=(10, 10)-(11, 11)\n  (11, 11) d\n  (10, 10) c\n")
	require.Contains(t, out, "msg=\"split leaf\"")
	require.Contains(t, out, "msg=\"grew root\"")
}

func TestSplit_wrongCount(t *testing.T) {
	t.Parallel()

	_, err := run(t, clusters, "split", "-")
	require.ErrorContains(t, err, "split needs exactly 9 points, got 5")
}
