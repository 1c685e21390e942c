package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableContainsAllCells(t *testing.T) {
	out := Table(
		[]string{"ID", "STATUS"},
		[][]string{
			{"sb-1", "running"},
			{"sb-2", "stopped"},
		},
	)

	for _, want := range []string{"ID", "STATUS", "sb-1", "running", "sb-2", "stopped"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + separator + two rows
	assert.Len(t, lines, 4)
}

func TestTableShortAndLongRows(t *testing.T) {
	out := Table(
		[]string{"A", "B"},
		[][]string{
			{"only-a"},
			{"x", "y", "ignored-extra"},
		},
	)

	assert.Contains(t, out, "only-a")
	assert.Contains(t, out, "y")
	assert.NotContains(t, out, "ignored-extra")
}

func TestTableNoHeaders(t *testing.T) {
	assert.Equal(t, "", Table(nil, [][]string{{"x"}}))
}

func TestTableNoRows(t *testing.T) {
	out := Table([]string{"NAME"}, nil)
	assert.Contains(t, out, "NAME")
}
