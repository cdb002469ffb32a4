package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"Item", "Status"},
		[][]string{
			{"Structural Steel Works", "normal"},
			{"Piling", "severe"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[2], "Structural Steel Works")
	assert.Contains(t, lines[3], "Piling")
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
