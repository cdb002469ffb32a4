package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	full := RenderProgress(100, 10)
	assert.Equal(t, 10, strings.Count(full, filledBlock))
	assert.Equal(t, 0, strings.Count(full, emptyBlock))
	assert.Contains(t, full, "100%")

	empty := RenderProgress(0, 10)
	assert.Equal(t, 0, strings.Count(empty, filledBlock))
	assert.Equal(t, 10, strings.Count(empty, emptyBlock))

	clamped := RenderProgress(250, 10)
	assert.Contains(t, clamped, "100%")

	negative := RenderProgress(-5, 10)
	assert.Contains(t, negative, "  0%")
}

func TestRenderProgress_PartialFill(t *testing.T) {
	half := RenderProgress(50, 10)
	assert.Equal(t, 5, strings.Count(half, filledBlock))
	assert.Equal(t, 5, strings.Count(half, emptyBlock))
}
