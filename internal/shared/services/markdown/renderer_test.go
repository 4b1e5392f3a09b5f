package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSanitized(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderSanitized("**bold** and _italic_")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
}

func TestRenderSanitized_StripsScripts(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderSanitized("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
}

func TestRenderSanitized_Empty(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderSanitized("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderSanitized_GFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.RenderSanitized("| berth | state |\n|---|---|\n| 1 | open |")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
}
