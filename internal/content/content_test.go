package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProjectSlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Default.Projects {
		require.NotEmpty(t, p.Slug, "project %q has no slug", p.Title)
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true
	}
}

func TestProfileProjectLookup(t *testing.T) {
	p, ok := Default.Project("genai-analytics")
	require.True(t, ok)
	assert.Equal(t, "GenAI-Powered Analytics Platform", p.Title)

	_, ok = Default.Project("missing")
	assert.False(t, ok)
}

func TestPreviewAltFallsBackToTitle(t *testing.T) {
	p := Project{Title: "Untitled", Image: "x.png"}
	assert.Equal(t, "Untitled", p.PreviewAlt())

	p.ImageAlt = "caption"
	assert.Equal(t, "caption", p.PreviewAlt())
}
