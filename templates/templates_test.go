package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankoehn/ai-content-writer/models"
	"github.com/ankoehn/ai-content-writer/templates"
)

func TestResolveCoversAllKinds(t *testing.T) {
	seen := map[string]bool{}
	for _, kind := range models.AllKinds() {
		spec := templates.Resolve(kind)
		assert.Equal(t, kind, spec.Kind)
		assert.NotEmpty(t, spec.SystemMessage)
		assert.Equal(t, templates.UserTemplate, spec.UserTemplate)
		// each kind carries its own system message
		assert.False(t, seen[spec.SystemMessage], "duplicate system message for %s", kind)
		seen[spec.SystemMessage] = true
	}
}

func TestResolveUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() {
		templates.Resolve(models.ContentKind("newsletter"))
	})
}

func TestRenderFillsPlaceholders(t *testing.T) {
	spec := templates.Resolve(models.KindBlog)
	rendered := templates.Render(spec, "article text", "urban commuters")

	require.Equal(t, "Article Content: article text\nTarget Audience: urban commuters", rendered)
	assert.NotContains(t, rendered, "{article_content}")
	assert.NotContains(t, rendered, "{target_audience}")
}
