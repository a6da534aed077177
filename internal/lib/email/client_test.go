package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, html)
		})
	}
}

func TestRender_ReviewSubmitted(t *testing.T) {
	review := ReviewSubmitted{ReviewID: 3, PokemonID: 4, ReviewerID: 5, Title: "<b>Hot</b>", Rating: 4}

	html, err := Render(TemplateReviewSubmitted, review.templateData())
	require.NoError(t, err)

	assert.Contains(t, html, "#3")
	assert.Contains(t, html, "4 / 5")
	assert.Contains(t, html, "&lt;b&gt;Hot&lt;/b&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}
