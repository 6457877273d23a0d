package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineLink(t *testing.T) {
	r := NewRenderer()
	html, err := r.Inline("[Author 1](https://example.org/1)")
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://example.org/1"`)
	assert.Contains(t, html, ">Author 1</a>")
	assert.Contains(t, html, `target="_blank"`)
	assert.NotContains(t, html, "<p>")
}

func TestRenderSanitizes(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render(`hello <script>alert(1)</script> **world**`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "<strong>world</strong>")
}

func TestInlineKeepsParagraphs(t *testing.T) {
	r := NewRenderer()
	html, err := r.Inline("one\n\ntwo")
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>\n<p>two</p>", html)
}

func TestLinkify(t *testing.T) {
	html, err := NewRenderer().Inline("see https://example.org")
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://example.org"`)
}
