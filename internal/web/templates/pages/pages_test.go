package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/web/templates/layout"
)

func TestEveryPageIsParsed(t *testing.T) {
	for _, name := range []string{"home", "guild_list", "guild", "servers", "server", "not_found"} {
		assert.Contains(t, views, name)
	}
	assert.NotContains(t, views, "layout")
}

func TestUnknownPageFails(t *testing.T) {
	err := render("missing", nil).Render(context.Background(), &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown page "missing"`)
}

func TestPagesEscapeData(t *testing.T) {
	var buf bytes.Buffer
	err := Server(ServerData{
		PageData:   layout.PageData{Title: "Detail"},
		Server:     &model.Server{ID: "1", Name: "<script>alert(1)</script>", IP: "a.example.com"},
		LastUpdate: "just now",
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "just now")
}
