// Package pages renders the site's HTML pages as templ components.
//
// There are no .templ sources or generated _templ.go files. Each page is an
// html/template file under html/, cloned onto layout.html, and exposed
// through templ.ComponentFunc so handlers render it like any other
// templ.Component.
package pages

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/dashboard"
	"github.com/mcoot/mcmonitor/internal/web/templates/layout"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
	"plan":   func(p model.Plan) string { return p.Label() },
	"locked": func(unlocked bool) bool { return !unlocked },
}

// views maps a page name to the shell combined with that page's body
var views = mustParse()

func mustParse() map[string]*template.Template {
	base := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files, "html/layout.html"))

	entries, err := fs.Glob(files, "html/*.html")
	if err != nil {
		panic(err)
	}

	out := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".html")
		if name == "layout" {
			continue
		}
		t := template.Must(base.Clone())
		out[name] = template.Must(t.ParseFS(files, entry))
	}
	return out
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t, ok := views[name]
		if !ok {
			return fmt.Errorf("unknown page %q", name)
		}
		return t.ExecuteTemplate(w, "layout.html", data)
	})
}

// FeatureCard is a landing page feature tile
type FeatureCard struct {
	Title  string
	Body   string
	Accent string
}

// Features lists the landing page feature tiles
func Features() []FeatureCard {
	return []FeatureCard{
		{Title: "Real-time monitoring", Body: "RAM, CPU and player counts for your server at a glance.", Accent: "blue"},
		{Title: "Premium plans", Body: "Unlock advanced tools for your community.", Accent: "green"},
		{Title: "Built-in bot", Body: "Run commands straight from your Discord server.", Accent: "purple"},
	}
}

// HomeData is the data for the landing page
type HomeData struct {
	layout.PageData
	LoginURL string
	Features []FeatureCard
	Plans    []dashboard.PlanInfo
}

// Home renders the landing page
func Home(data HomeData) templ.Component {
	return render("home", data)
}

// GuildListData is the data for the dashboard guild list
type GuildListData struct {
	layout.PageData
	Query  string
	Guilds []model.Guild
	// Total is the number of guilds before filtering
	Total int
}

// GuildList renders the dashboard in list mode
func GuildList(data GuildListData) templ.Component {
	return render("guild_list", data)
}

// TabLink is one entry of the managing view tab bar
type TabLink struct {
	Label  string
	URL    string
	Active bool
}

// CategoryOption is an entry of the publish form category select
type CategoryOption struct {
	Value string
	Label string
}

// GuildData is the data for the dashboard managing view
type GuildData struct {
	layout.PageData
	Guild      model.Guild
	Tab        dashboard.Tab
	Tabs       []TabLink
	Features   dashboard.Features
	LastUpdate string
	PublishURL string
	Categories []CategoryOption
}

// Guild renders the dashboard in managing mode
func Guild(data GuildData) templ.Component {
	return render("guild", data)
}

// Chip is a category filter link on the directory page
type Chip struct {
	Label  string
	URL    string
	Active bool
}

// ServersData is the data for the public directory
type ServersData struct {
	layout.PageData
	Query    string
	Category string
	Chips    []Chip
	Servers  []*model.Server
	Total    int
}

// Servers renders the public directory
func Servers(data ServersData) templ.Component {
	return render("servers", data)
}

// ServerData is the data for a directory detail page
type ServerData struct {
	layout.PageData
	Server     *model.Server
	LastUpdate string
}

// Server renders a directory detail page
func Server(data ServerData) templ.Component {
	return render("server", data)
}

// NotFoundData is the data for the 404 page
type NotFoundData struct {
	layout.PageData
	Message   string
	BackURL   string
	BackLabel string
}

// NotFound renders the 404 page
func NotFound(data NotFoundData) templ.Component {
	return render("not_found", data)
}
