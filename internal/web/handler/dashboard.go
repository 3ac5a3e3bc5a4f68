package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/dashboard"
	"github.com/mcoot/mcmonitor/internal/services/directory"
	"github.com/mcoot/mcmonitor/internal/web/middleware"
	"github.com/mcoot/mcmonitor/internal/web/templates/pages"
)

// GuildSource lists the guilds a session token can manage
type GuildSource interface {
	Guilds(ctx context.Context, token string) []model.Guild
	Find(ctx context.Context, token, id string) (model.Guild, error)
}

// DashboardHandler handles the guild list, the managing view and publishing
type DashboardHandler struct {
	guilds    GuildSource
	directory *directory.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(guilds GuildSource, directory *directory.Service, clock clock.Clock, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		guilds:    guilds,
		directory: directory,
		clock:     clock,
		logger:    logger,
	}
}

// List renders the guild list, filtered by ?q=
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	guilds := h.guilds.Guilds(r.Context(), middleware.GetToken(r.Context()))
	query := r.URL.Query().Get("q")

	data := pages.GuildListData{
		PageData: pageData(r.Context(), "Dashboard", "dashboard"),
		Query:    query,
		Guilds:   dashboard.Filter(guilds, query),
		Total:    len(guilds),
	}
	render(w, r, h.logger, http.StatusOK, pages.GuildList(data))
}

// Manage renders the managing view for one guild. The guild must be in the
// freshly fetched list, otherwise the browser goes back to the list.
func (h *DashboardHandler) Manage(w http.ResponseWriter, r *http.Request) {
	guild, err := h.guilds.Find(r.Context(), middleware.GetToken(r.Context()), mux.Vars(r)["guildID"])
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	view := dashboard.NewView().Select(guild).WithTab(dashboard.ParseTab(r.URL.Query().Get("tab")))
	selected, _ := view.Selected()

	data := pages.GuildData{
		PageData:   pageData(r.Context(), selected.Name, "dashboard"),
		Guild:      selected,
		Tab:        view.Tab(),
		Tabs:       tabLinks(selected.ID, view.Tab()),
		Features:   dashboard.Gate(selected.Plan),
		LastUpdate: h.clock.Now().Format("Jan 2, 2006 15:04:05 MST"),
		PublishURL: guildURL(selected.ID) + "/publish",
		Categories: categoryOptions(),
	}
	render(w, r, h.logger, http.StatusOK, pages.Guild(data))
}

// Publish inserts the submitted server into the directory and returns to the
// settings tab with the outcome as a flash message
func (h *DashboardHandler) Publish(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildID"]
	back := guildURL(guildID) + "?tab=" + string(dashboard.TabSettings)

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	result := h.directory.Publish(r.Context(), directory.PublishRequest{
		Name:     r.FormValue("name"),
		IP:       r.FormValue("ip"),
		Category: r.FormValue("type"),
	})

	if result.OK {
		middleware.SetFlash(w, middleware.FlashSuccess, result.Message)
	} else {
		middleware.SetFlash(w, middleware.FlashError, result.Message)
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func guildURL(id string) string {
	return "/dashboard/" + url.PathEscape(id)
}

func tabLinks(guildID string, active dashboard.Tab) []pages.TabLink {
	links := make([]pages.TabLink, 0, len(dashboard.Tabs))
	for _, tab := range dashboard.Tabs {
		links = append(links, pages.TabLink{
			Label:  tab.Label(),
			URL:    guildURL(guildID) + "?tab=" + string(tab),
			Active: tab == active,
		})
	}
	return links
}

func categoryOptions() []pages.CategoryOption {
	opts := make([]pages.CategoryOption, 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, pages.CategoryOption{Value: string(c), Label: c.Label()})
	}
	return opts
}
