package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/directory"
	"github.com/mcoot/mcmonitor/internal/web/templates/pages"
)

// directoryChips are the category filters shown above the server list
var directoryChips = []struct {
	label string
	value string
}{
	{"All Servers", ""},
	{"Survival", string(model.CategorySurvival)},
	{"Skyblock", string(model.CategorySkyblock)},
	{"Minigames", string(model.CategoryMinigames)},
}

// DirectoryHandler handles the public server directory
type DirectoryHandler struct {
	directory *directory.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directory *directory.Service, clock clock.Clock, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		clock:     clock,
		logger:    logger,
	}
}

// List renders every published server, filtered by ?q= and ?category=
func (h *DirectoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == directory.CategoryAll {
		category = ""
	}

	servers := h.directory.List(r.Context())

	data := pages.ServersData{
		PageData: pageData(r.Context(), "Servers", "servers"),
		Query:    query,
		Category: category,
		Chips:    chips(query, category),
		Servers:  directory.Filter(servers, query, category),
		Total:    len(servers),
	}
	render(w, r, h.logger, http.StatusOK, pages.Servers(data))
}

// Detail renders one server, or the 404 page if it cannot be loaded
func (h *DirectoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := model.ServerID(mux.Vars(r)["id"])

	server, err := h.directory.Get(r.Context(), id)
	if err != nil {
		data := pages.NotFoundData{
			PageData:  pageData(r.Context(), "Server not found", "servers"),
			Message:   "Server not found in our database",
			BackURL:   "/servers",
			BackLabel: "Go Back",
		}
		render(w, r, h.logger, http.StatusNotFound, pages.NotFound(data))
		return
	}

	data := pages.ServerData{
		PageData:   pageData(r.Context(), server.Name, "servers"),
		Server:     server,
		LastUpdate: clock.Ago(h.clock.Now(), server.CreatedAt),
	}
	render(w, r, h.logger, http.StatusOK, pages.Server(data))
}

func chips(query, active string) []pages.Chip {
	out := make([]pages.Chip, 0, len(directoryChips))
	for _, c := range directoryChips {
		params := url.Values{}
		if query != "" {
			params.Set("q", query)
		}
		if c.value != "" {
			params.Set("category", c.value)
		}
		link := "/servers"
		if encoded := params.Encode(); encoded != "" {
			link += "?" + encoded
		}
		out = append(out, pages.Chip{Label: c.label, URL: link, Active: c.value == active})
	}
	return out
}
