package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mcmonitor/internal/api/apierr"
	"github.com/mcoot/mcmonitor/internal/api/request"
	"github.com/mcoot/mcmonitor/internal/api/response"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/directory"
)

// ServerHandler handles directory endpoints
type ServerHandler struct {
	directory *directory.Service
}

// NewServerHandler creates a new server handler
func NewServerHandler(directory *directory.Service) *ServerHandler {
	return &ServerHandler{directory: directory}
}

// List handles GET /api/v1/servers
func (h *ServerHandler) List(w http.ResponseWriter, r *http.Request) {
	servers := h.directory.List(r.Context())
	filtered := directory.Filter(servers, r.URL.Query().Get("q"), r.URL.Query().Get("category"))

	response.JSON(w, http.StatusOK, response.ServerListFromModels(filtered, len(servers)))
}

// Get handles GET /api/v1/servers/{id}
func (h *ServerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.ServerID(mux.Vars(r)["id"])

	server, err := h.directory.Get(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ServerFromModel(server))
}

// Publish handles POST /api/v1/servers
func (h *ServerHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req request.PublishServerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	result := h.directory.Publish(r.Context(), directory.PublishRequest{
		Name:     req.Name,
		IP:       req.IP,
		Category: req.Type,
	})
	if !result.OK {
		switch result.ErrorKind {
		case directory.ErrorKindValidation:
			apierr.WriteError(w, apierr.NewInvalidServerError(result.Message))
		default:
			apierr.WriteError(w, apierr.NewStoreUnavailableError(result.Message))
		}
		return
	}

	response.Created(w, "/api/v1/servers/"+string(result.Server.ID), response.ServerFromModel(result.Server))
}
