package response

import (
	"time"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/dashboard"
)

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}

// Server represents a directory row in API responses
type Server struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	IP            string    `json:"ip"`
	Status        string    `json:"status"`
	PlayersOnline int       `json:"players_online"`
	Plan          string    `json:"plan"`
	Type          string    `json:"type"`
	Version       string    `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
}

// ServerFromModel converts a model.Server to a response Server
func ServerFromModel(s *model.Server) Server {
	return Server{
		ID:            string(s.ID),
		Name:          s.Name,
		IP:            s.IP,
		Status:        s.Status,
		PlayersOnline: s.PlayersOnline,
		Plan:          string(s.Plan),
		Type:          string(s.Type),
		Version:       s.DisplayVersion(),
		CreatedAt:     s.CreatedAt,
	}
}

// ServerList is the response for listing servers
type ServerList struct {
	Servers []Server `json:"servers"`
	// Total counts every published server, before filtering
	Total int `json:"total"`
}

// ServerListFromModels converts the filtered rows
func ServerListFromModels(servers []*model.Server, total int) ServerList {
	out := ServerList{Servers: make([]Server, 0, len(servers)), Total: total}
	for _, s := range servers {
		out.Servers = append(out.Servers, ServerFromModel(s))
	}
	return out
}

// Features lists the dashboard panels a guild's plan unlocks
type Features struct {
	Metrics bool `json:"metrics"`
	Console bool `json:"console"`
	History bool `json:"history"`
}

// Guild represents a managed guild in API responses
type Guild struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	IconURL     string   `json:"icon_url,omitempty"`
	Status      string   `json:"status"`
	MemberCount *int     `json:"member_count,omitempty"`
	Plan        string   `json:"plan"`
	Features    Features `json:"features"`
}

// GuildFromModel converts a model.Guild to a response Guild
func GuildFromModel(g model.Guild) Guild {
	f := dashboard.Gate(g.Plan)
	return Guild{
		ID:          g.ID,
		Name:        g.Name,
		IconURL:     g.IconURL(),
		Status:      string(g.Status),
		MemberCount: g.MemberCount,
		Plan:        string(g.Plan),
		Features:    Features{Metrics: f.Metrics, Console: f.Console, History: f.History},
	}
}

// GuildList is the response for listing guilds
type GuildList struct {
	Guilds []Guild `json:"guilds"`
}

// GuildListFromModels converts a guild snapshot
func GuildListFromModels(guilds []model.Guild) GuildList {
	out := GuildList{Guilds: make([]Guild, 0, len(guilds))}
	for _, g := range guilds {
		out.Guilds = append(out.Guilds, GuildFromModel(g))
	}
	return out
}
