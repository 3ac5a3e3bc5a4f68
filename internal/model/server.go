package model

import (
	"strings"
	"time"
)

// ServerID is the store-assigned primary key of a directory row
type ServerID string

// Category is the kind of Minecraft server listed in the directory
type Category string

const (
	CategorySurvival  Category = "survival"
	CategorySkyblock  Category = "skyblock"
	CategoryMinigames Category = "minigames"
	CategoryOther     Category = "other"
)

// Categories lists the categories a server can be published under
var Categories = []Category{CategorySurvival, CategorySkyblock, CategoryMinigames, CategoryOther}

// ParseCategory validates a category selection
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// Label returns the display name of the category
func (c Category) Label() string {
	if c == "" {
		return "Other"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Server status values
const (
	ServerOnline  = "online"
	ServerOffline = "offline"
)

// Server is a row of the public server directory.
// JSON tags match the columns of the hosted "servers" table.
type Server struct {
	ID            ServerID  `json:"id"`
	Name          string    `json:"name"`
	IP            string    `json:"ip"`
	Status        string    `json:"status"`
	PlayersOnline int       `json:"players_online"`
	Plan          Plan      `json:"plan"`
	Type          Category  `json:"type"`
	Version       string    `json:"version,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsOnline reports whether the row is marked online
func (s *Server) IsOnline() bool {
	return s.Status == ServerOnline
}

// DisplayVersion returns the version, or the default shown when none is set
func (s *Server) DisplayVersion() string {
	if s.Version == "" {
		return "1.20.x"
	}
	return s.Version
}
