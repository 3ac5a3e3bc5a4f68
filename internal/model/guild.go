package model

import "fmt"

// GuildStatus is the online flag shown next to a guild
type GuildStatus string

const (
	GuildOnline  GuildStatus = "online"
	GuildOffline GuildStatus = "offline"
)

// ParseGuildStatus normalises a raw status; anything but "online" is offline
func ParseGuildStatus(s string) GuildStatus {
	if GuildStatus(s) == GuildOnline {
		return GuildOnline
	}
	return GuildOffline
}

// Guild is a Discord server the authenticated user administers.
// Guilds are rebuilt from the external API on every fetch and never stored.
type Guild struct {
	ID          string
	Name        string
	Icon        string // icon hash, may be empty
	Status      GuildStatus
	MemberCount *int
	Plan        Plan
}

// IconURL returns the Discord CDN URL for the guild icon, or "" if it has none
func (g Guild) IconURL() string {
	if g.Icon == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/icons/%s/%s.png", g.ID, g.Icon)
}

// Initial returns the first letter of the guild name, used when there is no icon
func (g Guild) Initial() string {
	for _, r := range g.Name {
		return string(r)
	}
	return "?"
}
