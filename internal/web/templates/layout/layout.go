// Package layout holds the data shared by every page shell.
package layout

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData is embedded in every page's data
type PageData struct {
	Title    string
	Flash    *FlashMessage
	LoggedIn bool
	// Nav names the active top-level section: "home", "dashboard" or "servers"
	Nav string
}

// FullTitle is the document title
func (p PageData) FullTitle() string {
	if p.Title == "" {
		return "MC Monitor"
	}
	return p.Title + " | MC Monitor"
}
