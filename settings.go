package fyyur

import (
	"time"
)

//////////////////////////////////////////////////

type Settings struct {
	// Upper bound for a single deletion request (0 disables the bound and
	// leaves it to the caller's context).
	RequestTimeout time.Duration

	// Where Dispatch navigates after a successful deletion.
	RedirectPath string

	// Percent-encode the venue ID before appending it to the request path.
	// Off by default: the ID is concatenated as-is.
	EscapeVenueID bool

	Accept string
}

var DefaultSettings = Settings{
	RequestTimeout: 10 * time.Second,
	RedirectPath:   "/",
	EscapeVenueID:  false,
	Accept:         "application/json",
}

//////////////////////////////////////////////////

func (c *Client) loadSettings() Settings {
	return c.settings.Load()
}

func (c *Client) setSettings(settings Settings) {
	if settings.RedirectPath == "" {
		settings.RedirectPath = DefaultSettings.RedirectPath
	}

	c.settings.Store(settings)
}

func (c *Client) Settings() Settings {
	return c.loadSettings()
}

func (c *Client) SetSettings(settings Settings) {
	c.setSettings(settings)
}
