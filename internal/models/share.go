package models

import "time"

// ShareToken is the backend's response to a share-link request. The token is
// opaque to the portal; ExpiresAt is owned and enforced by the backend and is
// only passed through for display.
type ShareToken struct {
	ShareID   string    `json:"shareId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShareLink is the user-facing result of issuing a share token: an absolute,
// copyable URL. Copied records whether the clipboard write succeeded.
type ShareLink struct {
	URL       string    `json:"url"`
	ShareID   string    `json:"shareId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Copied    bool      `json:"copied"`
}
