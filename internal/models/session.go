package models

import "time"

// Session binds an authenticated client to the shell operations it issues.
type Session struct {
	Token     string
	Client    *Client
	StartedAt time.Time
}
