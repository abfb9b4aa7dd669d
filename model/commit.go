package model

import "strings"

type Commit struct {
	ID      string `json:"commit"`
	Subject string `json:"subject"`
	Body    string `json:"body,omitempty"`
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Message reassembles the full commit message, subject first.
func (c *Commit) Message() string {
	if strings.TrimSpace(c.Body) == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}

// String returns the commit the way "git rev-list --format=oneline" prints it.
func (c *Commit) String() string {
	if c.ID == "" {
		return c.Subject
	}
	return c.ID + " " + c.Subject
}
