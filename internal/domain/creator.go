package domain

import (
	"fmt"
	"strings"
)

// Creator is a client who commissions mod work.
type Creator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	CreatedDate string `json:"createdDate"`
}

// Validate checks that the creator has a usable name.
func (c *Creator) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("creator name is required")
	}
	return nil
}

// DisplayID returns a short identifier for display.
// It truncates the ID to 8 characters.
func (c *Creator) DisplayID() string {
	if len(c.ID) >= 8 {
		return c.ID[:8]
	}
	return c.ID
}
