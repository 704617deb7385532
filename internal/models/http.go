// Package models defines the request and response data structures used
// for communication between clients and the link service.
package models

import "time"

// ShortenRequest represents a request to create a short link.
type ShortenRequest struct {
	// URL is the destination the short link will redirect to.
	URL string `json:"url"`

	// Title and Description are optional free-text metadata.
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// ExpiresAt optionally schedules the link to stop resolving.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ShortenResponse is returned after a short link has been created.
type ShortenResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	OriginalURL string    `json:"original_url"`
	ShortURL    string    `json:"short_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// LinkResponse is one entry of the owner's link list.
type LinkResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	OriginalURL string     `json:"original_url"`
	ShortURL    string     `json:"short_url"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClickCount  int        `json:"click_count"`
}

// UpdateLinkRequest carries the owner-editable fields of a link.
// Omitted title and description clear the stored values; an omitted
// is_active defaults to true.
type UpdateLinkRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
