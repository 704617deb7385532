package storage

import "time"

// LinkRecord is a persisted short link.
type LinkRecord struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	OriginalURL string     `json:"original_url"`
	UserID      string     `json:"user_id,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ClickRecord is one recorded resolution of a short link. Append-only,
// never mutated after insert.
type ClickRecord struct {
	ID         string    `json:"id"`
	LinkID     string    `json:"link_id"`
	ClickedAt  time.Time `json:"clicked_at"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Referer    string    `json:"referer"`
	Browser    string    `json:"browser"`
	DeviceType string    `json:"device_type"`
	// Country and City are reserved for a future geolocation source and
	// stay empty for now.
	Country string `json:"country"`
	City    string `json:"city"`
}

// LinkWithClicks is a link joined with its total click count, used for
// the owner's dashboard list.
type LinkWithClicks struct {
	LinkRecord
	ClickCount int `json:"click_count"`
}

// LinkUpdate carries the owner-editable fields of a link. Omitted title
// and description clear the stored values.
type LinkUpdate struct {
	Title       string
	Description string
	IsActive    bool
}

// Stats holds service-wide counters for the internal stats endpoint.
type Stats struct {
	Links  int `json:"urls"`
	Clicks int `json:"clicks"`
}
