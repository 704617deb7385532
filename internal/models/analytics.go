package models

import "time"

// LinkSummary identifies the link an analytics snapshot belongs to.
type LinkSummary struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	OriginalURL string `json:"original_url"`
	Title       string `json:"title,omitempty"`
}

// CountryCount is one entry of the top-countries breakdown.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// BrowserCount is one entry of the top-browsers breakdown.
type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int    `json:"count"`
}

// DailyCount is one calendar day of the 30-day click series.
type DailyCount struct {
	Date   string `json:"date"`
	Clicks int    `json:"clicks"`
}

// RecentClick is a click projected for the dashboard. The raw client IP
// is intentionally not exposed.
type RecentClick struct {
	ClickedAt  time.Time `json:"clicked_at"`
	Country    string    `json:"country,omitempty"`
	City       string    `json:"city,omitempty"`
	Browser    string    `json:"browser"`
	DeviceType string    `json:"device_type"`
	Referer    string    `json:"referer,omitempty"`
}

// AnalyticsSnapshot is the full aggregated view over one link's click
// history, relative to a reference instant.
type AnalyticsSnapshot struct {
	URL             LinkSummary    `json:"url"`
	TotalClicks     int            `json:"total_clicks"`
	UniqueVisitors  int            `json:"unique_ips"`
	ClicksToday     int            `json:"clicks_today"`
	ClicksThisWeek  int            `json:"clicks_this_week"`
	ClicksThisMonth int            `json:"clicks_this_month"`
	TopCountries    []CountryCount `json:"top_countries"`
	TopBrowsers     []BrowserCount `json:"top_browsers"`
	DailyClicks     []DailyCount   `json:"daily_clicks"`
	RecentClicks    []RecentClick  `json:"recent_clicks"`
}
