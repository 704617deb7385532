package service

import (
	"sort"
	"time"

	"github.com/ddegtyarev/linkpulse/internal/models"
	"github.com/ddegtyarev/linkpulse/internal/storage"
)

const (
	topN         = 5
	recentN      = 10
	seriesDays   = 30
	dayLayout    = "2006-01-02"
	trailingWeek = 7 * 24 * time.Hour
	// "This month" is a trailing 30-day window from day start, not a
	// calendar month.
	trailingMonth = 30 * 24 * time.Hour
)

// Aggregate reduces a link's full click history into an analytics
// snapshot relative to now. It is a pure function: same clicks and same
// now produce an identical snapshot, so callers may cache at will.
//
// Day boundaries are UTC calendar days. The daily series matches clicks
// to calendar days, while the week/month counters use rolling windows
// anchored at day start.
func Aggregate(link *storage.LinkRecord, clicks []storage.ClickRecord, now time.Time) models.AnalyticsSnapshot {
	// The click log carries no ordering guarantee across concurrent
	// redirects; re-sort instead of trusting store order.
	ordered := make([]storage.ClickRecord, len(clicks))
	copy(ordered, clicks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ClickedAt.After(ordered[j].ClickedAt)
	})

	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := dayStart.Add(-trailingWeek)
	monthStart := dayStart.Add(-trailingMonth)

	snapshot := models.AnalyticsSnapshot{
		URL: models.LinkSummary{
			ID:          link.ID,
			Code:        link.Code,
			OriginalURL: link.OriginalURL,
			Title:       link.Title,
		},
		TotalClicks: len(ordered),
	}

	uniqueIPs := make(map[string]struct{})
	byDay := make(map[string]int)

	for _, c := range ordered {
		if c.IPAddress != "" {
			uniqueIPs[c.IPAddress] = struct{}{}
		}

		at := c.ClickedAt.UTC()
		if !at.Before(dayStart) {
			snapshot.ClicksToday++
		}
		if !at.Before(weekStart) {
			snapshot.ClicksThisWeek++
		}
		if !at.Before(monthStart) {
			snapshot.ClicksThisMonth++
		}

		byDay[at.Format(dayLayout)]++
	}

	snapshot.UniqueVisitors = len(uniqueIPs)
	snapshot.TopCountries = topCountries(ordered)
	snapshot.TopBrowsers = topBrowsers(ordered)
	snapshot.DailyClicks = dailySeries(byDay, dayStart)
	snapshot.RecentClicks = recentClicks(ordered)

	return snapshot
}

// countGroups tallies non-empty values of one click field, remembering
// first-seen order so equal counts sort deterministically.
func countGroups(clicks []storage.ClickRecord, field func(storage.ClickRecord) string) ([]string, map[string]int) {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, c := range clicks {
		v := field(c)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}

	return order, counts
}

func topCountries(clicks []storage.ClickRecord) []models.CountryCount {
	order, counts := countGroups(clicks, func(c storage.ClickRecord) string { return c.Country })

	top := make([]models.CountryCount, 0, len(order))
	for _, country := range order {
		top = append(top, models.CountryCount{Country: country, Count: counts[country]})
	}
	return top
}

func topBrowsers(clicks []storage.ClickRecord) []models.BrowserCount {
	order, counts := countGroups(clicks, func(c storage.ClickRecord) string { return c.Browser })

	top := make([]models.BrowserCount, 0, len(order))
	for _, browser := range order {
		top = append(top, models.BrowserCount{Browser: browser, Count: counts[browser]})
	}
	return top
}

// dailySeries emits exactly seriesDays entries, oldest first, ending on
// the day containing dayStart.
func dailySeries(byDay map[string]int, dayStart time.Time) []models.DailyCount {
	series := make([]models.DailyCount, 0, seriesDays)

	for i := seriesDays - 1; i >= 0; i-- {
		day := dayStart.AddDate(0, 0, -i).Format(dayLayout)
		series = append(series, models.DailyCount{Date: day, Clicks: byDay[day]})
	}

	return series
}

func recentClicks(ordered []storage.ClickRecord) []models.RecentClick {
	n := len(ordered)
	if n > recentN {
		n = recentN
	}

	recent := make([]models.RecentClick, 0, n)
	for _, c := range ordered[:n] {
		recent = append(recent, models.RecentClick{
			ClickedAt:  c.ClickedAt,
			Country:    c.Country,
			City:       c.City,
			Browser:    c.Browser,
			DeviceType: c.DeviceType,
			Referer:    c.Referer,
		})
	}

	return recent
}
