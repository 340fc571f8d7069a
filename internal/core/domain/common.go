package domain

import "time"

// AuditFields holds the bookkeeping timestamps shared by persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// FilterAll is the sentinel value that disables an optional list filter.
const FilterAll = "all"

// IsFilterSet reports whether an optional filter value narrows a query.
func IsFilterSet(v string) bool {
	return v != "" && v != FilterAll
}

// DateOnly truncates t to midnight UTC of the same calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"
