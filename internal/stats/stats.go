// Package stats tracks the site visit counter and assembles the admin
// dashboard overview.
package stats

import "context"

// SingletonID is the fixed primary key of the one stats row.
const SingletonID = "site"

// Stats holds the global counters. TotalVisits never decreases.
type Stats struct {
	ID          string `db:"id" json:"id"`
	TotalVisits int64  `db:"total_visits" json:"totalVisits"`
}

// Store is the persistence surface for the singleton stats row.
type Store interface {
	Get(ctx context.Context) (*Stats, error)
	// IncrementVisits must be a store-level atomic increment.
	IncrementVisits(ctx context.Context) error
}

// Metric is one dashboard headline figure.
type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Color  string `json:"color"`
}

// Insight is one row of the dashboard activity feed.
type Insight struct {
	Time    string `json:"time"`
	User    string `json:"user"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// TopWork is one entry of the most-viewed list.
type TopWork struct {
	Name  string `json:"name"`
	Views string `json:"views"`
	Color string `json:"color"`
}

// Dashboard is the GET /api/stats response.
type Dashboard struct {
	Metrics        []Metric  `json:"metrics"`
	RecentInsights []Insight `json:"recentInsights"`
	TopWorks       []TopWork `json:"topWorks"`
}
