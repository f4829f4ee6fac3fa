package stats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/elishalema/portfolio-service/internal/message"
	"github.com/elishalema/portfolio-service/internal/work"
)

// Service computes the dashboard on every call; nothing is cached.
type Service struct {
	stats    Store
	works    work.Store
	messages message.Store
}

func NewService(stats Store, works work.Store, messages message.Store) *Service {
	return &Service{stats: stats, works: works, messages: messages}
}

// RecordVisit bumps the site-wide visit counter.
func (s *Service) RecordVisit(ctx context.Context) error {
	return s.stats.IncrementVisits(ctx)
}

// Dashboard assembles the overview: headline metrics, the recent activity
// feed and the top-viewed works. The engagement value and two of the change
// percentages are illustrative placeholders, not computed deltas.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	projectCount, err := s.works.Count(ctx)
	if err != nil {
		return nil, err
	}
	topWorks, err := s.works.TopByViews(ctx, 3)
	if err != nil {
		return nil, err
	}
	siteStats, err := s.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	messageCount, err := s.messages.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.messages.Recent(ctx, 3)
	if err != nil {
		return nil, err
	}

	insights := make([]Insight, 0, 4)
	for _, m := range recent {
		insights = append(insights, Insight{
			Time:    m.CreatedAt.Local().Format("03:04 PM"),
			User:    m.Name,
			Type:    "Inquiry",
			Content: fmt.Sprintf("New inquiry received from %s", m.Name),
		})
	}
	insights = append(insights, Insight{
		Time:    "09:15 AM",
		User:    "System",
		Type:    "Status",
		Content: "All systems operational",
	})
	if len(insights) > 4 {
		insights = insights[:4]
	}

	top := make([]TopWork, 0, len(topWorks))
	for _, w := range topWorks {
		color := "secondary"
		if w.Category == "Logo" {
			color = "primary"
		}
		top = append(top, TopWork{Name: w.Title, Views: formatViews(w.Views), Color: color})
	}

	return &Dashboard{
		Metrics: []Metric{
			{Label: "Total Visits", Value: formatThousands(siteStats.TotalVisits), Change: "+14%", Color: "primary"},
			{Label: "Form Submissions", Value: strconv.FormatInt(messageCount, 10), Change: fmt.Sprintf("+%d", len(recent)), Color: "secondary"},
			{Label: "Avg Engagement", Value: "4m 32s", Change: "+22%", Color: "highlight"},
			{Label: "Projects Published", Value: strconv.FormatInt(projectCount, 10), Change: "0%", Color: "primary"},
		},
		RecentInsights: insights,
		TopWorks:       top,
	}, nil
}

// formatThousands renders 12480 as "12,480".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// formatViews renders 1250 as "1.2k" and values under 1000 verbatim.
func formatViews(n int64) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.FormatInt(n, 10)
}
