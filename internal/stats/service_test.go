package stats

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elishalema/portfolio-service/internal/message"
	"github.com/elishalema/portfolio-service/internal/work"
)

type fakeStats struct {
	mu     sync.Mutex
	visits int64
}

var _ Store = (*fakeStats)(nil)

func (f *fakeStats) Get(context.Context) (*Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &Stats{ID: SingletonID, TotalVisits: f.visits}, nil
}

func (f *fakeStats) IncrementVisits(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visits++
	return nil
}

type fakeWorks struct {
	works []work.Work
}

var _ work.Store = (*fakeWorks)(nil)

func (f *fakeWorks) List(context.Context) ([]work.Work, error) { return f.works, nil }
func (f *fakeWorks) GetByID(context.Context, string) (*work.Work, error) {
	return nil, nil
}
func (f *fakeWorks) Insert(context.Context, *work.Work) error     { return nil }
func (f *fakeWorks) Update(context.Context, *work.Work) error     { return nil }
func (f *fakeWorks) Delete(context.Context, string) error         { return nil }
func (f *fakeWorks) IncrementViews(context.Context, string) error { return nil }
func (f *fakeWorks) Count(context.Context) (int64, error)         { return int64(len(f.works)), nil }
func (f *fakeWorks) TopByViews(_ context.Context, limit int) ([]work.Work, error) {
	out := append([]work.Work(nil), f.works...)
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMessages struct {
	msgs []message.Message
}

var _ message.Store = (*fakeMessages)(nil)

func (f *fakeMessages) Insert(_ context.Context, m *message.Message) error {
	f.msgs = append(f.msgs, *m)
	return nil
}
func (f *fakeMessages) Count(context.Context) (int64, error) { return int64(len(f.msgs)), nil }
func (f *fakeMessages) Recent(_ context.Context, limit int) ([]message.Message, error) {
	out := append([]message.Message(nil), f.msgs...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestRecordVisit_ConcurrentIncrementsAreNotLost(t *testing.T) {
	counter := &fakeStats{}
	svc := NewService(counter, &fakeWorks{}, &fakeMessages{})

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = svc.RecordVisit(context.Background())
		}()
	}
	wg.Wait()

	got, err := counter.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.TotalVisits)
}

func TestDashboard_MetricsAndFormatting(t *testing.T) {
	counter := &fakeStats{visits: 12480}
	works := &fakeWorks{works: []work.Work{
		{Title: "NatureWise Tours", Category: "Website's Screenshot", Views: 1250},
		{Title: "Kili Expeditions", Category: "Logo", Views: 840},
		{Title: "RestoPulse", Category: "Logo", Views: 920},
		{Title: "Mtumba Classic", Category: "Logo", Views: 310},
	}}
	now := time.Now()
	messages := &fakeMessages{msgs: []message.Message{
		{Name: "Asha", CreatedAt: now.Add(-time.Hour)},
		{Name: "Juma", CreatedAt: now},
	}}
	svc := NewService(counter, works, messages)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, d.Metrics, 4)
	assert.Equal(t, "Total Visits", d.Metrics[0].Label)
	assert.Equal(t, "12,480", d.Metrics[0].Value)
	assert.Equal(t, "2", d.Metrics[1].Value)
	assert.Equal(t, "+2", d.Metrics[1].Change)
	assert.Equal(t, "4m 32s", d.Metrics[2].Value)
	assert.Equal(t, "4", d.Metrics[3].Value)

	// top works: limited to 3, views descending, Logo maps to primary
	require.Len(t, d.TopWorks, 3)
	assert.Equal(t, "NatureWise Tours", d.TopWorks[0].Name)
	assert.Equal(t, "1.2k", d.TopWorks[0].Views)
	assert.Equal(t, "secondary", d.TopWorks[0].Color)
	assert.Equal(t, "RestoPulse", d.TopWorks[1].Name)
	assert.Equal(t, "920", d.TopWorks[1].Views)
	assert.Equal(t, "primary", d.TopWorks[1].Color)
}

func TestDashboard_InsightsPaddedWithSystemRow(t *testing.T) {
	messages := &fakeMessages{msgs: []message.Message{
		{Name: "Asha", CreatedAt: time.Now()},
	}}
	svc := NewService(&fakeStats{}, &fakeWorks{}, messages)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, d.RecentInsights, 2)
	assert.Equal(t, "Inquiry", d.RecentInsights[0].Type)
	assert.Equal(t, "New inquiry received from Asha", d.RecentInsights[0].Content)
	assert.Equal(t, "System", d.RecentInsights[1].User)
	assert.Equal(t, "All systems operational", d.RecentInsights[1].Content)
}

func TestDashboard_InsightsTruncatedToFour(t *testing.T) {
	now := time.Now()
	messages := &fakeMessages{}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		messages.msgs = append(messages.msgs, message.Message{Name: name, CreatedAt: now})
	}
	svc := NewService(&fakeStats{}, &fakeWorks{}, messages)

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	// three inquiries plus the system row
	require.Len(t, d.RecentInsights, 4)
	assert.Equal(t, "System", d.RecentInsights[3].User)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "12,480", formatThousands(12480))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "999", formatViews(999))
	assert.Equal(t, "1.0k", formatViews(1000))
	assert.Equal(t, "1.2k", formatViews(1250))
	assert.Equal(t, "12.5k", formatViews(12480))
}
