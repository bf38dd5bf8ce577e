package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/smarttransit/transitdash/internal/apiclient"
	"github.com/smarttransit/transitdash/internal/mockdata"
	"github.com/smarttransit/transitdash/internal/nav"

	tea "github.com/charmbracelet/bubbletea"
)

func testContext(t *testing.T) ViewContext {
	t.Helper()
	store, err := mockdata.Default()
	if err != nil {
		t.Fatalf("mockdata.Default: %v", err)
	}
	return ViewContext{Data: store.Dataset(), ContentWidth: 110, ContentHeight: 40}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestRenderOperatorContent_EachPageHasItsOwnRenderer(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	seen := make(map[string]nav.OperatorPage)
	for _, p := range nav.OperatorPages() {
		heading := firstLine(renderOperatorContent(ctx, p))
		if !strings.Contains(heading, p.Title()) {
			t.Fatalf("%v heading = %q, want it to contain %q", p, heading, p.Title())
		}
		for _, other := range nav.OperatorPages() {
			if other != p && strings.Contains(heading, other.Title()+"  ") {
				t.Fatalf("%v rendered the %v heading", p, other)
			}
		}
		if prev, dup := seen[heading]; dup {
			t.Fatalf("%v and %v share a renderer", prev, p)
		}
		seen[heading] = p
	}
}

func TestRenderOperatorContent_UnknownPageFallsBackToOverview(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	got := firstLine(renderOperatorContent(ctx, nav.OperatorPage(42)))
	want := firstLine(renderOperatorContent(ctx, nav.PageOverview))
	if got != want {
		t.Fatalf("fallback heading = %q, want %q", got, want)
	}
}

func TestRenderOperatorContent_ShowsDatasetContent(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	cases := map[nav.OperatorPage]string{
		nav.PageRLRecommendations: "Add 2 buses to Route 12",
		nav.PageEmotionSafety:     "Panic button pressed by passenger",
		nav.PageDriverBehavior:    "S. Ito",
		nav.PageMaintenance:       "Brake pads",
		nav.PageFraud:             "FR-2291",
		nav.PageSustainability:    "EV Share",
		nav.PageDemandForecast:    "predicted",
	}
	for page, want := range cases {
		if out := renderOperatorContent(ctx, page); !strings.Contains(out, want) {
			t.Errorf("%v: output missing %q", page, want)
		}
	}

	overview := renderOperatorContent(ctx, nav.PageOverview)
	for _, want := range []string{
		"Hourly ridership",
		"Fleet board", "B104", "critical", "⚠ alert", "6 active buses, 2 with alerts",
		"System health", "Kafka Streaming", "350ms", "83%", "1 requiring attention",
		"Live alerts", "4 active", "Engine temperature critical", "15 min ago",
	} {
		if !strings.Contains(overview, want) {
			t.Errorf("overview: output missing %q", want)
		}
	}
}

func TestRenderOverview_StacksPanelsWhenNarrow(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	ctx.ContentWidth = 60
	out := renderOperatorContent(ctx, nav.PageOverview)
	fleet := strings.Index(out, "Fleet board")
	health := strings.Index(out, "System health")
	if fleet < 0 || health < 0 || health < fleet {
		t.Fatalf("narrow overview should stack system health below the fleet board")
	}
	if strings.Count(firstLineContaining(out, "Fleet board"), "System health") != 0 {
		t.Fatalf("panels share a row at width %d", ctx.ContentWidth)
	}
}

func firstLineContaining(s, sub string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, sub) {
			return line
		}
	}
	return ""
}

func TestGauge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, limit float64
		width        int
		filled       int
	}{
		{50, 100, 10, 5},
		{0, 100, 10, 0},
		{150, 100, 10, 10},
		{-5, 100, 10, 0},
		{1, 0, 4, 4},
	}
	for _, tc := range cases {
		got := gauge(tc.value, tc.limit, tc.width, ColorBlue)
		if n := strings.Count(got, "█"); n != tc.filled {
			t.Errorf("gauge(%v, %v, %d) filled = %d, want %d", tc.value, tc.limit, tc.width, n, tc.filled)
		}
		if n := strings.Count(got, "█") + strings.Count(got, "░"); n != tc.width {
			t.Errorf("gauge(%v, %v, %d) width = %d", tc.value, tc.limit, tc.width, n)
		}
	}
}

func TestRoleTabs_DoNotOverlap(t *testing.T) {
	t.Parallel()

	spans := roleTabs()
	if len(spans) != len(nav.Roles()) {
		t.Fatalf("tabs = %d, want %d", len(spans), len(nav.Roles()))
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			t.Fatalf("tab %d overlaps tab %d", i, i-1)
		}
	}
	for _, span := range spans {
		if r, ok := roleTabAt(span.end - 1); !ok || r != span.role {
			t.Fatalf("last column of %v tab resolves to %v, %v", span.role, r, ok)
		}
	}
}

type stubChecker struct {
	health apiclient.Health
	calls  int
}

func (s *stubChecker) HealthCheck(context.Context) apiclient.Health {
	s.calls++
	return s.health
}

// initHealthMsg runs the commands returned by Init and returns the health
// result among them.
func initHealthMsg(t *testing.T, a *App) tea.Msg {
	t.Helper()
	cmd := a.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	}
	for _, msg := range msgs {
		if h, ok := msg.(healthMsg); ok {
			return h
		}
	}
	t.Fatalf("Init produced no health result: %v", msgs)
	return nil
}

func TestHealth_SpinnerRunsUntilFirstCheck(t *testing.T) {
	t.Parallel()

	checker := &stubChecker{health: apiclient.Health{Status: "ok", CheckedAt: time.Now()}}
	a := newTestApp(t, WithHealthChecker(checker, 0))

	if !a.healthPending() {
		t.Fatal("check should be pending before the first result")
	}
	if _, cmd := a.Update(SpinnerTickMsg{}); cmd == nil {
		t.Fatal("spinner stopped while the check is pending")
	}

	a.Update(initHealthMsg(t, a))
	if a.healthPending() {
		t.Fatal("check still pending after a result")
	}
	if _, cmd := a.Update(SpinnerTickMsg{}); cmd != nil {
		t.Fatal("spinner kept ticking after the first check")
	}
}

func TestHealth_UpdatesIndicatorAndReschedules(t *testing.T) {
	t.Parallel()

	checker := &stubChecker{health: apiclient.Health{Status: "ok", CheckedAt: time.Now()}}
	a := newTestApp(t, WithHealthChecker(checker, time.Minute))

	msg := initHealthMsg(t, a)

	before := a.Navigation().State()
	_, next := a.Update(msg)
	if next == nil {
		t.Fatal("no follow-up tick scheduled")
	}
	if !a.lastHealth.OK() || checker.calls != 1 {
		t.Fatalf("health = %+v after %d calls", a.lastHealth, checker.calls)
	}
	if a.Navigation().State() != before {
		t.Fatal("health result changed navigation state")
	}
	if !strings.Contains(a.renderStatusLine(), "API") {
		t.Fatal("status line missing API indicator")
	}

	_, cmd := a.Update(healthTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick did not trigger a health check")
	}
}

func TestHealth_FailureIsReported(t *testing.T) {
	t.Parallel()

	checker := &stubChecker{health: apiclient.Health{Status: "error", Error: "connection refused", CheckedAt: time.Now()}}
	a := newTestApp(t, WithHealthChecker(checker, 0))

	_, next := a.Update(initHealthMsg(t, a))
	if next != nil {
		t.Fatal("zero interval should not reschedule")
	}
	if a.lastHealth.OK() {
		t.Fatal("failed check reported healthy")
	}
}

func TestHealth_DisabledWithoutChecker(t *testing.T) {
	t.Parallel()

	a := newTestApp(t)
	if cmd := a.Init(); cmd != nil {
		t.Fatal("Init without checker should return nil")
	}
	if _, cmd := a.Update(healthTickMsg(time.Now())); cmd != nil {
		t.Fatal("tick without checker should be ignored")
	}
	if strings.Contains(a.renderStatusLine(), "API") {
		t.Fatal("status line shows API indicator without a checker")
	}
}

var _ tea.Model = (*App)(nil)
