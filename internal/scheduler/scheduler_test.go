package scheduler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/scanner"
)

func newTestScheduler(out *bytes.Buffer) *Scheduler {
	mock := &collector.MockFetcher{Price: 100}
	col := collector.New(mock, mock, zerolog.Nop())
	sc := scanner.New(col, scanner.DefaultConfig(), zerolog.Nop())
	return New(context.Background(), col, sc, "^NSEI", []string{"TCS", "INFY"}, out, zerolog.Nop())
}

func TestRegisterAll(t *testing.T) {
	s := newTestScheduler(&bytes.Buffer{})
	if err := s.RegisterAll("0 0 16 * * 1-5", "0 30 13 * * 1-5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RegisterAll("not a cron", "0 30 13 * * 1-5"); err == nil {
		t.Fatal("expected error for malformed cron expression")
	}
}

func TestRunDailyNow(t *testing.T) {
	var out bytes.Buffer
	s := newTestScheduler(&out)
	s.RunDailyNow()

	text := out.String()
	for _, want := range []string{"Market Trend", "Dip Scan", "CANSLIM Scan", "TCS"} {
		if !strings.Contains(text, want) {
			t.Errorf("daily output missing %q", want)
		}
	}
}

func TestRunIntradayNow(t *testing.T) {
	var out bytes.Buffer
	s := newTestScheduler(&out)
	s.RunIntradayNow()

	if !strings.Contains(out.String(), "AI Picks") {
		t.Errorf("intraday output missing header:\n%s", out.String())
	}
}
