package httpapi

import (
	"context"
	"testing"
)

func TestStartSpan_NoParentReturnsNoop(t *testing.T) {
	ctx := context.Background()
	gotCtx, span := startSpan(ctx, "httpapi.Handler.GetTournamentRanking")
	if gotCtx != ctx {
		t.Fatal("expected context to pass through unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatal("expected a noop span without a parent span")
	}
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	cases := map[string]bool{
		"httpapi.Handler.GetTournamentRanking": true,
		"httpapi.Handler.GetLeagueOverview":    true,
		"httpapi.RequestLogging":               false,
		"httpapi.CORS":                         false,
		"httpapi.writeError":                   false,
		"":                                     false,
	}

	for name, want := range cases {
		if got := shouldCreateHTTPAPISpan(name); got != want {
			t.Errorf("shouldCreateHTTPAPISpan(%q) = %v, want %v", name, got, want)
		}
	}
}
