package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDispatch_HelpAndUnknown(t *testing.T) {
	cfg := withTempConfig(t, nil)
	out := captureOut(t)

	if code := Dispatch(context.Background(), cfg, nil); code != 2 {
		t.Fatalf("no args must exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "FoodTracker CLI") {
		t.Fatalf("global usage expected, got %q", out.String())
	}

	out.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"help", "pantry-add"}); code != 0 {
		t.Fatalf("help <cmd> must exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "pantry-add <name>") {
		t.Fatalf("command usage expected, got %q", out.String())
	}

	out.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"nope"}); code != 2 {
		t.Fatalf("unknown command must exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Unknown command: nope") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestDispatch_ExitCodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Food Tracker API is running"))
	}))
	defer ts.Close()
	cfg := withTempConfig(t, ts)
	out := captureOut(t)

	if code := Dispatch(context.Background(), cfg, []string{"STATUS"}); code != 0 {
		t.Fatalf("status must succeed, got %d: %s", code, out.String())
	}

	out.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"login"}); code != 2 {
		t.Fatalf("bad usage must exit 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: login <email>") {
		t.Fatalf("usage expected, got %q", out.String())
	}

	out.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"pantry"}); code != 1 {
		t.Fatalf("pantry without token must exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "not logged in") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
