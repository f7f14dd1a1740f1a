package utils

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidDate(t *testing.T) {
	for _, ok := range []string{"", "2025-02-28", " 2024-12-01 "} {
		if !ValidDate(ok) {
			t.Fatalf("expected %q to be valid", ok)
		}
	}
	for _, bad := range []string{"2025-13-01", "01/02/2025", "2025-02-30", "yesterday"} {
		if ValidDate(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart(" Amina Yusuf/A1 "); got != "Amina_Yusuf_A1" {
		t.Fatalf("unexpected filename part %q", got)
	}
	if got := SafeFilenamePart(""); got != "NA" {
		t.Fatalf("expected NA, got %q", got)
	}
}
