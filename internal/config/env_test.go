package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := map[string]int{"": 7, "3": 3, " 4 ": 4, "0": 7, "-2": 7, "x": 7}
	for raw, want := range cases {
		t.Setenv("INT_TEST", raw)
		if got := intEnvOrDefault("INT_TEST", 7); got != want {
			t.Fatalf("expected %d for %q, got %d", want, raw, got)
		}
	}
}

func TestEnvOrDefaultTrimsWhitespace(t *testing.T) {
	t.Setenv("STR_TEST", "   ")
	if got := envOrDefault("STR_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
	t.Setenv("STR_TEST", " value ")
	if got := envOrDefault("STR_TEST", "fallback"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
