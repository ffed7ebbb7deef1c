package util

import "testing"

func TestGetEnvString(t *testing.T) {
	t.Setenv("KG_TEST_STRING", "value")

	if got := GetEnvString("KG_TEST_STRING", "fallback"); got != "value" {
		t.Fatalf("unexpected value: got %q, want %q", got, "value")
	}
	if got := GetEnvString("KG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("unexpected default: got %q, want %q", got, "fallback")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		set          bool
		defaultValue bool
		want         bool
	}{
		{name: "true", value: "true", set: true, defaultValue: false, want: true},
		{name: "false", value: "false", set: true, defaultValue: true, want: false},
		{name: "invalid falls back", value: "yes", set: true, defaultValue: false, want: false},
		{name: "unset falls back", set: false, defaultValue: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("KG_TEST_BOOL", tt.value)
			}
			if got := GetEnvBool("KG_TEST_BOOL", tt.defaultValue); got != tt.want {
				t.Fatalf("unexpected value: got %v, want %v", got, tt.want)
			}
		})
	}
}
