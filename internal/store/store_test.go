package store

import (
	"errors"
	"testing"
)

func TestValidatePreferenceKey(t *testing.T) {
	cases := []struct {
		key string
		ok  bool
	}{
		{"kot-print-outlet-id", true},
		{"report.last_category", true},
		{"", false},
		{" kot", false},
		{"Upper", false},
		{"has space", false},
	}
	for _, tc := range cases {
		err := ValidatePreferenceKey(tc.key)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.key, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidPreference) {
			t.Fatalf("%q: expected ErrInvalidPreference, got %v", tc.key, err)
		}
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct {
		in, expected int64
	}{
		{0, 50},
		{-3, 50},
		{10, 10},
		{10000, 500},
	}
	for _, tc := range cases {
		if got := ClampLimit(tc.in, 50); got != tc.expected {
			t.Fatalf("ClampLimit(%d) = %d, want %d", tc.in, got, tc.expected)
		}
	}
}
