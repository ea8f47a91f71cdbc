package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid password", "pass1!", true},
		{"too short", "p1!", false},
		{"missing number", "password!", false},
		{"missing special character", "password1", false},
		{"empty", "", false},
		{"symbol counts as special", "secret7$", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidMonthKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2026-01", true},
		{"2026-12", true},
		{"2026-00", false},
		{"2026-13", false},
		{"2026-1", false},
		{"26-01", false},
		{"2026/01", false},
		{"", false},
		{"2026-01-15", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ValidMonthKey(tt.key); got != tt.want {
				t.Errorf("ValidMonthKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestValidDayKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2026-08-30", true},
		{"2026-8-30", false},
		{"2026-08", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ValidDayKey(tt.key); got != tt.want {
				t.Errorf("ValidDayKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
