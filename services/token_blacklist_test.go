package services

import (
	"strings"
	"testing"
)

func TestNewTokenBlacklistURLParsing(t *testing.T) {
	t.Run("rejects scheme-less address", func(t *testing.T) {
		_, err := NewTokenBlacklist("localhost:6379")
		if err == nil || !strings.Contains(err.Error(), "parse") {
			t.Errorf("Expected URL parse error for scheme-less address, got %v", err)
		}
	})

	t.Run("redis scheme passes parsing", func(t *testing.T) {
		// Without a live Redis the constructor still gets past parsing;
		// only the connection step may fail.
		_, err := NewTokenBlacklist("redis://localhost:6379")
		if err != nil && strings.Contains(err.Error(), "parse") {
			t.Errorf("Expected redis:// URL to parse, got %v", err)
		}
	})
}

func TestBlacklistFallbackWithoutRedis(t *testing.T) {
	prev := TokenBlacklist
	TokenBlacklist = nil
	defer func() { TokenBlacklist = prev }()

	if err := BlacklistTokens("access", "refresh"); err == nil {
		t.Error("Expected an error blacklisting without Redis")
	}
	if IsTokenBlacklisted("access") {
		t.Error("Expected no token to read as blacklisted without Redis")
	}
}
