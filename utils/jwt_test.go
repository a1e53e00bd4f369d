package utils

import (
	"testing"
	"time"
)

const testSecret = "health_test_session_secret_0123456789"

func TestSessionSignerRoundTrip(t *testing.T) {
	s := NewSessionSigner(testSecret, time.Hour)
	token, err := s.Sign("abc-123")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sid, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sid != "abc-123" {
		t.Fatalf("expected sid abc-123, got %q", sid)
	}
}

func TestSessionSignerRejects(t *testing.T) {
	s := NewSessionSigner(testSecret, time.Hour)
	token, _ := s.Sign("abc-123")

	other := NewSessionSigner("another_secret_that_is_long_enough_123", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}

	if _, err := s.Parse(""); err == nil {
		t.Fatalf("expected error for empty token")
	}
	if _, err := s.Parse(token + "x"); err == nil {
		t.Fatalf("expected error for tampered token")
	}

	expired := NewSessionSigner(testSecret, -time.Minute)
	old, _ := expired.Sign("abc-123")
	if _, err := s.Parse(old); err == nil {
		t.Fatalf("expected error for expired token")
	}

	if _, err := s.Sign(""); err == nil {
		t.Fatalf("expected error for empty session id")
	}
}
