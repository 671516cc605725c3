package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitized_StripsDigest(t *testing.T) {
	u := &User{ID: "u1", Name: "Ava", Email: "ava@x.com", PasswordHash: "$2a$10$digest"}

	s := u.Sanitized()
	if s.PasswordHash != "" {
		t.Fatalf("digest not stripped: %+v", s)
	}
	if u.PasswordHash == "" {
		t.Fatalf("Sanitized must not mutate the original")
	}
	if s.Playlist == nil {
		t.Fatalf("playlist must serialize as an empty array, not null")
	}
}

func TestUser_DigestNeverMarshalled(t *testing.T) {
	u := &User{ID: "u1", Name: "Ava", Email: "ava@x.com", PasswordHash: "$2a$10$digest"}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if strings.Contains(string(raw), "digest") || strings.Contains(string(raw), "password") {
		t.Fatalf("digest leaked into JSON: %s", raw)
	}
}
