package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSession_DropsPasswordHash(t *testing.T) {
	u := AdminUser{
		ID:           "u1",
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$secret",
	}

	s := u.Session()
	if s.ID != "u1" || s.Name != "Admin" || s.Email != "admin@example.com" {
		t.Fatalf("unexpected projection: %+v", s)
	}

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "password") || strings.Contains(string(b), "secret") {
		t.Fatalf("session user leaked password material: %s", b)
	}
}
