package session

import (
	"context"
	"errors"
	"testing"

	"github.com/nourjazi01/hack-seneca/internal/models"
)

type stubLoader struct {
	loads []string
}

func (s *stubLoader) Load(_ context.Context, userID string) (*models.UserData, error) {
	s.loads = append(s.loads, userID)
	return &models.UserData{UserID: userID, Summary: map[string]string{}}, nil
}

func TestValidUserID(t *testing.T) {
	cases := []struct {
		id    string
		valid bool
	}{
		{"user_00001", true},
		{"user_99999", true},
		{"user_12345", true},
		{"user_1234", false},
		{"user_123456", false},
		{"user_abcde", false},
		{"member_00001", false},
		{"USER_00001", false},
		{"user_00001 ", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidUserID(tc.id); got != tc.valid {
			t.Errorf("ValidUserID(%q) = %v, want %v", tc.id, got, tc.valid)
		}
	}
}

func TestLoginRejectsMalformedID(t *testing.T) {
	loader := &stubLoader{}
	registry := NewRegistry(loader, false)

	_, err := registry.Login(context.Background(), "user_123")
	if !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
	if len(loader.loads) != 0 {
		t.Fatalf("loader touched for invalid id: %v", loader.loads)
	}
	if registry.Current() != nil {
		t.Fatal("no session should exist after failed login")
	}
}

func TestLoginInstallsSession(t *testing.T) {
	registry := NewRegistry(&stubLoader{}, false)

	sess, err := registry.Login(context.Background(), "user_00001")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != "user_00001" || sess.Data == nil {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if registry.Current() != sess {
		t.Fatal("Current() should return the installed session")
	}
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	registry := NewRegistry(&stubLoader{}, false)

	if _, err := registry.Login(context.Background(), "user_00001"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	if _, err := registry.Login(context.Background(), "user_00002"); err != nil {
		t.Fatalf("second login: %v", err)
	}

	if registry.Authorize("user_00001") {
		t.Fatal("replaced session should no longer authorize")
	}
	if !registry.Authorize("user_00002") {
		t.Fatal("new session should authorize")
	}
}

func TestAuthorize(t *testing.T) {
	registry := NewRegistry(&stubLoader{}, false)

	if registry.Authorize("user_00001") {
		t.Fatal("no session yet, authorize must fail")
	}

	if _, err := registry.Login(context.Background(), "user_00001"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !registry.Authorize("user_00001") {
		t.Fatal("active session must authorize its own id")
	}
	if registry.Authorize("user_99999") {
		t.Fatal("other ids must not authorize")
	}
}

func TestMultiSessionMode(t *testing.T) {
	registry := NewRegistry(&stubLoader{}, true)

	if _, err := registry.Login(context.Background(), "user_00001"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := registry.Login(context.Background(), "user_00002"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !registry.Authorize("user_00001") || !registry.Authorize("user_00002") {
		t.Fatal("both users should hold sessions in multi mode")
	}
	if registry.Current() != nil {
		t.Fatal("Current() is undefined in multi mode and must be nil")
	}
	if registry.Get("user_00001") == nil {
		t.Fatal("Get should return the keyed session")
	}
}
