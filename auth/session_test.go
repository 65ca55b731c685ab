package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func testManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()
	current := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	m := NewManager(Config{
		Username: "admin",
		Password: "secret123",
		Secret:   []byte("test-secret"),
	})
	m.now = func() time.Time { return current }
	m.sleep = func(time.Duration) {}
	return m, &current
}

func TestLogin_Success(t *testing.T) {
	m, _ := testManager(t)

	token, err := m.Login("admin", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if err := m.Validate(token); err != nil {
		t.Errorf("freshly issued token should validate: %v", err)
	}
}

func TestLogin_TrimsUsername(t *testing.T) {
	m, _ := testManager(t)
	if _, err := m.Login("  admin  ", "secret123"); err != nil {
		t.Errorf("whitespace around the username should be ignored: %v", err)
	}
}

func TestLogin_GenericFailure(t *testing.T) {
	m, _ := testManager(t)

	_, wrongUser := m.Login("nobody", "secret123")
	_, wrongPass := m.Login("admin", "wrong")

	if !errors.Is(wrongUser, ErrInvalidCredentials) || !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong username and wrong password must return the same error, got %v / %v", wrongUser, wrongPass)
	}
}

func TestLogin_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	m := NewManager(Config{
		Username: "admin",
		Password: string(hash),
		Secret:   []byte("test-secret"),
	})
	m.sleep = func(time.Duration) {}

	if _, err := m.Login("admin", "secret123"); err != nil {
		t.Errorf("bcrypt-hashed password should verify: %v", err)
	}
	if _, err := m.Login("admin", string(hash)); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("the hash itself must not work as a password")
	}
}

func TestLogin_LockoutAfterThreeFailures(t *testing.T) {
	m, current := testManager(t)

	for i := 0; i < 3; i++ {
		if _, err := m.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected invalid credentials, got %v", i+1, err)
		}
	}

	// Fourth attempt rejected before the credential check, even with the
	// right password.
	if _, err := m.Login("admin", "secret123"); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected lockout, got %v", err)
	}

	// Window over: logins work again.
	*current = current.Add(31 * time.Second)
	if _, err := m.Login("admin", "secret123"); err != nil {
		t.Errorf("login should succeed after the lockout window: %v", err)
	}
}

func TestLogin_SuccessResetsFailureCount(t *testing.T) {
	m, _ := testManager(t)

	m.Login("admin", "wrong")
	m.Login("admin", "wrong")
	if _, err := m.Login("admin", "secret123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two more failures should not lock: the counter restarted.
	m.Login("admin", "wrong")
	if _, err := m.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	m, current := testManager(t)

	token, err := m.Login("admin", "secret123")
	if err != nil {
		t.Fatal(err)
	}

	*current = current.Add(23 * time.Hour)
	if err := m.Validate(token); err != nil {
		t.Errorf("token should still be valid inside 24h: %v", err)
	}

	*current = current.Add(2 * time.Hour)
	if !errors.Is(m.Validate(token), ErrInvalidToken) {
		t.Error("token should expire after 24h")
	}
}

func TestValidate_RejectsGarbage(t *testing.T) {
	m, _ := testManager(t)

	if !errors.Is(m.Validate("not-a-token"), ErrInvalidToken) {
		t.Error("garbage should not validate")
	}

	other := NewManager(Config{Username: "admin", Password: "secret123", Secret: []byte("other-secret")})
	other.sleep = func(time.Duration) {}
	token, err := other.Login("admin", "secret123")
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(m.Validate(token), ErrInvalidToken) {
		t.Error("token signed with a different secret should not validate")
	}
}
