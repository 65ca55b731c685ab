package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for a wrong username and a wrong
	// password alike; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLocked is returned while the failed-attempt lockout is active.
	// The credential check does not run at all in that window.
	ErrLocked = errors.New("too many failed attempts, try again later")

	ErrInvalidToken = errors.New("invalid or expired session")
)

// Config wires a session Manager. Username/Password come from the
// environment; Password may be a bcrypt hash or plaintext.
type Config struct {
	Username string
	Password string
	Secret   []byte

	SessionTTL time.Duration // default 24h
	LoginDelay time.Duration // default 1s
	LockAfter  int           // default 3 consecutive failures
	LockFor    time.Duration // default 30s
}

// Manager gates the admin dashboard. Login hands out a signed expiring
// token; the expiry is the only revocation mechanism, there is no
// server-side session store.
type Manager struct {
	cfg Config

	mu          sync.Mutex
	failures    int
	lockedUntil time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewManager(cfg Config) *Manager {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.LoginDelay == 0 {
		cfg.LoginDelay = time.Second
	}
	if cfg.LockAfter == 0 {
		cfg.LockAfter = 3
	}
	if cfg.LockFor == 0 {
		cfg.LockFor = 30 * time.Second
	}
	return &Manager{cfg: cfg, now: time.Now, sleep: time.Sleep}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Login checks the credentials and returns a signed session token valid for
// the configured TTL. A fixed delay slows brute forcing; three consecutive
// failures lock logins for 30 seconds before anything else is evaluated.
func (m *Manager) Login(username, password string) (string, error) {
	m.mu.Lock()
	if m.now().Before(m.lockedUntil) {
		m.mu.Unlock()
		return "", ErrLocked
	}
	m.mu.Unlock()

	// Speed bump, not a rate limiter.
	m.sleep(m.cfg.LoginDelay)

	if m.checkCredentials(strings.TrimSpace(username), password) {
		m.mu.Lock()
		m.failures = 0
		m.mu.Unlock()
		return m.issueToken(username)
	}

	m.mu.Lock()
	m.failures++
	if m.failures >= m.cfg.LockAfter {
		m.lockedUntil = m.now().Add(m.cfg.LockFor)
		m.failures = 0
	}
	m.mu.Unlock()

	return "", ErrInvalidCredentials
}

func (m *Manager) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.cfg.Username)) == 1

	passOK := false
	if isBcryptHash(m.cfg.Password) {
		passOK = bcrypt.CompareHashAndPassword([]byte(m.cfg.Password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(m.cfg.Password)) == 1
	}

	return userOK && passOK
}

func (m *Manager) issueToken(username string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.cfg.Secret)
}

// Validate reports whether a session token is genuine and unexpired. This
// is all session initialization amounts to: an expired token is simply
// unauthenticated, there is nothing to clear server-side.
func (m *Manager) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.cfg.Secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
