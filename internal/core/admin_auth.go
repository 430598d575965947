package core

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"nat.service/internal/core/session"
)

// adminSessionTTL matches the 24-hour dashboard session of the mobile app.
const adminSessionTTL = 24 * time.Hour

// AdminAuth gates the dashboard behind the shared admin password and hands
// out opaque bearer tokens kept in memory. A restart logs every admin out,
// which is acceptable for this surface.
type AdminAuth struct {
	password string
	clock    session.Clock

	mu       sync.Mutex
	sessions map[string]time.Time // token -> issued at
}

func NewAdminAuth(password string, clock session.Clock) *AdminAuth {
	if clock == nil {
		clock = session.NewISTClock()
	}
	return &AdminAuth{
		password: password,
		clock:    clock,
		sessions: make(map[string]time.Time),
	}
}

// Login checks the password and issues a session token.
func (a *AdminAuth) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return "", ErrUnauthorized
	}

	token := uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = a.clock.Now()
	a.mu.Unlock()
	return token, nil
}

// Validate reports whether the token belongs to a live session. Expired
// tokens are dropped on sight.
func (a *AdminAuth) Validate(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	issued, ok := a.sessions[token]
	if !ok {
		return false
	}
	if a.clock.Now().Sub(issued) > adminSessionTTL {
		delete(a.sessions, token)
		return false
	}
	return true
}

func (a *AdminAuth) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}
