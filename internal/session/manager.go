// Package session manages the single active-session slot. The session is
// serialized as an HS256-signed JWT whose claims embed the credential-
// stripped user snapshot, so a tampered slot reads the same as an absent one.
//
// A session is valid iff the slot holds a token whose signature checks out
// and whose expiry lies in the future. Reads are self-cleaning: any invalid
// or expired token found in the slot is deleted on the spot.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

// Claims embeds the registered JWT claims plus the user snapshot asserted by
// the session.
type Claims struct {
	jwt.RegisteredClaims
	User models.User `json:"user"`
}

// Info describes the current session for display.
type Info struct {
	LoggedInAt time.Time
	ExpiresAt  time.Time
	ExpiresIn  string
}

// Manager owns the session slot.
type Manager struct {
	store  storage.Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager returns a Manager signing sessions with secret and granting ttl
// per login or extension.
func NewManager(store storage.Store, secret []byte, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the manager's time source. Intended for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) sign(user models.User, loggedInAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(loggedInAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		User: user.Snapshot(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return tokenString, nil
}

// read parses and validates the stored session. Invalid and expired tokens
// are deleted before ErrNotAuthenticated is returned.
func (m *Manager) read(ctx context.Context) (*Claims, error) {
	raw, err := m.store.Get(ctx, storage.SlotSession)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, common.ErrNotAuthenticated
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(string(raw), claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		_ = m.store.Delete(ctx, storage.SlotSession)
		return nil, common.ErrNotAuthenticated
	}

	return claims, nil
}

// Establish starts a fresh session for user, replacing any previous one.
func (m *Manager) Establish(ctx context.Context, user models.User) error {
	now := m.now().UTC()
	tokenString, err := m.sign(user, now, now.Add(m.ttl))
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.SlotSession, []byte(tokenString))
}

// IsLoggedIn reports whether a valid, unexpired session exists. As a side
// effect an expired session slot is emptied.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	_, err := m.read(ctx)
	return err == nil
}

// Current returns the session's user snapshot, or ErrNotAuthenticated.
func (m *Manager) Current(ctx context.Context) (*models.User, error) {
	claims, err := m.read(ctx)
	if err != nil {
		return nil, err
	}
	user := claims.User
	return &user, nil
}

// Logout unconditionally clears the session slot.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, storage.SlotSession)
}

// Extend grants the current session a fresh expiry window, keeping the
// identity and original login time.
func (m *Manager) Extend(ctx context.Context) error {
	claims, err := m.read(ctx)
	if err != nil {
		return err
	}

	tokenString, err := m.sign(claims.User, claims.IssuedAt.Time, m.now().UTC().Add(m.ttl))
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.SlotSession, []byte(tokenString))
}

// Refresh replaces the embedded snapshot with user, keeping login time and
// expiry. Used after a profile update.
func (m *Manager) Refresh(ctx context.Context, user models.User) error {
	claims, err := m.read(ctx)
	if err != nil {
		return err
	}

	tokenString, err := m.sign(user, claims.IssuedAt.Time, claims.ExpiresAt.Time)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.SlotSession, []byte(tokenString))
}

// GetInfo describes the current session, or returns ErrNotAuthenticated.
func (m *Manager) GetInfo(ctx context.Context) (*Info, error) {
	claims, err := m.read(ctx)
	if err != nil {
		return nil, err
	}

	expiresAt := claims.ExpiresAt.Time
	minutes := int(expiresAt.Sub(m.now()).Minutes())
	return &Info{
		LoggedInAt: claims.IssuedAt.Time,
		ExpiresAt:  expiresAt,
		ExpiresIn:  fmt.Sprintf("%d minutes", minutes),
	}, nil
}
