// Package reset implements the password reset flow: single-use, time-limited
// tokens keyed to a user, stored in their own collection.
//
// Requesting a reset is enumeration-safe: the outcome is reported as success
// whether or not the email exists, and a token is only actually minted for a
// real account.
package reset

import (
	"context"
	"fmt"
	"time"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
	"github.com/easeshop/easeshop/internal/users"
)

// Flow issues, validates and consumes reset tokens.
type Flow struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
}

// NewFlow returns a Flow granting tokens valid for ttl.
func NewFlow(store storage.Store, ttl time.Duration) *Flow {
	return &Flow{store: store, ttl: ttl, now: time.Now}
}

// WithClock replaces the flow's time source. Intended for tests.
func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

func (f *Flow) loadTokens(ctx context.Context, s storage.Store) (map[string]models.ResetToken, error) {
	tokens, err := storage.LoadJSON[map[string]models.ResetToken](ctx, s, storage.SlotResetTokens)
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = make(map[string]models.ResetToken)
	}
	return tokens, nil
}

// Request starts a reset for email. It never discloses whether the account
// exists: the returned debug token is empty for unknown emails, and the nil
// error means only "request accepted". The token is of the form
// "reset_<unix ms>_<random hex>" and expires after the flow's ttl.
func (f *Flow) Request(ctx context.Context, email string) (string, error) {
	dir := users.NewDirectory(f.store)

	user, err := dir.FindByEmail(ctx, email)
	if err != nil {
		if err == common.ErrUserNotFound {
			return "", nil
		}
		return "", err
	}

	suffix, err := common.MakeRandHexString(6)
	if err != nil {
		return "", err
	}
	now := f.now().UTC()
	token := fmt.Sprintf("reset_%d_%s", now.UnixMilli(), suffix)

	tokens, err := f.loadTokens(ctx, f.store)
	if err != nil {
		return "", err
	}
	tokens[token] = models.ResetToken{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: now.Add(f.ttl),
	}

	if err := storage.SaveJSON(ctx, f.store, storage.SlotResetTokens, tokens); err != nil {
		return "", err
	}
	return token, nil
}

// Validate reports whether token is known and unexpired, and for which user.
// Malformed, unknown and expired tokens all fail closed.
func (f *Flow) Validate(ctx context.Context, token string) (string, bool) {
	return f.validate(ctx, f.store, token)
}

func (f *Flow) validate(ctx context.Context, s storage.Store, token string) (string, bool) {
	tokens, err := f.loadTokens(ctx, s)
	if err != nil {
		return "", false
	}

	data, ok := tokens[token]
	if !ok {
		return "", false
	}
	if !f.now().Before(data.ExpiresAt) {
		return "", false
	}
	return data.UserID, true
}

// Reset consumes token and rewrites the user's password. The credential
// rewrite and the token deletion commit together, so a token can never be
// spent without the password actually changing.
func (f *Flow) Reset(ctx context.Context, token string, newPassword []byte) error {
	return f.store.InTx(ctx, func(tx storage.Store) error {
		userID, ok := f.validate(ctx, tx, token)
		if !ok {
			return common.ErrInvalidOrExpiredToken
		}

		dir := users.NewDirectory(tx)
		if err := dir.SetPassword(ctx, userID, newPassword); err != nil {
			return err
		}

		tokens, err := f.loadTokens(ctx, tx)
		if err != nil {
			return err
		}
		delete(tokens, token)
		return storage.SaveJSON(ctx, tx, storage.SlotResetTokens, tokens)
	})
}
