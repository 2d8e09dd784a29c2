// Package users implements the user directory: registration with email
// uniqueness, credential checks, and merge-style profile updates, all over a
// single users collection in the record store.
package users

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/cryptox"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

// Registration carries the fields of a new account. Optional fields default
// to the empty string.
type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  []byte
	Phone     string
	Address   string
	City      string
	Province  string
}

// Directory is the keyed collection of user records. It is cheap to
// construct; build one over a transactional store view when a caller needs
// atomicity with other slots.
type Directory struct {
	store storage.Store
	now   func() time.Time
}

// NewDirectory returns a Directory bound to the given store.
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store, now: time.Now}
}

// WithClock replaces the directory's time source. Intended for tests.
func (d *Directory) WithClock(now func() time.Time) *Directory {
	d.now = now
	return d
}

func (d *Directory) loadAll(ctx context.Context) ([]models.User, error) {
	return storage.LoadJSON[[]models.User](ctx, d.store, storage.SlotUsers)
}

func (d *Directory) saveAll(ctx context.Context, all []models.User) error {
	return storage.SaveJSON(ctx, d.store, storage.SlotUsers, all)
}

// Register creates a new account. The email must not already be registered;
// the match is exact and case-sensitive. Returns the stored record with the
// credential stripped.
func (d *Directory) Register(ctx context.Context, reg Registration) (*models.User, error) {
	all, err := d.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.Email == reg.Email {
			return nil, common.ErrDuplicateEmail
		}
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	now := d.now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		Email:        reg.Email,
		PasswordHash: hash,
		Phone:        reg.Phone,
		Address:      reg.Address,
		City:         reg.City,
		Province:     reg.Province,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	all = append(all, user)
	if err := d.saveAll(ctx, all); err != nil {
		return nil, err
	}

	snapshot := user.Snapshot()
	return &snapshot, nil
}

// Authenticate checks email and password against the directory. Unknown
// email and wrong password both yield ErrInvalidCredentials, so callers
// cannot probe which accounts exist. Returns the credential-stripped record.
func (d *Directory) Authenticate(ctx context.Context, email string, password []byte) (*models.User, error) {
	all, err := d.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.Email == email && cryptox.VerifyPassword(u.PasswordHash, password) {
			snapshot := u.Snapshot()
			return &snapshot, nil
		}
	}

	return nil, common.ErrInvalidCredentials
}

// FindByEmail returns the full record for email, or ErrUserNotFound.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := d.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrUserNotFound
}

// FindByID returns the full record for id, or ErrUserNotFound.
func (d *Directory) FindByID(ctx context.Context, id string) (*models.User, error) {
	all, err := d.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, common.ErrUserNotFound
}

// Update merges the non-empty fields of patch over the record identified by
// userID and re-stamps the update time. Empty patch fields keep the prior
// values. An empty userID means there is no authenticated user.
// Returns the updated record with the credential stripped.
func (d *Directory) Update(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	if userID == "" {
		return nil, common.ErrNotAuthenticated
	}

	all, err := d.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrUserNotFound
	}

	u := &all[idx]
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.Phone != "" {
		u.Phone = patch.Phone
	}
	if patch.Address != "" {
		u.Address = patch.Address
	}
	if patch.City != "" {
		u.City = patch.City
	}
	if patch.Province != "" {
		u.Province = patch.Province
	}
	u.UpdatedAt = d.now().UTC()

	if err := d.saveAll(ctx, all); err != nil {
		return nil, err
	}

	snapshot := u.Snapshot()
	return &snapshot, nil
}

// SetPassword replaces the credential of the record identified by userID
// with a fresh hash of newPassword and re-stamps the update time.
func (d *Directory) SetPassword(ctx context.Context, userID string, newPassword []byte) error {
	all, err := d.loadAll(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == userID {
			hash, err := cryptox.HashPassword(newPassword)
			if err != nil {
				return err
			}
			all[i].PasswordHash = hash
			all[i].UpdatedAt = d.now().UTC()
			return d.saveAll(ctx, all)
		}
	}
	return common.ErrUserNotFound
}
