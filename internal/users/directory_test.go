package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/models"
	"github.com/easeshop/easeshop/internal/storage"
)

func newDirectory(t *testing.T) (*Directory, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewDirectory(store), store
}

func register(t *testing.T, d *Directory, email string) *models.User {
	t.Helper()
	u, err := d.Register(context.Background(), Registration{
		FirstName: "Ali",
		LastName:  "Khan",
		Email:     email,
		Password:  []byte("pass123"),
		Address:   "12 Mall Road",
	})
	require.NoError(t, err)
	return u
}

func TestRegister_AssignsIDAndStripsCredential(t *testing.T) {
	d, _ := newDirectory(t)

	u := register(t, d, "ali@example.com")

	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.PasswordHash, "returned snapshot must not carry the credential")
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	d, store := newDirectory(t)
	ctx := context.Background()

	register(t, d, "ali@example.com")

	_, err := d.Register(ctx, Registration{Email: "ali@example.com", Password: []byte("other")})
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	all, err := storage.LoadJSON[[]models.User](ctx, store, storage.SlotUsers)
	require.NoError(t, err)
	assert.Len(t, all, 1, "directory size must be unchanged after a rejected registration")
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	d, _ := newDirectory(t)

	register(t, d, "ali@example.com")

	_, err := d.Register(context.Background(), Registration{Email: "Ali@example.com", Password: []byte("x")})
	require.NoError(t, err, "differently-cased email is a distinct account")
}

func TestAuthenticate_Success(t *testing.T) {
	d, _ := newDirectory(t)

	register(t, d, "ali@example.com")

	u, err := d.Authenticate(context.Background(), "ali@example.com", []byte("pass123"))
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)
}

func TestAuthenticate_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	register(t, d, "ali@example.com")

	_, errWrongPass := d.Authenticate(ctx, "ali@example.com", []byte("nope"))
	_, errNoUser := d.Authenticate(ctx, "ghost@example.com", []byte("pass123"))

	require.ErrorIs(t, errWrongPass, common.ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, common.ErrInvalidCredentials)
}

func TestUpdate_MergesOnlyNonEmptyFields(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	u := register(t, d, "ali@example.com")

	got, err := d.Update(ctx, u.ID, models.UserPatch{City: "Lahore"})
	require.NoError(t, err)

	assert.Equal(t, "Lahore", got.City)
	assert.Equal(t, "12 Mall Road", got.Address, "fields absent from the patch keep their prior value")
	assert.Equal(t, "Ali", got.FirstName)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestUpdate_RequiresUserID(t *testing.T) {
	d, _ := newDirectory(t)

	_, err := d.Update(context.Background(), "", models.UserPatch{City: "Lahore"})
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestUpdate_OrphanedIDReturnsUserNotFound(t *testing.T) {
	d, _ := newDirectory(t)

	register(t, d, "ali@example.com")

	_, err := d.Update(context.Background(), "no-such-id", models.UserPatch{City: "Lahore"})
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestSetPassword_ReplacesCredential(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	u := register(t, d, "ali@example.com")

	require.NoError(t, d.SetPassword(ctx, u.ID, []byte("newpass")))

	_, err := d.Authenticate(ctx, "ali@example.com", []byte("pass123"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = d.Authenticate(ctx, "ali@example.com", []byte("newpass"))
	require.NoError(t, err)
}

func TestSetPassword_UnknownUser(t *testing.T) {
	d, _ := newDirectory(t)

	err := d.SetPassword(context.Background(), "ghost", []byte("x"))
	require.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestFindByEmailAndID(t *testing.T) {
	d, _ := newDirectory(t)
	ctx := context.Background()

	u := register(t, d, "ali@example.com")

	byEmail, err := d.FindByEmail(ctx, "ali@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.NotEmpty(t, byEmail.PasswordHash, "full record keeps the credential for internal use")

	byID, err := d.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ali@example.com", byID.Email)

	_, err = d.FindByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, common.ErrUserNotFound)
}
