package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/easeshop/easeshop/internal/models"
)

// UpdateProfile edits the logged-in user's profile. Each field shows its
// current value; an empty answer keeps it.
func (a *App) UpdateProfile(ctx context.Context) error {
	user, err := a.session.Current(ctx)
	if err != nil {
		return err
	}

	patch := models.UserPatch{}
	prompts := []struct {
		label   string
		current string
		target  *string
	}{
		{"First name", user.FirstName, &patch.FirstName},
		{"Last name", user.LastName, &patch.LastName},
		{"Phone", user.Phone, &patch.Phone},
		{"Address", user.Address, &patch.Address},
		{"City", user.City, &patch.City},
		{"Province", user.Province, &patch.Province},
	}

	for _, p := range prompts {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (empty keeps)", p.label, p.current), os.Stdout)
		if err != nil {
			return err
		}
		*p.target = answer
	}

	updated, err := a.users.Update(ctx, user.ID, patch)
	if err != nil {
		return err
	}

	// keep the session snapshot in sync with the directory
	if err := a.session.Refresh(ctx, *updated); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

// SessionInfo extends the current session and prints its timestamps, so
// checking the session also pushes the expiry a full window out.
func (a *App) SessionInfo(ctx context.Context) error {
	if err := a.session.Extend(ctx); err != nil {
		return err
	}

	info, err := a.session.GetInfo(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Logged in at:", info.LoggedInAt.Format("2006-01-02 15:04:05"))
	fmt.Println("Expires at:  ", info.ExpiresAt.Format("2006-01-02 15:04:05"))
	fmt.Println("Expires in:  ", info.ExpiresIn)
	return nil
}
