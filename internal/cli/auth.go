package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/easeshop/easeshop/internal/common"
	"github.com/easeshop/easeshop/internal/users"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new-account fields and creates the account.
// Phone and address details are optional; an empty answer leaves them blank.
//
// The password byte slice is securely wiped before returning. Registration
// does not log the user in.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Enter address (optional)", os.Stdout)
	if err != nil {
		return err
	}
	city, err := getSimpleText(a.reader, "Enter city (optional)", os.Stdout)
	if err != nil {
		return err
	}
	province, err := getSimpleText(a.reader, "Enter province (optional)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.users.Register(ctx, users.Registration{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Phone:     phone,
		Address:   address,
		City:      city,
		Province:  province,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s. You can now log in.\n", user.Email)
	return nil
}

// Login prompts for credentials, checks them against the user directory, and
// establishes a session on success. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Establish(ctx, *user); err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.FullName())
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the logged-in user's profile.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.session.Current(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	if user.Phone != "" {
		fmt.Println("Phone:", user.Phone)
	}
	if user.Address != "" {
		fmt.Printf("Address: %s, %s, %s\n", user.Address, user.City, user.Province)
	}
	return nil
}
