package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/easeshop/easeshop/internal/common"
)

// Forgot starts the password reset flow. The confirmation message is the
// same whether or not the email is registered. With no mail delivery in a
// local shop, the token is printed here when one was minted.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.reset.Request(ctx, email)
	if err != nil {
		return err
	}

	fmt.Println("If that email is registered, a reset token has been issued.")
	if token != "" {
		fmt.Println("Your reset token:", token)
	}
	return nil
}

// ResetPassword redeems a reset token and sets a new password. The token is
// single-use; a second attempt with the same token fails.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.reset.Reset(ctx, token, password); err != nil {
		return err
	}

	fmt.Println("Password has been reset. You can now log in.")
	return nil
}
