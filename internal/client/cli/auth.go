package cli

import (
	"context"
	"fmt"

	"github.com/internhub-dev/internhub/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView prompts for credentials and attempts to authenticate. A
// failure prints the backend's message; state handling lives in the
// session controller.
func (a *App) loginView(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	res := a.auth.Login(ctx, username, password)
	if !res.OK {
		fmt.Fprintln(a.out, "Login failed:", res.Error)
		return nil
	}

	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// registerView walks through account creation. Registration does not
// log the user in; they are prompted to do that separately.
func (a *App) registerView(ctx context.Context, _ []string) error {
	roleStr, err := getSimpleText(a.reader, "Account type (student/company)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		fmt.Fprintln(a.out, "Account type must be 'student' or 'company'.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	password2, err := getPassword(a.out)
	if err != nil {
		return err
	}

	reg := models.Registration{
		Username:  username,
		Email:     email,
		Password:  password,
		Password2: password2,
		Role:      role,
	}

	if role == models.RoleCompany {
		if reg.CompanyName, err = getSimpleText(a.reader, "Company name", a.out); err != nil {
			return err
		}
	} else {
		if reg.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
			return err
		}
		if reg.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
			return err
		}
	}

	res := a.auth.Register(ctx, reg)
	if !res.OK {
		fmt.Fprintln(a.out, "Registration failed:", res.Error)
		return nil
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

func (a *App) logoutView(ctx context.Context, _ []string) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
