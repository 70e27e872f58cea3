package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/internhub-dev/internhub/internal/client/models"
)

// dashboardView is the default landing route. What it shows depends on
// the account type: students see their applications, companies their
// postings.
func (a *App) dashboardView(ctx context.Context, _ []string) error {
	s := a.auth.Session()

	if s.Profile == nil {
		// Profile fetch failed at login; try again before rendering.
		a.auth.RefreshProfile(ctx)
		s = a.auth.Session()
	}
	if s.Profile == nil {
		fmt.Fprintln(a.out, "Profile is unavailable right now, try 'profile' later.")
		return nil
	}

	switch s.Profile.Role {
	case models.RoleStudent:
		fmt.Fprintf(a.out, "Welcome back, %s. Your applications:\n", s.Profile.User.Username)
		return a.myApplicationsView(ctx, nil)
	case models.RoleCompany:
		fmt.Fprintf(a.out, "Welcome back, %s. Your postings:\n", s.Profile.CompanyName)
		return a.listInternshipsView(ctx, []string{"mine"})
	default:
		fmt.Fprintf(a.out, "Welcome back, %s.\n", s.Profile.User.Username)
		return nil
	}
}

func (a *App) profileView(ctx context.Context, _ []string) error {
	a.auth.RefreshProfile(ctx)
	s := a.auth.Session()
	if s.Profile == nil {
		fmt.Fprintln(a.out, "Profile is unavailable right now.")
		return nil
	}
	p := s.Profile

	fmt.Fprintln(a.out, "Username: ", p.User.Username)
	fmt.Fprintln(a.out, "Email:    ", p.User.Email)
	fmt.Fprintln(a.out, "Role:     ", p.Role)
	switch p.Role {
	case models.RoleCompany:
		fmt.Fprintln(a.out, "Company:  ", p.CompanyName)
	default:
		fmt.Fprintln(a.out, "Name:     ", p.User.FirstName, p.User.LastName)
		fmt.Fprintln(a.out, "Skills:   ", p.Skills)
		if p.College != "" {
			fmt.Fprintln(a.out, "College:  ", p.College)
		}
		if p.Degree != "" {
			fmt.Fprintf(a.out, "Degree:    %s (%d)\n", p.Degree, p.GraduationYear)
		}
		if p.GitHub != "" {
			fmt.Fprintln(a.out, "GitHub:   ", p.GitHub)
		}
		if p.CV != "" {
			fmt.Fprintln(a.out, "CV:       ", p.CV)
		}
	}
	if p.Bio != "" {
		fmt.Fprintln(a.out, "Bio:      ", p.Bio)
	}
	return nil
}

// editProfileView collects a partial update. Blank input leaves a field
// untouched.
func (a *App) editProfileView(ctx context.Context, _ []string) error {
	s := a.auth.Session()

	var upd models.ProfileUpdate
	changed := false

	ask := func(prompt string, dst **string) error {
		v, err := getSimpleText(a.reader, prompt+" (blank to keep)", a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = &v
			changed = true
		}
		return nil
	}

	if err := ask("Bio", &upd.Bio); err != nil {
		return err
	}

	if s.Profile == nil || s.Profile.Role == models.RoleStudent {
		if err := ask("Skills, comma-separated", &upd.Skills); err != nil {
			return err
		}
		if err := ask("Phone", &upd.Phone); err != nil {
			return err
		}
		if err := ask("College", &upd.College); err != nil {
			return err
		}
		if err := ask("Degree", &upd.Degree); err != nil {
			return err
		}
		yearStr, err := getSimpleText(a.reader, "Graduation year (blank to keep)", a.out)
		if err != nil {
			return err
		}
		if yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				return fmt.Errorf("invalid graduation year %q", yearStr)
			}
			upd.GraduationYear = &year
			changed = true
		}
		if err := ask("GitHub URL", &upd.GitHub); err != nil {
			return err
		}
		if err := ask("LinkedIn URL", &upd.LinkedIn); err != nil {
			return err
		}
		if err := ask("Portfolio URL", &upd.Portfolio); err != nil {
			return err
		}
	}

	if s.Profile != nil && s.Profile.Role == models.RoleCompany {
		if err := ask("Company name", &upd.CompanyName); err != nil {
			return err
		}
	}

	if !changed {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	res := a.auth.UpdateProfile(ctx, upd)
	if !res.OK {
		fmt.Fprintln(a.out, "Update failed:", res.Error)
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
