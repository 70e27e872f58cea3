package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/internhub-dev/internhub/internal/client/models"
)

func (a *App) renderApplicationLine(app models.Application) {
	title := ""
	if app.Internship != nil {
		title = app.Internship.Title
	}
	fmt.Fprintf(a.out, "#%d  %s — %s (applied %s)\n",
		app.ID, title, app.Status, app.AppliedAt.Format("2006-01-02"))
}

// applyView submits an application to an internship. The cover letter
// is read multiline; the CV attachment is optional and read from a
// local file path.
func (a *App) applyView(ctx context.Context, args []string) error {
	id, err := parseID(args, "apply <internship id>")
	if err != nil {
		return err
	}

	coverLetter, err := GetMultiline(a.reader, "Cover letter", a.out)
	if err != nil {
		return err
	}

	draft := models.ApplicationDraft{InternshipID: id, CoverLetter: coverLetter}

	cvPath, err := getSimpleText(a.reader, "Path to CV file (blank to skip)", a.out)
	if err != nil {
		return err
	}
	if cvPath != "" {
		content, err := os.ReadFile(cvPath)
		if err != nil {
			return fmt.Errorf("error reading CV file: %w", err)
		}
		draft.CV = &models.FileUpload{Name: filepath.Base(cvPath), Content: content}
	}

	app, err := a.applications.Apply(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Application #%d submitted, status: %s.\n", app.ID, app.Status)
	return nil
}

// myApplicationsView lists the student's own applications.
func (a *App) myApplicationsView(ctx context.Context, _ []string) error {
	apps, err := a.applications.Mine(ctx)
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "You have not applied to anything yet.")
		return nil
	}
	for _, app := range apps {
		a.renderApplicationLine(app)
	}
	return nil
}

// applicantsView lists applications to one of the company's postings.
func (a *App) applicantsView(ctx context.Context, args []string) error {
	id, err := parseID(args, "applicants <internship id>")
	if err != nil {
		return err
	}

	apps, err := a.applications.ForInternship(ctx, id)
	if err != nil {
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintln(a.out, "No applications yet.")
		return nil
	}
	for _, app := range apps {
		name := ""
		if app.Student != nil {
			name = app.Student.User.Username
		}
		fmt.Fprintf(a.out, "#%d  %s — %s (applied %s)\n",
			app.ID, name, app.Status, app.AppliedAt.Format("2006-01-02"))
		if app.CoverLetter != "" {
			fmt.Fprintln(a.out, "   ", app.CoverLetter)
		}
	}
	return nil
}

// updateStatusView moves an application through the review pipeline.
func (a *App) updateStatusView(ctx context.Context, args []string) error {
	const usage = "status <application id> <pending|reviewing|shortlisted|rejected|accepted>"

	id, err := parseID(args, usage)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: %s", usage)
	}

	status := models.ApplicationStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", args[1])
	}

	app, err := a.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Application #%d is now %s.\n", app.ID, app.Status)
	return nil
}
