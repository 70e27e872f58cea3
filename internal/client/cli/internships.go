package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/internhub-dev/internhub/internal/client/models"
)

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (a *App) renderInternshipLine(in models.Internship) {
	state := "open"
	if !in.IsActive {
		state = "closed"
	}
	remote := ""
	if in.Remote {
		remote = ", remote"
	}
	fmt.Fprintf(a.out, "#%d  %s — %s (%s%s) [%s]\n", in.ID, in.Title, in.Location, in.Duration, remote, state)
}

func (a *App) renderPageFooter(page *models.Page[models.Internship]) {
	fmt.Fprintf(a.out, "%d total", page.Count)
	if page.Next != "" {
		fmt.Fprint(a.out, ", more on next page")
	}
	fmt.Fprintln(a.out)
}

// listInternshipsView shows a page of postings. Optional arg: page
// number. Companies typically follow up with 'internships mine'.
func (a *App) listInternshipsView(ctx context.Context, args []string) error {
	filter := models.InternshipFilter{}
	for _, arg := range args {
		if arg == "mine" {
			filter.MyInternships = true
			continue
		}
		if n, err := strconv.Atoi(arg); err == nil {
			filter.Page = n
		}
	}

	page, err := a.internships.List(ctx, filter)
	if err != nil {
		return err
	}

	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, "No internships found.")
		return nil
	}
	for _, in := range page.Results {
		a.renderInternshipLine(in)
	}
	a.renderPageFooter(page)
	return nil
}

// searchView prompts for filter criteria and lists matches.
func (a *App) searchView(ctx context.Context, _ []string) error {
	q, err := getSimpleText(a.reader, "Keywords (blank for any)", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (blank for any)", a.out)
	if err != nil {
		return err
	}
	skills, err := getSimpleText(a.reader, "Skills, comma-separated (blank for any)", a.out)
	if err != nil {
		return err
	}
	remoteStr, err := getSimpleText(a.reader, "Remote only? (y/n, blank for any)", a.out)
	if err != nil {
		return err
	}

	filter := models.InternshipFilter{Query: q, Location: location, Skills: skills}
	switch strings.ToLower(remoteStr) {
	case "y", "yes":
		v := true
		filter.Remote = &v
	case "n", "no":
		v := false
		filter.Remote = &v
	}

	page, err := a.internships.List(ctx, filter)
	if err != nil {
		return err
	}
	if len(page.Results) == 0 {
		fmt.Fprintln(a.out, "No internships matched.")
		return nil
	}
	for _, in := range page.Results {
		a.renderInternshipLine(in)
	}
	a.renderPageFooter(page)
	return nil
}

func (a *App) internshipDetailView(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	in, err := a.internships.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "#%d %s\n", in.ID, in.Title)
	if in.Poster != nil && in.Poster.CompanyName != "" {
		fmt.Fprintln(a.out, "Company:    ", in.Poster.CompanyName)
	}
	fmt.Fprintln(a.out, "Location:   ", in.Location)
	fmt.Fprintln(a.out, "Remote:     ", in.Remote)
	fmt.Fprintln(a.out, "Duration:   ", in.Duration)
	fmt.Fprintln(a.out, "Stipend:    ", in.Stipend)
	fmt.Fprintln(a.out, "Skills:     ", in.SkillsRequired)
	fmt.Fprintln(a.out, "Apply by:   ", in.LastDate)
	fmt.Fprintln(a.out, "Active:     ", in.IsActive)
	fmt.Fprintln(a.out, "Applicants: ", in.ApplicationsCount)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, in.Description)
	return nil
}

// promptDraft collects internship fields. Existing values (when
// editing) are kept on blank input.
func (a *App) promptDraft(current *models.Internship) (models.InternshipDraft, error) {
	draft := models.InternshipDraft{IsActive: true}
	if current != nil {
		draft = models.InternshipDraft{
			Title:          current.Title,
			Description:    current.Description,
			SkillsRequired: current.SkillsRequired,
			Stipend:        current.Stipend,
			Duration:       current.Duration,
			Location:       current.Location,
			Remote:         current.Remote,
			LastDate:       current.LastDate,
			IsActive:       current.IsActive,
		}
	}

	ask := func(prompt string, dst *string) error {
		full := prompt
		if *dst != "" {
			full = fmt.Sprintf("%s [%s]", prompt, *dst)
		}
		v, err := getSimpleText(a.reader, full, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
		return nil
	}

	if err := ask("Title", &draft.Title); err != nil {
		return draft, err
	}
	description, err := GetMultiline(a.reader, "Description", a.out)
	if err != nil {
		return draft, err
	}
	if description != "" {
		draft.Description = description
	}
	if err := ask("Required skills (comma-separated)", &draft.SkillsRequired); err != nil {
		return draft, err
	}
	if err := ask("Monthly stipend", &draft.Stipend); err != nil {
		return draft, err
	}
	if err := ask("Duration (e.g. 3 months)", &draft.Duration); err != nil {
		return draft, err
	}
	if err := ask("Location", &draft.Location); err != nil {
		return draft, err
	}
	remoteStr, err := getSimpleText(a.reader, "Remote? (y/n)", a.out)
	if err != nil {
		return draft, err
	}
	if remoteStr != "" {
		draft.Remote = strings.EqualFold(remoteStr, "y") || strings.EqualFold(remoteStr, "yes")
	}
	if err := ask("Last date to apply (YYYY-MM-DD)", &draft.LastDate); err != nil {
		return draft, err
	}

	return draft, nil
}

func (a *App) createInternshipView(ctx context.Context, _ []string) error {
	draft, err := a.promptDraft(nil)
	if err != nil {
		return err
	}

	in, err := a.internships.Create(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Posted internship #%d.\n", in.ID)
	return nil
}

func (a *App) editInternshipView(ctx context.Context, args []string) error {
	id, err := parseID(args, "edit <id>")
	if err != nil {
		return err
	}

	current, err := a.internships.Get(ctx, id)
	if err != nil {
		return err
	}

	draft, err := a.promptDraft(current)
	if err != nil {
		return err
	}

	if _, err := a.internships.Update(ctx, id, draft); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated internship #%d.\n", id)
	return nil
}

func (a *App) closeInternshipView(ctx context.Context, args []string) error {
	id, err := parseID(args, "close <id>")
	if err != nil {
		return err
	}

	if _, err := a.internships.Deactivate(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Internship #%d is no longer accepting applications.\n", id)
	return nil
}

func (a *App) deleteInternshipView(ctx context.Context, args []string) error {
	id, err := parseID(args, "remove <id>")
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete internship #%d? (y/n)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.internships.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted internship #%d.\n", id)
	return nil
}
