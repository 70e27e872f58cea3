package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/internhub-dev/internhub/internal/client/models"
)

func internshipPath(id int64) string {
	return fmt.Sprintf("/internships/%d/", id)
}

func (c *Client) ListInternships(ctx context.Context, filter models.InternshipFilter) (*models.Page[models.Internship], error) {
	path := "/internships/"
	if q := filter.Values().Encode(); q != "" {
		path += "?" + q
	}

	var page models.Page[models.Internship]
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetInternship(ctx context.Context, id int64) (*models.Internship, error) {
	var in models.Internship
	if err := c.getJSON(ctx, internshipPath(id), &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *Client) CreateInternship(ctx context.Context, draft models.InternshipDraft) (*models.Internship, error) {
	var in models.Internship
	if err := c.sendJSON(ctx, http.MethodPost, "/internships/", draft, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *Client) UpdateInternship(ctx context.Context, id int64, draft models.InternshipDraft) (*models.Internship, error) {
	var in models.Internship
	if err := c.sendJSON(ctx, http.MethodPut, internshipPath(id), draft, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *Client) PatchInternship(ctx context.Context, id int64, patch models.InternshipPatch) (*models.Internship, error) {
	var in models.Internship
	if err := c.sendJSON(ctx, http.MethodPatch, internshipPath(id), patch, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (c *Client) DeleteInternship(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, internshipPath(id), "", nil, false)
	return err
}
