package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/internhub-dev/internhub/internal/client/models"
)

func (c *Client) ListApplications(ctx context.Context) (*models.Page[models.Application], error) {
	var page models.Page[models.Application]
	if err := c.getJSON(ctx, "/applications/", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := c.getJSON(ctx, fmt.Sprintf("/applications/%d/", id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication submits an application as multipart form data so an
// optional CV attachment can ride along. The encoded body is buffered,
// which keeps it replayable for the 401 retry.
func (c *Client) CreateApplication(ctx context.Context, draft models.ApplicationDraft) (*models.Application, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("internship_id", strconv.FormatInt(draft.InternshipID, 10)); err != nil {
		return nil, err
	}
	if err := w.WriteField("cover_letter", draft.CoverLetter); err != nil {
		return nil, err
	}
	if draft.CV != nil {
		fw, err := w.CreateFormFile("cv_copy", draft.CV.Name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write(draft.CV.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	data, err := c.do(ctx, http.MethodPost, "/applications/", w.FormDataContentType(), buf.Bytes(), false)
	if err != nil {
		return nil, err
	}

	var app models.Application
	if err := decode(data, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error) {
	in := struct {
		Status models.ApplicationStatus `json:"status"`
	}{Status: status}

	var app models.Application
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/applications/%d/", id), in, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	data, err := c.do(ctx, http.MethodGet, "/applications/my_applications/", "", nil, false)
	if err != nil {
		return nil, err
	}
	return decodeApplicationList(data)
}

func (c *Client) InternshipApplications(ctx context.Context, internshipID int64) ([]models.Application, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/applications/%d/internship_applications/", internshipID), "", nil, false)
	if err != nil {
		return nil, err
	}
	return decodeApplicationList(data)
}

// decodeApplicationList accepts both shapes the backend uses for
// application list actions: the paginated {count,next,previous,results}
// envelope and a bare array.
func decodeApplicationList(data []byte) ([]models.Application, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var apps []models.Application
		if err := decode(data, &apps); err != nil {
			return nil, err
		}
		return apps, nil
	}

	var page models.Page[models.Application]
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
