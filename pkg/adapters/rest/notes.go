package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/notewire/notewire/pkg/core"
)

const notesPath = "/notes-service/api/notes"

// userHeader scopes a notes request to the active identity.
func userHeader(ownerID string) map[string]string {
	return map[string]string{"X-User-Id": ownerID}
}

// ListNotes returns one page of the owner's notes. The service answers
// with either a bare JSON array or a Spring-style page envelope; both are
// normalized to a plain slice here.
func (c *Client) ListNotes(ctx context.Context, ownerID string, page, size int) ([]core.Note, error) {
	path := fmt.Sprintf("%s?page=%d&size=%d", notesPath, page, size)
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, userHeader(ownerID), nil, &raw); err != nil {
		return nil, err
	}
	return decodeNotesPage(raw)
}

// GetNote fetches a single note by ID.
func (c *Client) GetNote(ctx context.Context, ownerID, id string) (core.Note, error) {
	var n core.Note
	err := c.do(ctx, http.MethodGet, notesPath+"/"+url.PathEscape(id), userHeader(ownerID), nil, &n)
	if err != nil {
		if core.IsStatus(err, http.StatusNotFound) {
			return core.Note{}, fmt.Errorf("note %s: %w", id, core.ErrNotFound)
		}
		return core.Note{}, err
	}
	return n, nil
}

// CreateNote persists a draft and returns the stored note with its
// server-assigned ID and timestamps.
func (c *Client) CreateNote(ctx context.Context, ownerID string, draft core.Draft) (core.Note, error) {
	var created core.Note
	if err := c.do(ctx, http.MethodPost, notesPath, userHeader(ownerID), draft, &created); err != nil {
		return core.Note{}, err
	}
	return created, nil
}

// UpdateNote sends the full merged record. The service takes the same
// body shape as creation; ID and owner travel in the path and header.
func (c *Client) UpdateNote(ctx context.Context, ownerID string, n core.Note) (core.Note, error) {
	body := core.Draft{
		Title:    n.Title,
		Content:  n.Content,
		Tags:     n.Tags,
		Pinned:   n.Pinned,
		Archived: n.Archived,
	}

	var updated core.Note
	err := c.do(ctx, http.MethodPut, notesPath+"/"+url.PathEscape(n.ID), userHeader(ownerID), body, &updated)
	if err != nil {
		if core.IsStatus(err, http.StatusNotFound) {
			return core.Note{}, fmt.Errorf("note %s: %w", n.ID, core.ErrNotFound)
		}
		return core.Note{}, err
	}
	return updated, nil
}

// DeleteNote removes a note. The service answers 204.
func (c *Client) DeleteNote(ctx context.Context, ownerID, id string) error {
	err := c.do(ctx, http.MethodDelete, notesPath+"/"+url.PathEscape(id), userHeader(ownerID), nil, nil)
	if err != nil && core.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("note %s: %w", id, core.ErrNotFound)
	}
	return err
}

// decodeNotesPage normalizes the two listing shapes. An empty body means
// an empty page.
func decodeNotesPage(raw json.RawMessage) ([]core.Note, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var notes []core.Note
		if err := json.Unmarshal(trimmed, &notes); err != nil {
			return nil, fmt.Errorf("failed to decode notes array: %w", err)
		}
		return notes, nil
	}

	var envelope struct {
		Content []core.Note `json:"content"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode notes page envelope: %w", err)
	}
	return envelope.Content, nil
}
