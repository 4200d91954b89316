// Package anki talks to the AnkiConnect automation API: request/response
// calls over local HTTP, each carrying an action name and a parameter set.
// Responses hold either a result payload or an error description.
package anki

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// apiVersion is the AnkiConnect protocol version this client speaks.
const apiVersion = 6

const requestTimeout = 10 * time.Second

// Client is a thin AnkiConnect API client.
type Client struct {
	client *resty.Client
	url    string
}

// NewClient creates a Client for the AnkiConnect endpoint at url.
func NewClient(url string) *Client {
	return &Client{
		client: resty.New().SetTimeout(requestTimeout),
		url:    url,
	}
}

// envelope is the AnkiConnect request body.
type envelope struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// reply is the AnkiConnect response body.
type reply struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke sends one action and decodes the result payload into result when
// result is non-nil.
func (c *Client) invoke(ctx context.Context, action string, params any, result any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(envelope{Action: action, Version: apiVersion, Params: params}).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("ankiconnect %s: %w", action, err)
	}

	var rep reply
	if err := json.Unmarshal(resp.Body(), &rep); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}
	if rep.Error != nil && *rep.Error != "" {
		return fmt.Errorf("ankiconnect %s: %s", action, *rep.Error)
	}
	if result != nil && len(rep.Result) > 0 {
		if err := json.Unmarshal(rep.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", action, err)
		}
	}
	return nil
}

// Version queries the AnkiConnect tool version. It doubles as the
// connectivity check before a sync run.
func (c *Client) Version(ctx context.Context) (int, error) {
	var version int
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

// DeckNames lists the existing deck names.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateDeck creates a deck by name. Creating an existing deck is a no-op
// on the Anki side.
func (c *Client) CreateDeck(ctx context.Context, name string) error {
	return c.invoke(ctx, "createDeck", map[string]any{"deck": name}, nil)
}

// ModelNames lists the existing note type names.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "modelNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CardTemplate is one card definition of a note type.
type CardTemplate struct {
	Name  string `json:"Name"`
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

// CreateModel creates a note type with an ordered field list, CSS, and card
// templates bound to those fields.
func (c *Client) CreateModel(ctx context.Context, name string, fields []string, css string, templates []CardTemplate) error {
	return c.invoke(ctx, "createModel", map[string]any{
		"modelName":     name,
		"inOrderFields": fields,
		"css":           css,
		"cardTemplates": templates,
	}, nil)
}

// FindNotes returns the note ids matching the structured query string.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invoke(ctx, "findNotes", map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NoteOptions control note creation behavior.
type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// Note is the payload for addNote.
type Note struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Options   NoteOptions       `json:"options"`
	Tags      []string          `json:"tags"`
}

// AddNote creates a note and returns its id.
func (c *Client) AddNote(ctx context.Context, note Note) (int64, error) {
	var id int64
	if err := c.invoke(ctx, "addNote", map[string]any{"note": note}, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateNoteFields replaces the fields of an existing note.
func (c *Client) UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error {
	return c.invoke(ctx, "updateNoteFields", map[string]any{
		"note": map[string]any{"id": noteID, "fields": fields},
	}, nil)
}

// StoreMediaFile stores a binary asset in Anki's media folder and returns
// the stored filename, which Anki may rename on collision.
func (c *Client) StoreMediaFile(ctx context.Context, filename string, data []byte) (string, error) {
	var stored string
	err := c.invoke(ctx, "storeMediaFile", map[string]any{
		"filename": filename,
		"data":     base64.StdEncoding.EncodeToString(data),
	}, &stored)
	if err != nil {
		return "", err
	}
	if stored == "" {
		stored = filename
	}
	return stored, nil
}
