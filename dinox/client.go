// Package dinox provides a client for saving Markdown notes to the
// Dinox note-taking API.
//
// Saving tries the markdown import endpoint first and falls back to the
// structured createNote endpoint when the import is rejected:
//
//	client, err := dinox.New(token)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := client.Save(ctx, dinox.Note{
//		Title:   "Today",
//		Content: "body",
//		Tags:    []string{"a", "b"},
//	})
package dinox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/tabortao/Tabor-Skills/internal/httpx"
)

const (
	defaultBaseURL = "https://aisdk.chatgo.pro/api/openapi"
	requestTimeout = 30 * time.Second

	// codeOK is the application-level success code of the markdown
	// import endpoint. The endpoint answers HTTP 200 even for rejected
	// imports, so this exact string is the only reliable success signal.
	codeOK = "000000"

	// TokenEnvVar names the environment variable holding the API token.
	TokenEnvVar = "DINOX_TOKEN"
)

// ErrMissingToken indicates no API token was configured.
var ErrMissingToken = errors.New("DINOX_TOKEN not found: set it in .env or pass --token")

// Method identifies which endpoint created the note.
type Method string

const (
	// MethodMarkdownImport is the primary token-in-path import endpoint.
	MethodMarkdownImport Method = "markdown_import"
	// MethodCreateNote is the fallback structured creation endpoint.
	MethodCreateNote Method = "create_note"
)

// Note is the content to be saved.
type Note struct {
	// Title is optional; when set it is prepended as an H1 heading.
	Title string
	// Content is the raw Markdown body.
	Content string
	// Tags are optional; they are appended as a line of #tag tokens.
	Tags []string
}

// Result reports how a note was created.
type Result struct {
	// NoteID is the identifier of the created note, when the API
	// returned one.
	NoteID string
	// Method is the endpoint that accepted the note.
	Method Method
}

// Client talks to the Dinox API.
type Client struct {
	// BaseURL is the API root. Defaults to the hosted Dinox endpoint.
	BaseURL string

	token string
	http  *httpx.Client
}

// New creates a Client. An empty token falls back to the DINOX_TOKEN
// environment variable; a still-missing token is a configuration error
// raised before any network call.
func New(token string) (*Client, error) {
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Client{
		BaseURL: defaultBaseURL,
		token:   token,
		http:    httpx.New(httpx.Config{Timeout: requestTimeout}),
	}, nil
}

// Compose renders a note as one Markdown document: the title as a
// leading level-1 heading and the tags as a trailing line of #tag
// tokens, in the given order.
func Compose(n Note) string {
	content := n.Content
	if n.Title != "" {
		content = fmt.Sprintf("# %s\n\n%s", n.Title, content)
	}
	if len(n.Tags) > 0 {
		tokens := make([]string, len(n.Tags))
		for i, tag := range n.Tags {
			tokens[i] = "#" + tag
		}
		content = content + "\n\n" + strings.Join(tokens, " ")
	}
	return content
}

// Save stores a note. The composed Markdown is submitted to the import
// endpoint first; any rejection there routes the raw note to the
// createNote endpoint instead. Only a failure of the fallback is
// surfaced to the caller.
func (c *Client) Save(ctx context.Context, n Note) (*Result, error) {
	if res, ok := c.importMarkdown(ctx, n); ok {
		return res, nil
	}
	return c.createNote(ctx, n)
}

// SaveFile reads a Markdown file and saves it as a note. When title is
// empty, the first heading line of the file is used.
func (c *Client) SaveFile(ctx context.Context, path, title string, tags []string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read markdown file")
	}

	content := string(data)
	if title == "" {
		title = firstHeading(content)
	}
	return c.Save(ctx, Note{Title: title, Content: content, Tags: tags})
}

// importResponse is the body of the markdown import endpoint.
type importResponse struct {
	Code string `json:"code"`
	Data struct {
		NoteID string `json:"noteId"`
	} `json:"data"`
}

// importMarkdown tries the primary endpoint. Any failure (transport,
// HTTP status, application code) is a soft failure reported as ok=false.
func (c *Client) importMarkdown(ctx context.Context, n Note) (*Result, bool) {
	url := c.BaseURL + "/markdown/import/" + c.token
	payload := map[string]string{"content": Compose(n)}

	resp, err := c.http.PostJSON(ctx, url, payload, nil)
	if err != nil {
		return nil, false
	}

	var body importResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, false
	}
	if body.Code != codeOK {
		return nil, false
	}

	return &Result{NoteID: body.Data.NoteID, Method: MethodMarkdownImport}, true
}

// createNotePayload is the body of the fallback endpoint.
type createNotePayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// createNote submits title, raw content and tags to the structured
// creation endpoint, authenticating via header. Failures here are fatal.
func (c *Client) createNote(ctx context.Context, n Note) (*Result, error) {
	title := n.Title
	if title == "" {
		title = "Untitled"
	}
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	payload := createNotePayload{Title: title, Content: n.Content, Tags: tags}
	headers := map[string]string{"Authorization": c.token}

	resp, err := c.http.PostJSON(ctx, c.BaseURL+"/createNote", payload, headers)
	if err != nil {
		return nil, errors.Wrap(err, "create note")
	}

	result := &Result{Method: MethodCreateNote}

	// The note id is best effort here; the endpoint's body shape is not
	// guaranteed.
	var body importResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil {
		result.NoteID = body.Data.NoteID
	}
	return result, nil
}

// firstHeading returns the text of the first Markdown heading line.
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
