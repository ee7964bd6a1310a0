package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"clean-backend/internal/content"
	"clean-backend/internal/upload"
)

// Collection is the typed view of one ordered content kind.
type Collection[E any, P any] struct {
	c    *Client
	kind content.Kind
}

func newCollection[E any, P any](c *Client, kind content.Kind) *Collection[E, P] {
	return &Collection[E, P]{c: c, kind: kind}
}

// Key is the cache key of the whole list.
func (r *Collection[E, P]) Key() string { return r.kind.Path() }

func (r *Collection[E, P]) itemKey(id int) string {
	return fmt.Sprintf("%s/%d", r.kind.Path(), id)
}

func (r *Collection[E, P]) List(ctx context.Context) ([]E, error) {
	var out []E
	err := r.c.Query(ctx, r.Key(), &out)
	return out, err
}

func (r *Collection[E, P]) Get(ctx context.Context, id int) (E, error) {
	var out E
	err := r.c.Query(ctx, r.itemKey(id), &out)
	return out, err
}

func (r *Collection[E, P]) Create(ctx context.Context, p P) (E, error) {
	var out E
	err := r.c.Mutate(ctx, func(ctx context.Context) error {
		return r.c.do(ctx, http.MethodPost, r.Key(), p, &out)
	}, r.Key())
	return out, err
}

// Update sends only the fields set in p.
func (r *Collection[E, P]) Update(ctx context.Context, id int, p P) (E, error) {
	var out E
	err := r.c.Mutate(ctx, func(ctx context.Context) error {
		return r.c.do(ctx, http.MethodPut, r.itemKey(id), p, &out)
	}, r.Key(), r.itemKey(id))
	return out, err
}

func (r *Collection[E, P]) Delete(ctx context.Context, id int) error {
	return r.c.Mutate(ctx, func(ctx context.Context) error {
		return r.c.do(ctx, http.MethodDelete, r.itemKey(id), nil, nil)
	}, r.Key(), r.itemKey(id))
}

type Singleton[E any, P any] struct {
	c    *Client
	kind content.Kind
}

func (r *Singleton[E, P]) Key() string { return r.kind.Path() }

func (r *Singleton[E, P]) Get(ctx context.Context) (E, error) {
	var out E
	err := r.c.Query(ctx, r.Key(), &out)
	return out, err
}

func (r *Singleton[E, P]) Replace(ctx context.Context, p P) (E, error) {
	var out E
	err := r.c.Mutate(ctx, func(ctx context.Context) error {
		return r.c.do(ctx, http.MethodPut, r.Key(), p, &out)
	}, r.Key())
	return out, err
}

// SubmitContact posts the public contact form.
func (c *Client) SubmitContact(ctx context.Context, p content.ContactSubmissionPayload) (content.ContactSubmission, error) {
	var out content.ContactSubmission
	key := content.KindContactSubmissions.Path()
	err := c.Mutate(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, key, p, &out)
	}, key)
	return out, err
}

func (c *Client) ContactSubmissions(ctx context.Context) ([]content.ContactSubmission, error) {
	var out []content.ContactSubmission
	err := c.Query(ctx, content.KindContactSubmissions.Path(), &out)
	return out, err
}

func (c *Client) ContactSubmission(ctx context.Context, id int) (content.ContactSubmission, error) {
	var out content.ContactSubmission
	err := c.Query(ctx, fmt.Sprintf("%s/%d", content.KindContactSubmissions.Path(), id), &out)
	return out, err
}

func (c *Client) DeleteContactSubmission(ctx context.Context, id int) error {
	list := content.KindContactSubmissions.Path()
	item := fmt.Sprintf("%s/%d", list, id)
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, item, nil, nil)
	}, list, item)
}

// Subscribe registers email for the newsletter. Subscribing an address twice
// returns the existing subscription.
func (c *Client) Subscribe(ctx context.Context, email string) (content.NewsletterSubscription, error) {
	var out content.NewsletterSubscription
	key := content.KindNewsletterSubscriptions.Path()
	err := c.Mutate(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodPost, key, content.NewsletterPayload{Email: &email}, &out)
	}, key)
	return out, err
}

func (c *Client) NewsletterSubscriptions(ctx context.Context) ([]content.NewsletterSubscription, error) {
	var out []content.NewsletterSubscription
	err := c.Query(ctx, content.KindNewsletterSubscriptions.Path(), &out)
	return out, err
}

func (c *Client) DeleteNewsletterSubscription(ctx context.Context, id int) error {
	list := content.KindNewsletterSubscriptions.Path()
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", list, id), nil, nil)
	}, list)
}

type Session struct {
	User         content.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// Login exchanges credentials for tokens and uses the access token for every
// later request.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", content.LoginPayload{Username: &username, Password: &password}, &out)
	if err != nil {
		return Session{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	var out Session
	err := c.do(ctx, http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": refreshToken}, &out)
	if err != nil {
		return Session{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

// Me is never cached; it reflects the current token.
func (c *Client) Me(ctx context.Context) (content.User, error) {
	var out content.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out)
	return out, err
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Upload sends an image to the upload sideband and returns its public URL.
// The part's content type is sniffed from the bytes.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader, folder string) (upload.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return upload.Result{}, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", mimetype.Detect(data).String())
	part, err := mw.CreatePart(header)
	if err != nil {
		return upload.Result{}, err
	}
	if _, err := part.Write(data); err != nil {
		return upload.Result{}, err
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return upload.Result{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return upload.Result{}, err
	}

	body, err := c.send(ctx, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType())
	if err != nil {
		return upload.Result{}, err
	}
	var out upload.Result
	if err := json.Unmarshal(body, &out); err != nil {
		return upload.Result{}, fmt.Errorf("failed to decode upload result: %w", err)
	}
	return out, nil
}
