// Package client is the data layer shared by the public site and admin
// tooling. Reads go through a keyed cache with a staleness window; writes
// invalidate the keys they touch once the server has accepted them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"clean-backend/internal/cache"
	"clean-backend/internal/content"
)

const DefaultStaleTime = 5 * time.Minute

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s %v", e.Status, e.Message, e.Fields)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL   string
	http      *http.Client
	cache     cache.Cache
	staleTime time.Duration
	group     singleflight.Group

	mu    sync.RWMutex
	token string

	// gens counts invalidations per key. A fetch that started before an
	// invalidation must not cache its body.
	genMu sync.Mutex
	gens  map[string]uint64

	ApproachItems *Collection[content.ApproachItem, content.ApproachItemPayload]
	Events        *Collection[content.Event, content.EventPayload]
	Missions      *Collection[content.Mission, content.MissionPayload]
	Activities    *Collection[content.Activity, content.ActivityPayload]
	Partners      *Collection[content.Partner, content.PartnerPayload]
	Areas         *Collection[content.Area, content.AreaPayload]
	ContactInfo   *Singleton[content.ContactInfo, content.ContactInfoPayload]
	AboutContent  *Singleton[content.AboutContent, content.AboutContentPayload]
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache replaces the default in-memory cache, e.g. with a shared Redis.
func WithCache(cc cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}

func WithStaleTime(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 15 * time.Second},
		staleTime: DefaultStaleTime,
		gens:      make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.NewMemory(c.staleTime)
	}

	c.ApproachItems = newCollection[content.ApproachItem, content.ApproachItemPayload](c, content.KindApproachItems)
	c.Events = newCollection[content.Event, content.EventPayload](c, content.KindEvents)
	c.Missions = newCollection[content.Mission, content.MissionPayload](c, content.KindMissions)
	c.Activities = newCollection[content.Activity, content.ActivityPayload](c, content.KindActivities)
	c.Partners = newCollection[content.Partner, content.PartnerPayload](c, content.KindPartners)
	c.Areas = newCollection[content.Area, content.AreaPayload](c, content.KindAreas)
	c.ContactInfo = &Singleton[content.ContactInfo, content.ContactInfoPayload]{c: c, kind: content.KindContactInfo}
	c.AboutContent = &Singleton[content.AboutContent, content.AboutContentPayload]{c: c, kind: content.KindAboutContent}
	return c
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Query decodes the body of GET key into dst, serving it from the cache while
// fresh. Concurrent queries for the same key share one request, which keeps
// running when the caller that started it gives up.
func (c *Client) Query(ctx context.Context, key string, dst any) error {
	body, err := c.cache.Get(ctx, key)
	if err == nil {
		return json.Unmarshal(body, dst)
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	ch := c.group.DoChan(key, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), key)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return json.Unmarshal(res.Val.([]byte), dst)
	}
}

// fetch GETs key and caches the body unless key was invalidated meanwhile.
func (c *Client) fetch(ctx context.Context, key string) ([]byte, error) {
	if c.http.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.http.Timeout)
		defer cancel()
	}
	gen := c.generation(key)
	body, err := c.send(ctx, http.MethodGet, key, nil, "")
	if err != nil {
		return nil, err
	}
	if c.generation(key) != gen {
		return body, nil
	}
	if err := c.cache.Set(ctx, key, body, c.staleTime); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		return body, nil
	}
	// a Mutate that ran between the check and the write has already deleted
	if c.generation(key) != gen {
		if err := c.cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
		}
	}
	return body, nil
}

func (c *Client) generation(key string) uint64 {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	return c.gens[key]
}

func (c *Client) bump(keys ...string) {
	c.genMu.Lock()
	for _, key := range keys {
		c.gens[key]++
	}
	c.genMu.Unlock()
}

// Mutate runs fn and, only when it succeeds, invalidates keys so the next
// Query refetches them.
func (c *Client) Mutate(ctx context.Context, fn func(ctx context.Context) error, keys ...string) error {
	if err := fn(ctx); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	c.bump(keys...)
	for _, key := range keys {
		c.group.Forget(key)
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
	return nil
}

// Invalidate drops keys from the cache without a mutation.
func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	return c.Mutate(ctx, func(context.Context) error { return nil }, keys...)
}

func (c *Client) Close() error {
	return c.cache.Close()
}

// do sends a JSON request and decodes the answer into dst when dst is not nil.
func (c *Client) do(ctx context.Context, method, path string, in, dst any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	out, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	if dst == nil || len(out) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, dst); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, out)
	}
	return out, nil
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Fields = payload.Fields
	} else {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
