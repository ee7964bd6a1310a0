package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"clean-backend/internal/auth"
	"clean-backend/internal/content"
	"clean-backend/internal/store"
	"clean-backend/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "handlers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type memStorage struct {
	puts int
}

func (m *memStorage) Put(ctx context.Context, obj upload.Object) (string, error) {
	m.puts++
	return fmt.Sprintf("https://cdn.example.org/%s/%d%s", obj.Folder, m.puts, obj.Ext), nil
}

type testServer struct {
	router  *gin.Engine
	store   *store.Store
	storage *memStorage
	admin   string
	editor  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	admin, err := s.Users.Create(ctx, content.User{Username: "admin", PasswordHash: hash, IsAdmin: true})
	require.NoError(t, err)
	editor, err := s.Users.Create(ctx, content.User{Username: "editor", PasswordHash: hash})
	require.NoError(t, err)

	adminToken, err := auth.GenerateAccessToken(admin.ID, admin.Username, true, testSecret, time.Hour)
	require.NoError(t, err)
	editorToken, err := auth.GenerateAccessToken(editor.ID, editor.Username, false, testSecret, time.Hour)
	require.NoError(t, err)

	storage := &memStorage{}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Store:     s,
		Uploads:   upload.NewService(storage, upload.DefaultMaxSize, "images"),
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	})
	return &testServer{router: r, store: s, storage: storage, admin: adminToken, editor: editorToken}
}

func (ts *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestScenarioA_CreateEventAppearsInOrder(t *testing.T) {
	ts := newTestServer(t)

	early := ts.do(http.MethodPost, "/api/events", ts.admin, `{"status":"Passé","title":"Early","description":"D","actionText":"Go","actionLink":"#a","order":0}`)
	require.Equal(t, http.StatusCreated, early.Code, early.Body.String())

	w := ts.do(http.MethodPost, "/api/events", ts.admin, map[string]any{
		"status": "Prochainement", "title": "Test", "description": "D",
		"actionText": "Go", "actionLink": "#x", "order": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[content.Event](t, w)
	assert.NotZero(t, created.ID)
	assert.Nil(t, created.Image)

	list := ts.do(http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, list.Code)
	events := decodeBody[[]content.Event](t, list)
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
	assert.Equal(t, created.ID, events[1].ID)
}

func TestScenarioB_LoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	unknown := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ghost", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, w.Body.String(), unknown.Body.String())
}

func TestLoginUnknownUserStillChecksPassword(t *testing.T) {
	s := store.NewMemory()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	_, err = s.Users.Create(context.Background(), content.User{Username: "admin", PasswordHash: hash, IsAdmin: true})
	require.NoError(t, err)

	h := NewAuthHandler(s.Users, testSecret, time.Hour)
	var checked []string
	h.checkPassword = func(password, hash string) bool {
		checked = append(checked, hash)
		return auth.CheckPassword(password, hash)
	}
	r := gin.New()
	r.POST("/login", h.Login)

	login := func(username string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"username": username, "password": "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	ghost := login("ghost")
	assert.Equal(t, http.StatusUnauthorized, ghost.Code)
	require.Len(t, checked, 1)
	assert.Equal(t, unknownUserHash(), checked[0])
	assert.NotEmpty(t, checked[0])

	wrong := login("admin")
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	require.Len(t, checked, 2)
	assert.Equal(t, hash, checked[1])
	assert.Equal(t, ghost.Body.String(), wrong.Body.String())
}

func TestLoginSuccess(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	resp := decodeBody[AuthResponse](t, w)
	assert.Equal(t, "admin", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)

	me := ts.do(http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "admin", decodeBody[content.User](t, me).Username)

	refreshed := ts.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": resp.RefreshToken})
	require.Equal(t, http.StatusOK, refreshed.Code)

	// an access token is not a refresh token
	bad := ts.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refreshToken": resp.Token})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
}

func TestScenarioC_NewsletterTwice(t *testing.T) {
	ts := newTestServer(t)

	first := ts.do(http.MethodPost, "/api/newsletter-subscriptions", "", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusCreated, first.Code)
	second := ts.do(http.MethodPost, "/api/newsletter-subscriptions", "", map[string]string{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, second.Code)

	a := decodeBody[content.NewsletterSubscription](t, first)
	b := decodeBody[content.NewsletterSubscription](t, second)
	assert.Equal(t, a.ID, b.ID)

	list := ts.do(http.MethodGet, "/api/newsletter-subscriptions", ts.admin, nil)
	require.Equal(t, http.StatusOK, list.Code)
	subs := decodeBody[[]content.NewsletterSubscription](t, list)
	require.Len(t, subs, 1)
	assert.Equal(t, "a@b.com", subs[0].Email)
}

func multipartImage(t *testing.T, size int, contentType, folder string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if folder != "" {
		require.NoError(t, mw.WriteField("folder", folder))
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)

	data := make([]byte, size)
	copy(data, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (ts *testServer) upload(t *testing.T, body *bytes.Buffer, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestScenarioD_UploadTooLarge(t *testing.T) {
	ts := newTestServer(t)
	before, err := ts.store.Events.List(context.Background())
	require.NoError(t, err)

	body, ct := multipartImage(t, 6<<20, "image/png", "events")
	w := ts.upload(t, body, ct, ts.admin)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, ts.storage.puts)

	after, err := ts.store.Events.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)

	body, ct := multipartImage(t, 2048, "image/png", "")
	w := ts.upload(t, body, ct, ts.admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeBody[upload.Result](t, w)
	assert.Equal(t, "https://cdn.example.org/images/1.png", res.URL)
	assert.Equal(t, "photo.png", res.OriginalName)
	assert.Equal(t, int64(2048), res.Size)

	body, ct = multipartImage(t, 2048, "application/pdf", "")
	assert.Equal(t, http.StatusUnsupportedMediaType, ts.upload(t, body, ct, ts.admin).Code)

	body, ct = multipartImage(t, 2048, "image/png", "")
	assert.Equal(t, http.StatusUnauthorized, ts.upload(t, body, ct, "").Code)

	missing := ts.do(http.MethodPost, "/api/upload", ts.admin, `{}`)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestScenarioE_DeleteMissingArea(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodDelete, "/api/areas/999", ts.admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Area not found"}`, w.Body.String())
}

func TestCollectionCRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/activities", ts.admin, `{"image":"https://cdn.example.org/a.jpg","title":"Plage","description":"<b>Nettoyage</b>","actionText":"Venir","actionLink":"#contact","order":"2"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[content.Activity](t, w)
	assert.Equal(t, content.ImageLeft, created.ImagePosition)
	assert.Equal(t, 2, created.Order)

	path := fmt.Sprintf("/api/activities/%d", created.ID)
	w = ts.do(http.MethodPut, path, ts.admin, `{"imagePosition":"right"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[content.Activity](t, w)
	assert.Equal(t, content.ImageRight, updated.ImagePosition)
	assert.Equal(t, "Plage", updated.Title)

	got := decodeBody[content.Activity](t, ts.do(http.MethodGet, path, "", nil))
	assert.Equal(t, updated, got)

	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, path, ts.admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodDelete, path, ts.admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPut, path, ts.admin, `{"title":"x"}`).Code)
}

func TestValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/events", ts.admin, `{"status":"s","description":"D","actionText":"Go","actionLink":"#x","order":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}](t, w)
	assert.Equal(t, "Invalid data", body.Error)
	assert.Contains(t, body.Fields, "title")

	w = ts.do(http.MethodPost, "/api/missions", ts.admin, `{"icon":"i","title":"t","description":"d","order":"abc"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"order":"must be an integer"`)

	w = ts.do(http.MethodPut, "/api/areas/1", ts.admin, `{"latitude":"north"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/events/abc", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/partners", ts.admin, `{"name":`).Code)
}

func TestContentWritesNeedAdmin(t *testing.T) {
	ts := newTestServer(t)
	body := `{"icon":"i","title":"t","description":"d","order":1}`

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, "/api/missions", "", body).Code)
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodPost, "/api/missions", ts.editor, body).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPut, "/api/contact-info", "", `{}`).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/contact-submissions", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodDelete, "/api/newsletter-subscriptions/1", "", nil).Code)
}

func TestSingletons(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/about-content", "", nil).Code)

	w := ts.do(http.MethodPut, "/api/about-content", ts.admin, map[string]string{
		"title": "Qui sommes-nous ?", "content": "<p>Association</p>", "image": "https://cdn.example.org/about.jpg",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decodeBody[content.AboutContent](t, w)

	w = ts.do(http.MethodPut, "/api/about-content", ts.admin, map[string]string{
		"title": "Notre histoire", "content": "<p>Depuis 2010</p>", "image": "https://cdn.example.org/about2.jpg",
	})
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeBody[content.AboutContent](t, w)
	assert.Equal(t, first.ID, second.ID)

	got := decodeBody[content.AboutContent](t, ts.do(http.MethodGet, "/api/about-content", "", nil))
	assert.Equal(t, "Notre histoire", got.Title)

	// a singleton replace needs every field
	w = ts.do(http.MethodPut, "/api/contact-info", ts.admin, map[string]string{"email": "contact@clean.org"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactSubmissions(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/contact-submissions", "", map[string]string{
		"name": "Léa", "email": "lea@example.org", "subject": "Bénévolat", "message": "Bonjour !",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody[content.ContactSubmission](t, w)
	assert.False(t, created.CreatedAt.IsZero())

	bad := ts.do(http.MethodPost, "/api/contact-submissions", "", map[string]string{
		"name": "Léa", "email": "nope", "subject": "s", "message": "m",
	})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	path := fmt.Sprintf("/api/contact-submissions/%d", created.ID)
	got := ts.do(http.MethodGet, path, ts.admin, nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "Léa", decodeBody[content.ContactSubmission](t, got).Name)

	list := decodeBody[[]content.ContactSubmission](t, ts.do(http.MethodGet, "/api/contact-submissions", ts.admin, nil))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, path, ts.admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, path, ts.admin, nil).Code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
