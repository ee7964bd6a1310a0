package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clean-backend/internal/client"
	"clean-backend/internal/handlers"
	"clean-backend/internal/seed"
	"clean-backend/internal/store"
	"clean-backend/internal/upload"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router *gin.Engine
	store  *store.Store
}

func newFixture(t *testing.T, seeded bool) *fixture {
	t.Helper()
	s := store.NewMemory()
	if seeded {
		_, err := seed.Content(context.Background(), s)
		require.NoError(t, err)
	}
	api := gin.New()
	handlers.RegisterRoutes(api, handlers.Deps{
		Store:     s,
		Uploads:   upload.NewService(upload.NewLocalStorage(t.TempDir(), "http://cdn.test"), 0, ""),
		JWTSecret: "site-test-secret",
		TokenTTL:  time.Hour,
	})
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return &fixture{router: siteRouter(t, srv.URL), store: s}
}

func siteRouter(t *testing.T, apiURL string) *gin.Engine {
	t.Helper()
	site, err := New(client.New(apiURL))
	require.NoError(t, err)
	r := gin.New()
	site.Register(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func post(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeRendersSeededContent(t *testing.T) {
	f := newFixture(t, true)
	w := get(f.router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Prévention")
	assert.Contains(t, body, "Collectes sur l")
	assert.Contains(t, body, "Qui sommes-nous ?")
	assert.Contains(t, body, "contact@clean-nantes.org")
	// activity and about HTML is not escaped
	assert.Contains(t, body, `<span class="highlight-blue">Bacs à Déchets Sauvages (BADS)</span>`)
	assert.Contains(t, body, "<p>C.L.E.A.N. - Conservation")
	assert.NotContains(t, body, "Impossible de charger")
}

func TestActivitiesFollowImagePosition(t *testing.T) {
	f := newFixture(t, true)
	body := get(f.router, "/").Body.String()

	assert.Equal(t, 1, strings.Count(body, `class="activity image-right"`))
	assert.Equal(t, 2, strings.Count(body, `class="activity" data-image-position="left"`))
}

func TestEmptyAreasAndPartnersUseFallback(t *testing.T) {
	f := newFixture(t, true)
	body := get(f.router, "/").Body.String()
	assert.Contains(t, body, "La Loire")
	assert.Contains(t, body, "Ville de Nantes")
}

func TestUnreachableAPI(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	apiURL := srv.URL
	srv.Close()

	r := siteRouter(t, apiURL)
	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.GreaterOrEqual(t, strings.Count(body, "Impossible de charger cette section"), 5)
	assert.Contains(t, body, "Extension future")
	assert.Contains(t, body, "FNE Pays de la Loire")
}

func TestLoadMarksFailedSections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/events" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
			return
		}
		if r.URL.Path == "/api/contact-info" || r.URL.Path == "/api/about-content" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	site, err := New(client.New(srv.URL))
	require.NoError(t, err)
	page := site.Load(context.Background())

	assert.Equal(t, map[string]bool{SectionEvents: true}, page.Failed)
	assert.Nil(t, page.About)
	assert.Nil(t, page.ContactInfo)
	assert.Len(t, page.Areas, 3)
	assert.Len(t, page.Partners, 6)
}

func TestContactForm(t *testing.T) {
	f := newFixture(t, true)

	w := post(f.router, "/contact", url.Values{
		"name":    {"Alice"},
		"email":   {"alice@example.org"},
		"subject": {"Bénévolat"},
		"message": {"Bonjour !"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?sent=1#contact", w.Header().Get("Location"))

	subs, err := f.store.Submissions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Alice", subs[0].Name)

	w = post(f.router, "/contact", url.Values{"name": {"Bob"}, "email": {"not-an-email"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="field-error"`)
	assert.Contains(t, body, `value="Bob"`)

	assert.Contains(t, get(f.router, "/?sent=1").Body.String(), "Votre message a bien été envoyé")
}

func TestNewsletterForm(t *testing.T) {
	f := newFixture(t, false)

	for i := 0; i < 2; i++ {
		w := post(f.router, "/newsletter", url.Values{"email": {"a@b.com"}})
		require.Equal(t, http.StatusSeeOther, w.Code)
	}
	subs, err := f.store.Subscriptions.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	w := post(f.router, "/newsletter", url.Values{"email": {"nope"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
