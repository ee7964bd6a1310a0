// Package site renders the public one-page site from the API through the
// client data layer.
package site

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"clean-backend/internal/client"
	"clean-backend/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// Section names, used as anchors and as keys of Page.Failed.
const (
	SectionAbout      = "about"
	SectionApproach   = "approach"
	SectionEvents     = "events"
	SectionMissions   = "mission"
	SectionActivities = "activities"
	SectionAreas      = "areas"
	SectionPartners   = "partners"
	SectionContact    = "contact"
)

// Page is everything the home template needs. A section listed in Failed
// could not be loaded and renders a generic error instead.
type Page struct {
	About         *content.AboutContent
	ApproachItems []content.ApproachItem
	Events        []content.Event
	Missions      []content.Mission
	Activities    []content.Activity
	Areas         []content.Area
	Partners      []content.Partner
	ContactInfo   *content.ContactInfo
	Failed        map[string]bool

	Notice          string
	FormErrors      map[string]string
	ContactForm     ContactForm
	NewsletterError string
}

type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type Site struct {
	api  *client.Client
	tmpl *template.Template
}

func New(api *client.Client) (*Site, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Site{api: api, tmpl: tmpl}, nil
}

var funcs = template.FuncMap{
	// admin-authored HTML is rendered as is
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	"imageRight": func(a content.Activity) bool {
		return a.ImagePosition == content.ImageRight
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func (s *Site) Register(r *gin.Engine) {
	r.SetHTMLTemplate(s.tmpl)
	r.GET("/", s.Home)
	r.POST("/contact", s.Contact)
	r.POST("/newsletter", s.Newsletter)
}

// Load fetches every section concurrently. A failing section is recorded in
// Failed; areas and partners fall back to static content instead.
func (s *Site) Load(ctx context.Context) *Page {
	p := &Page{Failed: map[string]bool{}}
	var mu sync.Mutex
	fail := func(section string, err error) {
		log.Warn().Err(err).Str("section", section).Msg("failed to load section")
		mu.Lock()
		p.Failed[section] = true
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		about, err := s.api.AboutContent.Get(ctx)
		switch {
		case err == nil:
			p.About = &about
		case !client.IsNotFound(err):
			fail(SectionAbout, err)
		}
		return nil
	})
	g.Go(func() error {
		info, err := s.api.ContactInfo.Get(ctx)
		switch {
		case err == nil:
			p.ContactInfo = &info
		case !client.IsNotFound(err):
			fail(SectionContact, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if p.ApproachItems, err = s.api.ApproachItems.List(ctx); err != nil {
			fail(SectionApproach, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if p.Events, err = s.api.Events.List(ctx); err != nil {
			fail(SectionEvents, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if p.Missions, err = s.api.Missions.List(ctx); err != nil {
			fail(SectionMissions, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if p.Activities, err = s.api.Activities.List(ctx); err != nil {
			fail(SectionActivities, err)
		}
		return nil
	})
	g.Go(func() error {
		areas, err := s.api.Areas.List(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("areas unavailable, using fallback")
		}
		if len(areas) == 0 {
			areas = fallbackAreas
		}
		p.Areas = areas
		return nil
	})
	g.Go(func() error {
		partners, err := s.api.Partners.List(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("partners unavailable, using fallback")
		}
		if len(partners) == 0 {
			partners = fallbackPartners
		}
		p.Partners = partners
		return nil
	})
	_ = g.Wait()
	return p
}

func (s *Site) Home(c *gin.Context) {
	page := s.Load(c.Request.Context())
	switch {
	case c.Query("sent") != "":
		page.Notice = "Merci ! Votre message a bien été envoyé."
	case c.Query("subscribed") != "":
		page.Notice = "Vous êtes maintenant inscrit à notre newsletter."
	}
	c.HTML(http.StatusOK, "index.html", page)
}

func (s *Site) Contact(c *gin.Context) {
	form := ContactForm{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	_, err := s.api.SubmitContact(c.Request.Context(), content.ContactSubmissionPayload{
		Name:    &form.Name,
		Email:   &form.Email,
		Subject: &form.Subject,
		Message: &form.Message,
	})
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
		return
	}
	s.renderFormError(c, err, func(p *Page, fields map[string]string) {
		p.ContactForm = form
		p.FormErrors = fields
	})
}

func (s *Site) Newsletter(c *gin.Context) {
	_, err := s.api.Subscribe(c.Request.Context(), strings.TrimSpace(c.PostForm("email")))
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/?subscribed=1#footer")
		return
	}
	s.renderFormError(c, err, func(p *Page, fields map[string]string) {
		p.NewsletterError = fields["email"]
	})
}

// renderFormError re-renders the page with the rejected fields, or with a
// generic notice when the API failed.
func (s *Site) renderFormError(c *gin.Context, err error, keep func(p *Page, fields map[string]string)) {
	page := s.Load(c.Request.Context())

	status := http.StatusBadGateway
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
		status = http.StatusBadRequest
		keep(page, apiErr.Fields)
		page.Notice = "Veuillez corriger les champs indiqués."
	} else {
		keep(page, nil)
		log.Error().Err(err).Str("path", c.FullPath()).Msg("form submission failed")
		page.Notice = "Une erreur est survenue, veuillez réessayer plus tard."
	}
	c.HTML(status, "index.html", page)
}
