package handlers

import (
	"net/http"
	"strings"

	"clean-backend/internal/content"
	"clean-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler accepts the public contact form and lets admins read
// and delete what came in.
type SubmissionHandler struct {
	submissions store.Submissions
}

func NewSubmissionHandler(submissions store.Submissions) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	var p content.ContactSubmissionPayload
	if !bindJSON(c, "Contact submission", &p) {
		return
	}
	if err := content.ValidateCreate(&p); err != nil {
		respondError(c, "Contact submission", err)
		return
	}
	submission, err := h.submissions.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, "Contact submission", err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) List(c *gin.Context) {
	submissions, err := h.submissions.List(c.Request.Context())
	if err != nil {
		respondError(c, "Contact submission", err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	submission, err := h.submissions.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Contact submission", err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.submissions.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Contact submission", err)
		return
	}
	if !deleted {
		respondError(c, "Contact submission", store.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

type NewsletterHandler struct {
	subscriptions store.Subscriptions
}

func NewNewsletterHandler(subscriptions store.Subscriptions) *NewsletterHandler {
	return &NewsletterHandler{subscriptions: subscriptions}
}

// Subscribe answers 201 for a new address and 200 with the existing record
// when the address is already subscribed.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var p content.NewsletterPayload
	if !bindJSON(c, "Subscription", &p) {
		return
	}
	if p.Email != nil {
		email := strings.TrimSpace(*p.Email)
		p.Email = &email
	}
	if err := content.ValidateCreate(&p); err != nil {
		respondError(c, "Subscription", err)
		return
	}
	sub, created, err := h.subscriptions.Subscribe(c.Request.Context(), *p.Email)
	if err != nil {
		respondError(c, "Subscription", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, sub)
}

func (h *NewsletterHandler) List(c *gin.Context) {
	subs, err := h.subscriptions.List(c.Request.Context())
	if err != nil {
		respondError(c, "Subscription", err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.subscriptions.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Subscription", err)
		return
	}
	if !deleted {
		respondError(c, "Subscription", store.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
