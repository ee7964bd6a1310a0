package handlers

import (
	"time"

	"clean-backend/internal/content"
	"clean-backend/internal/middleware"
	"clean-backend/internal/store"
	"clean-backend/internal/upload"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Store     *store.Store
	Uploads   *upload.Service
	JWTSecret string
	TokenTTL  time.Duration
}

// RegisterRoutes mounts the whole /api surface on r. Content reads and the
// two public forms are open; everything else needs an admin token.
func RegisterRoutes(r gin.IRouter, d Deps) {
	api := r.Group("/api")
	admin := api.Group("")
	admin.Use(middleware.AdminMiddleware(d.JWTSecret))

	api.GET("/health", Health(d.Store))

	s := d.Store
	NewCollectionHandler("Approach item", s.ApproachItems).Register(api, admin, "/"+string(content.KindApproachItems))
	NewCollectionHandler("Event", s.Events).Register(api, admin, "/"+string(content.KindEvents))
	NewCollectionHandler("Mission", s.Missions).Register(api, admin, "/"+string(content.KindMissions))
	NewCollectionHandler("Activity", s.Activities).Register(api, admin, "/"+string(content.KindActivities))
	NewCollectionHandler("Partner", s.Partners).Register(api, admin, "/"+string(content.KindPartners))
	NewCollectionHandler("Area", s.Areas).Register(api, admin, "/"+string(content.KindAreas))

	NewSingletonHandler("Contact info", s.ContactInfo).Register(api, admin, "/"+string(content.KindContactInfo))
	NewSingletonHandler("About content", s.AboutContent).Register(api, admin, "/"+string(content.KindAboutContent))

	submissions := NewSubmissionHandler(s.Submissions)
	api.POST("/contact-submissions", submissions.Create)
	admin.GET("/contact-submissions", submissions.List)
	admin.GET("/contact-submissions/:id", submissions.Get)
	admin.DELETE("/contact-submissions/:id", submissions.Delete)

	newsletter := NewNewsletterHandler(s.Subscriptions)
	api.POST("/newsletter-subscriptions", newsletter.Subscribe)
	admin.GET("/newsletter-subscriptions", newsletter.List)
	admin.DELETE("/newsletter-subscriptions/:id", newsletter.Delete)

	admin.POST("/upload", NewUploadHandler(d.Uploads).Upload)

	authHandler := NewAuthHandler(s.Users, d.JWTSecret, d.TokenTTL)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.RefreshToken)
	api.GET("/auth/me", middleware.AuthMiddleware(d.JWTSecret), authHandler.Me)
}
