// Package seed fills an empty store with the association's starting content
// and makes sure a bootstrap admin account exists.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"clean-backend/internal/auth"
	"clean-backend/internal/content"
	"clean-backend/internal/store"
)

// Content writes the sample sections when the store holds no content yet.
// It reports whether anything was written.
func Content(ctx context.Context, s *store.Store) (bool, error) {
	empty, err := s.Empty(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to inspect store: %w", err)
	}
	if !empty {
		log.Debug().Msg("Store already holds content, skipping seed")
		return false, nil
	}

	for _, p := range approachItems {
		if _, err := s.ApproachItems.Create(ctx, p); err != nil {
			return false, fmt.Errorf("failed to seed approach item: %w", err)
		}
	}
	for _, p := range events {
		if _, err := s.Events.Create(ctx, p); err != nil {
			return false, fmt.Errorf("failed to seed event: %w", err)
		}
	}
	for _, p := range missions {
		if _, err := s.Missions.Create(ctx, p); err != nil {
			return false, fmt.Errorf("failed to seed mission: %w", err)
		}
	}
	for _, p := range activities {
		if _, err := s.Activities.Create(ctx, p); err != nil {
			return false, fmt.Errorf("failed to seed activity: %w", err)
		}
	}
	if _, err := s.ContactInfo.Replace(ctx, contactInfo); err != nil {
		return false, fmt.Errorf("failed to seed contact info: %w", err)
	}
	if _, err := s.AboutContent.Replace(ctx, aboutContent); err != nil {
		return false, fmt.Errorf("failed to seed about content: %w", err)
	}

	log.Info().
		Int("approach_items", len(approachItems)).
		Int("events", len(events)).
		Int("missions", len(missions)).
		Int("activities", len(activities)).
		Msg("Seeded initial content")
	return true, nil
}

// Admin creates the named admin user when it does not exist. An existing user
// is promoted but keeps its password. With an empty password nothing is
// created.
func Admin(ctx context.Context, users store.Users, username, password string) error {
	existing, err := users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		if existing.IsAdmin {
			return nil
		}
		if err := users.SetAdmin(ctx, existing.ID, true); err != nil {
			return fmt.Errorf("failed to promote %q: %w", username, err)
		}
		log.Info().Str("username", username).Msg("Promoted existing user to admin")
		return nil
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("failed to look up %q: %w", username, err)
	}

	if password == "" {
		log.Warn().Str("username", username).Msg("ADMIN_PASSWORD not set, no admin account created")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := users.Create(ctx, content.User{Username: username, PasswordHash: hash, IsAdmin: true}); err != nil {
		return fmt.Errorf("failed to create admin %q: %w", username, err)
	}
	log.Info().Str("username", username).Msg("Created admin user")
	return nil
}
