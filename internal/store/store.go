// Package store is the persistence gateway. Every content kind is reached
// through the same small interfaces, implemented once in memory and once over
// database/sql, so callers cannot tell the two apart.
package store

import (
	"context"
	"errors"
	"time"

	"clean-backend/internal/content"
)

var (
	// ErrNotFound is returned when no row matches the requested id, or when a
	// singleton has never been set.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique column already holds the value.
	ErrConflict = errors.New("already exists")
)

type record[E any] interface {
	Key() int
	WithID(id int) E
}

type ordered[E any] interface {
	record[E]
	Position() int
}

type payload[E any] interface {
	Apply(*E)
	New() E
}

// Collection is an ordered, id-keyed list of one content kind.
type Collection[E any, P any] interface {
	// List returns every row ascending by order, ties broken by id.
	List(ctx context.Context) ([]E, error)
	Get(ctx context.Context, id int) (E, error)
	Create(ctx context.Context, p P) (E, error)
	// Update merges the present fields of p into the row.
	Update(ctx context.Context, id int, p P) (E, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int) (bool, error)
}

// Singleton holds at most one row.
type Singleton[E any, P any] interface {
	Get(ctx context.Context) (E, error)
	// Replace creates the row when the table is empty and overwrites it otherwise.
	Replace(ctx context.Context, p P) (E, error)
}

type Submissions interface {
	List(ctx context.Context) ([]content.ContactSubmission, error)
	Get(ctx context.Context, id int) (content.ContactSubmission, error)
	Create(ctx context.Context, p content.ContactSubmissionPayload) (content.ContactSubmission, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Subscriptions interface {
	List(ctx context.Context) ([]content.NewsletterSubscription, error)
	Get(ctx context.Context, id int) (content.NewsletterSubscription, error)
	// Subscribe returns the existing subscription when the email is already
	// known; created is true only when a row was inserted.
	Subscribe(ctx context.Context, email string) (sub content.NewsletterSubscription, created bool, err error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Users interface {
	Get(ctx context.Context, id int) (content.User, error)
	GetByUsername(ctx context.Context, username string) (content.User, error)
	Create(ctx context.Context, u content.User) (content.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetAdmin(ctx context.Context, id int, isAdmin bool) error
	Count(ctx context.Context) (int, error)
}

// Store owns one container per content kind and is injected into handlers.
type Store struct {
	ApproachItems Collection[content.ApproachItem, content.ApproachItemPayload]
	Events        Collection[content.Event, content.EventPayload]
	Missions      Collection[content.Mission, content.MissionPayload]
	Activities    Collection[content.Activity, content.ActivityPayload]
	Partners      Collection[content.Partner, content.PartnerPayload]
	Areas         Collection[content.Area, content.AreaPayload]

	ContactInfo  Singleton[content.ContactInfo, content.ContactInfoPayload]
	AboutContent Singleton[content.AboutContent, content.AboutContentPayload]

	Submissions   Submissions
	Subscriptions Subscriptions
	Users         Users

	ping func(ctx context.Context) error
}

// Ping checks that the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Empty reports whether no content has been written yet. Seeding uses it to
// leave an existing database alone.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	items, err := s.ApproachItems.List(ctx)
	if err != nil {
		return false, err
	}
	if len(items) > 0 {
		return false, nil
	}
	_, err = s.AboutContent.Get(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// timestamp is a creation time as postgres TIMESTAMPTZ stores it: UTC with
// microsecond precision, so the value returned by a create equals the one
// read back later.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
