package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"clean-backend/internal/content"
)

// memory is the state shared by every in-memory container: one lock and one
// id counter across all kinds.
type memory struct {
	mu     sync.RWMutex
	nextID int
	now    func() time.Time
}

// caller holds mu
func (m *memory) id() int {
	m.nextID++
	return m.nextID
}

// NewMemory returns a Store backed by process memory. Each call gets its own
// state, so tests can build one per test.
func NewMemory() *Store {
	m := &memory{now: timestamp}
	return &Store{
		ApproachItems: newMemCollection[content.ApproachItem, content.ApproachItemPayload](m),
		Events:        newMemCollection[content.Event, content.EventPayload](m),
		Missions:      newMemCollection[content.Mission, content.MissionPayload](m),
		Activities:    newMemCollection[content.Activity, content.ActivityPayload](m),
		Partners:      newMemCollection[content.Partner, content.PartnerPayload](m),
		Areas:         newMemCollection[content.Area, content.AreaPayload](m),
		ContactInfo:   &memSingleton[content.ContactInfo, content.ContactInfoPayload]{m: m},
		AboutContent:  &memSingleton[content.AboutContent, content.AboutContentPayload]{m: m},
		Submissions:   &memSubmissions{m: m, rows: map[int]content.ContactSubmission{}},
		Subscriptions: &memSubscriptions{m: m, rows: map[int]content.NewsletterSubscription{}},
		Users:         &memUsers{m: m, rows: map[int]content.User{}},
	}
}

type memCollection[E ordered[E], P payload[E]] struct {
	m    *memory
	rows map[int]E
}

func newMemCollection[E ordered[E], P payload[E]](m *memory) *memCollection[E, P] {
	return &memCollection[E, P]{m: m, rows: map[int]E{}}
}

func (c *memCollection[E, P]) List(ctx context.Context) ([]E, error) {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()

	out := make([]E, 0, len(c.rows))
	for _, row := range c.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position() != out[j].Position() {
			return out[i].Position() < out[j].Position()
		}
		return out[i].Key() < out[j].Key()
	})
	return out, nil
}

func (c *memCollection[E, P]) Get(ctx context.Context, id int) (E, error) {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()

	row, ok := c.rows[id]
	if !ok {
		var zero E
		return zero, ErrNotFound
	}
	return row, nil
}

func (c *memCollection[E, P]) Create(ctx context.Context, p P) (E, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	row := p.New().WithID(c.m.id())
	c.rows[row.Key()] = row
	return row, nil
}

func (c *memCollection[E, P]) Update(ctx context.Context, id int, p P) (E, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	row, ok := c.rows[id]
	if !ok {
		var zero E
		return zero, ErrNotFound
	}
	p.Apply(&row)
	row = row.WithID(id)
	c.rows[id] = row
	return row, nil
}

func (c *memCollection[E, P]) Delete(ctx context.Context, id int) (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()

	if _, ok := c.rows[id]; !ok {
		return false, nil
	}
	delete(c.rows, id)
	return true, nil
}

type memSingleton[E record[E], P payload[E]] struct {
	m   *memory
	row *E
}

func (s *memSingleton[E, P]) Get(ctx context.Context) (E, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	if s.row == nil {
		var zero E
		return zero, ErrNotFound
	}
	return *s.row, nil
}

func (s *memSingleton[E, P]) Replace(ctx context.Context, p P) (E, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if s.row == nil {
		row := p.New().WithID(s.m.id())
		s.row = &row
		return row, nil
	}
	row := *s.row
	p.Apply(&row)
	s.row = &row
	return row, nil
}

type memSubmissions struct {
	m    *memory
	rows map[int]content.ContactSubmission
}

func (s *memSubmissions) List(ctx context.Context) ([]content.ContactSubmission, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]content.ContactSubmission, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (s *memSubmissions) Get(ctx context.Context, id int) (content.ContactSubmission, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return content.ContactSubmission{}, ErrNotFound
	}
	return row, nil
}

func (s *memSubmissions) Create(ctx context.Context, p content.ContactSubmissionPayload) (content.ContactSubmission, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	row := p.New()
	row.ID = s.m.id()
	row.CreatedAt = s.m.now()
	s.rows[row.ID] = row
	return row, nil
}

func (s *memSubmissions) Delete(ctx context.Context, id int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

type memSubscriptions struct {
	m    *memory
	rows map[int]content.NewsletterSubscription
}

func (s *memSubscriptions) List(ctx context.Context) ([]content.NewsletterSubscription, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]content.NewsletterSubscription, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return newer(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

func (s *memSubscriptions) Get(ctx context.Context, id int) (content.NewsletterSubscription, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return content.NewsletterSubscription{}, ErrNotFound
	}
	return row, nil
}

func (s *memSubscriptions) Subscribe(ctx context.Context, email string) (content.NewsletterSubscription, bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, row := range s.rows {
		if row.Email == email {
			return row, false, nil
		}
	}
	row := content.NewsletterSubscription{ID: s.m.id(), Email: email, CreatedAt: s.m.now()}
	s.rows[row.ID] = row
	return row, true, nil
}

func (s *memSubscriptions) Delete(ctx context.Context, id int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

type memUsers struct {
	m    *memory
	rows map[int]content.User
}

func (u *memUsers) Get(ctx context.Context, id int) (content.User, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()

	row, ok := u.rows[id]
	if !ok {
		return content.User{}, ErrNotFound
	}
	return row, nil
}

func (u *memUsers) GetByUsername(ctx context.Context, username string) (content.User, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()

	for _, row := range u.rows {
		if row.Username == username {
			return row, nil
		}
	}
	return content.User{}, ErrNotFound
}

func (u *memUsers) Create(ctx context.Context, user content.User) (content.User, error) {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()

	for _, row := range u.rows {
		if row.Username == user.Username {
			return content.User{}, ErrConflict
		}
	}
	user.ID = u.m.id()
	u.rows[user.ID] = user
	return user, nil
}

func (u *memUsers) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()

	row, ok := u.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.PasswordHash = passwordHash
	u.rows[id] = row
	return nil
}

func (u *memUsers) SetAdmin(ctx context.Context, id int, isAdmin bool) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()

	row, ok := u.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.IsAdmin = isAdmin
	u.rows[id] = row
	return nil
}

func (u *memUsers) Count(ctx context.Context) (int, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()
	return len(u.rows), nil
}

// newer orders by creation time descending, then id descending.
func newer(at time.Time, id int, otherAt time.Time, otherID int) bool {
	if !at.Equal(otherAt) {
		return at.After(otherAt)
	}
	return id > otherID
}
