package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"clean-backend/internal/content"
)

type scanner interface {
	Scan(dest ...any) error
}

// table describes how one kind maps onto its relational table. columns
// excludes id, which the database assigns.
type table[E any] struct {
	name    string
	columns []string
	values  func(E) []any
	scan    func(scanner) (E, error)
}

func (t table[E]) selectSQL() string {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(t.columns, ", "), t.name)
}

func (t table[E]) insertSQL() string {
	marks := make([]string, len(t.columns))
	for i := range t.columns {
		marks[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.name, strings.Join(t.columns, ", "), strings.Join(marks, ", "))
}

func (t table[E]) updateSQL() string {
	sets := make([]string, len(t.columns))
	for i, col := range t.columns {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.name, strings.Join(sets, ", "), len(t.columns)+1)
}

// NewSQL returns a Store over db. The schema must already be migrated.
// Placeholders are written as $n in first-use order so the same statements
// run on postgres and sqlite.
func NewSQL(db *sql.DB) *Store {
	return &Store{
		ApproachItems: &sqlCollection[content.ApproachItem, content.ApproachItemPayload]{db: db, t: approachItemTable},
		Events:        &sqlCollection[content.Event, content.EventPayload]{db: db, t: eventTable},
		Missions:      &sqlCollection[content.Mission, content.MissionPayload]{db: db, t: missionTable},
		Activities:    &sqlCollection[content.Activity, content.ActivityPayload]{db: db, t: activityTable},
		Partners:      &sqlCollection[content.Partner, content.PartnerPayload]{db: db, t: partnerTable},
		Areas:         &sqlCollection[content.Area, content.AreaPayload]{db: db, t: areaTable},
		ContactInfo:   &sqlSingleton[content.ContactInfo, content.ContactInfoPayload]{db: db, t: contactInfoTable},
		AboutContent:  &sqlSingleton[content.AboutContent, content.AboutContentPayload]{db: db, t: aboutContentTable},
		Submissions:   &sqlSubmissions{db: db},
		Subscriptions: &sqlSubscriptions{db: db},
		Users:         &sqlUsers{db: db},
		ping:          db.PingContext,
	}
}

type sqlCollection[E ordered[E], P payload[E]] struct {
	db *sql.DB
	t  table[E]
}

func (c *sqlCollection[E, P]) List(ctx context.Context) ([]E, error) {
	rows, err := c.db.QueryContext(ctx, c.t.selectSQL()+` ORDER BY "order", id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.t.name, err)
	}
	defer rows.Close()

	out := []E{}
	for rows.Next() {
		row, err := c.t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", c.t.name, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", c.t.name, err)
	}
	return out, nil
}

func (c *sqlCollection[E, P]) Get(ctx context.Context, id int) (E, error) {
	row, err := c.t.scan(c.db.QueryRowContext(ctx, c.t.selectSQL()+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, ErrNotFound
		}
		return row, fmt.Errorf("failed to get %s %d: %w", c.t.name, id, err)
	}
	return row, nil
}

func (c *sqlCollection[E, P]) Create(ctx context.Context, p P) (E, error) {
	row := p.New()
	var id int
	if err := c.db.QueryRowContext(ctx, c.t.insertSQL(), c.t.values(row)...).Scan(&id); err != nil {
		return row, fmt.Errorf("failed to create %s: %w", c.t.name, err)
	}
	return row.WithID(id), nil
}

func (c *sqlCollection[E, P]) Update(ctx context.Context, id int, p P) (E, error) {
	row, err := c.Get(ctx, id)
	if err != nil {
		return row, err
	}
	p.Apply(&row)

	args := append(c.t.values(row), id)
	res, err := c.db.ExecContext(ctx, c.t.updateSQL(), args...)
	if err != nil {
		return row, fmt.Errorf("failed to update %s %d: %w", c.t.name, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return row, ErrNotFound
	}
	return row.WithID(id), nil
}

func (c *sqlCollection[E, P]) Delete(ctx context.Context, id int) (bool, error) {
	return deleteRow(ctx, c.db, c.t.name, id)
}

type sqlSingleton[E record[E], P payload[E]] struct {
	db *sql.DB
	t  table[E]
}

func (s *sqlSingleton[E, P]) Get(ctx context.Context) (E, error) {
	row, err := s.t.scan(s.db.QueryRowContext(ctx, s.t.selectSQL()+" ORDER BY id LIMIT 1"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return row, ErrNotFound
		}
		return row, fmt.Errorf("failed to get %s: %w", s.t.name, err)
	}
	return row, nil
}

func (s *sqlSingleton[E, P]) Replace(ctx context.Context, p P) (E, error) {
	existing, err := s.Get(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		row := p.New()
		var id int
		if err := s.db.QueryRowContext(ctx, s.t.insertSQL(), s.t.values(row)...).Scan(&id); err != nil {
			return row, fmt.Errorf("failed to create %s: %w", s.t.name, err)
		}
		return row.WithID(id), nil
	case err != nil:
		return existing, err
	}

	id := existing.Key()
	p.Apply(&existing)
	args := append(s.t.values(existing), id)
	if _, err := s.db.ExecContext(ctx, s.t.updateSQL(), args...); err != nil {
		return existing, fmt.Errorf("failed to update %s: %w", s.t.name, err)
	}
	return existing.WithID(id), nil
}

type sqlSubmissions struct {
	db *sql.DB
}

const submissionColumns = "id, name, email, subject, message, created_at"

func scanSubmission(sc scanner) (content.ContactSubmission, error) {
	var s content.ContactSubmission
	err := sc.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt)
	s.CreatedAt = s.CreatedAt.UTC()
	return s, err
}

func (q *sqlSubmissions) List(ctx context.Context) ([]content.ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT "+submissionColumns+" FROM contact_submissions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	out := []content.ContactSubmission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (q *sqlSubmissions) Get(ctx context.Context, id int) (content.ContactSubmission, error) {
	s, err := scanSubmission(q.db.QueryRowContext(ctx, "SELECT "+submissionColumns+" FROM contact_submissions WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, ErrNotFound
		}
		return s, fmt.Errorf("failed to get contact submission: %w", err)
	}
	return s, nil
}

func (q *sqlSubmissions) Create(ctx context.Context, p content.ContactSubmissionPayload) (content.ContactSubmission, error) {
	s := p.New()
	s.CreatedAt = timestamp()
	query := `
		INSERT INTO contact_submissions (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := q.db.QueryRowContext(ctx, query, s.Name, s.Email, s.Subject, s.Message, s.CreatedAt).Scan(&s.ID); err != nil {
		return s, fmt.Errorf("failed to create contact submission: %w", err)
	}
	return s, nil
}

func (q *sqlSubmissions) Delete(ctx context.Context, id int) (bool, error) {
	return deleteRow(ctx, q.db, "contact_submissions", id)
}

type sqlSubscriptions struct {
	db *sql.DB
}

func scanSubscription(sc scanner) (content.NewsletterSubscription, error) {
	var s content.NewsletterSubscription
	err := sc.Scan(&s.ID, &s.Email, &s.CreatedAt)
	s.CreatedAt = s.CreatedAt.UTC()
	return s, err
}

func (q *sqlSubscriptions) List(ctx context.Context) ([]content.NewsletterSubscription, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT id, email, created_at FROM newsletter_subscriptions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletter subscriptions: %w", err)
	}
	defer rows.Close()

	out := []content.NewsletterSubscription{}
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan newsletter subscription: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (q *sqlSubscriptions) Get(ctx context.Context, id int) (content.NewsletterSubscription, error) {
	s, err := scanSubscription(q.db.QueryRowContext(ctx, "SELECT id, email, created_at FROM newsletter_subscriptions WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, ErrNotFound
		}
		return s, fmt.Errorf("failed to get newsletter subscription: %w", err)
	}
	return s, nil
}

func (q *sqlSubscriptions) Subscribe(ctx context.Context, email string) (content.NewsletterSubscription, bool, error) {
	s := content.NewsletterSubscription{Email: email, CreatedAt: timestamp()}
	query := `
		INSERT INTO newsletter_subscriptions (email, created_at)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`
	err := q.db.QueryRowContext(ctx, query, s.Email, s.CreatedAt).Scan(&s.ID)
	if err == nil {
		return s, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return s, false, fmt.Errorf("failed to create newsletter subscription: %w", err)
	}

	existing, err := scanSubscription(q.db.QueryRowContext(ctx, "SELECT id, email, created_at FROM newsletter_subscriptions WHERE email = $1", email))
	if err != nil {
		return existing, false, fmt.Errorf("failed to get newsletter subscription: %w", err)
	}
	return existing, false, nil
}

func (q *sqlSubscriptions) Delete(ctx context.Context, id int) (bool, error) {
	return deleteRow(ctx, q.db, "newsletter_subscriptions", id)
}

type sqlUsers struct {
	db *sql.DB
}

func scanUser(sc scanner) (content.User, error) {
	var u content.User
	err := sc.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin)
	return u, err
}

func (q *sqlUsers) Get(ctx context.Context, id int) (content.User, error) {
	u, err := scanUser(q.db.QueryRowContext(ctx, "SELECT id, username, password_hash, is_admin FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (q *sqlUsers) GetByUsername(ctx context.Context, username string) (content.User, error) {
	u, err := scanUser(q.db.QueryRowContext(ctx, "SELECT id, username, password_hash, is_admin FROM users WHERE username = $1", username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (q *sqlUsers) Create(ctx context.Context, u content.User) (content.User, error) {
	query := `
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`
	err := q.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.IsAdmin).Scan(&u.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return content.User{}, ErrConflict
		}
		return content.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (q *sqlUsers) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return q.exec(ctx, "UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
}

func (q *sqlUsers) SetAdmin(ctx context.Context, id int, isAdmin bool) error {
	return q.exec(ctx, "UPDATE users SET is_admin = $1 WHERE id = $2", isAdmin, id)
}

func (q *sqlUsers) exec(ctx context.Context, query string, args ...any) error {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (q *sqlUsers) Count(ctx context.Context) (int, error) {
	var n int
	if err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func deleteRow(ctx context.Context, db *sql.DB, tableName string, id int) (bool, error) {
	res, err := db.ExecContext(ctx, "DELETE FROM "+tableName+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", tableName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", tableName, err)
	}
	return n > 0, nil
}
