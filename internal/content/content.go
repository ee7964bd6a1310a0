// Package content defines every content kind served by the site, the payloads
// accepted on create and update, and their validation rules.
package content

import "time"

// Kind names a content collection. It doubles as the URL segment under /api.
type Kind string

const (
	KindApproachItems           Kind = "approach-items"
	KindEvents                  Kind = "events"
	KindMissions                Kind = "missions"
	KindActivities              Kind = "activities"
	KindPartners                Kind = "partners"
	KindAreas                   Kind = "areas"
	KindContactInfo             Kind = "contact-info"
	KindAboutContent            Kind = "about-content"
	KindContactSubmissions      Kind = "contact-submissions"
	KindNewsletterSubscriptions Kind = "newsletter-subscriptions"
)

// Path returns the API path of the collection, which is also its cache key.
func (k Kind) Path() string {
	return "/api/" + string(k)
}

const (
	ImageLeft  = "left"
	ImageRight = "right"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
}

type ApproachItem struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Event struct {
	ID          int     `json:"id"`
	Status      string  `json:"status"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ActionText  string  `json:"actionText"`
	ActionLink  string  `json:"actionLink"`
	Order       int     `json:"order"`
	Image       *string `json:"image"`
}

type Mission struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Activity struct {
	ID            int    `json:"id"`
	Image         string `json:"image"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ActionText    string `json:"actionText"`
	ActionLink    string `json:"actionLink"`
	Order         int    `json:"order"`
	ImagePosition string `json:"imagePosition"`
}

type Partner struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// Area is an intervention zone shown on the map. Coordinates are kept as the
// decimal strings the admin typed.
type Area struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    string  `json:"latitude"`
	Longitude   string  `json:"longitude"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

type ContactInfo struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AboutContent struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewsletterSubscription struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Key, Position and WithID let the store treat every kind uniformly.

func (a ApproachItem) Key() int                   { return a.ID }
func (a ApproachItem) Position() int              { return a.Order }
func (a ApproachItem) WithID(id int) ApproachItem { a.ID = id; return a }
func (e Event) Key() int                          { return e.ID }
func (e Event) Position() int                     { return e.Order }
func (e Event) WithID(id int) Event               { e.ID = id; return e }
func (m Mission) Key() int                        { return m.ID }
func (m Mission) Position() int                   { return m.Order }
func (m Mission) WithID(id int) Mission           { m.ID = id; return m }
func (a Activity) Key() int                       { return a.ID }
func (a Activity) Position() int                  { return a.Order }
func (a Activity) WithID(id int) Activity         { a.ID = id; return a }
func (p Partner) Key() int                        { return p.ID }
func (p Partner) Position() int                   { return p.Order }
func (p Partner) WithID(id int) Partner           { p.ID = id; return p }
func (a Area) Key() int                           { return a.ID }
func (a Area) Position() int                      { return a.Order }
func (a Area) WithID(id int) Area                 { a.ID = id; return a }
func (c ContactInfo) Key() int                    { return c.ID }
func (c ContactInfo) WithID(id int) ContactInfo   { c.ID = id; return c }
func (a AboutContent) Key() int                   { return a.ID }
func (a AboutContent) WithID(id int) AboutContent { a.ID = id; return a }
