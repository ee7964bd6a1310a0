package content

// Payloads carry the writable fields of a kind. A nil field was absent from
// the request: create rejects it when required, update leaves it untouched.

type ApproachItemPayload struct {
	Icon        *string `json:"icon,omitempty" validate:"required,min=1"`
	Title       *string `json:"title,omitempty" validate:"required,min=1"`
	Description *string `json:"description,omitempty" validate:"required,min=1"`
	Order       *Number `json:"order,omitempty" validate:"required"`
}

func (p ApproachItemPayload) Apply(a *ApproachItem) {
	set(&a.Icon, p.Icon)
	set(&a.Title, p.Title)
	set(&a.Description, p.Description)
	if p.Order != nil {
		a.Order = p.Order.Int()
	}
}

func (p ApproachItemPayload) New() ApproachItem {
	var a ApproachItem
	p.Apply(&a)
	return a
}

type EventPayload struct {
	Status      *string        `json:"status,omitempty" validate:"required,min=1"`
	Title       *string        `json:"title,omitempty" validate:"required,min=1"`
	Description *string        `json:"description,omitempty" validate:"required,min=1"`
	ActionText  *string        `json:"actionText,omitempty" validate:"required,min=1"`
	ActionLink  *string        `json:"actionLink,omitempty" validate:"required,min=1"`
	Order       *Number        `json:"order,omitempty" validate:"required"`
	Image       NullableString `json:"image,omitzero"`
}

func (p EventPayload) Apply(e *Event) {
	set(&e.Status, p.Status)
	set(&e.Title, p.Title)
	set(&e.Description, p.Description)
	set(&e.ActionText, p.ActionText)
	set(&e.ActionLink, p.ActionLink)
	if p.Order != nil {
		e.Order = p.Order.Int()
	}
	p.Image.apply(&e.Image)
}

func (p EventPayload) New() Event {
	var e Event
	p.Apply(&e)
	return e
}

type MissionPayload struct {
	Icon        *string `json:"icon,omitempty" validate:"required,min=1"`
	Title       *string `json:"title,omitempty" validate:"required,min=1"`
	Description *string `json:"description,omitempty" validate:"required,min=1"`
	Order       *Number `json:"order,omitempty" validate:"required"`
}

func (p MissionPayload) Apply(m *Mission) {
	set(&m.Icon, p.Icon)
	set(&m.Title, p.Title)
	set(&m.Description, p.Description)
	if p.Order != nil {
		m.Order = p.Order.Int()
	}
}

func (p MissionPayload) New() Mission {
	var m Mission
	p.Apply(&m)
	return m
}

type ActivityPayload struct {
	Image         *string `json:"image,omitempty" validate:"required,min=1"`
	Title         *string `json:"title,omitempty" validate:"required,min=1"`
	Description   *string `json:"description,omitempty" validate:"required,min=1"`
	ActionText    *string `json:"actionText,omitempty" validate:"required,min=1"`
	ActionLink    *string `json:"actionLink,omitempty" validate:"required,min=1"`
	Order         *Number `json:"order,omitempty" validate:"required"`
	ImagePosition *string `json:"imagePosition,omitempty" validate:"omitempty,oneof=left right"`
}

func (p ActivityPayload) Apply(a *Activity) {
	set(&a.Image, p.Image)
	set(&a.Title, p.Title)
	set(&a.Description, p.Description)
	set(&a.ActionText, p.ActionText)
	set(&a.ActionLink, p.ActionLink)
	set(&a.ImagePosition, p.ImagePosition)
	if p.Order != nil {
		a.Order = p.Order.Int()
	}
}

func (p ActivityPayload) New() Activity {
	a := Activity{ImagePosition: ImageLeft}
	p.Apply(&a)
	return a
}

type PartnerPayload struct {
	Name  *string `json:"name,omitempty" validate:"required,min=1"`
	Logo  *string `json:"logo,omitempty" validate:"required,min=1"`
	URL   *string `json:"url,omitempty" validate:"required,min=1"`
	Order *Number `json:"order,omitempty" validate:"required"`
}

func (p PartnerPayload) Apply(pt *Partner) {
	set(&pt.Name, p.Name)
	set(&pt.Logo, p.Logo)
	set(&pt.URL, p.URL)
	if p.Order != nil {
		pt.Order = p.Order.Int()
	}
}

func (p PartnerPayload) New() Partner {
	var pt Partner
	p.Apply(&pt)
	return pt
}

type AreaPayload struct {
	Name        *string        `json:"name,omitempty" validate:"required,min=1"`
	Latitude    *string        `json:"latitude,omitempty" validate:"required,latitude"`
	Longitude   *string        `json:"longitude,omitempty" validate:"required,longitude"`
	Description NullableString `json:"description,omitzero"`
	Order       *Number        `json:"order,omitempty" validate:"required"`
}

func (p AreaPayload) Apply(a *Area) {
	set(&a.Name, p.Name)
	set(&a.Latitude, p.Latitude)
	set(&a.Longitude, p.Longitude)
	p.Description.apply(&a.Description)
	if p.Order != nil {
		a.Order = p.Order.Int()
	}
}

func (p AreaPayload) New() Area {
	var a Area
	p.Apply(&a)
	return a
}

type ContactInfoPayload struct {
	Email   *string `json:"email,omitempty" validate:"required,min=1"`
	Phone   *string `json:"phone,omitempty" validate:"required,min=1"`
	Address *string `json:"address,omitempty" validate:"required,min=1"`
}

func (p ContactInfoPayload) Apply(c *ContactInfo) {
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Address, p.Address)
}

func (p ContactInfoPayload) New() ContactInfo {
	var c ContactInfo
	p.Apply(&c)
	return c
}

type AboutContentPayload struct {
	Title   *string `json:"title,omitempty" validate:"required,min=1"`
	Content *string `json:"content,omitempty" validate:"required,min=1"`
	Image   *string `json:"image,omitempty" validate:"required,min=1"`
}

func (p AboutContentPayload) Apply(a *AboutContent) {
	set(&a.Title, p.Title)
	set(&a.Content, p.Content)
	set(&a.Image, p.Image)
}

func (p AboutContentPayload) New() AboutContent {
	var a AboutContent
	p.Apply(&a)
	return a
}

type ContactSubmissionPayload struct {
	Name    *string `json:"name,omitempty" validate:"required,min=1"`
	Email   *string `json:"email,omitempty" validate:"required,email"`
	Subject *string `json:"subject,omitempty" validate:"required,min=1"`
	Message *string `json:"message,omitempty" validate:"required,min=1"`
}

// New builds the submission without its timestamp; the store sets CreatedAt.
func (p ContactSubmissionPayload) New() ContactSubmission {
	var s ContactSubmission
	set(&s.Name, p.Name)
	set(&s.Email, p.Email)
	set(&s.Subject, p.Subject)
	set(&s.Message, p.Message)
	return s
}

type NewsletterPayload struct {
	Email *string `json:"email,omitempty" validate:"required,email"`
}

type LoginPayload struct {
	Username *string `json:"username,omitempty" validate:"required,min=1"`
	Password *string `json:"password,omitempty" validate:"required,min=1"`
}
