package store

import "clean-backend/internal/content"

var approachItemTable = table[content.ApproachItem]{
	name:    "approach_items",
	columns: []string{"icon", "title", "description", `"order"`},
	values: func(a content.ApproachItem) []any {
		return []any{a.Icon, a.Title, a.Description, a.Order}
	},
	scan: func(sc scanner) (content.ApproachItem, error) {
		var a content.ApproachItem
		err := sc.Scan(&a.ID, &a.Icon, &a.Title, &a.Description, &a.Order)
		return a, err
	},
}

var eventTable = table[content.Event]{
	name:    "events",
	columns: []string{"status", "title", "description", "action_text", "action_link", `"order"`, "image"},
	values: func(e content.Event) []any {
		return []any{e.Status, e.Title, e.Description, e.ActionText, e.ActionLink, e.Order, e.Image}
	},
	scan: func(sc scanner) (content.Event, error) {
		var e content.Event
		err := sc.Scan(&e.ID, &e.Status, &e.Title, &e.Description, &e.ActionText, &e.ActionLink, &e.Order, &e.Image)
		return e, err
	},
}

var missionTable = table[content.Mission]{
	name:    "missions",
	columns: []string{"icon", "title", "description", `"order"`},
	values: func(m content.Mission) []any {
		return []any{m.Icon, m.Title, m.Description, m.Order}
	},
	scan: func(sc scanner) (content.Mission, error) {
		var m content.Mission
		err := sc.Scan(&m.ID, &m.Icon, &m.Title, &m.Description, &m.Order)
		return m, err
	},
}

var activityTable = table[content.Activity]{
	name:    "activities",
	columns: []string{"image", "title", "description", "action_text", "action_link", `"order"`, "image_position"},
	values: func(a content.Activity) []any {
		return []any{a.Image, a.Title, a.Description, a.ActionText, a.ActionLink, a.Order, a.ImagePosition}
	},
	scan: func(sc scanner) (content.Activity, error) {
		var a content.Activity
		err := sc.Scan(&a.ID, &a.Image, &a.Title, &a.Description, &a.ActionText, &a.ActionLink, &a.Order, &a.ImagePosition)
		return a, err
	},
}

var partnerTable = table[content.Partner]{
	name:    "partners",
	columns: []string{"name", "logo", "url", `"order"`},
	values: func(p content.Partner) []any {
		return []any{p.Name, p.Logo, p.URL, p.Order}
	},
	scan: func(sc scanner) (content.Partner, error) {
		var p content.Partner
		err := sc.Scan(&p.ID, &p.Name, &p.Logo, &p.URL, &p.Order)
		return p, err
	},
}

var areaTable = table[content.Area]{
	name:    "areas",
	columns: []string{"name", "latitude", "longitude", "description", `"order"`},
	values: func(a content.Area) []any {
		return []any{a.Name, a.Latitude, a.Longitude, a.Description, a.Order}
	},
	scan: func(sc scanner) (content.Area, error) {
		var a content.Area
		err := sc.Scan(&a.ID, &a.Name, &a.Latitude, &a.Longitude, &a.Description, &a.Order)
		return a, err
	},
}

var contactInfoTable = table[content.ContactInfo]{
	name:    "contact_info",
	columns: []string{"email", "phone", "address"},
	values: func(c content.ContactInfo) []any {
		return []any{c.Email, c.Phone, c.Address}
	},
	scan: func(sc scanner) (content.ContactInfo, error) {
		var c content.ContactInfo
		err := sc.Scan(&c.ID, &c.Email, &c.Phone, &c.Address)
		return c, err
	},
}

var aboutContentTable = table[content.AboutContent]{
	name:    "about_content",
	columns: []string{"title", "content", "image"},
	values: func(a content.AboutContent) []any {
		return []any{a.Title, a.Content, a.Image}
	},
	scan: func(sc scanner) (content.AboutContent, error) {
		var a content.AboutContent
		err := sc.Scan(&a.ID, &a.Title, &a.Content, &a.Image)
		return a, err
	},
}
