// Package content implements the site content collection: the services,
// blog posts and contact details shown on the public pages and edited
// through the admin panel. The whole collection is persisted as one JSON
// value and replaced wholesale on every save.
package content

// Service is one entry of the ordered services list. Position in the list is
// its only identity; deleting an entry renumbers the ones after it.
type Service struct {
	Icon        string `form:"icon"        json:"icon"`
	Title       string `form:"title"       json:"title"`
	Description string `form:"description" json:"description"`
	Image       string `form:"image"       json:"image,omitempty"`
}

// BlogPost is one entry of the ordered blog list. Date is free text and is
// never parsed. Same positional identity rule as Service.
type BlogPost struct {
	Category string `form:"category" json:"category"`
	Title    string `form:"title"    json:"title"`
	Excerpt  string `form:"excerpt"  json:"excerpt"`
	Date     string `form:"date"     json:"date"`
	Icon     string `form:"icon"     json:"icon"`
	Image    string `form:"image"    json:"image,omitempty"`
}

// Contact holds the studio contact details, exactly one per Content.
type Contact struct {
	Name    string `form:"name"    json:"name"`
	Email   string `form:"email"   json:"email"`
	Phone   string `form:"phone"   json:"phone"`
	Address string `form:"address" json:"address"`
}

// Content is the persisted aggregate of everything editable on the site.
type Content struct {
	Services []Service  `json:"services"`
	Blog     []BlogPost `json:"blog"`
	Contact  Contact    `json:"contact"`
}

// Service field names accepted by UpdateServiceField and UpdateBlogPostField.
const (
	FieldIcon        = "icon"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldCategory    = "category"
	FieldExcerpt     = "excerpt"
	FieldDate        = "date"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
)
