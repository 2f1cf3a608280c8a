package content

import (
	"time"
)

// The update helpers are pure functions over an in-memory Content value.
// Nothing is persisted until the caller saves the result through the
// Repository; out-of-range indices return the input unchanged.

// AddService appends a default-valued service to the end of the list.
func AddService(c Content) Content {
	out := c
	out.Services = append(append([]Service(nil), c.Services...), Service{
		Icon:        "Star",
		Title:       "Новая услуга",
		Description: "Описание услуги",
	})

	return out
}

// DeleteService removes the service at index i, shifting subsequent indices
// down by one. Any index held from before the delete is invalid afterwards.
func DeleteService(c Content, i int) Content {
	if i < 0 || i >= len(c.Services) {
		return c
	}

	out := c
	out.Services = append(append([]Service(nil), c.Services[:i]...), c.Services[i+1:]...)

	return out
}

// UpdateServiceField replaces one named field of the service at index i.
func UpdateServiceField(c Content, i int, field, value string) Content {
	if i < 0 || i >= len(c.Services) {
		return c
	}

	out := c
	out.Services = append([]Service(nil), c.Services...)

	switch field {
	case FieldIcon:
		out.Services[i].Icon = value
	case FieldTitle:
		out.Services[i].Title = value
	case FieldDescription:
		out.Services[i].Description = value
	case FieldImage:
		out.Services[i].Image = value
	}

	return out
}

// AddBlogPost appends a default-valued post dated today to the end of the list.
func AddBlogPost(c Content) Content {
	out := c
	out.Blog = append(append([]BlogPost(nil), c.Blog...), BlogPost{
		Category: "Новое",
		Title:    "Новая статья",
		Excerpt:  "Краткое описание статьи",
		Date:     time.Now().Format("02.01.2006"),
		Icon:     "FileText",
	})

	return out
}

// DeleteBlogPost removes the post at index i, shifting subsequent indices
// down by one.
func DeleteBlogPost(c Content, i int) Content {
	if i < 0 || i >= len(c.Blog) {
		return c
	}

	out := c
	out.Blog = append(append([]BlogPost(nil), c.Blog[:i]...), c.Blog[i+1:]...)

	return out
}

// UpdateBlogPostField replaces one named field of the post at index i.
func UpdateBlogPostField(c Content, i int, field, value string) Content {
	if i < 0 || i >= len(c.Blog) {
		return c
	}

	out := c
	out.Blog = append([]BlogPost(nil), c.Blog...)

	switch field {
	case FieldCategory:
		out.Blog[i].Category = value
	case FieldTitle:
		out.Blog[i].Title = value
	case FieldExcerpt:
		out.Blog[i].Excerpt = value
	case FieldDate:
		out.Blog[i].Date = value
	case FieldIcon:
		out.Blog[i].Icon = value
	case FieldImage:
		out.Blog[i].Image = value
	}

	return out
}

// UpdateContact replaces one named field of the contact block.
func UpdateContact(c Content, field, value string) Content {
	out := c

	switch field {
	case FieldName:
		out.Contact.Name = value
	case FieldEmail:
		out.Contact.Email = value
	case FieldPhone:
		out.Contact.Phone = value
	case FieldAddress:
		out.Contact.Address = value
	}

	return out
}
