package types

// Category groups posts under a named, sluggable topic.
type Category struct {
	// ID is the unique identifier of the category.
	ID int `json:"id" db:"id"`

	// Name is the human-readable category name.
	Name string `json:"name" db:"name"`

	// Slug is the unique, lowercase URL identifier of the category.
	Slug string `json:"slug" db:"slug"`
}
