package models

// Topic is a category label for articles. Topics are immutable reference
// data seeded by migrations.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
