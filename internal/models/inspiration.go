package models

import "time"

// Inspiration is a user-owned gallery record. ImageURL is the empty
// string when the record has no hosted image, never null.
type Inspiration struct {
	ID          string    `json:"id"`
	UserUID     string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InspirationPatch carries a partial update. Nil fields keep the stored
// value; a non-nil pointer replaces it, including with an empty value.
type InspirationPatch struct {
	Title       *string
	Description *string
	Tags        *[]string
	ImageURL    *string
}

// Filter restricts a gallery listing. Search matches title or
// description case-insensitively; Tags must all be present on a record.
// Both are optional and combine with AND.
type Filter struct {
	Search string
	Tags   []string
}
