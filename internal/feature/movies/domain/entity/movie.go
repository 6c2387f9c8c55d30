// Package entity defines the domain entities for the movies catalog.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Genre is the genre sub-object of a movie. Name is a lookup key.
type Genre struct {
	Name        string `gorm:"column:genre_name;size:255;index" json:"name"`
	Description string `gorm:"column:genre_description;type:text" json:"description"`
}

// Director is the director sub-object of a movie. Name is a lookup key.
type Director struct {
	Name string `gorm:"column:director_name;size:255;index" json:"name"`
	Bio  string `gorm:"column:director_bio;type:text" json:"bio"`
}

// Movie is a catalog record. The catalog is read-only from the identity
// core's perspective; only the image-URL maintenance path writes to it.
type Movie struct {
	// ID is the opaque movie identifier referenced by favorites sets.
	ID string `gorm:"primaryKey;size:64" json:"id"`

	// Title is the lookup key for direct fetches.
	Title string `gorm:"uniqueIndex;size:255;not null" json:"title"`

	Description string   `gorm:"type:text" json:"description"`
	Genre       Genre    `gorm:"embedded" json:"genre"`
	Director    Director `gorm:"embedded" json:"director"`

	// ImageURL references the movie's poster image.
	ImageURL string `gorm:"size:512" json:"imageURL"`

	Featured bool `json:"featured"`
}

// BeforeCreate assigns an identifier when none was supplied.
func (m *Movie) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
