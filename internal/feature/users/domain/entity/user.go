// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account. It owns the credential material and
// the favorites set; handlers must never serialize PasswordHash outward.
type User struct {
	// ID is the surrogate primary key.
	ID uint `gorm:"primaryKey"`

	// Username is the public identity. Unique and compared case-sensitively
	// everywhere except deletion (see the repository's Delete).
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Plaintext passwords are never stored under any field.
	PasswordHash string `gorm:"size:255;not null"`

	// Email is the user's contact address.
	Email string `gorm:"size:255;not null"`

	// Birthday is optional profile data.
	Birthday *time.Time

	// Favorites is the user's favorites set, one row per movie identifier.
	Favorites []FavoriteMovie `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FavoriteMovie is one element of a user's favorites set. The composite
// unique index gives the set its no-duplicates semantics at the storage layer.
type FavoriteMovie struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"uniqueIndex:idx_user_movie;not null"`
	MovieID string `gorm:"uniqueIndex:idx_user_movie;size:64;not null"`
}

// FavoriteMovieIDs flattens the favorites set to its movie identifiers.
// Iteration order is not significant.
func (u *User) FavoriteMovieIDs() []string {
	ids := make([]string, 0, len(u.Favorites))
	for _, f := range u.Favorites {
		ids = append(ids, f.MovieID)
	}
	return ids
}
