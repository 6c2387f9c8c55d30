package dto

import (
	"time"

	"github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
)

// UserRes is the outward representation of a user. Credential material is
// redacted: the password hash never appears in any response.
type UserRes struct {
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Birthday       *string  `json:"birthday,omitempty"`
	FavoriteMovies []string `json:"favoriteMovies"`
}

// NewUserRes maps a user entity to its redacted response shape.
func NewUserRes(u *entity.User) UserRes {
	var birthday *string
	if u.Birthday != nil {
		s := u.Birthday.Format(time.DateOnly)
		birthday = &s
	}
	return UserRes{
		Username:       u.Username,
		Email:          u.Email,
		Birthday:       birthday,
		FavoriteMovies: u.FavoriteMovieIDs(),
	}
}

// NewUserResList maps a slice of user entities to their response shapes.
func NewUserResList(users []*entity.User) []UserRes {
	out := make([]UserRes, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserRes(u))
	}
	return out
}
