// Package dto defines data transfer objects for the users feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for POST /users.
// Username must be at least five alphanumeric characters; birthday is an
// optional ISO date.
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=5,alphanum"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
}
