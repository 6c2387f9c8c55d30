package dto

// UpdateReq represents the request body for PUT /users/:username.
// All fields are optional; absent fields are left untouched. A supplied
// password is re-hashed before storage.
type UpdateReq struct {
	Username *string `json:"username" binding:"omitempty,min=5,alphanum"`
	Password *string `json:"password" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Birthday *string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
}
