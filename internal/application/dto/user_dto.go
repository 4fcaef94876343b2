package dto

import "time"

// RegisterRequest input to register a user (plaintext password, hashed in the use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Role     string `json:"role" validate:"required,oneof=Manager SalesAgent"`
	Status   string `json:"status" validate:"required,oneof=Active Inactive"`
}

// UpdateUserRequest partial update. A supplied password is re-hashed.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=1,maxbytes=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=Manager SalesAgent"`
	Status   *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// LoginRequest credentials for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse output of a user (never includes the password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse token issued on a successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// Envelopes returned by the user routes.
type (
	UserEnvelope struct {
		Message string       `json:"message"`
		User    UserResponse `json:"user"`
	}
	UserListEnvelope struct {
		Message string         `json:"message"`
		Users   []UserResponse `json:"users"`
	}
	UserUpdatedEnvelope struct {
		Message     string       `json:"message"`
		UpdatedUser UserResponse `json:"updatedUser"`
	}
	UserDeletedEnvelope struct {
		Message     string       `json:"message"`
		DeletedUser UserResponse `json:"deletedUser"`
	}
)
