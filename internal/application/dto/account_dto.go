package dto

import "time"

// RegisterRequest is visitor self-registration. Identifier is an email or a
// phone number and becomes the username.
type RegisterRequest struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest credentials for any account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated account.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// CreateStaffRequest is admin-issued credentials for an officer or unit
// admin. SpecificUnit may be the whole-unit sentinel, in which case the
// account is scoped to the entire parent unit.
type CreateStaffRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"` // OFFICER or ADMIN
	Category     string `json:"category"`
	ParentUnit   string `json:"parent_unit"`
	SpecificUnit string `json:"specific_unit"`
}

// UpdateProfileRequest self-service profile change. Only the display name
// and password can change; role and unit are immutable through this path.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Password    string `json:"password"` // empty = keep current
}

// AccountResponse an account without its credential.
type AccountResponse struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Unit        string    `json:"unit"`
	ParentUnit  string    `json:"parent_unit,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
