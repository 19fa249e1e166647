package dto

// RegisterRequest represents registration request
type RegisterRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate checks the registration fields in the order the storefront
// surfaces them. The returned message is sent to the client verbatim.
func (r *RegisterRequest) Validate() (bool, string) {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Password == "" {
		return false, "Please fill all required fields."
	}
	if len(r.Password) < 8 {
		return false, "Password must be at least 8 characters."
	}
	if r.Password != r.ConfirmPassword {
		return false, "Passwords do not match."
	}
	return true, ""
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials were submitted.
func (r *LoginRequest) Validate() (bool, string) {
	if r.Email == "" || r.Password == "" {
		return false, "Please enter your email and password."
	}
	return true, ""
}

// SessionUser is the authenticated identity echoed back to the client
// on login and from the session probe.
type SessionUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
