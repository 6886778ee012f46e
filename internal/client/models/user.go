package models

// User is the profile of the signed-in entrepreneur.
type User struct {
	ID                 int64  `json:"id"`
	Email              string `json:"email"`
	FullName           string `json:"full_name"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	BusinessName       string `json:"business_name,omitempty"`
	Sector             string `json:"sector,omitempty"`
	County             string `json:"county,omitempty"`
	LanguagePreference string `json:"language_preference,omitempty"`
	Points             int    `json:"points"`
	CreatedAt          string `json:"created_at,omitempty"`
}

const DefaultLanguage = "en"

// DisplayName falls back to "Profile" when the user has no name yet.
func (u *User) DisplayName() string {
	if u == nil || u.FullName == "" {
		return "Profile"
	}
	return u.FullName
}

// BusinessOrDefault falls back to "Entrepreneur".
func (u *User) BusinessOrDefault() string {
	if u == nil || u.BusinessName == "" {
		return "Entrepreneur"
	}
	return u.BusinessName
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email              string `json:"email"`
	Password           string `json:"password"`
	FullName           string `json:"full_name"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	BusinessName       string `json:"business_name,omitempty"`
	Sector             string `json:"sector,omitempty"`
	County             string `json:"county,omitempty"`
	LanguagePreference string `json:"language_preference,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        *User  `json:"user"`
}

// ProfileUpdate is the editable subset of User.
type ProfileUpdate struct {
	FullName           string `json:"full_name"`
	BusinessName       string `json:"business_name"`
	Sector             string `json:"sector"`
	County             string `json:"county"`
	LanguagePreference string `json:"language_preference"`
}
