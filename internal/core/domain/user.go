package domain

// Role is the permission level of a user. It is loaded from the store on every
// authorized request and never embedded in a token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// SocialLinks are the optional profile URLs of a user.
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	X         string `json:"x,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// User represents a registered account.
type User struct {
	UserID       string      `json:"userID"`
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	FirstName    string      `json:"firstName,omitempty"`
	LastName     string      `json:"lastName,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	AuditFields
}
