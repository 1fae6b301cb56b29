package models

// SocialLinks is the embedded social profile sub-document of a user.
type SocialLinks struct {
	Website   string `db:"website" bson:"website,omitempty"`
	Facebook  string `db:"facebook" bson:"facebook,omitempty"`
	Instagram string `db:"instagram" bson:"instagram,omitempty"`
	LinkedIn  string `db:"linkedin" bson:"linkedin,omitempty"`
	X         string `db:"x" bson:"x,omitempty"`
	YouTube   string `db:"youtube" bson:"youtube,omitempty"`
}

// User is the persisted representation of an account.
type User struct {
	UserID       string      `db:"user_id" bson:"_id"`
	Username     string      `db:"username" bson:"username"`
	Email        string      `db:"email" bson:"email"`
	PasswordHash string      `db:"password_hash" bson:"passwordHash"`
	Role         string      `db:"role" bson:"role"`
	FirstName    string      `db:"first_name" bson:"firstName,omitempty"`
	LastName     string      `db:"last_name" bson:"lastName,omitempty"`
	SocialLinks  SocialLinks `bson:"socialLinks"`
	AuditFields  `bson:",inline"`
}
