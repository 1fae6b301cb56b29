package models

// Blog is the persisted representation of a blog post.
type Blog struct {
	BlogID      string `db:"blog_id" bson:"_id"`
	AuthorID    string `db:"author_id" bson:"authorId"`
	Title       string `db:"title" bson:"title"`
	Slug        string `db:"slug" bson:"slug"`
	Content     string `db:"content" bson:"content"`
	Banner      string `db:"banner" bson:"banner,omitempty"`
	Status      string `db:"status" bson:"status"`
	AuditFields `bson:",inline"`
}
