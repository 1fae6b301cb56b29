package domain

// BlogStatus is the publication state of a blog.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// Blog is a piece of content authored by a user.
type Blog struct {
	BlogID   string     `json:"blogID"`
	AuthorID string     `json:"authorID"`
	Title    string     `json:"title"`
	Slug     string     `json:"slug"`
	Content  string     `json:"content"`
	Banner   string     `json:"banner,omitempty"`
	Status   BlogStatus `json:"status"`
	AuditFields
}
