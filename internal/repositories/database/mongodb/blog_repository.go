package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/models"
	"github.com/SscSPs/blog_api/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const blogsCollection = "blogs"

type MongoBlogRepository struct {
	coll *mongo.Collection
}

func newMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{coll: db.Collection(blogsCollection)}
}

var _ portsrepo.BlogRepositoryFacade = (*MongoBlogRepository)(nil)

func (r *MongoBlogRepository) SaveBlog(ctx context.Context, blog domain.Blog) error {
	if _, err := r.coll.InsertOne(ctx, mapping.ToModelBlog(blog)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("blog slug %q already taken: %w", blog.Slug, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save blog: %w", err)
	}
	return nil
}

func (r *MongoBlogRepository) FindBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	var m models.Blog
	if err := r.coll.FindOne(ctx, bson.M{"_id": blogID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog by ID %s: %w", blogID, err)
	}
	blog := mapping.ToDomainBlog(m)
	return &blog, nil
}
