package repository

import (
	"context"

	"legalsite/internal/model"
)

// ArticleRepository defines read access to published articles plus the
// write operations the startup seeder needs. The HTTP surface only ever
// reaches List and FindByID; Create and Count exist for out-of-band
// provisioning and are not routed.
type ArticleRepository interface {
	// List returns all articles ordered by published_date descending
	// (most recent first). An empty slice is a valid result, not an error.
	List(ctx context.Context) ([]model.Article, error)

	// FindByID returns the article with the given id, or sql.ErrNoRows
	// when no such id exists.
	FindByID(ctx context.Context, id string) (*model.Article, error)

	// Count returns the total number of stored articles.
	Count(ctx context.Context) (int, error)

	// Create inserts an article row. Used by seeding only.
	Create(ctx context.Context, a *model.Article) (*model.Article, error)
}
