package postgres

import (
	"context"
	"database/sql"
	"errors"

	"legalsite/internal/model"
	"legalsite/internal/repository"
)

// ArticlePostgres is a PostgreSQL implementation of repository.ArticleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArticlePostgres struct {
	db *sql.DB
}

// NewArticlePostgres creates a new ArticlePostgres repository.
func NewArticlePostgres(db *sql.DB) *ArticlePostgres {
	return &ArticlePostgres{db: db}
}

var _ repository.ArticleRepository = (*ArticlePostgres)(nil)

// IsNoRowsError reports whether err is the driver's empty-result sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// List returns every article, newest publication first. The id tiebreak
// keeps the order stable for articles published on the same date.
func (r *ArticlePostgres) List(ctx context.Context) ([]model.Article, error) {
	const q = `
		SELECT id, title, excerpt, content, category, author, published_date, read_time
		FROM blog_articles
		ORDER BY published_date DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Article, 0)
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Excerpt,
			&a.Content,
			&a.Category,
			&a.Author,
			&a.PublishedDate,
			&a.ReadTime,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single article by its id.
func (r *ArticlePostgres) FindByID(ctx context.Context, id string) (*model.Article, error) {
	const q = `
		SELECT id, title, excerpt, content, category, author, published_date, read_time
		FROM blog_articles
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var a model.Article
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.Category,
		&a.Author,
		&a.PublishedDate,
		&a.ReadTime,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Count returns the number of stored articles.
func (r *ArticlePostgres) Count(ctx context.Context) (int, error) {
	const q = `SELECT COUNT(*) FROM blog_articles`
	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Create inserts an article row and returns the stored record.
func (r *ArticlePostgres) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	const q = `
		INSERT INTO blog_articles (id, title, excerpt, content, category, author, published_date, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, excerpt, content, category, author, published_date, read_time
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Title,
		a.Excerpt,
		a.Content,
		a.Category,
		a.Author,
		a.PublishedDate,
		a.ReadTime,
	)
	var out model.Article
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Excerpt,
		&out.Content,
		&out.Category,
		&out.Author,
		&out.PublishedDate,
		&out.ReadTime,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
