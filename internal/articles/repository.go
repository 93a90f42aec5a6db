package articles

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// Repository defines persistence operations for articles.
type Repository interface {
	List(ctx context.Context, filters ListFilters) ([]Article, int, error)
	Get(ctx context.Context, id string) (Article, error)
	Create(ctx context.Context, article Article) (Article, error)
	Update(ctx context.Context, id string, article Article) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const uniqueViolation = "23505"

// List uses a dynamic query due to filter complexity.
func (r *repository) List(ctx context.Context, filters ListFilters) ([]Article, int, error) {
	query := `SELECT id, title, slug, body, category_id, author_id, created_at, updated_at
	          FROM articles WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM articles WHERE 1=1`
	args := []any{}
	argCount := 0

	if filters.AuthorID != "" {
		argCount++
		clause := ` AND author_id = $` + strconv.Itoa(argCount)
		query += clause
		countQuery += clause
		args = append(args, filters.AuthorID)
	}
	if filters.Search != "" {
		argCount++
		clause := ` AND title ILIKE $` + strconv.Itoa(argCount)
		query += clause
		countQuery += clause
		args = append(args, "%"+filters.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY created_at DESC`
	if filters.PerPage > 0 {
		argCount++
		query += ` LIMIT $` + strconv.Itoa(argCount)
		args = append(args, filters.PerPage)

		argCount++
		query += ` OFFSET $` + strconv.Itoa(argCount)
		offset := (filters.Page - 1) * filters.PerPage
		if offset < 0 {
			offset = 0
		}
		args = append(args, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.CategoryID, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}
	return articles, total, rows.Err()
}

// Get fetches one article by id.
func (r *repository) Get(ctx context.Context, id string) (Article, error) {
	var a Article
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, slug, body, category_id, author_id, created_at, updated_at
		 FROM articles WHERE id = $1`, id).
		Scan(&a.ID, &a.Title, &a.Slug, &a.Body, &a.CategoryID, &a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Article{}, shared.ErrNotFound
		}
		return Article{}, err
	}
	return a, nil
}

// Create inserts a new article row.
func (r *repository) Create(ctx context.Context, article Article) (Article, error) {
	now := time.Now().UTC()
	article.ID = uuid.NewString()
	article.CreatedAt = now
	article.UpdatedAt = now

	_, err := r.pool.Exec(ctx,
		`INSERT INTO articles (id, title, slug, body, category_id, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		article.ID, article.Title, article.Slug, article.Body,
		article.CategoryID, article.AuthorID, article.CreatedAt, article.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Article{}, shared.ErrDuplicate
		}
		return Article{}, err
	}
	return article, nil
}

// Update rewrites the mutable fields of an article.
func (r *repository) Update(ctx context.Context, id string, article Article) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE articles SET title = $1, slug = $2, body = $3, category_id = $4, updated_at = $5
		 WHERE id = $6`,
		article.Title, article.Slug, article.Body, article.CategoryID, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an article and, via cascade, its comments.
func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
