package comments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-press/inkwell/internal/shared"
)

// Repository defines persistence operations for comments.
type Repository interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]Comment, error)
	Get(ctx context.Context, id string) (Comment, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const foreignKeyViolation = "23503"

func (r *repository) Create(ctx context.Context, comment Comment) (Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO comments (id, body, article_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		comment.ID, comment.Body, comment.ArticleID, comment.UserID, comment.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return Comment{}, shared.ErrNotFound
		}
		return Comment{}, err
	}
	return comment, nil
}

func (r *repository) ListByArticle(ctx context.Context, articleID string) ([]Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, body, article_id, user_id, created_at
		 FROM comments WHERE article_id = $1 ORDER BY created_at`, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.ArticleID, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (Comment, error) {
	var c Comment
	err := r.pool.QueryRow(ctx,
		`SELECT id, body, article_id, user_id, created_at FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.Body, &c.ArticleID, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, shared.ErrNotFound
		}
		return Comment{}, err
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
