package relation

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Upsert writes the relation and refreshes books.rating in the same
// transaction. Nil patch fields keep the stored value (COALESCE), so a
// PATCH carrying only "like" never disturbs an existing rate.
func (r *PostgresRepo) Upsert(ctx context.Context, userID, bookID int64, p Patch) (Relation, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Relation{}, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists); err != nil {
		return Relation{}, err
	}
	if !exists {
		return Relation{}, ErrNotFound
	}

	const upsertSQL = `
	INSERT INTO user_book_relations (user_id, book_id, "like", in_bookmarks, rate)
	VALUES ($1, $2, COALESCE($3, false), COALESCE($4, false), $5)
	ON CONFLICT (user_id, book_id) DO UPDATE SET
		"like"       = COALESCE($3, user_book_relations."like"),
		in_bookmarks = COALESCE($4, user_book_relations.in_bookmarks),
		rate         = COALESCE($5, user_book_relations.rate),
		updated_at   = now()
	RETURNING id, user_id, book_id, "like", in_bookmarks, rate`

	var rel Relation
	err = tx.QueryRow(ctx, upsertSQL, userID, bookID, p.Like, p.InBookmarks, p.Rate).Scan(
		&rel.ID, &rel.UserID, &rel.BookID, &rel.Like, &rel.InBookmarks, &rel.Rate,
	)
	if err != nil {
		return Relation{}, err
	}

	rates, err := ratesForBook(ctx, tx, bookID)
	if err != nil {
		return Relation{}, err
	}

	var ratingArg *string
	if rating, ok := MeanRating(rates); ok {
		ratingArg = &rating
	}
	if _, err := tx.Exec(ctx, `UPDATE books SET rating = $1::numeric, updated_at = now() WHERE id = $2`, ratingArg, bookID); err != nil {
		return Relation{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Relation{}, err
	}
	return rel, nil
}

func ratesForBook(ctx context.Context, q querier, bookID int64) ([]int, error) {
	rows, err := q.Query(ctx, `SELECT rate FROM user_book_relations WHERE book_id = $1 AND rate IS NOT NULL ORDER BY id`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []int
	for rows.Next() {
		var rate int
		if err := rows.Scan(&rate); err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

// querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ querier = (*pgxpool.Pool)(nil)
var _ querier = (pgx.Tx)(nil)
