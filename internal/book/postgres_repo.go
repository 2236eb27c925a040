package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a user-supplied term safe as a LIKE literal, so
// searching for "100%" or "a_c" matches those exact substrings instead
// of treating % and _ as wildcards.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// listSelect aggregates like counts per book; readers are attached in a
// second query so their relation-creation order survives the GROUP BY.
const listSelect = `
	SELECT b.id, b.name, b.price::text, b.author_name, b.owner_id,
	       COALESCE(u.username, ''), b.rating::text,
	       COUNT(r.id) FILTER (WHERE r."like") AS annotated_likes
	FROM books b
	LEFT JOIN users u ON u.id = b.owner_id
	LEFT JOIN user_book_relations r ON r.book_id = b.id`

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Price != "" {
		clauses = append(clauses, fmt.Sprintf("b.price = $%d::numeric", argn))
		args = append(args, q.Price)
		argn++
	}

	if q.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(b.name ILIKE $%d OR b.author_name ILIKE $%d)", argn, argn+1))
		pattern := "%" + escapeLike(q.Search) + "%"
		args = append(args, pattern, pattern)
		argn += 2
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	// id is always the final sort key so equal prices keep a stable order.
	orderBy := "b.id ASC"
	switch q.Ordering {
	case "price":
		orderBy = "b.price ASC, b.id ASC"
	case "-price":
		orderBy = "b.price DESC, b.id ASC"
	}

	dataSQL := fmt.Sprintf("%s\n\t%s\n\tGROUP BY b.id, u.username\n\tORDER BY %s", listSelect, where, orderBy)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Price, &b.AuthorName, &b.Owner,
			&b.OwnerName, &b.Rating, &b.AnnotatedLikes,
		); err != nil {
			return nil, err
		}
		b.Readers = []Reader{}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachReaders(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query := listSelect + `
	WHERE b.id = $1
	GROUP BY b.id, u.username`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Name, &b.Price, &b.AuthorName, &b.Owner,
		&b.OwnerName, &b.Rating, &b.AnnotatedLikes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	b.Readers = []Reader{}

	books := []Book{b}
	if err := r.attachReaders(ctx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

// attachReaders fills Readers for every book in place, ordered by
// relation id (creation order).
func (r *PostgresRepo) attachReaders(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(books))
	index := make(map[int64]int, len(books))
	for i, b := range books {
		ids = append(ids, b.ID)
		index[b.ID] = i
	}

	const query = `
	SELECT r.book_id, u.first_name, u.last_name
	FROM user_book_relations r
	JOIN users u ON u.id = r.user_id
	WHERE r.book_id = ANY($1)
	ORDER BY r.id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int64
		var reader Reader
		if err := rows.Scan(&bookID, &reader.FirstName, &reader.LastName); err != nil {
			return err
		}
		i := index[bookID]
		books[i].Readers = append(books[i].Readers, reader)
	}
	return rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, in Input, ownerID int64) (Book, error) {
	const query = `
	INSERT INTO books (name, price, author_name, owner_id)
	VALUES ($1, $2::numeric, $3, $4)
	RETURNING id`

	var id int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, in.Name, in.Price, in.AuthorName, ownerID).Scan(&id); err != nil {
		return Book{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, in Input) (Book, error) {
	const query = `
	UPDATE books
	SET name = $1, price = $2::numeric, author_name = $3, updated_at = now()
	WHERE id = $4`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, in.Name, in.Price, in.AuthorName, id)
	if err != nil {
		return Book{}, err
	}
	if tag.RowsAffected() == 0 {
		return Book{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) OwnerOf(ctx context.Context, id int64) (*int64, error) {
	var owner *int64
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT owner_id FROM books WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return owner, nil
}
