package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petcare-crm/internal/domain/tutors"
)

type TutorsRepo struct {
	db *sql.DB
}

func NewTutorsRepo(db *sql.DB) *TutorsRepo {
	return &TutorsRepo{db: db}
}

func (r *TutorsRepo) Create(ctx context.Context, t tutors.Tutor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tutors (id, name, phone, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		t.ID,
		t.Name,
		t.Phone,
		t.Address,
		toMillis(t.CreatedAt),
		toMillis(t.UpdatedAt),
	)
	return err
}

func (r *TutorsRepo) GetByID(ctx context.Context, id string) (tutors.Tutor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, address, created_at, updated_at
		FROM tutors
		WHERE id = ?
	`, id)

	return scanTutor(row)
}

func (r *TutorsRepo) List(ctx context.Context, search string) ([]tutors.Tutor, error) {
	query := `
		SELECT id, name, phone, address, created_at, updated_at
		FROM tutors
	`
	args := []any{}
	if search != "" {
		query += ` WHERE lower(name) LIKE '%' || lower(?) || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tutors.Tutor, 0)
	for rows.Next() {
		t, err := scanTutor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (r *TutorsRepo) Update(ctx context.Context, t tutors.Tutor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tutors
		SET name = ?, phone = ?, address = ?, updated_at = ?
		WHERE id = ?
	`,
		t.Name,
		t.Phone,
		t.Address,
		toMillis(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

func (r *TutorsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tutors WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return tutors.ErrInUse
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return tutors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTutor(row rowScanner) (tutors.Tutor, error) {
	var (
		t                    tutors.Tutor
		createdAt, updatedAt int64
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Phone, &t.Address, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tutors.Tutor{}, tutors.ErrNotFound
		}
		return tutors.Tutor{}, err
	}
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return t, nil
}
