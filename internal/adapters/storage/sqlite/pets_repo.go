package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petcare-crm/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, name, breed, age, tutor_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID,
		p.Name,
		p.Breed,
		toNullInt(p.Age),
		p.TutorID,
		toMillis(p.CreatedAt),
		toMillis(p.UpdatedAt),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, breed, age, tutor_id, created_at, updated_at
		FROM pets
		WHERE id = ?
	`, id)

	var (
		p                    pets.Pet
		age                  sql.NullInt64
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Breed, &age, &p.TutorID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Age = fromNullInt(age)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, search string) ([]pets.WithTutor, error) {
	query := `
		SELECT p.id, p.name, p.breed, p.age, p.tutor_id, p.created_at, p.updated_at, t.name
		FROM pets p
		JOIN tutors t ON t.id = p.tutor_id
	`
	args := []any{}
	if search != "" {
		query += ` WHERE lower(p.name) LIKE '%' || lower(?) || '%'
			OR lower(t.name) LIKE '%' || lower(?) || '%'`
		args = append(args, search, search)
	}
	query += ` ORDER BY p.created_at, p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.WithTutor, 0)
	for rows.Next() {
		var (
			row                  pets.WithTutor
			age                  sql.NullInt64
			createdAt, updatedAt int64
		)
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Breed, &age, &row.TutorID,
			&createdAt, &updatedAt, &row.TutorName,
		); err != nil {
			return nil, err
		}
		row.Age = fromNullInt(age)
		row.CreatedAt = fromMillis(createdAt)
		row.UpdatedAt = fromMillis(updatedAt)
		out = append(out, row)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = ?, breed = ?, age = ?, tutor_id = ?, updated_at = ?
		WHERE id = ?
	`,
		p.Name,
		p.Breed,
		toNullInt(p.Age),
		p.TutorID,
		toMillis(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return pets.ErrInUse
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
