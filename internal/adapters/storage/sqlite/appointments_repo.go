package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petcare-crm/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (id, date_time, service, status, pet_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		a.ID,
		toMillis(a.DateTime),
		a.Service,
		string(a.Status),
		a.PetID,
		toMillis(a.CreatedAt),
		toMillis(a.UpdatedAt),
	)
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date_time, service, status, pet_id, created_at, updated_at
		FROM appointments
		WHERE id = ?
	`, id)

	var (
		a                              appointments.Appointment
		dateTime, createdAt, updatedAt int64
		status                         string
	)
	if err := row.Scan(&a.ID, &dateTime, &a.Service, &status, &a.PetID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}

	a.DateTime = fromMillis(dateTime)
	a.Status = appointments.Status(status)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

const appointmentListQuery = `
	SELECT a.id, a.date_time, a.service, a.status, a.pet_id, a.created_at, a.updated_at,
		p.name, t.name
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN tutors t ON t.id = p.tutor_id
`

func (r *AppointmentsRepo) List(ctx context.Context, search string) ([]appointments.WithNames, error) {
	query := appointmentListQuery
	args := []any{}
	if search != "" {
		query += ` WHERE lower(p.name) LIKE '%' || lower(?) || '%'
			OR lower(t.name) LIKE '%' || lower(?) || '%'
			OR lower(a.service) LIKE '%' || lower(?) || '%'`
		args = append(args, search, search, search)
	}
	query += ` ORDER BY a.date_time, a.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAppointmentRows(rows)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET date_time = ?, service = ?, status = ?, pet_id = ?, updated_at = ?
		WHERE id = ?
	`,
		toMillis(a.DateTime),
		a.Service,
		string(a.Status),
		a.PetID,
		toMillis(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointmentRows(rows *sql.Rows) ([]appointments.WithNames, error) {
	out := make([]appointments.WithNames, 0)
	for rows.Next() {
		var (
			row                            appointments.WithNames
			dateTime, createdAt, updatedAt int64
			status                         string
		)
		if err := rows.Scan(
			&row.ID, &dateTime, &row.Service, &status, &row.PetID,
			&createdAt, &updatedAt, &row.PetName, &row.TutorName,
		); err != nil {
			return nil, err
		}
		row.DateTime = fromMillis(dateTime)
		row.Status = appointments.Status(status)
		row.CreatedAt = fromMillis(createdAt)
		row.UpdatedAt = fromMillis(updatedAt)
		out = append(out, row)
	}
	return out, rows.Err()
}
