package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"petcare-crm/internal/domain/sales"
)

type SalesRepo struct {
	db *sql.DB
}

func NewSalesRepo(db *sql.DB) *SalesRepo {
	return &SalesRepo{db: db}
}

func (r *SalesRepo) Create(ctx context.Context, s sales.Sale) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sales (id, date, quantity, total, product_id, tutor_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		s.ID,
		toMillis(s.Date),
		s.Quantity,
		s.Total,
		s.ProductID,
		toNullString(s.TutorID),
	)
	return err
}

func (r *SalesRepo) GetByID(ctx context.Context, id string) (sales.Sale, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, date, quantity, total, product_id, tutor_id
		FROM sales
		WHERE id = ?
	`, id)

	var (
		s       sales.Sale
		date    int64
		tutorID sql.NullString
	)
	if err := row.Scan(&s.ID, &date, &s.Quantity, &s.Total, &s.ProductID, &tutorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sales.Sale{}, sales.ErrNotFound
		}
		return sales.Sale{}, err
	}

	s.Date = fromMillis(date)
	s.TutorID = tutorID.String
	return s, nil
}

const saleListQuery = `
	SELECT s.id, s.date, s.quantity, s.total, s.product_id, s.tutor_id,
		p.name, COALESCE(t.name, '')
	FROM sales s
	JOIN products p ON p.id = s.product_id
	LEFT JOIN tutors t ON t.id = s.tutor_id
`

func (r *SalesRepo) List(ctx context.Context, search string) ([]sales.WithDetails, error) {
	query := saleListQuery
	args := []any{}
	if search != "" {
		query += ` WHERE lower(p.name) LIKE '%' || lower(?) || '%'
			OR lower(COALESCE(t.name, '')) LIKE '%' || lower(?) || '%'`
		args = append(args, search, search)
	}
	query += ` ORDER BY s.date DESC, s.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// Update solo toca total y tutor; producto, fecha y cantidad son inmutables
// una vez registrada la venta.
func (r *SalesRepo) Update(ctx context.Context, s sales.Sale) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sales
		SET total = ?, tutor_id = ?
		WHERE id = ?
	`,
		s.Total,
		toNullString(s.TutorID),
		s.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sales.ErrNotFound
	}
	return nil
}

func (r *SalesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sales.ErrNotFound
	}
	return nil
}

func scanSaleRows(rows *sql.Rows) ([]sales.WithDetails, error) {
	out := make([]sales.WithDetails, 0)
	for rows.Next() {
		var (
			row     sales.WithDetails
			date    int64
			tutorID sql.NullString
		)
		if err := rows.Scan(
			&row.ID, &date, &row.Quantity, &row.Total, &row.ProductID, &tutorID,
			&row.ProductName, &row.TutorName,
		); err != nil {
			return nil, err
		}
		row.Date = fromMillis(date)
		row.TutorID = tutorID.String
		out = append(out, row)
	}
	return out, rows.Err()
}

func toNullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}
