package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/reports"
)

const reportColumns = `
	id, type, location, description, contact_info, anonymous,
	status, admin_notes, assigned_to, created_at, updated_at`

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) Create(ctx context.Context, rep reports.Report) (reports.Report, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reports (
			type, location, description, contact_info, anonymous,
			status, admin_notes, assigned_to, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		rep.Type, rep.Location, rep.Description, rep.ContactInfo, rep.Anonymous,
		rep.Status, rep.AdminNotes, rep.AssignedTo, rep.CreatedAt, rep.UpdatedAt,
	).Scan(&rep.ID)
	if err != nil {
		return reports.Report{}, err
	}
	return rep, nil
}

func (r *ReportsRepo) Update(ctx context.Context, rep reports.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports
		SET status = $2, admin_notes = $3, assigned_to = $4, updated_at = $5
		WHERE id = $1
	`,
		rep.ID, rep.Status, rep.AdminNotes, rep.AssignedTo, rep.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return reports.ErrNotFound
	}
	return nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id int64) (reports.Report, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)

	rep, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reports.Report{}, reports.ErrNotFound
		}
		return reports.Report{}, err
	}
	return rep, nil
}

func (r *ReportsRepo) ListAll(ctx context.Context) ([]reports.Report, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func scanReport(row rowScanner) (reports.Report, error) {
	var rep reports.Report
	err := row.Scan(
		&rep.ID, &rep.Type, &rep.Location, &rep.Description,
		&rep.ContactInfo, &rep.Anonymous,
		&rep.Status, &rep.AdminNotes, &rep.AssignedTo,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	return rep, err
}
