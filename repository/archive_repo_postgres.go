package repository

import (
	"database/sql"
	"time"

	"saisolaredge/models"
)

type PostgresArchiveRepo struct {
	DB *sql.DB
}

func NewPostgresArchiveRepo(db *sql.DB) *PostgresArchiveRepo {
	return &PostgresArchiveRepo{DB: db}
}

func (r *PostgresArchiveRepo) SaveExport(rec *models.ExportRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO export_record (quote_no, customer, total, filename, storage_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, rec.QuoteNo, rec.Customer, rec.Total, rec.Filename, rec.StorageURL, rec.CreatedAt).Scan(&rec.ID)
}

func (r *PostgresArchiveRepo) ListExports() ([]*models.ExportRecord, error) {
	rows, err := r.DB.Query(`
		SELECT id, quote_no, customer, total, filename, COALESCE(storage_url, ''), created_at
		FROM export_record
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ExportRecord
	for rows.Next() {
		rec := &models.ExportRecord{}
		if err := rows.Scan(&rec.ID, &rec.QuoteNo, &rec.Customer, &rec.Total,
			&rec.Filename, &rec.StorageURL, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
