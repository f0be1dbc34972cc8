package repository

import (
	"database/sql"
	"time"

	"saisolaredge/models"

	"github.com/lib/pq"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

func (r *PostgresProfileRepo) SaveProfile(profile *models.IssuerProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO issuer_profile
			(name, address, mobile, gstin, pan, email, website,
			 account_name, ifsc, account_no, bank_name, terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`,
		profile.Issuer.Name, profile.Issuer.Address, profile.Issuer.Mobile,
		profile.Issuer.GSTIN, profile.Issuer.PAN, profile.Issuer.Email, profile.Issuer.Website,
		profile.Bank.AccountName, profile.Bank.IFSC, profile.Bank.AccountNo, profile.Bank.BankName,
		pq.Array(profile.Terms), profile.CreatedAt,
	).Scan(&profile.ID)
}

// GetProfile returns the most recently saved profile, nil when none
// has been stored yet.
func (r *PostgresProfileRepo) GetProfile() (*models.IssuerProfile, error) {
	profile := &models.IssuerProfile{}
	err := r.DB.QueryRow(`
		SELECT id, name, address, mobile, gstin, pan, email, website,
		       account_name, ifsc, account_no, bank_name, terms, created_at
		FROM issuer_profile
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(
		&profile.ID,
		&profile.Issuer.Name, &profile.Issuer.Address, &profile.Issuer.Mobile,
		&profile.Issuer.GSTIN, &profile.Issuer.PAN, &profile.Issuer.Email, &profile.Issuer.Website,
		&profile.Bank.AccountName, &profile.Bank.IFSC, &profile.Bank.AccountNo, &profile.Bank.BankName,
		pq.Array(&profile.Terms), &profile.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}
