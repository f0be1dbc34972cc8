package repository

import "saisolaredge/models"

// ProfileRepository stores the issuer identity used to seed new
// quotation sessions.
type ProfileRepository interface {
	SaveProfile(profile *models.IssuerProfile) error
	GetProfile() (*models.IssuerProfile, error)
}
