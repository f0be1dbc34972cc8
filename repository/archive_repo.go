package repository

import "saisolaredge/models"

// ArchiveRepository records completed PDF exports.
type ArchiveRepository interface {
	SaveExport(rec *models.ExportRecord) error
	ListExports() ([]*models.ExportRecord, error)
}
