package repository

import (
	"sync"
	"time"

	"saisolaredge/models"
)

// MemoryArchiveRepo keeps export records in process memory. Default
// backend when no database is configured.
type MemoryArchiveRepo struct {
	mu      sync.Mutex
	records []*models.ExportRecord
	nextID  int64
}

func NewMemoryArchiveRepo() *MemoryArchiveRepo {
	return &MemoryArchiveRepo{nextID: 1}
}

func (r *MemoryArchiveRepo) SaveExport(rec *models.ExportRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *MemoryArchiveRepo) ListExports() ([]*models.ExportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// newest first
	out := make([]*models.ExportRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

type MemoryProfileRepo struct {
	mu      sync.Mutex
	profile *models.IssuerProfile
}

func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{}
}

func (r *MemoryProfileRepo) SaveProfile(profile *models.IssuerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	r.profile = profile
	return nil
}

func (r *MemoryProfileRepo) GetProfile() (*models.IssuerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile, nil
}
