package service

import (
	"context"
	"log/slog"

	"github.com/nechberman/berman/internal/models"
	"github.com/nechberman/berman/internal/seed"
	"github.com/nechberman/berman/internal/storage"
)

// AttendanceService keeps the roll-call ledger. Records are keyed by
// the (session, student) pair: a later save for the same pair
// replaces the earlier one, never duplicates it.
type AttendanceService struct {
	records *storage.Bucket[models.AttendanceRecord]
}

// NewAttendanceService creates an attendance service over the record
// bucket.
func NewAttendanceService(records *storage.Bucket[models.AttendanceRecord]) *AttendanceService {
	return &AttendanceService{records: records}
}

// Sessions returns the static roll-call checkpoints. They are
// reference data, never written at runtime.
func (s *AttendanceService) Sessions() []models.AttendanceSession {
	return seed.Sessions()
}

// Records returns every mark across all sessions; callers filter by
// session.
func (s *AttendanceService) Records(ctx context.Context) []models.AttendanceRecord {
	return s.records.Load(ctx)
}

// SaveRecord upserts one mark by its composite key.
func (s *AttendanceService) SaveRecord(ctx context.Context, record models.AttendanceRecord) {
	records := s.records.Load(ctx)
	for i := range records {
		if records[i].SessionID == record.SessionID && records[i].StudentID == record.StudentID {
			records[i] = record
			s.records.Store(ctx, records)
			return
		}
	}
	s.records.Store(ctx, append(records, record))
}

// BulkSave merges a batch of marks into the ledger in a single store
// write, so a "mark everyone present" action cannot interleave with
// itself the way N sequential single-record saves could. Existing
// records keep their position; unmatched incoming records append in
// input order, deduplicated by composite key with the last value
// winning.
func (s *AttendanceService) BulkSave(ctx context.Context, incoming []models.AttendanceRecord) {
	if len(incoming) == 0 {
		return
	}

	records := s.records.Load(ctx)
	index := make(map[string]int, len(records))
	for i, r := range records {
		index[r.Key()] = i
	}

	for _, r := range incoming {
		if i, ok := index[r.Key()]; ok {
			records[i] = r
			continue
		}
		index[r.Key()] = len(records)
		records = append(records, r)
	}

	s.records.Store(ctx, records)
	slog.Info("attendance bulk save", "incoming", len(incoming), "total", len(records))
}
