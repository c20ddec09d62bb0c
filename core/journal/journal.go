package journal

import (
	"context"
	"fmt"
	"time"

	"content-sync/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry is one reconciled record as stored in the journal.
type Entry struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	RunID       string    `gorm:"column:run_id;type:varchar(36);index" json:"run_id"`
	ContentType string    `gorm:"column:content_type;type:varchar(64)" json:"content_type"`
	Key         string    `gorm:"column:identity_key;type:varchar(255)" json:"key"`
	EntryID     string    `gorm:"column:entry_id;type:varchar(64)" json:"entry_id"`
	Action      string    `gorm:"column:action;type:varchar(16)" json:"action"`
	Published   bool      `gorm:"column:published" json:"published"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the default table name.
func (Entry) TableName() string {
	return "sync_journal"
}

// Journal records the outcome of every reconciled record.
type Journal interface {
	// Record appends one result to the run's journal.
	Record(ctx context.Context, runID string, result reconcile.Result) error
	// Run lists the journal entries of a run in insertion order.
	Run(ctx context.Context, runID string) ([]Entry, error)
}

// NewGorm creates a journal backed by the given database.
func NewGorm(db *gorm.DB, logger *zap.Logger) *GormJournal {
	return &GormJournal{db: db, logger: logger}
}

// GormJournal stores entries in the sync_journal table.
type GormJournal struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Migrate creates or updates the journal table.
func (j *GormJournal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("migrating sync journal: %w", err)
	}
	return nil
}

func (j *GormJournal) Record(ctx context.Context, runID string, result reconcile.Result) error {
	row := Entry{
		RunID:       runID,
		ContentType: result.ContentType,
		Key:         result.Key,
		EntryID:     result.EntryID,
		Action:      string(result.Action),
		Published:   result.Published,
		CreatedAt:   time.Now().UTC(),
	}
	if err := j.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("recording %s %q: %w", result.ContentType, result.Key, err)
	}
	j.logger.Debug("Journal entry recorded",
		zap.String("run_id", runID),
		zap.String("entry_id", result.EntryID))
	return nil
}

func (j *GormJournal) Run(ctx context.Context, runID string) ([]Entry, error) {
	var rows []Entry
	err := j.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("reading run %s: %w", runID, err)
	}
	return rows, nil
}

var _ Journal = (*GormJournal)(nil)

// Nop discards every entry. It is used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, string, reconcile.Result) error { return nil }

func (Nop) Run(context.Context, string) ([]Entry, error) { return nil, nil }
