// Package store persists run summaries and analysis records to a local
// SQLite database.
package store

import (
	"fmt"
	"sort"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one pipeline execution summary.
type Run struct {
	gorm.Model
	CompanyName        string
	Domain             string
	RawWords           int
	ComprehensiveWords int
	FinalWords         int
	MarkovWords        int
	RulesGenerated     int
	MasksGenerated     int
}

// AnalysisEntry is one key/value pair of a run's analysis record.
type AnalysisEntry struct {
	gorm.Model
	RunID uint `gorm:"index"`
	Key   string
	Value string
}

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Run{}, &AnalysisEntry{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveRun inserts the run summary and its analysis entries in key order.
// It returns the assigned run ID.
func (s *Store) SaveRun(run *Run, analysis map[string]string) (uint, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		keys := make([]string, 0, len(analysis))
		for k := range analysis {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			entry := AnalysisEntry{RunID: run.ID, Key: k, Value: analysis[k]}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("save run: %w", err)
	}
	return run.ID, nil
}

// LastRun returns the most recent run summary, or nil when none exist.
func (s *Store) LastRun() (*Run, error) {
	var run Run
	err := s.db.Order("id desc").First(&run).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last run: %w", err)
	}
	return &run, nil
}

// Analysis loads the analysis entries of a run keyed by entry key.
func (s *Store) Analysis(runID uint) (map[string]string, error) {
	var entries []AnalysisEntry
	if err := s.db.Where("run_id = ?", runID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load analysis for run %d: %w", runID, err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}
