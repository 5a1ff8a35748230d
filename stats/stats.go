package stats

import (
	"detectlang/lang"
	"math"
	"sync"
)

// CodeStats represents the per-language statistics of a scanned revision
type CodeStats struct {
	CountersByLanguage    map[string]*LanguageStats `json:"countersByLanguage"`
	TotalFileCount        int                       `json:"totalFileCount"`
	UnclassifiedFileCount int                       `json:"unclassifiedFileCount"`
	SnapshotSizeInMb      int                       `json:"snapshotSizeInMb"`
	totalSizeBytes        int64
	lock                  sync.Mutex
}

// LanguageStats represents statistics for a specific language, keyed by its id
type LanguageStats struct {
	Name          string  `json:"name"`
	NumberOfFiles int     `json:"numberOfFiles"`
	LinesOfCode   float64 `json:"linesOfCode"`
}

// NewCodeStats creates a new CodeStats instance with initialized maps
func NewCodeStats() *CodeStats {
	return &CodeStats{
		CountersByLanguage: make(map[string]*LanguageStats),
	}
}

// AddFile adds a file's stats to the bucket of its language and accumulates total size
func (cs *CodeStats) AddFile(language lang.Language, linesOfCode int, sizeBytes int64) {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.TotalFileCount++
	cs.totalSizeBytes += sizeBytes

	counters, exists := cs.CountersByLanguage[language.ID()]
	if !exists {
		counters = &LanguageStats{
			Name: language.Name(),
		}
		cs.CountersByLanguage[language.ID()] = counters
	}

	counters.NumberOfFiles++
	counters.LinesOfCode += float64(linesOfCode)
}

// AddUnclassified counts a file whose language could not be identified
func (cs *CodeStats) AddUnclassified(sizeBytes int64) {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	cs.TotalFileCount++
	cs.UnclassifiedFileCount++
	cs.totalSizeBytes += sizeBytes
}

// Finalize calculates derived fields (e.g. snapshot size in MB) from accumulated data
func (cs *CodeStats) Finalize() {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	megabytes := float64(cs.totalSizeBytes) / (1024 * 1024)
	cs.SnapshotSizeInMb = int(math.Round(megabytes))
}
