package history

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type announcedEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// Log remembers which listing ids have already been announced so a watcher
// restart does not re-send the same digest lines. Entries expire after 30
// days, matching how long listings realistically stay up.
type Log struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewLog creates or loads the announcement history under dir.
func NewLog(dir string) *Log {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create history directory: %v", err)
	}
	l := &Log{
		filePath: filepath.Join(dir, "announced_jobs.json"),
		seen:     make(map[string]int64),
	}
	l.load()
	return l
}

// IsAnnounced checks if a listing id was already sent out
func (l *Log) IsAnnounced(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, exists := l.seen[id]
	return exists
}

func (l *Log) Add(ids []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, id := range ids {
		if _, exists := l.seen[id]; !exists {
			l.seen[id] = now
			changed = true
		}
	}

	if changed {
		l.save()
	}
}

func (l *Log) load() {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read announced_jobs.json: %v", err)
		}
		return
	}

	var entries []announcedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse announced_jobs.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			l.seen[e.ID] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously announced listings (%d expired and removed)", loaded, len(entries)-loaded)
}

func (l *Log) save() {
	entries := make([]announcedEntry, 0, len(l.seen))
	for id, ts := range l.seen {
		entries = append(entries, announcedEntry{ID: id, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal announcement history: %v", err)
		return
	}
	if err := os.WriteFile(l.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write announced_jobs.json: %v", err)
	}
}
