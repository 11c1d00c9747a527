package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/printvault/printvault/internal/configs"
)

// FileName is the audit log file inside the data directory.
const FileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`      // RFC3339 with microseconds, UTC.
	Install   string `json:"install"` // Install UUID performing the action.
	Operation string `json:"op"`      // Operation name.

	// Optional fields depending on operation.
	Field     string `json:"field,omitempty"`     // For set/secret operations.
	Generated bool   `json:"generated,omitempty"` // For init: new key material was created.
}

// NewEntry returns an entry for op with the install UUID pre-populated
// from the tool settings when available.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}

	config, err := configs.LoadToolConfig()
	if err != nil {
		return entry
	}
	entry.Install = config.Install.UUID

	return entry
}

// Log appends an entry to the audit log in dataDir. Logging is
// best-effort: operations never fail because the audit log could not be
// written.
func Log(dataDir string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := filepath.Join(dataDir, FileName)

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
