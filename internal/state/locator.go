package state

import (
	"os"
	"strings"
	"sync"
)

// Locator is the session-path analog of the browser location bar. The
// path encodes session identity: "/" means no session, "/{table}" means
// the table is known but the seat is not, "/{table}/{token}" is a full
// resumable session.
type Locator interface {
	Path() string
	Rewrite(path string)
}

// SessionPath builds the canonical three-segment session path.
func SessionPath(tableName, seatToken string) string {
	return "/" + tableName + "/" + seatToken
}

// SplitSessionPath extracts (tableName, seatToken) from a session path.
// Either or both may be empty.
func SplitSessionPath(path string) (tableName, seatToken string) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) > 0 {
		tableName = parts[0]
	}
	if len(parts) > 1 {
		seatToken = parts[1]
	}
	return tableName, seatToken
}

// MemoryLocator holds the session path in memory. Used by tests and by
// sessions that should not survive a restart.
type MemoryLocator struct {
	mu   sync.Mutex
	path string
}

func NewMemoryLocator(path string) *MemoryLocator {
	if path == "" {
		path = "/"
	}
	return &MemoryLocator{path: path}
}

func (l *MemoryLocator) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

func (l *MemoryLocator) Rewrite(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

// FileLocator persists the session path to a file so a restarted client
// resumes the same seat, the way a browser reload resumes via the URL.
type FileLocator struct {
	mu   sync.Mutex
	file string
	path string
}

// NewFileLocator reads the stored path, defaulting to "/" when the file
// is missing or unreadable.
func NewFileLocator(file string) *FileLocator {
	l := &FileLocator{file: file, path: "/"}
	if data, err := os.ReadFile(file); err == nil {
		if p := strings.TrimSpace(string(data)); strings.HasPrefix(p, "/") {
			l.path = p
		}
	}
	return l
}

func (l *FileLocator) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Rewrite updates the path and persists it best-effort. A write failure
// only costs resumption on the next start, so it is not surfaced.
func (l *FileLocator) Rewrite(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
	_ = os.WriteFile(l.file, []byte(path+"\n"), 0o600)
}
