package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ScoreStore persists the single high score.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryStore keeps the high score in memory. The zero value is ready.
type MemoryStore struct {
	Score int
	Saves int
}

func (m *MemoryStore) LoadHighScore() (int, error) { return m.Score, nil }

func (m *MemoryStore) SaveHighScore(score int) error {
	m.Score = score
	m.Saves++
	return nil
}

// scoreFile is the on-disk layout of FileStore.
type scoreFile struct {
	HighScore int       `toml:"high_score"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStore keeps the high score in a small TOML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store at path. An empty path resolves to
// scores.toml under the user config directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "good-looking-snake", "scores.toml")
	}
	return &FileStore{path: path}, nil
}

// Path is the file the store reads and writes.
func (st *FileStore) Path() string { return st.path }

// LoadHighScore reads the file. A missing file is a score of 0, not an error.
func (st *FileStore) LoadHighScore() (int, error) {
	var sf scoreFile
	if _, err := toml.DecodeFile(st.path, &sf); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode %s: %w", st.path, err)
	}
	if sf.HighScore < 0 {
		return 0, nil
	}
	return sf.HighScore, nil
}

// SaveHighScore writes the file through a temp file and rename so a crash
// never leaves it half written.
func (st *FileStore) SaveHighScore(score int) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(st.path), ".scores-*.toml")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	sf := scoreFile{HighScore: score, UpdatedAt: time.Now().UTC().Truncate(time.Second)}
	if err := toml.NewEncoder(tmp).Encode(sf); err != nil {
		tmp.Close()
		return fmt.Errorf("encode score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		return fmt.Errorf("replace %s: %w", st.path, err)
	}
	return nil
}
