// Package storage persists the player profile: high score, lifetime coins,
// unlocked characters, sound settings and the history of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
)

var (
	// ErrInsufficientCoins is returned by Unlock when the bank cannot cover the cost.
	ErrInsufficientCoins = errors.New("storage: not enough coins")
	// ErrUnknownCharacter is returned for IDs missing from the character registry.
	ErrUnknownCharacter = errors.New("storage: unknown character")
	// ErrLocked is returned when selecting a character that was never unlocked.
	ErrLocked = errors.New("storage: character is locked")
)

const timeLayout = "2006-01-02 15:04:05"

// Profiles is everything the front ends need from a profile store.
type Profiles interface {
	game.ProfileStore
	// Unlock debits the character's catalog price and unlocks it. Unlocking
	// an owned character is a no-op. Returns the remaining bank.
	Unlock(id string) (int, error)
	SelectCharacter(id string) error
	SetSoundSettings(music, effects bool) error
	SetMusicPlaying(playing bool) error
	TopRuns(limit int) ([]game.RunRecord, error)
	Stats() (Stats, error)
	Close() error
}

// Stats contains aggregated statistics over all finished runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	RunCoins   int64 // Coins collected across all runs
	MaxHeight  float64
	Storms     int64
	PlayTime   time.Duration
	LastPlayed time.Time
}

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

var (
	_ Profiles          = (*Store)(nil)
	_ game.ProfileStore = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialise writers instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist and seeds the
// single profile row.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			high_score INTEGER NOT NULL DEFAULT 0,
			total_coins INTEGER NOT NULL DEFAULT 0,
			selected_character TEXT NOT NULL,
			music_enabled INTEGER NOT NULL DEFAULT 1,
			sound_effects_enabled INTEGER NOT NULL DEFAULT 1,
			music_playing INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS unlocks (
			character_id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			character TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			height REAL NOT NULL DEFAULT 0,
			storms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO profile (id, selected_character) VALUES (1, ?)`,
		registry.DefaultCharacterID,
	)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT OR IGNORE INTO unlocks (character_id) VALUES (?)`,
		registry.DefaultCharacterID,
	)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProfile reads the profile row and the unlocked characters.
func (s *Store) LoadProfile() (game.Profile, error) {
	var p game.Profile
	err := s.db.QueryRow(
		`SELECT high_score, total_coins, selected_character,
		        music_enabled, sound_effects_enabled, music_playing
		 FROM profile WHERE id = 1`,
	).Scan(&p.HighScore, &p.TotalCoins, &p.SelectedCharacter,
		&p.MusicEnabled, &p.SoundEffectsEnabled, &p.MusicPlaying)
	if err != nil {
		return game.Profile{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	rows, err := s.db.Query(`SELECT character_id FROM unlocks`)
	if err != nil {
		return game.Profile{}, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	p.Unlocked = make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return game.Profile{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Unlocked[id] = true
	}
	if err := rows.Err(); err != nil {
		return game.Profile{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, nil
}

// AddCoins adds n to the lifetime coin total.
func (s *Store) AddCoins(n int) error {
	_, err := s.db.Exec(`UPDATE profile SET total_coins = total_coins + ? WHERE id = 1`, n)
	if err != nil {
		return fmt.Errorf("storage: cannot add coins: %w", err)
	}
	return nil
}

// SubmitRun records a finished run and raises the high score when it was
// beaten. Both writes happen in one transaction.
func (s *Store) SubmitRun(run game.RunRecord) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	_, err = tx.Exec(
		`INSERT INTO runs
		 (run_id, player, character, score, coins, height, storms, seed, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Player,
		run.Character,
		run.Score,
		run.Coins,
		run.Height,
		run.Storms,
		run.Seed,
		run.Duration.Milliseconds(),
		run.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save run: %w", err)
	}

	res, err := tx.Exec(
		`UPDATE profile SET high_score = ? WHERE id = 1 AND high_score < ?`,
		run.Score, run.Score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot update high score: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return n > 0, nil
}

// Unlock debits the character's catalog price and records it as owned.
// It returns the coins left.
func (s *Store) Unlock(id string) (int, error) {
	c, err := registry.Get(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}
	cost := c.Cost

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var coins int
	if err := tx.QueryRow(`SELECT total_coins FROM profile WHERE id = 1`).Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot read coins: %w", err)
	}

	var owned int
	err = tx.QueryRow(`SELECT COUNT(*) FROM unlocks WHERE character_id = ?`, id).Scan(&owned)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	if owned > 0 {
		return coins, nil
	}
	if coins < cost {
		return coins, ErrInsufficientCoins
	}

	if _, err := tx.Exec(`UPDATE profile SET total_coins = total_coins - ? WHERE id = 1`, cost); err != nil {
		return 0, fmt.Errorf("storage: cannot debit coins: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO unlocks (character_id) VALUES (?)`, id); err != nil {
		return 0, fmt.Errorf("storage: cannot save unlock: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit unlock: %w", err)
	}
	return coins - cost, nil
}

// SelectCharacter makes an owned character the one used by the next run.
func (s *Store) SelectCharacter(id string) error {
	c, err := registry.Get(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
	}

	if c.Cost > 0 {
		var owned int
		err := s.db.QueryRow(`SELECT COUNT(*) FROM unlocks WHERE character_id = ?`, id).Scan(&owned)
		if err != nil {
			return fmt.Errorf("storage: cannot query unlocks: %w", err)
		}
		if owned == 0 {
			return ErrLocked
		}
	}

	if _, err := s.db.Exec(`UPDATE profile SET selected_character = ? WHERE id = 1`, id); err != nil {
		return fmt.Errorf("storage: cannot select character: %w", err)
	}
	return nil
}

// SetSoundSettings saves the music and sound-effect toggles.
func (s *Store) SetSoundSettings(music, effects bool) error {
	_, err := s.db.Exec(
		`UPDATE profile SET music_enabled = ?, sound_effects_enabled = ? WHERE id = 1`,
		music, effects,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save sound settings: %w", err)
	}
	return nil
}

// SetMusicPlaying remembers whether background music was running.
func (s *Store) SetMusicPlaying(playing bool) error {
	_, err := s.db.Exec(`UPDATE profile SET music_playing = ? WHERE id = 1`, playing)
	if err != nil {
		return fmt.Errorf("storage: cannot save music state: %w", err)
	}
	return nil
}

// TopRuns retrieves the best N runs, highest score first.
func (s *Store) TopRuns(limit int) ([]game.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT run_id, player, character, score, coins, height, storms, seed, duration_ms, ended_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []game.RunRecord
	for rows.Next() {
		var r game.RunRecord
		var durationMs int64
		var endedAt any
		if err := rows.Scan(&r.RunID, &r.Player, &r.Character, &r.Score, &r.Coins,
			&r.Height, &r.Storms, &r.Seed, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = parseTime(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var playMs int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(coins), 0), COALESCE(MAX(height), 0),
		        COALESCE(SUM(storms), 0), COALESCE(SUM(duration_ms), 0), MAX(ended_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.HighScore, &st.AvgScore, &st.RunCoins, &st.MaxHeight,
		&st.Storms, &playMs, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.PlayTime = time.Duration(playMs) * time.Millisecond
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
