package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// LoadHighScore returns the stored best score for a game. A missing row
// or an unreadable value reads as 0; only database failures are errors.
func (s *Store) LoadHighScore(gameID string) (int, error) {
	var raw sql.NullString
	err := s.db.QueryRow(
		"SELECT value FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !raw.Valid {
		return 0, nil
	}

	v, err := strconv.Atoi(raw.String)
	if err != nil || v < 0 {
		s.logger.Warn("ignoring corrupt high score", "game", gameID, "value", raw.String)
		return 0, nil
	}
	return v, nil
}

// SaveHighScore stores value for a game unless a higher value is already
// stored. A corrupt stored value is overwritten.
func (s *Store) SaveHighScore(gameID string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, value) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
			value = CASE
				WHEN typeof(high_scores.value) = 'integer' AND high_scores.value > excluded.value
				THEN high_scores.value
				ELSE excluded.value
			END,
			updated_at = CURRENT_TIMESTAMP`,
		gameID, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
