package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/btdosparca/league-system/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchConflict = errors.New("match id conflict")
)

type MatchRepository interface {
	// CreateBatch persists a set of matches in one transaction and assigns
	// their day_id sequence numbers atomically. The input slice is updated
	// in place with the assigned ids.
	CreateBatch(ctx context.Context, matches []models.Match) ([]models.Match, error)
	GetByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountDays(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, matches []models.Match) ([]models.Match, error) {
	if len(matches) == 0 {
		return matches, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// day_id is a monotonically increasing sequence across the whole
	// history. The table lock keeps concurrent imports from racing on the
	// MAX read; batches are small, so holding it is cheap.
	if _, err := tx.ExecContext(ctx, `LOCK TABLE matches IN EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("failed to lock matches table: %w", err)
	}

	var lastDayID int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(day_id), 0) FROM matches`).Scan(&lastDayID); err != nil {
		return nil, fmt.Errorf("failed to read last day_id: %w", err)
	}

	query := `
		INSERT INTO matches (id, day_id, date, team_a_p1, team_a_p2, team_a_score, team_b_p1, team_b_p2, team_b_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	for i := range matches {
		matches[i].DayID = lastDayID + i + 1
		m := &matches[i]
		err := tx.QueryRowContext(ctx, query,
			m.ID,
			m.DayID,
			m.Date,
			m.TeamA.Players[0],
			m.TeamA.Players[1],
			m.TeamA.Score,
			m.TeamB.Players[0],
			m.TeamB.Players[1],
			m.TeamB.Score,
		).Scan(&m.CreatedAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				return nil, ErrMatchConflict
			}
			return nil, fmt.Errorf("failed to insert match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit match batch: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `
		SELECT id, day_id, date, team_a_p1, team_a_p2, team_a_score, team_b_p1, team_b_p2, team_b_score, created_at
		FROM matches
		WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID,
		&match.DayID,
		&match.Date,
		&match.TeamA.Players[0],
		&match.TeamA.Players[1],
		&match.TeamA.Score,
		&match.TeamB.Players[0],
		&match.TeamB.Players[1],
		&match.TeamB.Score,
		&match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]models.Match, error) {
	query := `
		SELECT id, day_id, date, team_a_p1, team_a_p2, team_a_score, team_b_p1, team_b_p2, team_b_score, created_at
		FROM matches
		ORDER BY date ASC, day_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID,
			&m.DayID,
			&m.Date,
			&m.TeamA.Players[0],
			&m.TeamA.Players[1],
			&m.TeamA.Score,
			&m.TeamB.Players[0],
			&m.TeamB.Players[1],
			&m.TeamB.Score,
			&m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresMatchRepository) CountDays(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT date) FROM matches`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
