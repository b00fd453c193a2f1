package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrAchievementsNotFound = errors.New("achievements not found")
)

// Achievements are written only through ActivityRepository.Record, in the
// same transaction as the activity insert.
type AchievementRepository interface {
	ByMember(memberID int64) (*model.Achievements, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ByMember(memberID int64) (*model.Achievements, error) {
	achievements := &model.Achievements{}
	query := `SELECT * FROM achievements WHERE m_id = $1`

	err := r.db.Get(achievements, query, memberID)
	if err == sql.ErrNoRows {
		return nil, ErrAchievementsNotFound
	}

	return achievements, err
}
