package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrGoalsNotFound = errors.New("goals not found")
)

// GoalField names an editable target column.
type GoalField string

const (
	GoalTargetWeight GoalField = "t_weight"
	GoalTargetCardio GoalField = "t_cardio"
	GoalTargetBench  GoalField = "t_bench"
	GoalTargetSquat  GoalField = "t_squat"
	GoalTargetDL     GoalField = "t_dl"
)

var goalFields = map[GoalField]bool{
	GoalTargetWeight: true,
	GoalTargetCardio: true,
	GoalTargetBench:  true,
	GoalTargetSquat:  true,
	GoalTargetDL:     true,
}

type GoalRepository interface {
	ByMember(memberID int64) (*model.Goals, error)
	UpdateTarget(memberID int64, field GoalField, value int64) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) ByMember(memberID int64) (*model.Goals, error) {
	goals := &model.Goals{}
	query := `SELECT * FROM mem_goals WHERE m_id = $1`

	err := r.db.Get(goals, query, memberID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalsNotFound
	}

	return goals, err
}

func (r *goalRepository) UpdateTarget(memberID int64, field GoalField, value int64) error {
	if !goalFields[field] {
		return fmt.Errorf("goal column %q is not editable", field)
	}

	query := fmt.Sprintf(`UPDATE mem_goals SET %s = $1 WHERE m_id = $2`, field)

	result, err := r.db.Exec(query, value, memberID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalsNotFound
	}

	return nil
}
