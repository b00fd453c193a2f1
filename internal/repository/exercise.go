package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

type ExerciseRepository interface {
	ByArea(pointerID int64) ([]*model.Exercise, error)
	ByID(id int64) (*model.Exercise, error)
}

type exerciseRepository struct {
	db *sqlx.DB
}

func NewExerciseRepository(db *sqlx.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// ByArea lists the exercises in the body area the pointer id maps to.
func (r *exerciseRepository) ByArea(pointerID int64) ([]*model.Exercise, error) {
	var exercises []*model.Exercise
	query := `SELECT e_id, e_name, e_area FROM exercises
	          WHERE e_area = (SELECT e_area FROM e_pointer WHERE e_id = $1)
	          ORDER BY e_id ASC`

	err := r.db.Select(&exercises, query, pointerID)
	if err != nil {
		return nil, err
	}

	return exercises, nil
}

func (r *exerciseRepository) ByID(id int64) (*model.Exercise, error) {
	exercise := &model.Exercise{}
	query := `SELECT e_id, e_name, e_area FROM exercises WHERE e_id = $1`

	err := r.db.Get(exercise, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrExerciseNotFound
	}

	return exercise, err
}
