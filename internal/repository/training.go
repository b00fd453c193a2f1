package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrTrainingNotFound = errors.New("training session not found")
)

type TrainingRepository interface {
	Create(memberID, staffID int64, date string) error
	ForMember(memberID int64) ([]*model.TrainingSession, error)
	ForTrainer(staffID int64) ([]*model.TrainingSession, error)
	All() ([]*model.TrainingOverview, error)
	Delete(id int64) error
	UpdateComment(id int64, comment string) error
}

type trainingRepository struct {
	db *sqlx.DB
}

func NewTrainingRepository(db *sqlx.DB) TrainingRepository {
	return &trainingRepository{db: db}
}

func (r *trainingRepository) Create(memberID, staffID int64, date string) error {
	query := `INSERT INTO training (m_id, s_id, t_date, comments) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, memberID, staffID, date, "")
	return err
}

// ForMember lists a member's sessions with the trainer's name.
func (r *trainingRepository) ForMember(memberID int64) ([]*model.TrainingSession, error) {
	var sessions []*model.TrainingSession
	query := `SELECT t.t_id, s.f_name || ' ' || s.l_name AS with_name, t.t_date, t.comments
	          FROM training t
	          JOIN staff s ON t.s_id = s.s_id
	          WHERE t.m_id = $1
	          ORDER BY t.t_id ASC`

	err := r.db.Select(&sessions, query, memberID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// ForTrainer lists a trainer's sessions with the member's name.
func (r *trainingRepository) ForTrainer(staffID int64) ([]*model.TrainingSession, error) {
	var sessions []*model.TrainingSession
	query := `SELECT t.t_id, m.f_name || ' ' || m.l_name AS with_name, t.t_date, t.comments
	          FROM training t
	          JOIN member m ON t.m_id = m.m_id
	          WHERE t.s_id = $1
	          ORDER BY t.t_id ASC`

	err := r.db.Select(&sessions, query, staffID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// All is the admin overview with both names resolved.
func (r *trainingRepository) All() ([]*model.TrainingOverview, error) {
	var sessions []*model.TrainingOverview
	query := `SELECT t.t_id, t.s_id, s.f_name || ' ' || s.l_name AS trainer,
	                 t.m_id, m.f_name || ' ' || m.l_name AS trainee,
	                 t.t_date, t.comments
	          FROM training t
	          JOIN staff s ON t.s_id = s.s_id
	          JOIN member m ON t.m_id = m.m_id
	          ORDER BY t.t_id ASC`

	err := r.db.Select(&sessions, query)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *trainingRepository) Delete(id int64) error {
	query := `DELETE FROM training WHERE t_id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTrainingNotFound
	}

	return nil
}

func (r *trainingRepository) UpdateComment(id int64, comment string) error {
	query := `UPDATE training SET comments = $1 WHERE t_id = $2`

	result, err := r.db.Exec(query, comment, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTrainingNotFound
	}

	return nil
}
