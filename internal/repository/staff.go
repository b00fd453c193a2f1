package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrStaffNotFound = errors.New("staff not found")
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	ByID(id int64) (*model.Staff, error)
	ByCredentials(email, password string) (*model.Staff, error)
	All() ([]*model.Staff, error)
	Trainers() ([]*model.TrainerInfo, error)
	EmailTaken(email string) (bool, error)
}

type staffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	query := `INSERT INTO staff (f_name, l_name, email, password, type) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, staff.FirstName, staff.LastName, staff.Email, staff.Password, staff.Type)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *staffRepository) ByID(id int64) (*model.Staff, error) {
	staff := &model.Staff{}
	query := `SELECT * FROM staff WHERE s_id = $1`

	err := r.db.Get(staff, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}

	return staff, err
}

func (r *staffRepository) ByCredentials(email, password string) (*model.Staff, error) {
	staff := &model.Staff{}
	query := `SELECT * FROM staff WHERE email = $1 AND password = $2`

	err := r.db.Get(staff, query, email, password)
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}

	return staff, err
}

func (r *staffRepository) All() ([]*model.Staff, error) {
	var staff []*model.Staff
	query := `SELECT * FROM staff ORDER BY s_id ASC`

	err := r.db.Select(&staff, query)
	if err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *staffRepository) Trainers() ([]*model.TrainerInfo, error) {
	var trainers []*model.TrainerInfo
	query := `SELECT s_id, f_name || ' ' || l_name AS name FROM staff WHERE type = $1 ORDER BY s_id ASC`

	err := r.db.Select(&trainers, query, model.StaffTypeTrainer)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *staffRepository) EmailTaken(email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM staff WHERE email = $1`

	err := r.db.QueryRow(query, email).Scan(&count)
	return count > 0, err
}
