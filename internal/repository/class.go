package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrClassNotFound = errors.New("class not found")
)

type ClassRepository interface {
	ByID(id int64) (*model.Class, error)
	Available() ([]*model.Class, error)
	All() ([]*model.ClassDetail, error)
	RegisteredFor(memberID int64) ([]*model.RegisteredClass, error)
	IsRegistered(classID, memberID int64) (bool, error)
	Register(classID, memberID int64) error
	UpdateDetails(classID int64, roomNumber, date *string, staffID *int64) error
}

type classRepository struct {
	db *sqlx.DB
}

func NewClassRepository(db *sqlx.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) ByID(id int64) (*model.Class, error) {
	class := &model.Class{}
	query := `SELECT * FROM classes WHERE c_id = $1`

	err := r.db.Get(class, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}

	return class, err
}

// Available returns the classes a trainer has been assigned to.
func (r *classRepository) Available() ([]*model.Class, error) {
	var classes []*model.Class
	query := `SELECT * FROM classes WHERE s_id IS NOT NULL ORDER BY c_id ASC`

	err := r.db.Select(&classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

// All returns every class, assigned or not, with the instructor name
// resolved where one exists.
func (r *classRepository) All() ([]*model.ClassDetail, error) {
	var classes []*model.ClassDetail
	query := `SELECT c.c_id, c.class_name, c.room_number, c.date, c.s_id,
	                 s.f_name || ' ' || s.l_name AS instructor
	          FROM classes c
	          LEFT OUTER JOIN staff s ON c.s_id = s.s_id
	          ORDER BY c.c_id ASC`

	err := r.db.Select(&classes, query)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) RegisteredFor(memberID int64) ([]*model.RegisteredClass, error) {
	var classes []*model.RegisteredClass
	query := `SELECT r.c_id, c.class_name, c.room_number, c.date,
	                 s.f_name || ' ' || s.l_name AS trainer
	          FROM registered r
	          JOIN classes c ON r.c_id = c.c_id
	          JOIN staff s ON c.s_id = s.s_id
	          WHERE r.m_id = $1
	          ORDER BY r.c_id ASC`

	err := r.db.Select(&classes, query, memberID)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) IsRegistered(classID, memberID int64) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM registered WHERE c_id = $1 AND m_id = $2`

	err := r.db.QueryRow(query, classID, memberID).Scan(&count)
	return count > 0, err
}

func (r *classRepository) Register(classID, memberID int64) error {
	query := `INSERT INTO registered (c_id, m_id) VALUES ($1, $2)`

	_, err := r.db.Exec(query, classID, memberID)
	return err
}

func (r *classRepository) UpdateDetails(classID int64, roomNumber, date *string, staffID *int64) error {
	query := `UPDATE classes SET room_number = $1, date = $2, s_id = $3 WHERE c_id = $4`

	result, err := r.db.Exec(query, roomNumber, date, staffID, classID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrClassNotFound
	}

	return nil
}
