package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/fitfusion/fitfusion/internal/model"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// MemberField names a member column that may be edited from the profile
// screen. Update targets are drawn from this closed set, never from input.
type MemberField string

const (
	MemberFirstName MemberField = "f_name"
	MemberLastName  MemberField = "l_name"
	MemberEmail     MemberField = "email"
	MemberHeight    MemberField = "height"
	MemberWeight    MemberField = "weight"
	MemberGender    MemberField = "gender"
)

var memberFields = map[MemberField]bool{
	MemberFirstName: true,
	MemberLastName:  true,
	MemberEmail:     true,
	MemberHeight:    true,
	MemberWeight:    true,
	MemberGender:    true,
}

type MemberRepository interface {
	Create(member *model.Member) error
	ByID(id int64) (*model.Member, error)
	ByEmail(email string) (*model.Member, error)
	ByCredentials(email, password string) (*model.Member, error)
	All() ([]*model.Member, error)
	EmailTaken(email string) (bool, error)
	UpdateField(id int64, field MemberField, value any) error
	ChargeFee(id int64, amount decimal.Decimal) error
}

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts the member together with their empty goals and achievements
// rows in a single transaction, so a failure never leaves an orphan member.
func (r *memberRepository) Create(member *model.Member) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO member (f_name, l_name, email, password) VALUES ($1, $2, $3, $4)`
	_, err = tx.Exec(query, member.FirstName, member.LastName, member.Email, member.Password)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	created := &model.Member{}
	err = tx.Get(created, `SELECT * FROM member WHERE email = $1`, member.Email)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO mem_goals (m_id) VALUES ($1)`, created.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO achievements (m_id) VALUES ($1)`, created.ID)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	*member = *created
	return nil
}

func (r *memberRepository) ByID(id int64) (*model.Member, error) {
	member := &model.Member{}
	query := `SELECT * FROM member WHERE m_id = $1`

	err := r.db.Get(member, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}

	return member, err
}

func (r *memberRepository) ByEmail(email string) (*model.Member, error) {
	member := &model.Member{}
	query := `SELECT * FROM member WHERE email = $1`

	err := r.db.Get(member, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}

	return member, err
}

func (r *memberRepository) ByCredentials(email, password string) (*model.Member, error) {
	member := &model.Member{}
	query := `SELECT * FROM member WHERE email = $1 AND password = $2`

	err := r.db.Get(member, query, email, password)
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}

	return member, err
}

func (r *memberRepository) All() ([]*model.Member, error) {
	var members []*model.Member
	query := `SELECT * FROM member ORDER BY m_id ASC`

	err := r.db.Select(&members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *memberRepository) EmailTaken(email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM member WHERE email = $1`

	err := r.db.QueryRow(query, email).Scan(&count)
	return count > 0, err
}

func (r *memberRepository) UpdateField(id int64, field MemberField, value any) error {
	if !memberFields[field] {
		return fmt.Errorf("member column %q is not editable", field)
	}

	query := fmt.Sprintf(`UPDATE member SET %s = $1 WHERE m_id = $2`, field)

	result, err := r.db.Exec(query, value, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// ChargeFee subtracts amount from the member's balance. The arithmetic
// happens in the store; there is no floor, balances may go negative.
func (r *memberRepository) ChargeFee(id int64, amount decimal.Decimal) error {
	query := `UPDATE member SET acc_balance = acc_balance - $1 WHERE m_id = $2`

	result, err := r.db.Exec(query, amount, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMemberNotFound
	}

	return nil
}
