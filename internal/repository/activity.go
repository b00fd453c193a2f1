package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/model"
)

// PRColumn names a personal-record column in the achievements table.
type PRColumn string

const (
	PRCardio PRColumn = "pr_cardio"
	PRBench  PRColumn = "pr_bench"
	PRSquat  PRColumn = "pr_squat"
	PRDL     PRColumn = "pr_dl"
)

var prColumns = map[PRColumn]bool{
	PRCardio: true,
	PRBench:  true,
	PRSquat:  true,
	PRDL:     true,
}

type ActivityRepository interface {
	ForMember(memberID int64) ([]*model.Activity, error)
	Record(activity *model.Activity, pr PRColumn, prValue int64) error
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ForMember(memberID int64) ([]*model.Activity, error) {
	var activities []*model.Activity
	query := `SELECT * FROM mem_activity WHERE m_id = $1`

	err := r.db.Select(&activities, query, memberID)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// Record inserts the activity and, when pr is set, the personal-record update
// it earned, in a single transaction. The caller decides whether a record was
// beaten; an empty pr means insert only.
func (r *activityRepository) Record(activity *model.Activity, pr PRColumn, prValue int64) error {
	if pr != "" && !prColumns[pr] {
		return fmt.Errorf("achievement column %q is not recordable", pr)
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO mem_activity (m_id, e_id, e_name, dist, sets, reps, weight_added, e_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(query,
		activity.MemberID,
		activity.ExerciseID,
		activity.ExerciseName,
		activity.Distance,
		activity.Sets,
		activity.Reps,
		activity.WeightAdded,
		activity.Date,
	)
	if err != nil {
		return err
	}

	if pr != "" {
		update := fmt.Sprintf(`UPDATE achievements SET %s = $1 WHERE m_id = $2`, pr)
		_, err = tx.Exec(update, prValue, activity.MemberID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
