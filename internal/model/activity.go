package model

// Activity is one recorded exercise session. The exercise name is
// denormalized from the catalog at insert time. Empty terminal input becomes
// NULL for the measurements.
type Activity struct {
	MemberID     int64   `db:"m_id"`
	ExerciseID   int64   `db:"e_id"`
	ExerciseName string  `db:"e_name"`
	Distance     *int64  `db:"dist"`
	Sets         *int64  `db:"sets"`
	Reps         *int64  `db:"reps"`
	WeightAdded  *int64  `db:"weight_added"`
	Date         *string `db:"e_date"`
}
