package model

// Goals holds a member's aspirational targets, one row per member, created
// empty at registration.
type Goals struct {
	MemberID     int64  `db:"m_id"`
	TargetWeight *int64 `db:"t_weight"`
	TargetCardio *int64 `db:"t_cardio"`
	TargetBench  *int64 `db:"t_bench"`
	TargetSquat  *int64 `db:"t_squat"`
	TargetDL     *int64 `db:"t_dl"`
}
