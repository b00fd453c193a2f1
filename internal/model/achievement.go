package model

// Achievements holds a member's personal records, one row per member, created
// empty at registration. Values only ever move upward.
type Achievements struct {
	MemberID int64  `db:"m_id"`
	PRWeight *int64 `db:"pr_weight"`
	PRCardio *int64 `db:"pr_cardio"`
	PRBench  *int64 `db:"pr_bench"`
	PRSquat  *int64 `db:"pr_squat"`
	PRDL     *int64 `db:"pr_dl"`
}
