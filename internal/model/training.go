package model

// TrainingSession is a scheduled session seen from one side: With carries the
// counterpart's name (the trainer for a member, the member for a trainer).
type TrainingSession struct {
	ID       int64   `db:"t_id"`
	With     string  `db:"with_name"`
	Date     *string `db:"t_date"`
	Comments string  `db:"comments"`
}

// TrainingOverview is the admin projection across all sessions.
type TrainingOverview struct {
	ID       int64   `db:"t_id"`
	StaffID  int64   `db:"s_id"`
	Trainer  string  `db:"trainer"`
	MemberID int64   `db:"m_id"`
	Trainee  string  `db:"trainee"`
	Date     *string `db:"t_date"`
	Comments string  `db:"comments"`
}
