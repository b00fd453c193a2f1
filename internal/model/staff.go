package model

const (
	StaffTypeTrainer = "Trainer"
	StaffTypeAdmin   = "Admin"
)

type Staff struct {
	ID        int64  `db:"s_id"`
	FirstName string `db:"f_name"`
	LastName  string `db:"l_name"`
	Email     string `db:"email"`
	Password  string `db:"password"`
	Type      string `db:"type"`
}

func (s *Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

func (s *Staff) IsTrainer() bool {
	return s.Type == StaffTypeTrainer
}

// TrainerInfo is the projection members see when picking a trainer.
type TrainerInfo struct {
	ID   int64  `db:"s_id"`
	Name string `db:"name"`
}
