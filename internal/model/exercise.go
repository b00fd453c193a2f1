package model

// Exercise ids the achievement tracker keys on.
const (
	ExerciseCardio   int64 = 1
	ExerciseBench    int64 = 6
	ExerciseSquat    int64 = 16
	ExerciseDeadlift int64 = 18
)

type Exercise struct {
	ID   int64  `db:"e_id"`
	Name string `db:"e_name"`
	Area string `db:"e_area"`
}
