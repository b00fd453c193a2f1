package service

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fitfusion/fitfusion/internal/db"
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

// fixture bundles a migrated in-memory database with every repository, so a
// test can wire whichever services it is exercising.
type fixture struct {
	db           *sqlx.DB
	members      repository.MemberRepository
	staff        repository.StaffRepository
	goals        repository.GoalRepository
	achievements repository.AchievementRepository
	classes      repository.ClassRepository
	training     repository.TrainingRepository
	exercises    repository.ExerciseRepository
	activities   repository.ActivityRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))

	return &fixture{
		db:           conn,
		members:      repository.NewMemberRepository(conn),
		staff:        repository.NewStaffRepository(conn),
		goals:        repository.NewGoalRepository(conn),
		achievements: repository.NewAchievementRepository(conn),
		classes:      repository.NewClassRepository(conn),
		training:     repository.NewTrainingRepository(conn),
		exercises:    repository.NewExerciseRepository(conn),
		activities:   repository.NewActivityRepository(conn),
	}
}

func (f *fixture) member(t *testing.T, email string) *model.Member {
	t.Helper()

	member := &model.Member{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     email,
		Password:  "hunter2",
	}
	require.NoError(t, f.members.Create(member))
	return member
}

func (f *fixture) trainer(t *testing.T, email string) *model.Staff {
	t.Helper()

	staff := &model.Staff{
		FirstName: "Alex",
		LastName:  "Chen",
		Email:     email,
		Password:  "trainerpass",
		Type:      model.StaffTypeTrainer,
	}
	require.NoError(t, f.staff.Create(staff))

	created, err := f.staff.ByCredentials(email, staff.Password)
	require.NoError(t, err)
	return created
}
