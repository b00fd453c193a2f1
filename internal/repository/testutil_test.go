package repository

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fitfusion/fitfusion/internal/db"
	"github.com/fitfusion/fitfusion/internal/model"
)

// newTestDB opens a migrated in-memory database. The pool is capped at one
// connection because each in-memory connection is its own database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}

func newTestMember(t *testing.T, repo MemberRepository, email string) *model.Member {
	t.Helper()

	member := &model.Member{
		FirstName: "Jamie",
		LastName:  "Rivera",
		Email:     email,
		Password:  "hunter2",
	}
	require.NoError(t, repo.Create(member))
	require.NotZero(t, member.ID)
	return member
}

func newTestTrainer(t *testing.T, repo StaffRepository, email string) *model.Staff {
	t.Helper()

	staff := &model.Staff{
		FirstName: "Alex",
		LastName:  "Chen",
		Email:     email,
		Password:  "trainerpass",
		Type:      model.StaffTypeTrainer,
	}
	require.NoError(t, repo.Create(staff))

	created, err := repo.ByCredentials(email, staff.Password)
	require.NoError(t, err)
	return created
}
