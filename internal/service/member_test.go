package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/fitfusion/internal/repository"
)

func TestMemberRegister(t *testing.T) {
	f := newFixture(t)
	svc := NewMemberService(f.members)

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		member, err := svc.Register("  Jamie ", " Rivera", "  jamie@example.com ", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "Jamie", member.FirstName)
		assert.Equal(t, "Rivera", member.LastName)
		assert.Equal(t, "jamie@example.com", member.Email)
		assert.NotZero(t, member.ID)
	})

	t.Run("refuses a taken email", func(t *testing.T) {
		_, err := svc.Register("Sam", "Okafor", "jamie@example.com", "other")
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})
}

func TestMemberUpdateProfileField(t *testing.T) {
	f := newFixture(t)
	svc := NewMemberService(f.members)
	member := f.member(t, "edit@example.com")

	updated, err := svc.UpdateProfileField(member.ID, repository.MemberGender, "Female")
	require.NoError(t, err)

	// The returned member is the stored row after the edit, not the caller's
	// stale copy.
	require.NotNil(t, updated.Gender)
	assert.Equal(t, "Female", *updated.Gender)
	assert.Equal(t, member.ID, updated.ID)

	_, err = svc.UpdateProfileField(9999, repository.MemberGender, "Female")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestAuthCredentials(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.members, f.staff)
	member := f.member(t, "login@example.com")

	t.Run("member login", func(t *testing.T) {
		got, err := svc.MemberByCredentials("login@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, member.ID, got.ID)

		_, err = svc.MemberByCredentials("login@example.com", "nope")
		assert.ErrorIs(t, err, repository.ErrMemberNotFound)
	})

	t.Run("seeded admin login", func(t *testing.T) {
		admin, err := svc.StaffByCredentials("admin@fitfusion.com", "admin")
		require.NoError(t, err)
		assert.False(t, admin.IsTrainer())

		_, err = svc.StaffByCredentials("admin@fitfusion.com", "nope")
		assert.ErrorIs(t, err, repository.ErrStaffNotFound)
	})
}

func TestGoalTargets(t *testing.T) {
	f := newFixture(t)
	svc := NewGoalService(f.goals, f.achievements)
	member := f.member(t, "goals@example.com")

	goals, err := svc.Goals(member.ID)
	require.NoError(t, err)
	assert.Nil(t, goals.TargetBench)

	require.NoError(t, svc.UpdateTarget(member.ID, repository.GoalTargetBench, 250))

	goals, err = svc.Goals(member.ID)
	require.NoError(t, err)
	require.NotNil(t, goals.TargetBench)
	assert.Equal(t, int64(250), *goals.TargetBench)
}
