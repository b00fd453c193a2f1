package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingSchedule(t *testing.T) {
	conn := newTestDB(t)
	training := NewTrainingRepository(conn)
	staff := NewStaffRepository(conn)
	members := NewMemberRepository(conn)

	trainer := newTestTrainer(t, staff, "coach@example.com")
	member := newTestMember(t, members, "trainee@example.com")

	require.NoError(t, training.Create(member.ID, trainer.ID, "2026-09-01"))

	t.Run("member sees the trainer's name", func(t *testing.T) {
		sessions, err := training.ForMember(member.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "Alex Chen", sessions[0].With)
		require.NotNil(t, sessions[0].Date)
		assert.Equal(t, "2026-09-01", *sessions[0].Date)
		assert.Empty(t, sessions[0].Comments)
	})

	t.Run("trainer sees the member's name", func(t *testing.T) {
		sessions, err := training.ForTrainer(trainer.ID)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "Jamie Rivera", sessions[0].With)
	})

	t.Run("overview names both sides", func(t *testing.T) {
		overview, err := training.All()
		require.NoError(t, err)
		require.Len(t, overview, 1)
		assert.Equal(t, "Alex Chen", overview[0].Trainer)
		assert.Equal(t, "Jamie Rivera", overview[0].Trainee)
	})
}

func TestTrainingComment(t *testing.T) {
	conn := newTestDB(t)
	training := NewTrainingRepository(conn)
	staff := NewStaffRepository(conn)
	members := NewMemberRepository(conn)

	trainer := newTestTrainer(t, staff, "coach@example.com")
	member := newTestMember(t, members, "trainee@example.com")
	require.NoError(t, training.Create(member.ID, trainer.ID, "2026-09-01"))

	sessions, err := training.ForTrainer(trainer.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	require.NoError(t, training.UpdateComment(sessions[0].ID, "Focus on squat depth"))

	sessions, err = training.ForTrainer(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Focus on squat depth", sessions[0].Comments)

	assert.ErrorIs(t, training.UpdateComment(9999, "x"), ErrTrainingNotFound)
}

func TestTrainingDelete(t *testing.T) {
	conn := newTestDB(t)
	training := NewTrainingRepository(conn)
	staff := NewStaffRepository(conn)
	members := NewMemberRepository(conn)

	trainer := newTestTrainer(t, staff, "coach@example.com")
	member := newTestMember(t, members, "trainee@example.com")
	require.NoError(t, training.Create(member.ID, trainer.ID, "2026-09-01"))

	sessions, err := training.ForMember(member.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	require.NoError(t, training.Delete(sessions[0].ID))

	sessions, err = training.ForMember(member.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	assert.ErrorIs(t, training.Delete(9999), ErrTrainingNotFound)
}
