package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/fitfusion/internal/repository"
)

func TestClassRegistrationRules(t *testing.T) {
	f := newFixture(t)
	svc := NewClassService(f.classes)
	member := f.member(t, "student@example.com")
	trainer := f.trainer(t, "coach@example.com")

	require.NoError(t, svc.UpdateDetails(1, nil, nil, &trainer.ID))

	t.Run("registers for an available class", func(t *testing.T) {
		require.NoError(t, svc.Register(1, member.ID))

		list, err := svc.RegisteredFor(member.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].ClassID)
	})

	t.Run("rejects a second registration", func(t *testing.T) {
		err := svc.Register(1, member.ID)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("rejects a class without a trainer", func(t *testing.T) {
		err := svc.Register(2, member.ID)
		assert.ErrorIs(t, err, ErrClassUnavailable)
	})

	t.Run("rejects a class that does not exist", func(t *testing.T) {
		err := svc.Register(9999, member.ID)
		assert.ErrorIs(t, err, repository.ErrClassNotFound)
	})
}
