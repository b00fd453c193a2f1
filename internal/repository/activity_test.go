package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/fitfusion/internal/model"
)

func TestExerciseCatalog(t *testing.T) {
	conn := newTestDB(t)
	exercises := NewExerciseRepository(conn)

	t.Run("pointer id resolves to its area", func(t *testing.T) {
		cardio, err := exercises.ByArea(1)
		require.NoError(t, err)
		require.NotEmpty(t, cardio)
		for _, e := range cardio {
			assert.Equal(t, "Cardio", e.Area)
		}
	})

	t.Run("tracked exercise ids are pinned", func(t *testing.T) {
		running, err := exercises.ByID(model.ExerciseCardio)
		require.NoError(t, err)
		assert.Equal(t, "Running", running.Name)

		bench, err := exercises.ByID(model.ExerciseBench)
		require.NoError(t, err)
		assert.Equal(t, "Bench Press", bench.Name)

		squat, err := exercises.ByID(model.ExerciseSquat)
		require.NoError(t, err)
		assert.Equal(t, "Squat", squat.Name)

		deadlift, err := exercises.ByID(model.ExerciseDeadlift)
		require.NoError(t, err)
		assert.Equal(t, "Deadlift", deadlift.Name)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := exercises.ByID(9999)
		assert.ErrorIs(t, err, ErrExerciseNotFound)
	})
}

func TestActivityRecord(t *testing.T) {
	conn := newTestDB(t)
	activities := NewActivityRepository(conn)
	achievements := NewAchievementRepository(conn)
	members := NewMemberRepository(conn)

	member := newTestMember(t, members, "runner@example.com")

	dist := int64(5)
	date := "2026-08-28"
	activity := &model.Activity{
		MemberID:     member.ID,
		ExerciseID:   model.ExerciseCardio,
		ExerciseName: "Running",
		Distance:     &dist,
		Date:         &date,
	}

	t.Run("insert with a personal record", func(t *testing.T) {
		require.NoError(t, activities.Record(activity, PRCardio, dist))

		list, err := activities.ForMember(member.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Running", list[0].ExerciseName)
		require.NotNil(t, list[0].Distance)
		assert.Equal(t, int64(5), *list[0].Distance)
		assert.Nil(t, list[0].Sets)
		assert.Nil(t, list[0].Reps)
		assert.Nil(t, list[0].WeightAdded)

		prs, err := achievements.ByMember(member.ID)
		require.NoError(t, err)
		require.NotNil(t, prs.PRCardio)
		assert.Equal(t, int64(5), *prs.PRCardio)
	})

	t.Run("insert without a personal record", func(t *testing.T) {
		require.NoError(t, activities.Record(activity, "", 0))

		list, err := activities.ForMember(member.ID)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		prs, err := achievements.ByMember(member.ID)
		require.NoError(t, err)
		require.NotNil(t, prs.PRCardio)
		assert.Equal(t, int64(5), *prs.PRCardio)
	})
}
