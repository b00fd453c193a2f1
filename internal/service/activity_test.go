package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

func int64p(v int64) *int64 { return &v }

func TestRecordTracksPersonalRecords(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.activities, f.exercises, f.achievements)
	member := f.member(t, "lifter@example.com")

	prCardio := func() *int64 {
		prs, err := f.achievements.ByMember(member.ID)
		require.NoError(t, err)
		return prs.PRCardio
	}

	t.Run("first run sets the record", func(t *testing.T) {
		category, err := svc.Record(member.ID, ActivityInput{
			ExerciseID: model.ExerciseCardio,
			Distance:   int64p(5),
		})
		require.NoError(t, err)
		assert.Equal(t, "cardio", category)

		require.NotNil(t, prCardio())
		assert.Equal(t, int64(5), *prCardio())
	})

	t.Run("a shorter run does not lower it", func(t *testing.T) {
		category, err := svc.Record(member.ID, ActivityInput{
			ExerciseID: model.ExerciseCardio,
			Distance:   int64p(3),
		})
		require.NoError(t, err)
		assert.Empty(t, category)
		assert.Equal(t, int64(5), *prCardio())
	})

	t.Run("equalling the record is not beating it", func(t *testing.T) {
		category, err := svc.Record(member.ID, ActivityInput{
			ExerciseID: model.ExerciseCardio,
			Distance:   int64p(5),
		})
		require.NoError(t, err)
		assert.Empty(t, category)
		assert.Equal(t, int64(5), *prCardio())
	})

	t.Run("a longer run replaces it", func(t *testing.T) {
		category, err := svc.Record(member.ID, ActivityInput{
			ExerciseID: model.ExerciseCardio,
			Distance:   int64p(8),
		})
		require.NoError(t, err)
		assert.Equal(t, "cardio", category)
		assert.Equal(t, int64(8), *prCardio())
	})
}

func TestRecordWeightedLifts(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.activities, f.exercises, f.achievements)
	member := f.member(t, "lifter@example.com")

	cases := []struct {
		name       string
		exerciseID int64
		category   string
		pr         func(*model.Achievements) *int64
	}{
		{"bench press", model.ExerciseBench, "bench press", func(a *model.Achievements) *int64 { return a.PRBench }},
		{"squat", model.ExerciseSquat, "squat", func(a *model.Achievements) *int64 { return a.PRSquat }},
		{"dead lift", model.ExerciseDeadlift, "dead lift", func(a *model.Achievements) *int64 { return a.PRDL }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, err := svc.Record(member.ID, ActivityInput{
				ExerciseID:  tc.exerciseID,
				Sets:        int64p(3),
				Reps:        int64p(5),
				WeightAdded: int64p(225),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.category, category)

			prs, err := f.achievements.ByMember(member.ID)
			require.NoError(t, err)
			require.NotNil(t, tc.pr(prs))
			assert.Equal(t, int64(225), *tc.pr(prs))
		})
	}
}

func TestRecordUntrackedExercise(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.activities, f.exercises, f.achievements)
	member := f.member(t, "curler@example.com")

	// Exercise 2 is tracked by no PR column.
	category, err := svc.Record(member.ID, ActivityInput{
		ExerciseID:  2,
		Sets:        int64p(4),
		WeightAdded: int64p(500),
	})
	require.NoError(t, err)
	assert.Empty(t, category)

	prs, err := f.achievements.ByMember(member.ID)
	require.NoError(t, err)
	assert.Nil(t, prs.PRCardio)
	assert.Nil(t, prs.PRBench)
	assert.Nil(t, prs.PRSquat)
	assert.Nil(t, prs.PRDL)

	activities, err := svc.ForMember(member.ID)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestRecordTrackedExerciseWithoutMeasurement(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.activities, f.exercises, f.achievements)
	member := f.member(t, "bencher@example.com")

	// Bench press without a weight cannot beat anything, but it still counts
	// as activity.
	category, err := svc.Record(member.ID, ActivityInput{
		ExerciseID: model.ExerciseBench,
		Sets:       int64p(3),
	})
	require.NoError(t, err)
	assert.Empty(t, category)

	prs, err := f.achievements.ByMember(member.ID)
	require.NoError(t, err)
	assert.Nil(t, prs.PRBench)

	activities, err := svc.ForMember(member.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Nil(t, activities[0].WeightAdded)
}

func TestRecordUnknownExercise(t *testing.T) {
	f := newFixture(t)
	svc := NewActivityService(f.activities, f.exercises, f.achievements)
	member := f.member(t, "typo@example.com")

	_, err := svc.Record(member.ID, ActivityInput{ExerciseID: 9999})
	assert.ErrorIs(t, err, repository.ErrExerciseNotFound)

	activities, err := svc.ForMember(member.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)
}
