package service

import (
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

// ActivityInput carries one recorded exercise. Nil measurements were left
// blank at the terminal and stay NULL in the store.
type ActivityInput struct {
	ExerciseID  int64
	Distance    *int64
	Sets        *int64
	Reps        *int64
	WeightAdded *int64
	Date        *string
}

type ActivityService struct {
	activityRepo    repository.ActivityRepository
	exerciseRepo    repository.ExerciseRepository
	achievementRepo repository.AchievementRepository
}

func NewActivityService(
	activityRepo repository.ActivityRepository,
	exerciseRepo repository.ExerciseRepository,
	achievementRepo repository.AchievementRepository,
) *ActivityService {
	return &ActivityService{
		activityRepo:    activityRepo,
		exerciseRepo:    exerciseRepo,
		achievementRepo: achievementRepo,
	}
}

func (s *ActivityService) ExercisesByArea(pointerID int64) ([]*model.Exercise, error) {
	return s.exerciseRepo.ByArea(pointerID)
}

func (s *ActivityService) ForMember(memberID int64) ([]*model.Activity, error) {
	return s.activityRepo.ForMember(memberID)
}

// Record stores the activity and re-evaluates the member's personal records.
// It returns the name of the achievement category that improved, or "" when
// none did. A record improves when the previous value is NULL or strictly
// smaller: cardio compares on distance, bench/squat/deadlift on weight.
func (s *ActivityService) Record(memberID int64, in ActivityInput) (string, error) {
	exercise, err := s.exerciseRepo.ByID(in.ExerciseID)
	if err != nil {
		return "", err
	}

	activity := &model.Activity{
		MemberID:     memberID,
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		Distance:     in.Distance,
		Sets:         in.Sets,
		Reps:         in.Reps,
		WeightAdded:  in.WeightAdded,
		Date:         in.Date,
	}

	column, value, category, err := s.recordImprovement(memberID, in)
	if err != nil {
		return "", err
	}

	err = s.activityRepo.Record(activity, column, value)
	if err != nil {
		return "", err
	}

	return category, nil
}

// recordImprovement decides which PR column, if any, the activity beats.
func (s *ActivityService) recordImprovement(memberID int64, in ActivityInput) (repository.PRColumn, int64, string, error) {
	var column repository.PRColumn
	var candidate *int64
	var category string

	switch in.ExerciseID {
	case model.ExerciseCardio:
		column, candidate, category = repository.PRCardio, in.Distance, "cardio"
	case model.ExerciseBench:
		column, candidate, category = repository.PRBench, in.WeightAdded, "bench press"
	case model.ExerciseSquat:
		column, candidate, category = repository.PRSquat, in.WeightAdded, "squat"
	case model.ExerciseDeadlift:
		column, candidate, category = repository.PRDL, in.WeightAdded, "dead lift"
	default:
		return "", 0, "", nil
	}

	if candidate == nil {
		return "", 0, "", nil
	}

	achievements, err := s.achievementRepo.ByMember(memberID)
	if err != nil {
		return "", 0, "", err
	}

	var previous *int64
	switch column {
	case repository.PRCardio:
		previous = achievements.PRCardio
	case repository.PRBench:
		previous = achievements.PRBench
	case repository.PRSquat:
		previous = achievements.PRSquat
	case repository.PRDL:
		previous = achievements.PRDL
	}

	if previous != nil && *previous >= *candidate {
		return "", 0, "", nil
	}

	return column, *candidate, category, nil
}
