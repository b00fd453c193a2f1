package service

import (
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

type GoalService struct {
	goalRepo        repository.GoalRepository
	achievementRepo repository.AchievementRepository
}

func NewGoalService(goalRepo repository.GoalRepository, achievementRepo repository.AchievementRepository) *GoalService {
	return &GoalService{
		goalRepo:        goalRepo,
		achievementRepo: achievementRepo,
	}
}

func (s *GoalService) Goals(memberID int64) (*model.Goals, error) {
	return s.goalRepo.ByMember(memberID)
}

func (s *GoalService) UpdateTarget(memberID int64, field repository.GoalField, value int64) error {
	return s.goalRepo.UpdateTarget(memberID, field, value)
}

func (s *GoalService) Achievements(memberID int64) (*model.Achievements, error) {
	return s.achievementRepo.ByMember(memberID)
}
