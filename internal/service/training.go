package service

import (
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

type TrainingService struct {
	trainingRepo repository.TrainingRepository
}

func NewTrainingService(trainingRepo repository.TrainingRepository) *TrainingService {
	return &TrainingService{
		trainingRepo: trainingRepo,
	}
}

func (s *TrainingService) ForMember(memberID int64) ([]*model.TrainingSession, error) {
	return s.trainingRepo.ForMember(memberID)
}

func (s *TrainingService) ForTrainer(staffID int64) ([]*model.TrainingSession, error) {
	return s.trainingRepo.ForTrainer(staffID)
}

func (s *TrainingService) Overview() ([]*model.TrainingOverview, error) {
	return s.trainingRepo.All()
}

func (s *TrainingService) Schedule(memberID, staffID int64, date string) error {
	return s.trainingRepo.Create(memberID, staffID, date)
}

// CancelForMember deletes a session only if it appears in the member's own
// schedule; an id belonging to someone else is not found.
func (s *TrainingService) CancelForMember(memberID, trainingID int64) error {
	sessions, err := s.trainingRepo.ForMember(memberID)
	if err != nil {
		return err
	}

	if !containsSession(sessions, trainingID) {
		return repository.ErrTrainingNotFound
	}

	return s.trainingRepo.Delete(trainingID)
}

// CancelForTrainer mirrors CancelForMember for the trainer side.
func (s *TrainingService) CancelForTrainer(staffID, trainingID int64) error {
	sessions, err := s.trainingRepo.ForTrainer(staffID)
	if err != nil {
		return err
	}

	if !containsSession(sessions, trainingID) {
		return repository.ErrTrainingNotFound
	}

	return s.trainingRepo.Delete(trainingID)
}

// Comment sets the comment on one of the trainer's own sessions.
func (s *TrainingService) Comment(staffID, trainingID int64, comment string) error {
	sessions, err := s.trainingRepo.ForTrainer(staffID)
	if err != nil {
		return err
	}

	if !containsSession(sessions, trainingID) {
		return repository.ErrTrainingNotFound
	}

	return s.trainingRepo.UpdateComment(trainingID, comment)
}

func containsSession(sessions []*model.TrainingSession, id int64) bool {
	for _, session := range sessions {
		if session.ID == id {
			return true
		}
	}
	return false
}
