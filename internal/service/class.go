package service

import (
	"errors"

	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

var (
	ErrClassUnavailable  = errors.New("class has no assigned trainer")
	ErrAlreadyRegistered = errors.New("member already registered for class")
)

type ClassService struct {
	classRepo repository.ClassRepository
}

func NewClassService(classRepo repository.ClassRepository) *ClassService {
	return &ClassService{
		classRepo: classRepo,
	}
}

func (s *ClassService) Available() ([]*model.Class, error) {
	return s.classRepo.Available()
}

func (s *ClassService) All() ([]*model.ClassDetail, error) {
	return s.classRepo.All()
}

func (s *ClassService) ByID(id int64) (*model.Class, error) {
	return s.classRepo.ByID(id)
}

func (s *ClassService) RegisteredFor(memberID int64) ([]*model.RegisteredClass, error) {
	return s.classRepo.RegisteredFor(memberID)
}

// Register signs a member up for a class. The duplicate check is an
// application pre-check; the registered table carries no uniqueness
// constraint.
func (s *ClassService) Register(classID, memberID int64) error {
	registered, err := s.classRepo.IsRegistered(classID, memberID)
	if err != nil {
		return err
	}
	if registered {
		return ErrAlreadyRegistered
	}

	class, err := s.classRepo.ByID(classID)
	if err != nil {
		return err
	}
	if !class.Available() {
		return ErrClassUnavailable
	}

	return s.classRepo.Register(classID, memberID)
}

func (s *ClassService) UpdateDetails(classID int64, roomNumber, date *string, staffID *int64) error {
	return s.classRepo.UpdateDetails(classID, roomNumber, date, staffID)
}
