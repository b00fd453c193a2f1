package service

import (
	"strings"

	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

type StaffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
	}
}

func (s *StaffService) EmailTaken(email string) (bool, error) {
	return s.staffRepo.EmailTaken(strings.TrimSpace(email))
}

// RegisterTrainer is an admin action; members never create staff rows.
func (s *StaffService) RegisterTrainer(firstName, lastName, email, password string) error {
	staff := &model.Staff{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Password:  password,
		Type:      model.StaffTypeTrainer,
	}

	return s.staffRepo.Create(staff)
}

func (s *StaffService) All() ([]*model.Staff, error) {
	return s.staffRepo.All()
}

func (s *StaffService) Trainers() ([]*model.TrainerInfo, error) {
	return s.staffRepo.Trainers()
}
