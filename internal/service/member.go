package service

import (
	"strings"

	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
	}
}

// EmailTaken backs the interactive re-prompt during registration.
func (s *MemberService) EmailTaken(email string) (bool, error) {
	return s.memberRepo.EmailTaken(strings.TrimSpace(email))
}

// Register creates the member together with empty goals and achievements
// rows. The caller is expected to have run the email pre-check; a losing race
// still surfaces as repository.ErrDuplicateEmail.
func (s *MemberService) Register(firstName, lastName, email, password string) (*model.Member, error) {
	member := &model.Member{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		Password:  password,
	}

	err := s.memberRepo.Create(member)
	if err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateProfileField writes one profile column and returns the re-fetched
// member row.
func (s *MemberService) UpdateProfileField(id int64, field repository.MemberField, value any) (*model.Member, error) {
	err := s.memberRepo.UpdateField(id, field, value)
	if err != nil {
		return nil, err
	}

	return s.memberRepo.ByID(id)
}

func (s *MemberService) ByID(id int64) (*model.Member, error) {
	return s.memberRepo.ByID(id)
}

func (s *MemberService) All() ([]*model.Member, error) {
	return s.memberRepo.All()
}
