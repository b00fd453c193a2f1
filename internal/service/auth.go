package service

import (
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
)

// AuthService matches credentials against the member or staff table. The
// comparison is a direct email+password row match; passwords are stored in
// plain text.
type AuthService struct {
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffRepository
}

func NewAuthService(memberRepo repository.MemberRepository, staffRepo repository.StaffRepository) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		staffRepo:  staffRepo,
	}
}

func (s *AuthService) MemberByCredentials(email, password string) (*model.Member, error) {
	return s.memberRepo.ByCredentials(email, password)
}

func (s *AuthService) StaffByCredentials(email, password string) (*model.Staff, error) {
	return s.staffRepo.ByCredentials(email, password)
}

// RefreshMember re-fetches the member row, used after profile edits so the
// session reflects the stored state.
func (s *AuthService) RefreshMember(id int64) (*model.Member, error) {
	return s.memberRepo.ByID(id)
}
