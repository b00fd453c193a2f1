package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/fitfusion/fitfusion/internal/model"
)

type Role int

const (
	RoleMember Role = iota
	RoleTrainer
	RoleAdmin
)

// Session is the identity of one authenticated terminal session. It is
// created by a successful login, passed explicitly to every screen, and
// dropped when the dashboard returns. Exactly one of Member or Staff is set.
type Session struct {
	// ID correlates this session's log lines; Log carries it on every record.
	ID     string
	Log    *slog.Logger
	Member *model.Member
	Staff  *model.Staff
}

func ForMember(member *model.Member) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		Log:    slog.With("session_id", id),
		Member: member,
	}
}

func ForStaff(staff *model.Staff) *Session {
	id := uuid.NewString()
	return &Session{
		ID:    id,
		Log:   slog.With("session_id", id),
		Staff: staff,
	}
}

func (s *Session) Role() Role {
	if s.Member != nil {
		return RoleMember
	}
	if s.Staff.IsTrainer() {
		return RoleTrainer
	}
	return RoleAdmin
}

func (s *Session) DisplayName() string {
	if s.Member != nil {
		return s.Member.FullName()
	}
	return s.Staff.FullName()
}

// Refresh replaces the member row after a self-edit.
func (s *Session) Refresh(member *model.Member) {
	s.Member = member
}
