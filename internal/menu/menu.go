package menu

import (
	"errors"
	"log/slog"

	"github.com/fitfusion/fitfusion/internal/app"
	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
	"github.com/fitfusion/fitfusion/internal/service"
	"github.com/fitfusion/fitfusion/internal/session"
	"github.com/fitfusion/fitfusion/internal/terminal"
)

// Root menu command set.
const (
	rootMemberLogin = 1
	rootStaffLogin  = 2
	rootRegister    = 3
	rootQuit        = 4
)

// loginCancel is the sentinel both credential fields must carry to abandon a
// login attempt.
const loginCancel = "0"

// Menu drives the interactive session: a tree of choice/dispatch loops over
// the services. Invalid input re-prompts in place; each level's last value
// returns to the parent; the root's quit value ends the session.
type Menu struct {
	term     *terminal.Terminal
	appName  string
	log      *slog.Logger
	auth     *service.AuthService
	members  *service.MemberService
	staff    *service.StaffService
	goals    *service.GoalService
	classes  *service.ClassService
	training *service.TrainingService
	activity *service.ActivityService
	billing  *service.BillingService
}

func New(term *terminal.Terminal, a *app.App) *Menu {
	return &Menu{
		term:     term,
		appName:  a.Cfg.AppName,
		log:      slog.Default(),
		auth:     a.AuthService,
		members:  a.MemberService,
		staff:    a.StaffService,
		goals:    a.GoalService,
		classes:  a.ClassService,
		training: a.TrainingService,
		activity: a.ActivityService,
		billing:  a.BillingService,
	}
}

// Run is the root loop.
func (m *Menu) Run() {
	m.term.Blank()
	m.term.Header(m.appName + " Gym")

	for {
		if m.term.EOF() {
			return
		}

		m.printRootMenu()
		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case rootMemberLogin:
			if member := m.memberLogin(); member != nil {
				sess := session.ForMember(member)
				m.log = sess.Log
				m.log.Info("member logged in", "member_id", member.ID)
				m.memberDashboard(sess)
				m.log = slog.Default()
			}
		case rootStaffLogin:
			if staff := m.staffLogin(); staff != nil {
				sess := session.ForStaff(staff)
				m.log = sess.Log
				m.log.Info("staff logged in", "staff_id", staff.ID, "type", staff.Type)
				m.staffDashboard(sess)
				m.log = slog.Default()
			}
		case rootRegister:
			m.registerMember()
		case rootQuit:
			m.term.Blank()
			m.term.Line("From all of us at %s, thank you for using our stoneage era fitness app.", m.appName)
			m.term.Line("Goodbye!")
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) printRootMenu() {
	m.term.Blank()
	m.term.Line("Welcome to the %s Fitness App! Please choose from the following:", m.appName)
	m.term.Blank()
	m.term.Line("1. Member Log In")
	m.term.Line("2. Staff Log In")
	m.term.Line("3. Register New Member")
	m.term.Line("4. Quit")
}

func (m *Menu) memberLogin() *model.Member {
	for {
		email, password, ok := m.promptCredentials()
		if !ok {
			return nil
		}

		member, err := m.auth.MemberByCredentials(email, password)
		if errors.Is(err, repository.ErrMemberNotFound) {
			m.rejectCredentials()
			continue
		}
		if err != nil {
			m.storeFault("member login", err)
			return nil
		}

		return member
	}
}

func (m *Menu) staffLogin() *model.Staff {
	for {
		email, password, ok := m.promptCredentials()
		if !ok {
			return nil
		}

		staff, err := m.auth.StaffByCredentials(email, password)
		if errors.Is(err, repository.ErrStaffNotFound) {
			m.rejectCredentials()
			continue
		}
		if err != nil {
			m.storeFault("staff login", err)
			return nil
		}

		return staff
	}
}

func (m *Menu) promptCredentials() (email, password string, ok bool) {
	m.term.Blank()
	m.term.Line("Enter your credentials to log in, or input 0 for both fields to return to the menu")
	m.term.Blank()

	email = m.term.Prompt("Username:")
	password = m.term.Prompt("Password:")
	if m.term.EOF() {
		return "", "", false
	}
	if email == loginCancel && password == loginCancel {
		return "", "", false
	}
	return email, password, true
}

func (m *Menu) rejectCredentials() {
	m.term.Blank()
	m.term.Line("The credentials you've entered don't match any members in our system. Please try again.")
}

func (m *Menu) registerMember() {
	m.term.Blank()
	m.term.Line("Thank you for choosing to register with %s! We just need a few things to get started:", m.appName)
	m.term.Blank()

	firstName := m.term.Prompt("First Name:")
	lastName := m.term.Prompt("Last Name:")

	email, ok := m.promptUnusedEmail(m.members.EmailTaken,
		"I'm sorry. That already exists in our database. Please use a different one")
	if !ok {
		return
	}

	password := m.term.Prompt("Password:")
	if m.term.EOF() {
		return
	}

	member, err := m.members.Register(firstName, lastName, email, password)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		m.term.Reject("I'm sorry. That already exists in our database. Please use a different one")
		return
	}
	if err != nil {
		m.storeFault("member registration", err)
		return
	}

	m.log.Info("member registered", "member_id", member.ID)
	m.term.Blank()
	m.term.Line("Thank you for registering with us! Please log in.")
}

// promptUnusedEmail asks for an email until the given check reports it free.
func (m *Menu) promptUnusedEmail(taken func(string) (bool, error), rejection string) (string, bool) {
	for {
		email := m.term.Prompt("Email Address:")
		if m.term.EOF() {
			return "", false
		}

		inUse, err := taken(email)
		if err != nil {
			m.storeFault("email check", err)
			return "", false
		}
		if !inUse {
			return email, true
		}

		m.term.Line(rejection)
	}
}

func (m *Menu) invalidChoice() {
	m.term.Blank()
	m.term.Line("That was not an acceptable choice. Please try again.")
}

// storeFault logs a data-access failure and tells the user something broke,
// without pretending the result was merely empty. Inside a login the logger
// carries the session id.
func (m *Menu) storeFault(op string, err error) {
	m.log.Error("store operation failed", "op", op, "error", err)
	m.term.Reject("Something went wrong on our end. Please try again.")
}
