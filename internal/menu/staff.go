package menu

import (
	"errors"
	"strconv"

	"github.com/fitfusion/fitfusion/internal/repository"
	"github.com/fitfusion/fitfusion/internal/session"
	"github.com/fitfusion/fitfusion/internal/terminal"
)

func (m *Menu) staffDashboard(sess *session.Session) {
	m.term.Blank()
	m.term.Line("Hello %s", sess.DisplayName())

	if sess.Role() == session.RoleAdmin {
		m.adminDashboard()
		return
	}
	m.trainerDashboard(sess)
}

// Trainer dashboard command set.
const (
	trainerSchedule = 1
	trainerMembers  = 2
	trainerLogOut   = 3
)

func (m *Menu) trainerDashboard(sess *session.Session) {
	for {
		m.term.Header("Trainer Dashboard")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. Manage Schedule")
		m.term.Line("2. View Members")
		m.term.Line("3. Log Out")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case trainerSchedule:
			m.manageSchedule(sess)
		case trainerMembers:
			m.viewMembers()
		case trainerLogOut:
			return
		default:
			m.invalidChoice()
		}
	}
}

// Manage-schedule command set.
const (
	scheduleView    = 1
	scheduleAdd     = 2
	scheduleCancel  = 3
	scheduleComment = 4
	scheduleReturn  = 5
)

func (m *Menu) manageSchedule(sess *session.Session) {
	for {
		m.term.Header("Manage Schedule")
		m.term.Line("1. View Personal Training Schedule")
		m.term.Line("2. Schedule Training Session")
		m.term.Line("3. Cancel Training Session")
		m.term.Line("4. Input Comment")
		m.term.Line("5. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case scheduleView:
			m.viewTrainerSchedule(sess)
		case scheduleAdd:
			m.scheduleTraining(sess)
		case scheduleCancel:
			m.trainerCancelTraining(sess)
		case scheduleComment:
			m.inputComment(sess)
		case scheduleReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewTrainerSchedule(sess *session.Session) {
	sessions, err := m.training.ForTrainer(sess.Staff.ID)
	if err != nil {
		m.storeFault("view schedule", err)
		return
	}

	m.term.Header("Personal Training Schedule")
	m.term.Table([]string{"ID", "Member", "Date", "Comments"}, sessionRows(sessions))
}

func (m *Menu) scheduleTraining(sess *session.Session) {
	m.term.Header("Schedule Training Session")

	memberID, ok := m.term.PromptInt("Please provide the id of the member you are scheduling for:")
	if !ok {
		return
	}

	date := m.term.Prompt("Please provide the date of the session(YYYY-MM-DD):")
	if m.term.EOF() {
		return
	}

	if err := m.training.Schedule(memberID, sess.Staff.ID, date); err != nil {
		m.storeFault("schedule training", err)
		return
	}
	m.term.Success("Training session successfully registered.")
}

func (m *Menu) trainerCancelTraining(sess *session.Session) {
	m.term.Header("Cancel Training Session")
	m.term.Blank()

	trainingID, ok := m.term.PromptInt("Please input the ID of the training session you wish to cancel:")
	if !ok {
		return
	}

	err := m.training.CancelForTrainer(sess.Staff.ID, trainingID)
	switch {
	case errors.Is(err, repository.ErrTrainingNotFound):
		m.term.Reject("The number you have entered cannot be found in our training schedule. Please try again.")
	case err != nil:
		m.storeFault("cancel training", err)
	default:
		m.term.Success("Training successfully cancelled.")
	}
}

func (m *Menu) inputComment(sess *session.Session) {
	m.term.Header("Input Comment")

	trainingID, ok := m.term.PromptInt("Please input the ID of the training session you wish to access:")
	if !ok {
		return
	}

	comment := m.term.Prompt("Enter your comment:")
	if m.term.EOF() {
		return
	}

	err := m.training.Comment(sess.Staff.ID, trainingID, comment)
	switch {
	case errors.Is(err, repository.ErrTrainingNotFound):
		m.term.Reject("The number you have entered cannot be found in our training schedule. Please try again.")
	case err != nil:
		m.storeFault("input comment", err)
	default:
		m.term.Success("Comment saved.")
	}
}

// viewMembers is the trainer projection: contact and physique, no account
// data.
func (m *Menu) viewMembers() {
	members, err := m.members.All()
	if err != nil {
		m.storeFault("view members", err)
		return
	}

	m.term.Header("View Members")

	rows := make([][]string, 0, len(members))
	for _, member := range members {
		rows = append(rows, []string{
			strconv.FormatInt(member.ID, 10),
			member.FullName(),
			member.Email,
			terminal.OrBlankInt(member.Height),
			terminal.OrBlankInt(member.Weight),
			terminal.OrBlank(member.Gender),
		})
	}
	m.term.Table([]string{"ID", "Name", "Email", "Height", "Weight", "Gender"}, rows)
}

// viewMemberAccounts is the admin view: the full member row, balance
// included.
func (m *Menu) viewMemberAccounts() {
	members, err := m.members.All()
	if err != nil {
		m.storeFault("view members", err)
		return
	}

	m.term.Header("View Members")

	rows := make([][]string, 0, len(members))
	for _, member := range members {
		rows = append(rows, []string{
			strconv.FormatInt(member.ID, 10),
			member.FullName(),
			member.Email,
			terminal.OrBlankInt(member.Height),
			terminal.OrBlankInt(member.Weight),
			terminal.OrBlank(member.Gender),
			terminal.Money(member.Balance),
		})
	}
	m.term.Table([]string{"ID", "Name", "Email", "Height", "Weight", "Gender", "Balance"}, rows)
}

// Admin dashboard command set.
const (
	adminGymDetails      = 1
	adminClassManagement = 2
	adminRegisterTrainer = 3
	adminProcessFees     = 4
	adminLogOut          = 5
)

func (m *Menu) adminDashboard() {
	for {
		m.term.Header("Admin Dashboard")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Gym Details")
		m.term.Line("2. Class Management")
		m.term.Line("3. Register Trainer")
		m.term.Line("4. Process Membership Fees")
		m.term.Line("5. Log Out")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case adminGymDetails:
			m.viewGymDetails()
		case adminClassManagement:
			m.classManagement()
		case adminRegisterTrainer:
			m.registerTrainer()
		case adminProcessFees:
			m.processFees()
		case adminLogOut:
			return
		default:
			m.invalidChoice()
		}
	}
}

// View-gym-details command set.
const (
	detailsMembers  = 1
	detailsStaff    = 2
	detailsTraining = 3
	detailsReturn   = 4
)

func (m *Menu) viewGymDetails() {
	for {
		m.term.Header("View Gym Details")
		m.term.Blank()
		m.term.Line("1. View Members")
		m.term.Line("2. View Staff")
		m.term.Line("3. View Training Schedule")
		m.term.Line("4. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case detailsMembers:
			m.viewMemberAccounts()
		case detailsStaff:
			m.viewStaff()
		case detailsTraining:
			m.viewTrainingSchedule()
		case detailsReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewStaff() {
	staff, err := m.staff.All()
	if err != nil {
		m.storeFault("view staff", err)
		return
	}

	m.term.Header("View Staff")

	rows := make([][]string, 0, len(staff))
	for _, s := range staff {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.FullName(),
			s.Email,
			s.Type,
		})
	}
	m.term.Table([]string{"ID", "Name", "Email", "Role"}, rows)
}

func (m *Menu) viewTrainingSchedule() {
	sessions, err := m.training.Overview()
	if err != nil {
		m.storeFault("view training schedule", err)
		return
	}

	m.term.Header("View Training Schedule")

	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Trainer,
			s.Trainee,
			terminal.OrBlank(s.Date),
			s.Comments,
		})
	}
	m.term.Table([]string{"ID", "Trainer", "Member", "Date", "Comments"}, rows)
}

// Class-management command set.
const (
	classMgmtView   = 1
	classMgmtManage = 2
	classMgmtReturn = 3
)

func (m *Menu) classManagement() {
	for {
		m.term.Header("Class Management")
		m.term.Blank()
		m.term.Line("1. View Classes")
		m.term.Line("2. Manage Classes")
		m.term.Line("3. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case classMgmtView:
			m.viewAllClasses()
		case classMgmtManage:
			m.manageClasses()
		case classMgmtReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewAllClasses() {
	classes, err := m.classes.All()
	if err != nil {
		m.storeFault("view classes", err)
		return
	}

	m.term.Header("View Classes")

	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			terminal.OrBlank(c.RoomNumber),
			terminal.OrBlank(c.Date),
			terminal.OrBlank(c.Instructor),
		})
	}
	m.term.Table([]string{"ID", "Class", "Room", "Date", "Instructor"}, rows)
}

func (m *Menu) manageClasses() {
	m.term.Header("Manage Classes")
	m.term.Blank()

	classID, ok := m.term.PromptInt("Please enter the class id you are managing:")
	if !ok {
		return
	}

	class, err := m.classes.ByID(classID)
	switch {
	case errors.Is(err, repository.ErrClassNotFound):
		m.term.Reject("That is not an acceptable class id choice. Please try again.")
		return
	case err != nil:
		m.storeFault("manage classes", err)
		return
	}

	// Blank input keeps the value already on the row.
	roomNumber := class.RoomNumber
	if input := m.term.Prompt("If you would like to assign a room number to a class, please enter it:"); input != "" {
		roomNumber = &input
	} else if m.term.EOF() {
		return
	}

	date := class.Date
	if input := m.term.Prompt("If you would like to schedule a date for a class, please enter it (YYYY-MM-DD):"); input != "" {
		date = &input
	} else if m.term.EOF() {
		return
	}

	staffID := class.StaffID
	if id, ok := m.term.PromptOptionalInt("If you would like to assign a trainer to a class, please enter the trainers id:"); !ok {
		return
	} else if id != nil {
		staffID = id
	}

	if err := m.classes.UpdateDetails(classID, roomNumber, date, staffID); err != nil {
		m.storeFault("update class", err)
		return
	}
	m.term.Success("Class Successfully Updated!")
}

func (m *Menu) registerTrainer() {
	m.term.Header("Register Trainer")
	m.term.Blank()
	m.term.Line("Please enter the following to register a new trainer:")

	firstName := m.term.Prompt("First Name:")
	lastName := m.term.Prompt("Last Name:")
	if m.term.EOF() {
		return
	}

	email, ok := m.promptUnusedEmail(m.staff.EmailTaken,
		"This email address is already registered in our system. Please use another one.")
	if !ok {
		return
	}

	password := m.term.Prompt("Password:")
	if m.term.EOF() {
		return
	}

	if err := m.staff.RegisterTrainer(firstName, lastName, email, password); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			m.term.Reject("This email address is already registered in our system. Please use another one.")
			return
		}
		m.storeFault("register trainer", err)
		return
	}
	m.term.Success("New trainer successfully registered.")
}

func (m *Menu) processFees() {
	m.term.Header("Process Membership Fees")
	m.term.Blank()
	m.term.Line("Processing payments...")

	if _, err := m.billing.ProcessFees(); err != nil {
		m.storeFault("process fees", err)
		return
	}
	m.term.Success("Members successfully gouged!")
}
