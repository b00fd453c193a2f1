package menu

import (
	"github.com/fitfusion/fitfusion/internal/repository"
	"github.com/fitfusion/fitfusion/internal/session"
	"github.com/fitfusion/fitfusion/internal/terminal"
)

// Member dashboard command set.
const (
	memberManageProfile = 1
	memberManageGoals   = 2
	memberAchievements  = 3
	memberActivity      = 4
	memberLogOut        = 5
)

func (m *Menu) memberDashboard(sess *session.Session) {
	m.term.Blank()
	m.term.Line("Hello %s", sess.DisplayName())

	for {
		m.term.Header("Member Dashboard")
		m.term.Blank()
		m.term.Line("Please select what you'd like to do:")
		m.term.Blank()
		m.term.Line("1. Manage Profile")
		m.term.Line("2. Manage Goals")
		m.term.Line("3. View Achievements")
		m.term.Line("4. Manage Gym Activity")
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
		case memberManageProfile:
			m.manageProfile(sess)
		case memberManageGoals:
			m.manageGoals(sess)
		case memberAchievements:
			m.viewAchievements(sess)
		case memberActivity:
			m.manageActivity(sess)
		case memberLogOut:
			return
		default:
			m.invalidChoice()
		}
	}
}

// Manage-profile command set.
const (
	profileView    = 1
	profileEdit    = 2
	profileBalance = 3
	profileReturn  = 4
)

func (m *Menu) manageProfile(sess *session.Session) {
	for {
		m.term.Header("Manage Profile")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Profile")
		m.term.Line("2. Edit Profile")
		m.term.Line("3. Check Account Balance")
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
		case profileView:
			m.viewProfile(sess)
		case profileEdit:
			m.editProfile(sess)
		case profileBalance:
			// Fees may have been charged since login; read the stored row.
			member, err := m.auth.RefreshMember(sess.Member.ID)
			if err != nil {
				m.storeFault("check balance", err)
				continue
			}
			sess.Refresh(member)
			m.term.Header("Check Balance")
			m.term.Blank()
			m.term.Line("Account Balance: %s", terminal.Money(member.Balance))
		case profileReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewProfile(sess *session.Session) {
	member := sess.Member

	m.term.Header("View Profile")
	m.term.Blank()
	m.term.Line("MemberID: %d", member.ID)
	m.term.Line("Name: %s", member.FullName())
	m.term.Line("Email: %s", member.Email)
	m.term.Line("%s", terminal.IntField("Height", member.Height, "cm"))
	m.term.Line("%s", terminal.IntField("Weight", member.Weight, "lbs"))
	m.term.Line("%s", terminal.StringField("Gender", member.Gender))
}

// Edit-profile command set.
const (
	editFirstName = 1
	editLastName  = 2
	editEmail     = 3
	editHeight    = 4
	editWeight    = 5
	editGender    = 6
	editReturn    = 7
)

var profileFields = map[int]repository.MemberField{
	editFirstName: repository.MemberFirstName,
	editLastName:  repository.MemberLastName,
	editEmail:     repository.MemberEmail,
	editHeight:    repository.MemberHeight,
	editWeight:    repository.MemberWeight,
	editGender:    repository.MemberGender,
}

func (m *Menu) editProfile(sess *session.Session) {
	m.term.Header("Edit Profile")

	for {
		m.term.Blank()
		m.term.Line("What would you like to edit?")
		m.term.Blank()
		m.term.Line("1. First Name")
		m.term.Line("2. Last Name")
		m.term.Line("3. Email")
		m.term.Line("4. Height")
		m.term.Line("5. Weight")
		m.term.Line("6. Gender")
		m.term.Line("7. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}
		if choice == editReturn {
			return
		}

		field, valid := profileFields[choice]
		if !valid {
			m.invalidChoice()
			continue
		}

		m.term.Line("What would you like to change it to?")

		// Height and weight must be integers; everything else is free text.
		var value any
		if field == repository.MemberHeight || field == repository.MemberWeight {
			n, ok := m.term.PromptInt(">")
			if !ok {
				return
			}
			value = n
		} else {
			value = m.term.Prompt(">")
			if m.term.EOF() {
				return
			}
		}

		updated, err := m.members.UpdateProfileField(sess.Member.ID, field, value)
		if err != nil {
			m.storeFault("profile update", err)
			continue
		}

		// Keep the session in step with the stored row.
		sess.Refresh(updated)
	}
}

// Manage-goals command set.
const (
	goalsView   = 1
	goalsEdit   = 2
	goalsReturn = 3
)

func (m *Menu) manageGoals(sess *session.Session) {
	for {
		m.term.Header("Manage Goals")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Goals")
		m.term.Line("2. Edit Goals")
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
		case goalsView:
			m.viewGoals(sess)
		case goalsEdit:
			m.editGoals(sess)
		case goalsReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewGoals(sess *session.Session) {
	goals, err := m.goals.Goals(sess.Member.ID)
	if err != nil {
		m.storeFault("view goals", err)
		return
	}

	m.term.Header("View Goals")
	m.term.Blank()
	m.term.Line("%s", terminal.IntField("Target Weight", goals.TargetWeight, "lbs"))
	m.term.Line("%s", terminal.IntField("Target Distance Run", goals.TargetCardio, "KM"))
	m.term.Line("%s", terminal.IntField("Target Bench Press", goals.TargetBench, "lbs"))
	m.term.Line("%s", terminal.IntField("Target Squat", goals.TargetSquat, "lbs"))
	m.term.Line("%s", terminal.IntField("Target Dead Lift", goals.TargetDL, "lbs"))
}

// Edit-goals command set.
const (
	goalWeight = 1
	goalCardio = 2
	goalBench  = 3
	goalSquat  = 4
	goalDL     = 5
	goalReturn = 6
)

var goalFields = map[int]repository.GoalField{
	goalWeight: repository.GoalTargetWeight,
	goalCardio: repository.GoalTargetCardio,
	goalBench:  repository.GoalTargetBench,
	goalSquat:  repository.GoalTargetSquat,
	goalDL:     repository.GoalTargetDL,
}

func (m *Menu) editGoals(sess *session.Session) {
	m.term.Header("Edit Goals")

	for {
		m.term.Blank()
		m.term.Line("What would you like to edit?")
		m.term.Blank()
		m.term.Line("1. Target Weight")
		m.term.Line("2. Target Distance Run")
		m.term.Line("3. Target Bench Press")
		m.term.Line("4. Target Squat")
		m.term.Line("5. Target Dead Lift")
		m.term.Line("6. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}
		if choice == goalReturn {
			return
		}

		field, valid := goalFields[choice]
		if !valid {
			m.invalidChoice()
			continue
		}

		m.term.Line("What would you like to change it to?")
		value, ok := m.term.PromptInt(">")
		if !ok {
			return
		}

		err := m.goals.UpdateTarget(sess.Member.ID, field, value)
		if err != nil {
			m.storeFault("goal update", err)
		}
	}
}

func (m *Menu) viewAchievements(sess *session.Session) {
	achievements, err := m.goals.Achievements(sess.Member.ID)
	if err != nil {
		m.storeFault("view achievements", err)
		return
	}

	m.term.Header("Achievements")
	m.term.Blank()
	m.term.Line("%s", terminal.IntField("PR Weight", achievements.PRWeight, "lbs"))
	m.term.Line("%s", terminal.IntField("PR Distance Run", achievements.PRCardio, "KM"))
	m.term.Line("%s", terminal.IntField("PR Bench Press", achievements.PRBench, "lbs"))
	m.term.Line("%s", terminal.IntField("PR Squat", achievements.PRSquat, "lbs"))
	m.term.Line("%s", terminal.IntField("PR Dead Lift", achievements.PRDL, "lbs"))
}
