package menu

import (
	"errors"
	"strconv"

	"github.com/fitfusion/fitfusion/internal/model"
	"github.com/fitfusion/fitfusion/internal/repository"
	"github.com/fitfusion/fitfusion/internal/service"
	"github.com/fitfusion/fitfusion/internal/session"
	"github.com/fitfusion/fitfusion/internal/terminal"
)

// Manage-activity command set.
const (
	activityBrowse   = 1
	activityPersonal = 2
	activityRecord   = 3
	activityClasses  = 4
	activityTraining = 5
	activityReturn   = 6
)

func (m *Menu) manageActivity(sess *session.Session) {
	for {
		m.term.Header("Manage Activity")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Gym Exercises")
		m.term.Line("2. View Personal Activity")
		m.term.Line("3. Record Personal Activity")
		m.term.Line("4. Gym Classes")
		m.term.Line("5. 1-on-1 Personal Training")
		m.term.Line("6. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}

		switch choice {
		case activityBrowse:
			m.viewExercises()
		case activityPersonal:
			m.viewPersonalActivity(sess)
		case activityRecord:
			m.recordActivity(sess)
		case activityClasses:
			m.gymClasses(sess)
		case activityTraining:
			m.personalTraining(sess)
		case activityReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

const (
	exerciseAreaCount  = 8
	exerciseAreaReturn = 9
)

func (m *Menu) viewExercises() {
	for {
		m.term.Header("View Exercises")
		m.term.Blank()
		m.term.Line("Enter in the area of exercise you are searching for, or enter 9 to return to previous menu:")
		m.term.Blank()
		m.term.Line("1. Cardio")
		m.term.Line("2. Chest")
		m.term.Line("3. Back")
		m.term.Line("4. Legs")
		m.term.Line("5. Shoulders")
		m.term.Line("6. Biceps")
		m.term.Line("7. Triceps")
		m.term.Line("8. Core")
		m.term.Line("9. Return")

		choice, ok := m.term.Choice()
		if !ok {
			if m.term.EOF() {
				return
			}
			m.invalidChoice()
			continue
		}
		if choice == exerciseAreaReturn {
			return
		}
		if choice < 1 || choice > exerciseAreaCount {
			m.invalidChoice()
			continue
		}

		exercises, err := m.activity.ExercisesByArea(int64(choice))
		if err != nil {
			m.storeFault("view exercises", err)
			continue
		}

		rows := make([][]string, 0, len(exercises))
		for _, e := range exercises {
			rows = append(rows, []string{strconv.FormatInt(e.ID, 10), e.Name})
		}
		m.term.Table([]string{"ID", "Exercise"}, rows)
	}
}

func (m *Menu) viewPersonalActivity(sess *session.Session) {
	activities, err := m.activity.ForMember(sess.Member.ID)
	if err != nil {
		m.storeFault("view activity", err)
		return
	}

	m.term.Header("Personal Activity")

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			a.ExerciseName,
			terminal.OrBlankInt(a.Distance),
			terminal.OrBlankInt(a.Sets),
			terminal.OrBlankInt(a.Reps),
			terminal.OrBlankInt(a.WeightAdded),
			terminal.OrBlank(a.Date),
		})
	}
	m.term.Table([]string{"Exercise", "Distance", "Sets", "Reps", "Weight Added", "Date"}, rows)
}

func (m *Menu) recordActivity(sess *session.Session) {
	m.term.Header("Recording Personal Activity")
	m.term.Blank()
	m.term.Line("Please provide the following information (Enter nothing if not applicable):")

	exerciseID, ok := m.term.PromptOptionalInt("Exercise ID:")
	if !ok {
		return
	}

	var in service.ActivityInput

	if in.Distance, ok = m.term.PromptOptionalInt("Distance Travelled:"); !ok {
		return
	}
	if in.Sets, ok = m.term.PromptOptionalInt("Sets:"); !ok {
		return
	}
	if in.Reps, ok = m.term.PromptOptionalInt("Reps:"); !ok {
		return
	}
	if in.WeightAdded, ok = m.term.PromptOptionalInt("Weight lifted:"); !ok {
		return
	}
	if date := m.term.Prompt("Date of exercise (YYYY-MM-DD):"); date != "" {
		in.Date = &date
	} else if m.term.EOF() {
		return
	}

	// No exercise id means nothing to record.
	if exerciseID == nil {
		return
	}
	in.ExerciseID = *exerciseID

	category, err := m.activity.Record(sess.Member.ID, in)
	switch {
	case errors.Is(err, repository.ErrExerciseNotFound):
		m.term.Reject("The exercise ID you entered is not in our catalog. Please try again.")
		return
	case err != nil:
		m.storeFault("record activity", err)
		return
	}

	m.term.Blank()
	m.term.Line("Activity added")
	if category != "" {
		m.term.Success("Congratulations! You surpassed your previous %s achievement!", category)
	}
}

// Gym-classes command set.
const (
	classesOffered    = 1
	classesRegistered = 2
	classesSignUp     = 3
	classesReturn     = 4
)

func (m *Menu) gymClasses(sess *session.Session) {
	for {
		m.term.Header("Gym Classes")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Offered Classes")
		m.term.Line("2. View Registered Classes")
		m.term.Line("3. Register For Class")
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
		case classesOffered:
			m.viewOfferedClasses()
		case classesRegistered:
			m.viewRegisteredClasses(sess)
		case classesSignUp:
			m.registerForClass(sess)
		case classesReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewOfferedClasses() {
	classes, err := m.classes.Available()
	if err != nil {
		m.storeFault("view classes", err)
		return
	}

	m.term.Header("Offered Classes")

	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			terminal.OrBlank(c.RoomNumber),
			terminal.OrBlank(c.Date),
		})
	}
	m.term.Table([]string{"ID", "Class", "Room", "Date"}, rows)
}

func (m *Menu) viewRegisteredClasses(sess *session.Session) {
	classes, err := m.classes.RegisteredFor(sess.Member.ID)
	if err != nil {
		m.storeFault("view registered classes", err)
		return
	}

	m.term.Header("Registered Classes")

	rows := make([][]string, 0, len(classes))
	for _, c := range classes {
		rows = append(rows, []string{
			c.Name,
			terminal.OrBlank(c.RoomNumber),
			terminal.OrBlank(c.Date),
			c.Trainer,
		})
	}
	m.term.Table([]string{"Class", "Room", "Date", "Trainer"}, rows)
}

func (m *Menu) registerForClass(sess *session.Session) {
	classID, ok := m.term.PromptInt("Enter the course ID you would like to register for:")
	if !ok {
		return
	}

	err := m.classes.Register(classID, sess.Member.ID)
	switch {
	case errors.Is(err, service.ErrAlreadyRegistered):
		m.term.Reject("You have already registered for this course.")
	case errors.Is(err, service.ErrClassUnavailable), errors.Is(err, repository.ErrClassNotFound):
		m.term.Reject("Im sorry. The course you selected is not available.")
	case err != nil:
		m.storeFault("class registration", err)
	default:
		m.term.Success("Successfully registered!")
	}
}

// Personal-training command set.
const (
	trainingTrainers  = 1
	trainingScheduled = 2
	trainingCancel    = 3
	trainingSignUp    = 4
	trainingReturn    = 5
)

func (m *Menu) personalTraining(sess *session.Session) {
	for {
		m.term.Header("1-on-1 Personal Training")
		m.term.Blank()
		m.term.Line("Please select an option:")
		m.term.Blank()
		m.term.Line("1. View Available Trainers")
		m.term.Line("2. View Scheduled Trainings")
		m.term.Line("3. Delete Scheduled Training")
		m.term.Line("4. Register For Training")
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
		case trainingTrainers:
			m.viewTrainers()
		case trainingScheduled:
			m.viewScheduledTrainings(sess)
		case trainingCancel:
			m.cancelTraining(sess)
		case trainingSignUp:
			m.registerTraining(sess)
		case trainingReturn:
			return
		default:
			m.invalidChoice()
		}
	}
}

func (m *Menu) viewTrainers() {
	trainers, err := m.staff.Trainers()
	if err != nil {
		m.storeFault("view trainers", err)
		return
	}

	m.term.Header("Trainers")
	m.term.Table([]string{"ID", "Trainer"}, trainerRows(trainers))
}

func trainerRows(trainers []*model.TrainerInfo) [][]string {
	rows := make([][]string, 0, len(trainers))
	for _, t := range trainers {
		rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Name})
	}
	return rows
}

func (m *Menu) viewScheduledTrainings(sess *session.Session) {
	sessions, err := m.training.ForMember(sess.Member.ID)
	if err != nil {
		m.storeFault("view trainings", err)
		return
	}

	m.term.Header("Scheduled Trainings")
	m.term.Table([]string{"ID", "Trainer", "Date", "Comments"}, sessionRows(sessions))
}

func sessionRows(sessions []*model.TrainingSession) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.With,
			terminal.OrBlank(s.Date),
			s.Comments,
		})
	}
	return rows
}

func (m *Menu) cancelTraining(sess *session.Session) {
	m.term.Header("Cancel Training")
	m.term.Blank()

	trainingID, ok := m.term.PromptInt("Please input the ID of the training session you wish to cancel:")
	if !ok {
		return
	}

	err := m.training.CancelForMember(sess.Member.ID, trainingID)
	switch {
	case errors.Is(err, repository.ErrTrainingNotFound):
		m.term.Reject("The number you have entered cannot be found in our training schedule. Please try again.")
	case err != nil:
		m.storeFault("cancel training", err)
	default:
		m.term.Success("Training successfully cancelled.")
	}
}

func (m *Menu) registerTraining(sess *session.Session) {
	m.term.Header("Register Training")
	m.term.Blank()

	staffID, ok := m.term.PromptInt("Please enter the id of the trainer you would like to schedule a session with:")
	if !ok {
		return
	}

	date := m.term.Prompt("Please enter the date you'd like to train on (YYYY-MM-DD):")
	if m.term.EOF() {
		return
	}

	if err := m.training.Schedule(sess.Member.ID, staffID, date); err != nil {
		m.storeFault("register training", err)
		return
	}
	m.term.Success("Training session successfully registered.")
}
