// Package app wires the configuration, database, repositories, and services
// into one value the command layer hands to the menu.
package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/fitfusion/fitfusion/internal/config"
	"github.com/fitfusion/fitfusion/internal/db"
	"github.com/fitfusion/fitfusion/internal/repository"
	"github.com/fitfusion/fitfusion/internal/service"
)

type App struct {
	Cfg *config.Config
	DB  *sqlx.DB

	AuthService     *service.AuthService
	MemberService   *service.MemberService
	StaffService    *service.StaffService
	GoalService     *service.GoalService
	ClassService    *service.ClassService
	TrainingService *service.TrainingService
	ActivityService *service.ActivityService
	BillingService  *service.BillingService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if err := db.RunMigrations(database.DB, cfg.DBDriver); err != nil {
		db.Close(database)
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	memberRepo := repository.NewMemberRepository(database)
	staffRepo := repository.NewStaffRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	achievementRepo := repository.NewAchievementRepository(database)
	classRepo := repository.NewClassRepository(database)
	trainingRepo := repository.NewTrainingRepository(database)
	exerciseRepo := repository.NewExerciseRepository(database)
	activityRepo := repository.NewActivityRepository(database)

	return &App{
		Cfg: cfg,
		DB:  database,

		AuthService:     service.NewAuthService(memberRepo, staffRepo),
		MemberService:   service.NewMemberService(memberRepo),
		StaffService:    service.NewStaffService(staffRepo),
		GoalService:     service.NewGoalService(goalRepo, achievementRepo),
		ClassService:    service.NewClassService(classRepo),
		TrainingService: service.NewTrainingService(trainingRepo),
		ActivityService: service.NewActivityService(activityRepo, exerciseRepo, achievementRepo),
		BillingService:  service.NewBillingService(memberRepo),
	}, nil
}

func (a *App) Close() {
	if err := db.Close(a.DB); err != nil {
		slog.Error("close database", "error", err)
	}
}
