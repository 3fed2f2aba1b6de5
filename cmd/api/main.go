package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "ministry-budget-api/internal/adapter/http"
	appmw "ministry-budget-api/internal/adapter/middleware"
	"ministry-budget-api/internal/adapter/repository/postgres"
	"ministry-budget-api/internal/config"
	"ministry-budget-api/internal/domain/audit"
	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/user"
	"ministry-budget-api/internal/infrastructure/cache"
	"ministry-budget-api/internal/infrastructure/db"
	"ministry-budget-api/internal/infrastructure/logger"
	ucAdmin "ministry-budget-api/internal/usecase/admin"
	ucForm "ministry-budget-api/internal/usecase/form"
	ucLov "ministry-budget-api/internal/usecase/lov"
	ucNotification "ministry-budget-api/internal/usecase/notification"
	"ministry-budget-api/internal/usecase/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.Environment)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		log.WithError(err).Fatal("postgres connection failed")
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&ministry.Ministry{},
		&ministry.EventType{},
		&domainForm.Form{},
		&domainForm.Event{},
		&domainForm.Goal{},
		&audit.Entry{},
	); err != nil {
		log.WithError(err).Fatal("schema migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}

	forms := postgres.NewFormRepository(gdb)
	events := postgres.NewEventRepository(gdb)
	goals := postgres.NewGoalRepository(gdb)
	users := postgres.NewUserRepository(gdb)
	ministries := postgres.NewMinistryRepository(gdb)
	eventTypes := postgres.NewEventTypeRepository(gdb)
	audits := postgres.NewAuditRepository(gdb)
	tx := postgres.NewGormUoW(gdb)

	formUC := ucForm.NewUsecase(forms, events, goals, audits, tx, log)
	workflowUC := workflow.NewUsecase(forms, audits, tx, log)
	notificationUC := ucNotification.NewUsecase(forms, ministries)
	lovUC := ucLov.NewUsecase(ministries, eventTypes)
	adminUC := ucAdmin.NewUsecase(users, ministries, eventTypes, forms, audits, log)

	h := httpadp.NewHandler()
	formH := httpadp.NewFormHandler(formUC)
	workflowH := httpadp.NewWorkflowHandler(workflowUC)
	notificationH := httpadp.NewNotificationHandler(notificationUC)
	lovH := httpadp.NewLOVHandler(lovUC)
	adminH := httpadp.NewAdminHandler(adminUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api",
		appmw.Actor(users, ministries),
		appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log),
	)

	api.GET("/forms", formH.ListForms)
	api.POST("/forms", formH.CreateForm)
	api.GET("/forms/next-number", formH.NextNumber)
	api.GET("/forms/:id", formH.GetForm)
	api.PUT("/forms/:id", formH.UpdateForm)
	api.POST("/forms/:id/amend", formH.AmendForm)
	api.POST("/forms/:id/submit", workflowH.SubmitForm)
	api.POST("/forms/:id/decision", workflowH.DecideForm)
	api.GET("/forms/:id/can-edit", workflowH.CanEdit)
	api.GET("/forms/:id/events", formH.ListEvents)
	api.POST("/forms/:id/events", formH.CreateEvent)
	api.PUT("/forms/:id/events/:eventId", formH.UpdateEvent)
	api.DELETE("/forms/:id/events/:eventId", formH.DeleteEvent)
	api.GET("/forms/:id/goals", formH.ListGoals)
	api.POST("/forms/:id/goals", formH.CreateGoal)
	api.PUT("/forms/:id/goals/:goalId", formH.UpdateGoal)
	api.DELETE("/forms/:id/goals/:goalId", formH.DeleteGoal)

	api.GET("/notifications", notificationH.ListNotifications)

	api.GET("/lov/ministries", lovH.Ministries)
	api.GET("/lov/event-types", lovH.EventTypes)

	admin := api.Group("/admin", httpadp.RequireAdmin)
	admin.GET("/stats", adminH.Stats)
	admin.GET("/forms/:id/audit", adminH.FormAudit)
	admin.GET("/ministries", adminH.ListMinistries)
	admin.POST("/ministries", adminH.CreateMinistry)
	admin.PUT("/ministries/:id", adminH.UpdateMinistry)
	admin.DELETE("/ministries/:id", adminH.DeleteMinistry)
	admin.GET("/event-types", adminH.ListEventTypes)
	admin.POST("/event-types", adminH.CreateEventType)
	admin.PUT("/event-types/:id", adminH.UpdateEventType)
	admin.DELETE("/event-types/:id", adminH.DeleteEventType)
	admin.GET("/users", adminH.ListUsers)
	admin.POST("/users", adminH.CreateUser)
	admin.PUT("/users/:id", adminH.UpdateUser)
	admin.PUT("/users/:id/pin", adminH.SetUserPIN)
	admin.DELETE("/users/:id", adminH.DeleteUser)
	admin.GET("/pillars", adminH.ListPillars)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("ministry budget api listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
