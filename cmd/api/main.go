package main

import (
	"fmt"
	"net/http"

	"github.com/facilops/facil-backend-go/internal/config"
	appHTTP "github.com/facilops/facil-backend-go/internal/handler/http"
	"github.com/facilops/facil-backend-go/internal/pkg/cron"
	"github.com/facilops/facil-backend-go/internal/pkg/database"
	"github.com/facilops/facil-backend-go/internal/pkg/hrsync"
	"github.com/facilops/facil-backend-go/internal/pkg/jwt"
	"github.com/facilops/facil-backend-go/internal/pkg/sse"
	"github.com/facilops/facil-backend-go/internal/repository/postgresql"
	authService "github.com/facilops/facil-backend-go/internal/service/auth"
	hrsyncService "github.com/facilops/facil-backend-go/internal/service/hrsync"
	postService "github.com/facilops/facil-backend-go/internal/service/post"
	rosterService "github.com/facilops/facil-backend-go/internal/service/roster"
	staffService "github.com/facilops/facil-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	postRepo := postgresql.NewPostRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	dayMarkingRepo := postgresql.NewDayMarkingRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	payrollClient := hrsync.NewPayrollClient(cfg.Payroll)
	timeclockClient := hrsync.NewTimeclockClient(cfg.Timeclock)
	payrollVerifier := hrsync.NewWebhookVerifier(cfg.Payroll.WebhookToken)
	timeclockVerifier := hrsync.NewWebhookVerifier(cfg.Timeclock.WebhookToken)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	postSvc := postService.NewPostService(db, postRepo)
	rosterSvc := rosterService.NewRosterService(db, postRepo, scheduleRepo, dayMarkingRepo)
	staffSvc := staffService.NewStaffService(db, staffRepo, postRepo, hub)
	syncSvc := hrsyncService.NewService(staffRepo, payrollClient, timeclockClient)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	postHandler := appHTTP.NewPostHandler(postSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	webhookHandler := appHTTP.NewWebhookHandler(syncSvc, payrollVerifier, timeclockVerifier)
	streamHandler := appHTTP.NewStreamHandler(jwtSvc, hub)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		postHandler,
		rosterHandler,
		staffHandler,
		webhookHandler,
		streamHandler,
	)

	if cfg.StaffSync.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewStaffSyncJobs(syncSvc, cfg.StaffSync.Interval).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
