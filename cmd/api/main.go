package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "crew-safety-backend/internal/adapter/http"
	appmw "crew-safety-backend/internal/adapter/middleware"
	"crew-safety-backend/internal/adapter/repository/mysql"
	"crew-safety-backend/internal/config"
	"crew-safety-backend/internal/domain/branch"
	gatecheckDomain "crew-safety-backend/internal/domain/gatecheck"
	inspectionDomain "crew-safety-backend/internal/domain/inspection"
	"crew-safety-backend/internal/infrastructure/cache"
	"crew-safety-backend/internal/infrastructure/db"
	"crew-safety-backend/internal/usecase/form"
	gatecheckUC "crew-safety-backend/internal/usecase/gatecheck"
	inspectionUC "crew-safety-backend/internal/usecase/inspection"
	"crew-safety-backend/internal/usecase/report"
	"crew-safety-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("crew-safety-backend")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&inspectionDomain.Inspection{}, &gatecheckDomain.GateCheck{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	inspectionRepo := mysql.NewInspectionRepository(gdb)
	gateCheckRepo := mysql.NewGateCheckRepository(gdb)

	policy := form.PostSubmitPolicy(cfg.PostSubmitPolicy)
	inspUC := inspectionUC.NewUsecase(inspectionRepo, branch.DefaultCrewConfig(), policy)
	gateUC := gatecheckUC.NewUsecase(gateCheckRepo, policy)

	h := httpadp.NewHandler()
	inspH := httpadp.NewInspectionHandler(inspUC)
	gateH := httpadp.NewGateCheckHandler(gateUC)
	crewsH := httpadp.NewCrewsHandler(inspUC, gateUC)
	reportH := httpadp.NewReportHandler(report.StoreSource{
		Inspections: inspectionRepo,
		GateChecks:  gateCheckRepo,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	guard := appmw.SubmissionGuard(rdb, time.Duration(cfg.SubmitTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)
	e.GET("/api/crews", crewsH.Crews)
	e.POST("/api/inspections", inspH.Create, guard)
	e.POST("/api/gatechecks", gateH.Create, guard)
	e.GET("/api/reports/:kind", reportH.List)
	e.GET("/api/reports/:kind/export", reportH.Export)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
