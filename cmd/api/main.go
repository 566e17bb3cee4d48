package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/acceso-labs/acceso-backend-go/internal/config"
	appHTTP "github.com/acceso-labs/acceso-backend-go/internal/handler/http"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/database"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/metrics"
	"github.com/acceso-labs/acceso-backend-go/internal/repository/postgresql"
	employeeService "github.com/acceso-labs/acceso-backend-go/internal/service/employee"
	eventService "github.com/acceso-labs/acceso-backend-go/internal/service/event"
	payrollService "github.com/acceso-labs/acceso-backend-go/internal/service/payroll"
	reportService "github.com/acceso-labs/acceso-backend-go/internal/service/report"
	settingsService "github.com/acceso-labs/acceso-backend-go/internal/service/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	rules, err := cfg.Rules()
	if err != nil {
		log.Fatal("Error resolving engine rules: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, int32(cfg.Database.MaxConns))
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	eventSvc := eventService.NewEventService(eventRepo, rules.Location)
	reportSvc := reportService.NewReportService(eventRepo, employeeRepo, rules)
	payrollSvc := payrollService.NewPayrollService(eventRepo, settingsRepo, rules)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, rules)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.CORSOrigins,
		registry,
		collector,
		employeeHandler,
		eventHandler,
		reportHandler,
		payrollHandler,
		settingsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error: ", err)
	}
}
