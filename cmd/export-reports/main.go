package main

import (
	"flag"
	"os"

	"go-pos-ledger/internal/config"
	"go-pos-ledger/internal/logger"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"

	"github.com/sirupsen/logrus"
)

// export-reports writes every report over the demo data to a single workbook
func main() {
	out := flag.String("out", "reports.xlsx", "output .xlsx path")
	kind := flag.String("report", "all", "report to export: sales, loans, payments, users or all")
	period := flag.String("period", "yearly", "sales grouping: daily, weekly, monthly or yearly")
	startDate := flag.String("start", "", "payments window start (optional)")
	endDate := flag.String("end", "", "payments window end (optional)")
	flag.Parse()

	cfg, _, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	store := repository.NewStore()
	store.SeedDefaults()

	data, err := service.NewReportService(store).Export(*kind, service.ReportQuery{
		Period:    *period,
		StartDate: *startDate,
		EndDate:   *endDate,
	})
	if err != nil {
		logger.LogError(log, "export-reports", "main", "export", *kind, err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.LogError(log, "export-reports", "main", "write", *out, err)
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{"file": *out, "report": *kind, "bytes": len(data)}).Info("reports exported")
}
