package main

import (
	"fmt"
	"gate-app/config"
	"gate-app/controllers/idgen"
	"gate-app/database"
	"gate-app/models"
	"gate-app/repositories"
	"gate-app/sap"
	"gate-app/services"
	"log"

	"gopkg.in/gomail.v2"
)

// Standalone retry job. Re-drives every FAILED GRPO posting and attachment
// and mails a run summary. Intended to be run from a scheduler.
func main() {
	config.LoadConfig()

	if err := config.LoadSAPRegistry(); err != nil {
		log.Fatalf("Failed to load SAP registry: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	idgen.Init()

	registry := sap.NewRegistry(config.SAPCompanies())
	notifier := services.NewNotifier()

	grpoRepo := repositories.NewGRPORepository(db)
	entryRepo := repositories.NewGateEntryRepository(db)
	grpoService := services.NewGRPOService(grpoRepo, entryRepo, func(companyCode string) (services.SAPGateway, error) {
		return registry.Client(companyCode)
	}, notifier)

	var pending int64
	db.Model(&models.GRPOPosting{}).
		Where("status = ?", models.GRPOStatusFailed).
		Count(&pending)
	log.Printf("Retrying %d failed GRPO postings", pending)

	retried, failed := grpoService.RetryFailed(0)
	log.Printf("Retry run finished: %d succeeded, %d still failing", retried, failed)

	sendSummary(retried, failed)
}

func sendSummary(retried, failed int) {
	if config.SMTPUser == "" || config.MailTo == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.MailFrom)
	m.SetHeader("To", config.MailTo)
	m.SetHeader("Subject", "[Gate Entry] GRPO retry run summary")
	m.SetBody("text/plain", fmt.Sprintf("Retried successfully: %d\nStill failing: %d\n", retried, failed))

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send summary mail: %v", err)
	}
}
