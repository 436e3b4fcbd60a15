package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidmint/pkg/config"
	"vidmint/pkg/logger"
	"vidmint/pkg/mailer"
	"vidmint/pkg/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	m := mailer.New(cfg)

	if err := queueClient.ConsumeEmailTasks(func(task map[string]interface{}) error {
		return handleEmailTask(m, log, task)
	}); err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Email worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Email worker exited")
}

func handleEmailTask(m *mailer.Mailer, log *logger.Logger, task map[string]interface{}) error {
	taskType, _ := task["type"].(string)
	to, _ := task["to"].(string)
	name, _ := task["name"].(string)
	if to == "" {
		log.Error("Email task missing recipient: %+v", task)
		// Dropping is correct here, a requeue would loop forever
		return nil
	}

	switch taskType {
	case queue.TaskVerificationEmail:
		link, _ := task["link"].(string)
		body := fmt.Sprintf(
			"Hi %s,\n\nWelcome! Please confirm your email address by opening the link below:\n\n%s\n\nThe link expires in 24 hours.",
			name, link,
		)
		return m.Send(to, "Verify your email", body)

	case queue.TaskPayoutDecision:
		amount, _ := task["amount"].(float64)
		status, _ := task["status"].(string)
		var body string
		if status == "approved" {
			body = fmt.Sprintf(
				"Hi %s,\n\nYour payout request of $%.2f has been approved and is on its way to your payment account.",
				name, amount,
			)
		} else {
			body = fmt.Sprintf(
				"Hi %s,\n\nYour payout request of $%.2f has been rejected. The amount has been returned to your balance.",
				name, amount,
			)
		}
		return m.Send(to, "Payout update", body)

	default:
		log.Error("Unknown email task type %q, dropping", taskType)
		return nil
	}
}
