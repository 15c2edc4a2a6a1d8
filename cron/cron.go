package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vetcare-app/vetcare-api/db"
	"github.com/vetcare-app/vetcare-api/models"
	"github.com/vetcare-app/vetcare-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for rendez-vous reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for rendez-vous in the next hour
	_, err := c.AddFunc("* * * * *", sendRendezVousReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for rendez-vous reminders")
}

// sendRendezVousReminders checks for upcoming rendez-vous and sends reminders
func sendRendezVousReminders() {
	var rdvs []models.RendezVous
	now := time.Now()
	// Look for rendez-vous starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Client").Preload("Animal").Preload("Vet").
		Where("status = ? AND date BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&rdvs).Error
	if err != nil {
		log.Printf("Error fetching rendez-vous for reminders: %v", err)
		return
	}

	for _, rdv := range rdvs {
		if err := sendReminderEmail(&rdv); err != nil {
			log.Printf("Failed to send reminder for rendez-vous %d: %v", rdv.ID, err)
			continue
		}
		log.Printf("Sent reminder for rendez-vous %d to %s", rdv.ID, rdv.Client.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(rdv *models.RendezVous) error {
	subject := fmt.Sprintf("Reminder: Upcoming rendez-vous for %s", rdv.Animal.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for the rendez-vous scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Animal:</strong> %s</li>
			<li><strong>Veterinarian:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Motif:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so from the app as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your clinic team</p>
	`, rdv.Client.Name, rdv.Animal.Name, rdv.Vet.Name,
		rdv.Date.Format("2006-01-02 15:04:05"), rdv.Motif)

	return utils.SendEmail(rdv.Client.Email, subject, body)
}
