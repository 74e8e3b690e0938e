package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"photostudio-backend/models"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

// ReminderService texts clients the day before their session.
type ReminderService struct {
	repo   *store.Repository
	client *twilio.RestClient
}

func NewReminderService(repo *store.Repository) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		repo: repo,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendSessionReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendSessionReminders messages every client with a session scheduled for
// tomorrow that is still NEW or IN_PROGRESS.
func (s *ReminderService) SendSessionReminders() {
	log.Println("Starting session reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	for _, order := range s.repo.Orders() {
		if !order.IsActive() {
			continue
		}
		if !utils.SameDay(order.OrderDate, tomorrow) {
			continue
		}
		if order.Client == nil || order.Photographer == nil {
			continue
		}
		s.sendReminder(order)
	}

	log.Println("Session reminder processing completed")
}

func (s *ReminderService) sendReminder(order *models.Order) {
	message := fmt.Sprintf("Hi %s, a reminder about your %s session tomorrow at %02d:00 with %s.",
		order.Client.Name, order.SessionType.Name, order.OrderDate.Hour(), order.Photographer.Name)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	to := order.Client.Phone

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(order.Client.Phone, "+") {
		to = "whatsapp:" + order.Client.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", order.Client.Phone, err)
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", order.Client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", order.Client.Phone)
	}
}
