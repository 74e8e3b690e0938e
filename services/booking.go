package services

import (
	"fmt"
	"log"
	"time"

	"photostudio-backend/models"
	"photostudio-backend/store"
	"photostudio-backend/utils"
)

// BookingService holds the order lifecycle rules: pricing at creation,
// payment recording, the loyalty upgrade and the availability check.
type BookingService struct {
	repo *store.Repository
}

func NewBookingService(repo *store.Repository) *BookingService {
	return &BookingService{repo: repo}
}

// CreateOrder books a session for an existing client and photographer. The
// order is priced once, here, from the session type it embeds.
func (s *BookingService) CreateOrder(clientID, photographerID string, sessionType models.SessionType) (*models.Order, error) {
	client := s.repo.FindClientByID(clientID)
	if client == nil {
		return nil, fmt.Errorf("client %s not found", clientID)
	}
	photographer := s.repo.FindPhotographerByID(photographerID)
	if photographer == nil {
		return nil, fmt.Errorf("photographer %s not found", photographerID)
	}

	order := models.NewOrder(client, photographer, sessionType)
	s.repo.AddOrder(order)
	return order, nil
}

// SetOrderStatus moves an order through its lifecycle and re-persists.
func (s *BookingService) SetOrderStatus(orderID string, status models.OrderStatus) (*models.Order, error) {
	order := s.repo.FindOrderByID(orderID)
	if order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	order.Status = status
	s.repo.SaveQuietly()
	return order, nil
}

// RecordPayment marks the order PAID, records a payment for its total cost
// and runs the loyalty check for the owning client. The loyalty check only
// happens here; nothing else triggers it.
func (s *BookingService) RecordPayment(orderID string) (*models.Payment, error) {
	order := s.repo.FindOrderByID(orderID)
	if order == nil {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	order.Status = models.StatusPaid
	payment := models.NewPayment(order.ID, order.TotalCost)
	s.repo.AddPayment(payment)
	s.repo.SaveQuietly()

	if order.Client != nil {
		s.CheckAndUpgradeClient(order.Client)
	}
	return payment, nil
}

// AttachPhoto adds a delivered photo to an existing order.
func (s *BookingService) AttachPhoto(orderID, filePath string) (models.Photo, error) {
	order := s.repo.FindOrderByID(orderID)
	if order == nil {
		return models.Photo{}, fmt.Errorf("order %s not found", orderID)
	}
	photo := order.AddPhoto(filePath)
	s.repo.SaveQuietly()
	return photo, nil
}

// CheckAndUpgradeClient promotes a client to regular after three PAID
// orders. The flag is monotonic: an already-regular client is left alone,
// and nothing ever clears it.
func (s *BookingService) CheckAndUpgradeClient(client *models.Client) {
	if client.IsRegular {
		return
	}

	paidOrders := 0
	for _, o := range s.repo.Orders() {
		if o.ClientID == client.ID && o.Status == models.StatusPaid {
			paidOrders++
		}
	}

	if paidOrders >= 3 {
		client.IsRegular = true
		log.Printf("Client %s is now a regular", client.Name)
		s.repo.SaveQuietly()
	}
}

// AvailablePhotographers returns the photographers free for the candidate
// slot, in roster order.
func (s *BookingService) AvailablePhotographers(at time.Time) []*models.Photographer {
	available := make([]*models.Photographer, 0)
	for _, p := range s.repo.Photographers() {
		if !s.isBusy(p, at) {
			available = append(available, p)
		}
	}
	return available
}

// isBusy applies the studio's coarse conflict rule: any of the
// photographer's orders on the same calendar day whose hour is within 2
// (exclusive) of the candidate's hour. Minutes are ignored and the window
// never crosses midnight, so a 23:00 order does not block a 00:00 slot the
// next day.
func (s *BookingService) isBusy(p *models.Photographer, at time.Time) bool {
	for _, o := range s.repo.Orders() {
		if o.PhotographerID != p.ID {
			continue
		}
		if utils.SameDay(o.OrderDate, at) && absInt(o.OrderDate.Hour()-at.Hour()) < 2 {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
