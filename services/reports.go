package services

import (
	"time"

	"photostudio-backend/models"
	"photostudio-backend/store"
)

// ReportService answers the aggregate questions the dashboard and reports
// screens ask. It only reads from the repository.
type ReportService struct {
	repo *store.Repository
}

func NewReportService(repo *store.Repository) *ReportService {
	return &ReportService{repo: repo}
}

// ActiveOrdersCount counts orders still being worked (NEW or IN_PROGRESS).
func (s *ReportService) ActiveOrdersCount() int {
	count := 0
	for _, o := range s.repo.Orders() {
		if o.IsActive() {
			count++
		}
	}
	return count
}

func (s *ReportService) RegularClientsCount() int {
	count := 0
	for _, c := range s.repo.Clients() {
		if c.IsRegular {
			count++
		}
	}
	return count
}

func (s *ReportService) NewClientsCount() int {
	count := 0
	for _, c := range s.repo.Clients() {
		if !c.IsRegular {
			count++
		}
	}
	return count
}

func (s *ReportService) PhotographersCount() int {
	return len(s.repo.Photographers())
}

// RevenueForPeriod sums total cost over orders dated within [start, end],
// both ends inclusive.
func (s *ReportService) RevenueForPeriod(start, end time.Time) float64 {
	var total float64
	for _, o := range s.repo.Orders() {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			total += o.TotalCost
		}
	}
	return total
}

// MostPopularSessionType returns the session type name with the most
// orders. Ties go to the lexicographically smallest name so the answer is
// deterministic. The second return is false when there are no orders.
func (s *ReportService) MostPopularSessionType() (string, bool) {
	counts := make(map[string]int)
	for _, o := range s.repo.Orders() {
		counts[o.SessionType.Name]++
	}

	best := ""
	bestCount := 0
	for name, n := range counts {
		if n > bestCount || (n == bestCount && name < best) {
			best = name
			bestCount = n
		}
	}
	return best, bestCount > 0
}

// PhotosForOrder lists the photos attached to the order, or an empty slice
// when the order is unknown.
func (s *ReportService) PhotosForOrder(orderID string) []models.Photo {
	order := s.repo.FindOrderByID(orderID)
	if order == nil {
		return []models.Photo{}
	}
	out := make([]models.Photo, len(order.Photos))
	copy(out, order.Photos)
	return out
}
