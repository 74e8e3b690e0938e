package store

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"photostudio-backend/models"
)

// One flat file per entity kind, one record per line, comma-joined fields,
// no header and no escaping. Embedded commas in values will corrupt the row
// on the way back in; the load side treats such rows as malformed and drops
// them.
const (
	clientsFile       = "clients.csv"
	photographersFile = "photographers.csv"
	sessionTypesFile  = "sessionTypes.csv"
	ordersFile        = "orders.csv"
	photosFile        = "photos.csv"
	usersFile         = "users.csv"
)

// timeLayout is ISO-8601 without a zone, matching what earlier snapshots of
// the studio's data files contain.
const timeLayout = "2006-01-02T15:04:05"

// SkippedRow explains one record the loader dropped.
type SkippedRow struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// LoadReport is the best-effort decode result: Load never fails over a bad
// record, but every dropped row is accounted for here so callers and tests
// can see what was lost.
type LoadReport struct {
	Skipped []SkippedRow `json:"skipped"`
}

func (rep *LoadReport) skip(file string, line int, reason string) {
	rep.Skipped = append(rep.Skipped, SkippedRow{File: file, Line: line, Reason: reason})
}

// Save writes every collection to its flat file under dir. Payments and
// inventory are deliberately not written.
func (r *Repository) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	clientLines := make([]string, 0, len(r.clients))
	for _, c := range r.clients {
		clientLines = append(clientLines, strings.Join([]string{
			c.ID, c.Name, c.Phone, c.Email, strconv.FormatBool(c.IsRegular),
		}, ","))
	}
	if err := writeLines(dir, clientsFile, clientLines); err != nil {
		return err
	}

	photographerLines := make([]string, 0, len(r.photographers))
	for _, p := range r.photographers {
		photographerLines = append(photographerLines, strings.Join([]string{
			p.ID, p.Name, p.Phone, p.Specialization,
		}, ","))
	}
	if err := writeLines(dir, photographersFile, photographerLines); err != nil {
		return err
	}

	sessionTypeLines := make([]string, 0, len(r.sessionTypes))
	for _, st := range r.sessionTypes {
		sessionTypeLines = append(sessionTypeLines,
			st.Name+","+formatFloat(st.BasePrice))
	}
	if err := writeLines(dir, sessionTypesFile, sessionTypeLines); err != nil {
		return err
	}

	orderLines := make([]string, 0, len(r.orders))
	photoLines := make([]string, 0)
	for _, o := range r.orders {
		orderLines = append(orderLines, strings.Join([]string{
			o.ID,
			o.OrderDate.Format(timeLayout),
			string(o.Status),
			o.ClientID,
			o.PhotographerID,
			o.SessionType.Name,
			formatFloat(o.TotalCost),
		}, ","))
		for _, photo := range o.Photos {
			photoLines = append(photoLines, strings.Join([]string{
				photo.ID, o.ID, photo.FilePath,
			}, ","))
		}
	}
	if err := writeLines(dir, ordersFile, orderLines); err != nil {
		return err
	}
	if err := writeLines(dir, photosFile, photoLines); err != nil {
		return err
	}

	userLines := make([]string, 0, len(r.users))
	for _, u := range r.users {
		userLines = append(userLines, strings.Join([]string{
			u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role,
		}, ","))
	}
	return writeLines(dir, usersFile, userLines)
}

// Load replaces all collections with file contents. A missing file is an
// empty collection. Load order is fixed: clients and photographers first
// (seeding when the photographer roster is empty), then the session-type
// catalog, then orders, which need both rosters resolved, then photos,
// which need orders resolved, then staff users.
func (r *Repository) Load(dir string) (*LoadReport, error) {
	rep := &LoadReport{}

	r.clients = nil
	r.photographers = nil
	r.orders = nil
	r.sessionTypes = nil
	r.payments = nil
	r.users = nil

	forEachRow(dir, clientsFile, rep, 5, func(line int, parts []string) error {
		c := &models.Client{
			Person: models.Person{ID: parts[0], Name: parts[1], Phone: parts[2]},
			Email:  parts[3],
			// mirrors Boolean.parseBoolean: anything but "true" is false
			IsRegular: strings.EqualFold(parts[4], "true"),
		}
		r.clients = append(r.clients, c)
		return nil
	})

	forEachRow(dir, photographersFile, rep, 4, func(line int, parts []string) error {
		p := &models.Photographer{
			Person:         models.Person{ID: parts[0], Name: parts[1], Phone: parts[2]},
			Specialization: parts[3],
		}
		r.photographers = append(r.photographers, p)
		return nil
	})

	// First run: nothing on disk yet, install the reference data before
	// orders try to resolve against it.
	if len(r.photographers) == 0 {
		r.seed()
	}

	forEachRow(dir, sessionTypesFile, rep, 2, func(line int, parts []string) error {
		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Errorf("bad base price %q", parts[1])
		}
		r.sessionTypes = append(r.sessionTypes, models.SessionType{
			Name:      parts[0],
			BasePrice: price,
		})
		return nil
	})

	forEachRow(dir, ordersFile, rep, 7, func(line int, parts []string) error {
		orderDate, err := time.Parse(timeLayout, parts[1])
		if err != nil {
			return fmt.Errorf("bad order date %q", parts[1])
		}
		status, err := models.ParseOrderStatus(parts[2])
		if err != nil {
			return err
		}
		cost, err := strconv.ParseFloat(parts[6], 64)
		if err != nil {
			return fmt.Errorf("bad total cost %q", parts[6])
		}
		client := r.FindClientByID(parts[3])
		if client == nil {
			return fmt.Errorf("unknown client id %q", parts[3])
		}
		photographer := r.FindPhotographerByID(parts[4])
		if photographer == nil {
			return fmt.Errorf("unknown photographer id %q", parts[4])
		}
		// The session type is fabricated from the persisted name and cost,
		// not resolved from the catalog, so its base price is whatever this
		// order was sold at. Orders therefore keep their price even if the
		// catalog changes later.
		o := &models.Order{
			ID:             parts[0],
			OrderDate:      orderDate,
			Status:         status,
			TotalCost:      cost,
			ClientID:       client.ID,
			PhotographerID: photographer.ID,
			Client:         client,
			Photographer:   photographer,
			SessionType:    models.SessionType{Name: parts[5], BasePrice: cost},
			Photos:         []models.Photo{},
		}
		r.orders = append(r.orders, o)
		return nil
	})

	forEachRow(dir, photosFile, rep, 3, func(line int, parts []string) error {
		order := r.FindOrderByID(parts[1])
		if order == nil {
			return fmt.Errorf("unknown order id %q", parts[1])
		}
		order.Photos = append(order.Photos, models.Photo{ID: parts[0], FilePath: parts[2]})
		return nil
	})

	forEachRow(dir, usersFile, rep, 6, func(line int, parts []string) error {
		u := &models.User{
			ID:           parts[0],
			Name:         parts[1],
			Email:        parts[2],
			Phone:        parts[3],
			PasswordHash: parts[4],
			Role:         parts[5],
		}
		r.users = append(r.users, u)
		return nil
	})

	return rep, nil
}

// forEachRow streams a flat file through fn. A missing file means an empty
// collection; a row with too few fields, or one fn rejects, is recorded in
// the report and dropped. Nothing here ever aborts the load.
func forEachRow(dir, name string, rep *LoadReport, wantFields int, fn func(line int, parts []string) error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[STORE] read %s: %v", name, err)
		}
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts := strings.Split(text, ",")
		if len(parts) < wantFields {
			rep.skip(name, line, fmt.Sprintf("expected %d fields, got %d", wantFields, len(parts)))
			continue
		}
		if err := fn(line, parts); err != nil {
			rep.skip(name, line, err.Error())
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[STORE] read %s: %v", name, err)
	}
}

func writeLines(dir, name string, lines []string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
