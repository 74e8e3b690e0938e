package store

import (
	"log"
	"strings"

	"photostudio-backend/models"
)

// Repository is the in-memory entity graph for the studio, backed by a set
// of flat files in dir. It is built once at startup and passed by handle to
// everything that needs it; there is no global instance. Slices keep
// insertion order, which the codec relies on and listings expose.
//
// Every mutating operation synchronously rewrites the whole file set. Write
// failures are logged and swallowed: callers cannot tell "added in memory"
// from "added and durably saved", which is the availability-over-consistency
// trade the studio runs on.
type Repository struct {
	dir string

	clients       []*models.Client
	photographers []*models.Photographer
	orders        []*models.Order
	sessionTypes  []models.SessionType
	payments      []*models.Payment
	inventory     []*models.InventoryItem
	users         []*models.User
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

// Init loads the repository from disk, seeding reference data on first run.
// Per-row problems never fail the load; they come back in the report.
func (r *Repository) Init() *LoadReport {
	report, err := r.Load(r.dir)
	if err != nil {
		log.Printf("[STORE] no data loaded from %s: %v", r.dir, err)
	}
	return report
}

// Flush writes the current snapshot to disk and reports failure to the
// caller, unlike the quiet persist that runs after each mutation.
func (r *Repository) Flush() error {
	return r.Save(r.dir)
}

// persistQuietly rewrites the snapshot after a mutation. The in-memory state
// stays authoritative even when the write fails.
func (r *Repository) persistQuietly() {
	if err := r.Save(r.dir); err != nil {
		log.Printf("[STORE] save failed: %v", err)
	}
}

func (r *Repository) AddClient(c *models.Client) {
	r.clients = append(r.clients, c)
	r.persistQuietly()
}

func (r *Repository) AddPhotographer(p *models.Photographer) {
	r.photographers = append(r.photographers, p)
	r.persistQuietly()
}

func (r *Repository) AddOrder(o *models.Order) {
	r.orders = append(r.orders, o)
	r.persistQuietly()
}

func (r *Repository) AddSessionType(st models.SessionType) {
	r.sessionTypes = append(r.sessionTypes, st)
	r.persistQuietly()
}

func (r *Repository) AddUser(u *models.User) {
	r.users = append(r.users, u)
	r.persistQuietly()
}

// AddPayment records a payment in memory. Payments are not persisted, so no
// write happens here; the PAID status flip on the order is what hits disk.
func (r *Repository) AddPayment(p *models.Payment) {
	r.payments = append(r.payments, p)
}

func (r *Repository) AddInventoryItem(item *models.InventoryItem) {
	r.inventory = append(r.inventory, item)
}

// SaveQuietly re-persists after an in-place mutation of an owned entity
// (status change, loyalty flip, attached photo).
func (r *Repository) SaveQuietly() {
	r.persistQuietly()
}

// FindClientByPhone returns the first client with exactly this phone, or nil.
func (r *Repository) FindClientByPhone(phone string) *models.Client {
	for _, c := range r.clients {
		if c.Phone == phone {
			return c
		}
	}
	return nil
}

// ClientExists reports whether a client with this phone, or a non-empty
// email matching case-insensitively, is already registered.
func (r *Repository) ClientExists(phone, email string) bool {
	for _, c := range r.clients {
		if c.Phone == phone {
			return true
		}
		if email != "" && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

func (r *Repository) FindClientByID(id string) *models.Client {
	for _, c := range r.clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *Repository) FindPhotographerByID(id string) *models.Photographer {
	for _, p := range r.photographers {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Repository) FindOrderByID(id string) *models.Order {
	for _, o := range r.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (r *Repository) FindUserByIdentifier(identifier string) *models.User {
	for _, u := range r.users {
		if u.Email == identifier || u.Phone == identifier {
			return u
		}
	}
	return nil
}

func (r *Repository) FindUserByID(id string) *models.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// SessionTypeByName looks the type up in the catalog. This is the canonical
// lookup path; orders created from persisted rows bypass it deliberately.
func (r *Repository) SessionTypeByName(name string) (models.SessionType, bool) {
	for _, st := range r.sessionTypes {
		if st.Name == name {
			return st, true
		}
	}
	return models.SessionType{}, false
}

// Accessors below hand out copies of the slices so the presentation layer
// and reports cannot reorder or grow the collections behind the store's
// back. The entities themselves are shared.

func (r *Repository) Clients() []*models.Client {
	out := make([]*models.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *Repository) Photographers() []*models.Photographer {
	out := make([]*models.Photographer, len(r.photographers))
	copy(out, r.photographers)
	return out
}

func (r *Repository) Orders() []*models.Order {
	out := make([]*models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *Repository) SessionTypes() []models.SessionType {
	out := make([]models.SessionType, len(r.sessionTypes))
	copy(out, r.sessionTypes)
	return out
}

func (r *Repository) Payments() []*models.Payment {
	out := make([]*models.Payment, len(r.payments))
	copy(out, r.payments)
	return out
}

func (r *Repository) Inventory() []*models.InventoryItem {
	out := make([]*models.InventoryItem, len(r.inventory))
	copy(out, r.inventory)
	return out
}
