package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/models"
	"photostudio-backend/store"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := store.NewRepository(dir)

	anna := models.NewClient("Anna", "0501112233", "anna@example.com", false)
	boris := models.NewClient("Boris", "0507778899", "", true)
	repo.AddClient(anna)
	repo.AddClient(boris)

	ivan := models.NewPhotographer("Ivan", "0991112233", "Portrait")
	repo.AddPhotographer(ivan)

	order := models.NewOrder(anna, ivan, models.SessionType{Name: "Portrait", BasePrice: 1000})
	order.Status = models.StatusInProgress
	order.AddPhoto("/photos/anna/001.jpg")
	order.AddPhoto("/photos/anna/002.jpg")
	repo.AddOrder(order)

	require.NoError(t, repo.Flush())

	reloaded := store.NewRepository(dir)
	report := reloaded.Init()
	require.Empty(t, report.Skipped)

	clients := reloaded.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, anna.ID, clients[0].ID)
	assert.Equal(t, "Anna", clients[0].Name)
	assert.Equal(t, "anna@example.com", clients[0].Email)
	assert.False(t, clients[0].IsRegular)
	assert.True(t, clients[1].IsRegular)

	orders := reloaded.Orders()
	require.Len(t, orders, 1)
	got := orders[0]
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, order.TotalCost, got.TotalCost)
	assert.Equal(t, order.OrderDate.Format("2006-01-02T15:04:05"), got.OrderDate.Format("2006-01-02T15:04:05"))

	// references resolve to the reloaded entities, not copies with new ids
	require.NotNil(t, got.Client)
	require.NotNil(t, got.Photographer)
	assert.Same(t, clients[0], got.Client)
	assert.Equal(t, ivan.ID, got.Photographer.ID)

	require.Len(t, got.Photos, 2)
	assert.Equal(t, "/photos/anna/001.jpg", got.Photos[0].FilePath)
	assert.Equal(t, order.Photos[1].ID, got.Photos[1].ID)
}

func TestLoadEmptyDirSeedsReferenceData(t *testing.T) {
	repo := store.NewRepository(t.TempDir())
	report := repo.Init()

	assert.Empty(t, report.Skipped)
	assert.Empty(t, repo.Clients())
	assert.Len(t, repo.Photographers(), 3)
	require.Len(t, repo.SessionTypes(), 3)
	assert.Equal(t, models.SessionType{Name: "Portrait", BasePrice: 1000}, repo.SessionTypes()[0])
}

func TestLoadDoesNotSeedWhenPhotographersExist(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "photographers.csv", "p1,Ivan,0991112233,Portrait\n")

	repo := store.NewRepository(dir)
	repo.Init()

	require.Len(t, repo.Photographers(), 1)
	assert.Empty(t, repo.SessionTypes())
}

func TestMalformedClientRowSkipped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "clients.csv",
		"c1,Anna,0501112233,anna@example.com,false\n"+
			"c2,Boris,0507778899\n"+
			"c3,Clara,0503334455,clara@example.com,true\n")
	writeDataFile(t, dir, "photographers.csv", "p1,Ivan,0991112233,Portrait\n")

	repo := store.NewRepository(dir)
	report := repo.Init()

	clients := repo.Clients()
	require.Len(t, clients, 2)
	assert.Equal(t, "c1", clients[0].ID)
	assert.Equal(t, "c3", clients[1].ID)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "clients.csv", report.Skipped[0].File)
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Contains(t, report.Skipped[0].Reason, "expected 5 fields")
}

func TestOrderWithUnresolvableReferenceDropped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "clients.csv", "c1,Anna,0501112233,anna@example.com,false\n")
	writeDataFile(t, dir, "photographers.csv", "p1,Ivan,0991112233,Portrait\n")
	writeDataFile(t, dir, "orders.csv",
		"o1,2026-03-10T10:00:00,NEW,c1,p1,Portrait,1000\n"+
			"o2,2026-03-11T12:00:00,NEW,ghost,p1,Portrait,1000\n"+
			"o3,2026-03-12T14:00:00,NEW,c1,nobody,Wedding,5000\n")

	repo := store.NewRepository(dir)
	report := repo.Init()

	require.Len(t, repo.Orders(), 1)
	assert.Equal(t, "o1", repo.Orders()[0].ID)

	require.Len(t, report.Skipped, 2)
	assert.Contains(t, report.Skipped[0].Reason, "unknown client id")
	assert.Contains(t, report.Skipped[1].Reason, "unknown photographer id")
}

func TestMalformedOrderFieldsDropped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "clients.csv", "c1,Anna,0501112233,anna@example.com,false\n")
	writeDataFile(t, dir, "photographers.csv", "p1,Ivan,0991112233,Portrait\n")
	writeDataFile(t, dir, "orders.csv",
		"o1,not-a-date,NEW,c1,p1,Portrait,1000\n"+
			"o2,2026-03-11T12:00:00,SHIPPED,c1,p1,Portrait,1000\n"+
			"o3,2026-03-12T14:00:00,NEW,c1,p1,Portrait,lots\n"+
			"o4,2026-03-13T15:00:00,PAID,c1,p1,Portrait,900\n")

	repo := store.NewRepository(dir)
	report := repo.Init()

	require.Len(t, repo.Orders(), 1)
	assert.Equal(t, "o4", repo.Orders()[0].ID)

	require.Len(t, report.Skipped, 3)
	assert.Contains(t, report.Skipped[0].Reason, "bad order date")
	assert.Contains(t, report.Skipped[1].Reason, "unknown order status")
	assert.Contains(t, report.Skipped[2].Reason, "bad total cost")
}

func TestPhotoForUnknownOrderDropped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "photographers.csv", "p1,Ivan,0991112233,Portrait\n")
	writeDataFile(t, dir, "photos.csv", "ph1,ghost-order,/photos/x.jpg\n")

	repo := store.NewRepository(dir)
	report := repo.Init()

	require.Len(t, report.Skipped, 1)
	assert.Contains(t, report.Skipped[0].Reason, "unknown order id")
}

// Orders keep the price they were sold at: on reload the session type is
// rebuilt from the persisted row, not looked up in the catalog, so catalog
// price changes never reprice existing orders.
func TestReloadedOrderKeepsPersistedPrice(t *testing.T) {
	dir := t.TempDir()
	repo := store.NewRepository(dir)

	client := models.NewClient("Anna", "0501112233", "", false)
	photographer := models.NewPhotographer("Ivan", "0991112233", "Portrait")
	repo.AddClient(client)
	repo.AddPhotographer(photographer)
	repo.AddSessionType(models.SessionType{Name: "Portrait", BasePrice: 1200})

	order := models.NewOrder(client, photographer, models.SessionType{Name: "Portrait", BasePrice: 1200})
	repo.AddOrder(order)
	require.Equal(t, 1200.0, order.TotalCost)

	require.NoError(t, repo.Flush())

	// the catalog moves on, persisted orders must not
	writeDataFile(t, dir, "sessionTypes.csv", "Portrait,1500\n")

	reloaded := store.NewRepository(dir)
	reloaded.Init()

	catalog, ok := reloaded.SessionTypeByName("Portrait")
	require.True(t, ok)
	assert.Equal(t, 1500.0, catalog.BasePrice)

	require.Len(t, reloaded.Orders(), 1)
	got := reloaded.Orders()[0]
	assert.Equal(t, 1200.0, got.TotalCost)
	assert.Equal(t, 1200.0, got.SessionType.BasePrice)
}

func TestUsersRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := store.NewRepository(dir)

	repo.AddUser(models.NewUser("Olha", "olha@studio.ua", "0671234567", "$2a$14$hash", "owner"))
	require.NoError(t, repo.Flush())

	reloaded := store.NewRepository(dir)
	reloaded.Init()

	user := reloaded.FindUserByIdentifier("olha@studio.ua")
	require.NotNil(t, user)
	assert.Equal(t, "owner", user.Role)
	assert.Equal(t, "$2a$14$hash", user.PasswordHash)
	assert.Same(t, user, reloaded.FindUserByIdentifier("0671234567"))
}

func TestOrderDateSurvivesWithSecondPrecision(t *testing.T) {
	dir := t.TempDir()
	repo := store.NewRepository(dir)

	client := models.NewClient("Anna", "0501112233", "", false)
	photographer := models.NewPhotographer("Ivan", "0991112233", "Portrait")
	repo.AddClient(client)
	repo.AddPhotographer(photographer)

	order := models.NewOrder(client, photographer, models.SessionType{Name: "Portrait", BasePrice: 1000})
	order.OrderDate = time.Date(2026, 3, 10, 10, 30, 45, 123456789, time.UTC)
	repo.AddOrder(order)
	require.NoError(t, repo.Flush())

	reloaded := store.NewRepository(dir)
	reloaded.Init()

	require.Len(t, reloaded.Orders(), 1)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 30, 45, 0, time.UTC), reloaded.Orders()[0].OrderDate)
}
