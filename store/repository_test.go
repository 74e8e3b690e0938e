package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photostudio-backend/models"
	"photostudio-backend/store"
)

func TestAddClientPersistsSnapshot(t *testing.T) {
	dir := t.TempDir()
	repo := store.NewRepository(dir)

	repo.AddClient(models.NewClient("Anna", "0501112233", "anna@example.com", false))

	data, err := os.ReadFile(filepath.Join(dir, "clients.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Anna,0501112233,anna@example.com,false")
}

func TestFindClientByPhone(t *testing.T) {
	repo := store.NewRepository(t.TempDir())
	anna := models.NewClient("Anna", "0501112233", "", false)
	repo.AddClient(anna)

	assert.Same(t, anna, repo.FindClientByPhone("0501112233"))
	assert.Nil(t, repo.FindClientByPhone("0000000000"))
}

func TestClientExists(t *testing.T) {
	repo := store.NewRepository(t.TempDir())
	repo.AddClient(models.NewClient("Anna", "0501112233", "Anna@Example.com", false))
	repo.AddClient(models.NewClient("Boris", "0507778899", "", false))

	tests := []struct {
		name  string
		phone string
		email string
		want  bool
	}{
		{"exact phone match", "0501112233", "", true},
		{"email match is case-insensitive", "0000000000", "anna@example.COM", true},
		{"no match", "0000000000", "nobody@example.com", false},
		{"empty email never matches empty email", "0000000000", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.ClientExists(tt.phone, tt.email))
		})
	}
}

func TestCollectionsKeepInsertionOrder(t *testing.T) {
	repo := store.NewRepository(t.TempDir())
	repo.AddClient(models.NewClient("Anna", "1", "", false))
	repo.AddClient(models.NewClient("Boris", "2", "", false))
	repo.AddClient(models.NewClient("Clara", "3", "", false))

	clients := repo.Clients()
	require.Len(t, clients, 3)
	assert.Equal(t, "Anna", clients[0].Name)
	assert.Equal(t, "Boris", clients[1].Name)
	assert.Equal(t, "Clara", clients[2].Name)
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo := store.NewRepository(t.TempDir())
	repo.AddClient(models.NewClient("Anna", "1", "", false))

	view := repo.Clients()
	view[0] = nil

	require.Len(t, repo.Clients(), 1)
	assert.NotNil(t, repo.Clients()[0])
}

func TestAddSurvivesUnwritableDirectory(t *testing.T) {
	// persist failures are logged, never surfaced: the add still lands in
	// memory
	dir := filepath.Join(t.TempDir(), "missing", "deep")
	repo := store.NewRepository(filepath.Join(dir, string([]byte{0})))

	repo.AddClient(models.NewClient("Anna", "0501112233", "", false))
	assert.Len(t, repo.Clients(), 1)
}
