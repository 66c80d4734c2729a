package directory

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// StoreFilter narrows the public store search. Empty fields match all.
type StoreFilter struct {
	Query string
	City  string
}

type Repository interface {
	// Stores
	CreateStore(ctx context.Context, store *models.Store) error
	UpdateStore(ctx context.Context, store *models.Store) error
	GetStore(ctx context.Context, storeID uint) (*models.Store, error)
	GetStoreBySlug(ctx context.Context, slug string) (*models.Store, error)
	ListStores(ctx context.Context, filter StoreFilter) ([]models.Store, error)

	// Workers
	ListWorkers(ctx context.Context, storeID uint, includeInactive bool) ([]models.Worker, error)
	CreateWorker(ctx context.Context, worker *models.Worker) error
	UpdateWorker(ctx context.Context, worker *models.Worker) error
	GetWorker(ctx context.Context, workerID uint) (*models.Worker, error)

	// Clients
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, clientID uint) (*models.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*models.Client, error)

	// Friends
	ListFriends(ctx context.Context, clientID uint) ([]models.Client, error)
	IsFriend(ctx context.Context, clientID, friendID uint) (bool, error)
	AddFriendship(ctx context.Context, clientID, friendID uint) error
	RemoveFriendship(ctx context.Context, clientID, friendID uint) error
}
