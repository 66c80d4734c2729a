package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

var _ domain.Repository = (*DirectoryGormRepository)(nil)

func activeWorkers(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true).Order("name ASC")
}

// --------------------------------------------------
// Stores
// --------------------------------------------------

func (r *DirectoryGormRepository) CreateStore(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(store).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("store_slug_taken")
		}
		return err
	}
	return nil
}

func (r *DirectoryGormRepository) UpdateStore(ctx context.Context, store *models.Store) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(store).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("store_slug_taken")
		}
		return err
	}
	return nil
}

func (r *DirectoryGormRepository) GetStore(ctx context.Context, storeID uint) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Preload("Workers", activeWorkers).
		First(&store, storeID).Error; err != nil {
		return nil, notFound(err, "store_not_found")
	}
	return &store, nil
}

func (r *DirectoryGormRepository) GetStoreBySlug(ctx context.Context, slug string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Preload("Workers", activeWorkers).
		Where("slug = ?", slug).
		First(&store).Error; err != nil {
		return nil, notFound(err, "store_not_found")
	}
	return &store, nil
}

// likeEscaper quotes LIKE wildcards; backslash is the Postgres default escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (r *DirectoryGormRepository) ListStores(ctx context.Context, filter domain.StoreFilter) ([]models.Store, error) {
	q := r.db.WithContext(ctx).Model(&models.Store{})

	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		like := "%" + likeEscaper.Replace(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(city))
	}

	var stores []models.Store
	if err := q.Order("name ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// --------------------------------------------------
// Workers
// --------------------------------------------------

func (r *DirectoryGormRepository) ListWorkers(
	ctx context.Context,
	storeID uint,
	includeInactive bool,
) ([]models.Worker, error) {

	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if !includeInactive {
		q = q.Where("active = ?", true)
	}

	var workers []models.Worker
	if err := q.Order("name ASC").Order("id ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *DirectoryGormRepository) CreateWorker(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(worker).Error
}

// UpdateWorker writes every column, so Active=false is persisted.
func (r *DirectoryGormRepository) UpdateWorker(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(worker).Error
}

func (r *DirectoryGormRepository) GetWorker(ctx context.Context, workerID uint) (*models.Worker, error) {
	var w models.Worker
	if err := r.db.WithContext(ctx).First(&w, workerID).Error; err != nil {
		return nil, notFound(err, "worker_not_found")
	}
	return &w, nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *DirectoryGormRepository) CreateClient(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("email_taken")
		}
		return err
	}
	return nil
}

func (r *DirectoryGormRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		if httperr.IsConflict(err) {
			return httperr.ErrBusiness("email_taken")
		}
		return err
	}
	return nil
}

func (r *DirectoryGormRepository) GetClient(ctx context.Context, clientID uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, clientID).Error; err != nil {
		return nil, notFound(err, "client_not_found")
	}
	return &c, nil
}

func (r *DirectoryGormRepository) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&c).Error; err != nil {
		return nil, notFound(err, "friend_not_found")
	}
	return &c, nil
}

// --------------------------------------------------
// Friends
// --------------------------------------------------

func (r *DirectoryGormRepository) ListFriends(ctx context.Context, clientID uint) ([]models.Client, error) {
	var links []models.Friendship
	if err := r.db.WithContext(ctx).
		Preload("Friend").
		Where("client_id = ?", clientID).
		Find(&links).Error; err != nil {
		return nil, err
	}

	friends := make([]models.Client, 0, len(links))
	for _, l := range links {
		friends = append(friends, l.Friend)
	}
	domain.SortClients(friends)
	return friends, nil
}

func (r *DirectoryGormRepository) IsFriend(ctx context.Context, clientID, friendID uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("client_id = ? AND friend_id = ?", clientID, friendID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddFriendship stores both directions in one transaction.
func (r *DirectoryGormRepository) AddFriendship(ctx context.Context, clientID, friendID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		links := []models.Friendship{
			{ClientID: clientID, FriendID: friendID},
			{ClientID: friendID, FriendID: clientID},
		}
		return tx.Omit(clause.Associations).Create(&links).Error
	})
	if httperr.IsConflict(err) {
		return httperr.ErrBusiness("already_friends")
	}
	return err
}

func (r *DirectoryGormRepository) RemoveFriendship(ctx context.Context, clientID, friendID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where(
				"(client_id = ? AND friend_id = ?) OR (client_id = ? AND friend_id = ?)",
				clientID, friendID, friendID, clientID,
			).
			Delete(&models.Friendship{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("friend_not_found")
		}
		return nil
	})
}
