package directoryrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDirectory implements ports.Directory using GORM.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (r *GormDirectory) AddStore(ctx context.Context, s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}
	dto := storeFromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDirectory) AddAccount(ctx context.Context, a *account.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	dto := accountFromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetStore returns *errs.StoreNotFoundError if the store does not exist.
func (r *GormDirectory) GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewStoreNotFoundError(id.String())
		}
		return nil, err
	}

	return storeToDomain(dto)
}

// GetAccount returns *errs.ObjectNotFoundError if the account does not exist.
func (r *GormDirectory) GetAccount(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return accountToDomain(dto)
}

// FindStoreByOwner returns *errs.ObjectNotFoundError if the seller owns no store.
func (r *GormDirectory) FindStoreByOwner(ctx context.Context, ownerID kernel.UUID) (*store.Store, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store of owner", ownerID.String())
		}
		return nil, err
	}

	return storeToDomain(dto)
}

func (r *GormDirectory) StoresByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*store.Store, error) {
	stores := make(map[kernel.UUID]*store.Store, len(ids))
	if len(ids) == 0 {
		return stores, nil
	}

	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		s, err := storeToDomain(dto)
		if err != nil {
			return nil, err
		}
		stores[s.ID()] = s
	}
	return stores, nil
}

func (r *GormDirectory) AccountsByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*account.Account, error) {
	accounts := make(map[kernel.UUID]*account.Account, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}

	var dtos []AccountDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		a, err := accountToDomain(dto)
		if err != nil {
			return nil, err
		}
		accounts[a.ID()] = a
	}
	return accounts, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.Bytes()
	}
	return raw
}
