// Package directoryrepo reads stores and accounts owned by the marketplace's
// user/store directory. The order core only reads these tables; AddStore and
// AddAccount exist for seeding.
package directoryrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO is a storefront row. A seller owns at most one store.
type StoreDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// AccountDTO is a user row with the delivery profile embedded.
type AccountDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Username string      `gorm:"type:varchar(255);not null"`
	Email    string      `gorm:"type:varchar(255);not null;default:''"`
	Delivery DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

type DeliveryDTO struct {
	Region   string `gorm:"type:varchar(255)"`
	Street   string `gorm:"type:varchar(255)"`
	Floor    string `gorm:"type:varchar(64)"`
	Doorbell string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(64)"`
}

func storeFromDomain(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:      s.ID().Bytes(),
		Name:    s.Name(),
		OwnerID: s.OwnerID().Bytes(),
	}
}

func storeToDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}
	return store.NewStore(id, dto.Name, ownerID)
}

func accountFromDomain(a *account.Account) AccountDTO {
	d := a.Delivery()
	return AccountDTO{
		ID:       a.ID().Bytes(),
		Username: a.Username(),
		Email:    a.Email(),
		Delivery: DeliveryDTO{
			Region:   d.Region,
			Street:   d.Street,
			Floor:    d.Floor,
			Doorbell: d.Doorbell,
			Phone:    d.Phone,
		},
	}
}

func accountToDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return account.NewAccount(id, dto.Username, dto.Email, account.DeliveryInfo{
		Region:   dto.Delivery.Region,
		Street:   dto.Delivery.Street,
		Floor:    dto.Delivery.Floor,
		Doorbell: dto.Delivery.Doorbell,
		Phone:    dto.Delivery.Phone,
	})
}
