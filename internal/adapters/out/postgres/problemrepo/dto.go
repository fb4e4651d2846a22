// Package problemrepo provides data transfer objects and mapping functions for
// problem record persistence.
package problemrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for persisting problem records.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	ClientID    uuid.UUID `gorm:"type:uuid"`
	CollectorID uuid.UUID `gorm:"type:uuid"`
	Kind        int
	Status      int `gorm:"index"`
	Details     string
	Resolution  string
	CreatedAt   time.Time
}

// TableName specifies the database table name for problem records.
func (RecordDTO) TableName() string {
	return "problem_records"
}

func fromDomain(record *problem.Record) RecordDTO {
	return RecordDTO{
		ID:          record.ID().Bytes(),
		OrderID:     record.OrderID().Bytes(),
		ProductID:   record.ProductID().Bytes(),
		ClientID:    record.ClientID().Bytes(),
		CollectorID: record.CollectorID().Bytes(),
		Kind:        int(record.Kind()),
		Status:      int(record.Status()),
		Details:     record.Details(),
		Resolution:  record.Resolution(),
		CreatedAt:   record.CreatedAt(),
	}
}

func toDomain(dto RecordDTO) (*problem.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	collectorID, err := kernel.UUIDFromBytes(dto.CollectorID[:])
	if err != nil {
		return nil, err
	}

	return problem.RestoreRecord(
		id, orderID, productID, clientID, collectorID,
		problem.Kind(dto.Kind), problem.Status(dto.Status),
		dto.Details, dto.Resolution, dto.CreatedAt,
	)
}
