package problemrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/problem"

	"gorm.io/gorm"
)

// GormProblemRepository implements ProblemRepository using GORM.
type GormProblemRepository struct {
	db *gorm.DB
}

// NewGormProblemRepository creates a new GORM problem record repository.
func NewGormProblemRepository(db *gorm.DB) *GormProblemRepository {
	return &GormProblemRepository{db: db}
}

// Add saves a new problem record to the database.
func (r *GormProblemRepository) Add(ctx context.Context, record *problem.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists record changes. Only the status and its resolution comment
// move after creation.
func (r *GormProblemRepository) Update(ctx context.Context, record *problem.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]interface{}{
			"status":     dto.Status,
			"resolution": dto.Resolution,
		}).Error
}

// GetPendingByOrderID retrieves all pending problem records for an order,
// oldest first. An order without pending records yields an empty slice.
func (r *GormProblemRepository) GetPendingByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*problem.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ? AND status = ?", orderID.Bytes(), int(problem.StatusPending)).
		Error; err != nil {
		return nil, err
	}

	records := make([]*problem.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
