package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new unclaimed assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the assignment for an order.
func (r *GormAssignmentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.DeliveryAssignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimIfUnclaimed claims the assignment for the courier with a conditional
// update: the courier column is set only where it is still NULL. Zero rows
// affected means either a lost race or a missing assignment; a follow-up read
// tells the two apart.
func (r *GormAssignmentRepository) ClaimIfUnclaimed(ctx context.Context, orderID, courierID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return err
	}

	now := time.Now()
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("order_id = ? AND courier_id IS NULL", orderID.Bytes()).
		Updates(map[string]any{
			"courier_id": courierID.Bytes(),
			"claimed_at": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByOrderID(ctx, orderID); err != nil {
			return err
		}

		return errs.NewConflictErrorWithCause("assignment", orderID.String(),
			errors.New("already claimed by another courier"))
	}

	return nil
}
