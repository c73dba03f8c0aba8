// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindActiveByUserAndProduct retrieves the most recent paid, unexpired order
// for the user/product pair.
func (repo *orderRepository) FindActiveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID, now time.Time) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND status = ?", userID, productID, string(entity.OrderStatusPaid)).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find active order")
	}

	return toOrderDomain(&orderM), nil
}

// CancelActiveByUserAndProduct flips every paid, unexpired order for the
// user/product pair to cancelled and reports how many rows changed. The
// expiry is stamped with the revocation time so the row records when access
// ended, open-ended orders included.
func (repo *orderRepository) CancelActiveByUserAndProduct(ctx context.Context, userID, productID uuid.UUID, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ? AND product_id = ? AND status = ?", userID, productID, string(entity.OrderStatusPaid)).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Updates(map[string]any{
			"status":     string(entity.OrderStatusCancelled),
			"expires_at": now,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to cancel active orders")
	}

	return result.RowsAffected, nil
}

// FindByUser retrieves all orders for a user, newest first.
func (repo *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Status:     entity.OrderStatus(data.Status),
		PriceCents: data.PriceCents,
		Currency:   data.Currency,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		Status:     string(data.Status),
		PriceCents: data.PriceCents,
		Currency:   data.Currency,
		ExpiresAt:  data.ExpiresAt,
	}
}
