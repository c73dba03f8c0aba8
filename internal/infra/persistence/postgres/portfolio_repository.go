// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// portfolioRepository implements the repository.PortfolioRepository interface.
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository is the constructor for portfolioRepository.
func NewPortfolioRepository(db *gorm.DB) repository.PortfolioRepository {
	return &portfolioRepository{
		db: db,
	}
}

// Create persists a new portfolio snapshot.
func (repo *portfolioRepository) Create(ctx context.Context, portfolio *entity.Portfolio) error {
	portfolioM, err := fromPortfolioDomain(portfolio)
	if err != nil {
		return errors.Wrap(err, "failed to encode portfolio holdings")
	}

	if err := repo.db.WithContext(ctx).Create(portfolioM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create portfolio")
	}

	// Update the entity with generated values
	portfolio.ID = portfolioM.ID
	portfolio.CreatedAt = portfolioM.CreatedAt

	return nil
}

// FindActive retrieves the currently active snapshot.
func (repo *portfolioRepository) FindActive(ctx context.Context) (*entity.Portfolio, error) {
	var portfolioM model.PortfolioModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&portfolioM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPortfolioNotFound
		}

		return nil, errors.Wrap(err, "failed to find active portfolio")
	}

	return toPortfolioDomain(&portfolioM)
}

// DeactivateAll marks every snapshot inactive.
func (repo *portfolioRepository) DeactivateAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PortfolioModel{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate portfolios")
	}

	return nil
}

// --- Mapper Functions ---

// toPortfolioDomain converts a GORM PortfolioModel to a domain Portfolio entity.
func toPortfolioDomain(data *model.PortfolioModel) (*entity.Portfolio, error) {
	if data == nil {
		return nil, nil
	}

	holdings := make(map[string]float64)
	if len(data.Holdings) > 0 {
		if err := json.Unmarshal(data.Holdings, &holdings); err != nil {
			return nil, errors.Wrap(err, "failed to decode portfolio holdings")
		}
	}

	return &entity.Portfolio{
		ID:          data.ID,
		Description: data.Description,
		Holdings:    holdings,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}, nil
}

// fromPortfolioDomain converts a domain Portfolio entity to a GORM PortfolioModel.
func fromPortfolioDomain(data *entity.Portfolio) (*model.PortfolioModel, error) {
	if data == nil {
		return nil, nil
	}

	holdings, err := json.Marshal(data.Holdings)
	if err != nil {
		return nil, err
	}

	return &model.PortfolioModel{
		ID:          data.ID,
		Description: data.Description,
		Holdings:    holdings,
		IsActive:    data.IsActive,
	}, nil
}
