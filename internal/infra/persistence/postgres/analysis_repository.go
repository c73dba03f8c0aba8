// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analysisRepository implements the repository.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository is the constructor for analysisRepository.
func NewAnalysisRepository(db *gorm.DB) repository.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Create persists a new analysis.
func (repo *analysisRepository) Create(ctx context.Context, analysis *entity.Analysis) error {
	analysisM := fromAnalysisDomain(analysis)

	if err := repo.db.WithContext(ctx).Create(analysisM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required analysis information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analysis")
	}

	// Update the entity with generated values
	analysis.ID = analysisM.ID
	analysis.CreatedAt = analysisM.CreatedAt

	return nil
}

// FindByID retrieves an analysis by its unique ID.
func (repo *analysisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Analysis, error) {
	var analysisM model.AnalysisModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&analysisM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnalysisNotFound
		}

		return nil, errors.Wrap(err, "failed to find analysis by ID")
	}

	return toAnalysisDomain(&analysisM), nil
}

// ListPublished retrieves published analyses, newest first.
func (repo *analysisRepository) ListPublished(ctx context.Context, limit, offset int) ([]*entity.Analysis, error) {
	var analysisModels []*model.AnalysisModel

	query := repo.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&analysisModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published analyses")
	}

	analyses := make([]*entity.Analysis, 0, len(analysisModels))
	for _, analysisM := range analysisModels {
		analyses = append(analyses, toAnalysisDomain(analysisM))
	}

	return analyses, nil
}

// --- Mapper Functions ---

// toAnalysisDomain converts a GORM AnalysisModel to a domain Analysis entity.
func toAnalysisDomain(data *model.AnalysisModel) *entity.Analysis {
	if data == nil {
		return nil
	}

	return &entity.Analysis{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Content:       data.Content,
		AttachmentURL: data.AttachmentURL,
		IsPublished:   data.IsPublished,
		CreatedAt:     data.CreatedAt,
	}
}

// fromAnalysisDomain converts a domain Analysis entity to a GORM AnalysisModel.
func fromAnalysisDomain(data *entity.Analysis) *model.AnalysisModel {
	if data == nil {
		return nil
	}

	return &model.AnalysisModel{
		ID:            data.ID,
		AuthorID:      data.AuthorID,
		Title:         data.Title,
		Content:       data.Content,
		AttachmentURL: data.AttachmentURL,
		IsPublished:   data.IsPublished,
	}
}
