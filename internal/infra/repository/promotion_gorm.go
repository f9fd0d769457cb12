package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/grandora/hotel-manager/internal/domain/promotion"
	"github.com/grandora/hotel-manager/internal/httperr"
	"github.com/grandora/hotel-manager/internal/models"
)

type PromotionGormRepository struct {
	db *gorm.DB
}

func NewPromotionGormRepository(db *gorm.DB) *PromotionGormRepository {
	return &PromotionGormRepository{db: db}
}

func (r *PromotionGormRepository) GetByCode(
	ctx context.Context,
	code string,
) (*models.Promotion, error) {

	var p models.Promotion
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionGormRepository) Create(
	ctx context.Context,
	p *models.Promotion,
) error {

	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Promotion{}).
		Where("code = ?", p.Code).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("duplicate_code")
	}

	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromotionGormRepository) List(
	ctx context.Context,
) ([]models.Promotion, error) {

	var promos []models.Promotion
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&promos).Error; err != nil {
		return nil, err
	}

	return promos, nil
}

// Compile-time check
var _ domain.Repository = (*PromotionGormRepository)(nil)
