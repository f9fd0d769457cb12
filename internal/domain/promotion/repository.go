package promotion

import (
	"context"

	"github.com/grandora/hotel-manager/internal/models"
)

type Repository interface {
	GetByCode(
		ctx context.Context,
		code string,
	) (*models.Promotion, error)

	Create(
		ctx context.Context,
		p *models.Promotion,
	) error

	List(
		ctx context.Context,
	) ([]models.Promotion, error)
}
