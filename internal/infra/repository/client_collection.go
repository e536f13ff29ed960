package repository

import (
	"context"

	apDomain "github.com/BruksfildServices01/service-auto/internal/domain/appointment"
	domain "github.com/BruksfildServices01/service-auto/internal/domain/client"
	"github.com/BruksfildServices01/service-auto/internal/httperr"
	"github.com/BruksfildServices01/service-auto/internal/infra/storage"
	"github.com/BruksfildServices01/service-auto/internal/models"
)

type ClientCollectionRepository struct {
	col *storage.Collection[models.Client]
}

func NewClientCollectionRepository(
	col *storage.Collection[models.Client],
) *ClientCollectionRepository {
	return &ClientCollectionRepository{col: col}
}

func (r *ClientCollectionRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return r.col.Load(ctx)
}

func (r *ClientCollectionRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	clients, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			c := clients[i]
			return &c, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeClientNotFound)
}

func (r *ClientCollectionRepository) CreateClient(ctx context.Context, c *models.Client) error {
	return r.col.Update(ctx, func(items []models.Client) ([]models.Client, error) {
		c.ID = domain.NextID(items)
		return append(items, *c), nil
	})
}

func (r *ClientCollectionRepository) UpdateClient(
	ctx context.Context,
	id string,
	patch func(c *models.Client),
) (*models.Client, error) {

	var updated models.Client

	err := r.col.Update(ctx, func(items []models.Client) ([]models.Client, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			patch(&items[i])
			items[i].ID = id
			updated = items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness(httperr.CodeClientNotFound)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *ClientCollectionRepository) DeleteClient(ctx context.Context, id string) error {
	return r.col.Update(ctx, func(items []models.Client) ([]models.Client, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, httperr.ErrBusiness(httperr.CodeClientNotFound)
	})
}

// Compile-time checks
var (
	_ domain.Repository        = (*ClientCollectionRepository)(nil)
	_ apDomain.ClientDirectory = (*ClientCollectionRepository)(nil)
)
