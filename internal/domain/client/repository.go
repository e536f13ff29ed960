package client

import (
	"context"

	"github.com/BruksfildServices01/service-auto/internal/models"
)

type Repository interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)

	// CreateClient assigns c.ID with NextID before storing it.
	CreateClient(ctx context.Context, c *models.Client) error

	// UpdateClient applies patch to the stored client and returns the result.
	UpdateClient(
		ctx context.Context,
		id string,
		patch func(c *models.Client),
	) (*models.Client, error)

	DeleteClient(ctx context.Context, id string) error
}
