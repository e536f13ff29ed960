package dto

import "github.com/BruksfildServices01/service-auto/internal/models"

// UpdateClientRequest is a PUT body taken member by member; only the members
// present in it replace the stored ones.
type UpdateClientRequest models.Members

func (r UpdateClientRequest) Apply(c *models.Client) {
	c.Merge(models.Members(r))
}
