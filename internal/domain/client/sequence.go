package client

import (
	"strconv"

	"github.com/BruksfildServices01/service-auto/internal/models"
)

// NextID returns the largest numeric id plus one, as a string. Ids that are
// not numbers are skipped.
func NextID(existing []models.Client) string {
	maxID := 0
	for _, c := range existing {
		if n, err := strconv.Atoi(c.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}
