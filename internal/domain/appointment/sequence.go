package appointment

import "github.com/BruksfildServices01/service-auto/internal/models"

// NextID returns max(existing ids)+1, or 1 for an empty collection.
func NextID(existing []models.Appointment) int {
	maxID := 0
	for _, ap := range existing {
		if ap.ID > maxID {
			maxID = ap.ID
		}
	}
	return maxID + 1
}
