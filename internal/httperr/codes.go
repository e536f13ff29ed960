package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeClientNotFound       = "client_not_found"
	CodeVehicleNotFound      = "vehicle_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeIncompleteDetails    = "incomplete_details"
	CodeOutsideBusinessHours = "outside_business_hours"
	CodeInvalidRequest       = "invalid_request"
	CodeInternal             = "internal_error"
)

type mapping struct {
	status  int
	message string
}

var business = map[string]mapping{
	CodeClientNotFound:       {http.StatusNotFound, "Clientul nu există."},
	CodeVehicleNotFound:      {http.StatusNotFound, "Mașina nu a fost găsită."},
	CodeAppointmentNotFound:  {http.StatusNotFound, "Programarea nu există."},
	CodeIncompleteDetails:    {http.StatusBadRequest, "Detaliile programării sunt incomplete."},
	CodeOutsideBusinessHours: {http.StatusBadRequest, "Intervalul trebuie să fie în intervalul de funcționare 8-17 și să fie un multiplu de 30 de minute."},
	CodeInvalidRequest:       {http.StatusBadRequest, "Cerere invalidă."},
}

// Respond translates err into the JSON error body. Business errors get their
// mapped status; anything else is a 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		if m, ok := business[be.Code]; ok {
			c.JSON(m.status, HTTPError{
				Message: m.message,
				Code:    be.Code,
				Fields:  be.Fields,
			})
			return
		}
		BadRequest(c, be.Code, be.Error())
		return
	}

	_ = c.Error(err)
	Internal(c, CodeInternal, "Eroare internă a serverului.")
}
