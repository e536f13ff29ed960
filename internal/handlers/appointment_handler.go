package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-auto/internal/dto"
	"github.com/BruksfildServices01/service-auto/internal/httperr"
	"github.com/BruksfildServices01/service-auto/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/service-auto/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list        *ucAppointment.ListAppointments
	create      *ucAppointment.CreateAppointment
	appendEvent *ucAppointment.AppendServiceEvent
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	create *ucAppointment.CreateAppointment,
	appendEvent *ucAppointment.AppendServiceEvent,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:        list,
		create:      create,
		appendEvent: appendEvent,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, appointments)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientID:   req.ClientID,
			SerieSasiu: req.SerieSasiu,
			Actiune:    req.Actiune,
			Interval:   req.Interval,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// SERVICE HISTORY
// ======================================================

func (h *AppointmentHandler) AppendHistory(c *gin.Context) {
	// a non-numeric id cannot match any appointment
	id, err := strconv.Atoi(c.Param("programareId"))
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeAppointmentNotFound))
		return
	}

	var req dto.ServiceEventRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	ap, err := h.appendEvent.Execute(c.Request.Context(), id, req.ToModel())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}
