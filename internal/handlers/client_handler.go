package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-auto/internal/audit"
	"github.com/BruksfildServices01/service-auto/internal/domain/client"
	"github.com/BruksfildServices01/service-auto/internal/dto"
	"github.com/BruksfildServices01/service-auto/internal/httperr"
	"github.com/BruksfildServices01/service-auto/internal/httpresp"
	"github.com/BruksfildServices01/service-auto/internal/models"
)

const clientNotFoundMessage = "Clientul nu a fost găsit."

type ClientHandler struct {
	repo  client.Repository
	audit *audit.Dispatcher
}

func NewClientHandler(repo client.Repository, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{repo: repo, audit: audit}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.repo.ListClients(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	// the body is stored as sent, only the id is assigned here
	var cl models.Client
	if err := bindJSON(c, &cl); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	if err := h.repo.CreateClient(c.Request.Context(), &cl); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: cl.ID,
	})

	httpresp.OK(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateClientRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	updated, err := h.repo.UpdateClient(c.Request.Context(), id, req.Apply)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeClientNotFound) {
			httperr.NotFound(c, httperr.CodeClientNotFound, clientNotFoundMessage)
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: updated.ID,
	})

	httpresp.OK(c, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.DeleteClient(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeClientNotFound) {
			httperr.NotFound(c, httperr.CodeClientNotFound, clientNotFoundMessage)
			return
		}
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Clientul a fost dezactivat."})
}
