package handler

import (
	"net/http"
	"strconv"

	"library-backend/internal/domains/publisher/model"
	"library-backend/internal/domains/publisher/service"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"
)

const (
	MIMEYAML    = "application/yaml"
	MIMEXYAML   = "application/x-yaml"
	MIMETextXML = "text/xml"
)

// listFormats are the media types GET /publishers can produce, JSON first so it wins on */*
var listFormats = []string{binding.MIMEJSON, binding.MIMEXML, MIMETextXML, MIMEYAML, MIMEXYAML}

// PublisherHandler handles HTTP requests for publisher domain
type PublisherHandler struct {
	service service.ServiceInterface
}

func NewPublisherHandler(service service.ServiceInterface) *PublisherHandler {
	return &PublisherHandler{
		service: service,
	}
}

// RegisterRoutes mounts the publisher routes on rg; guards run before every handler
func (h *PublisherHandler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	publishers := rg.Group(model.ResourcePath, guards...)
	{
		publishers.GET("", h.ListPublishers)
		publishers.GET("/:id", h.GetPublisher)
		publishers.POST("", h.CreatePublisher)
		publishers.PUT("/:id", h.UpdatePublisher)
		publishers.DELETE("/:id", h.DeletePublisher)
	}
}

// ListPublishers handles GET /publishers (JSON, XML or YAML)
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	format := c.NegotiateFormat(listFormats...)
	if format == "" {
		response.NotAcceptable(c, "Supported media types: application/json, application/xml, application/yaml")
		return
	}

	results, err := h.service.ListPublishers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	switch format {
	case binding.MIMEXML, MIMETextXML:
		c.XML(http.StatusOK, model.PublisherListXML{Publishers: results})
	case MIMEYAML, MIMEXYAML:
		c.YAML(http.StatusOK, results)
	default:
		c.JSON(http.StatusOK, results)
	}
}

// GetPublisher handles GET /publishers/:id
func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetPublisher(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewPublisherResource(result, middleware.GetBaseURL(c)))
}

// CreatePublisher handles POST /publishers
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST_BODY", "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.CreatePublisher(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", model.CollectionURL(middleware.GetBaseURL(c))+"/"+strconv.FormatInt(result.ID, 10))
	c.JSON(http.StatusCreated, result)
}

// UpdatePublisher handles PUT /publishers/:id
func (h *PublisherHandler) UpdatePublisher(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.PublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST_BODY", "Invalid request payload", err.Error())
		return
	}

	result, err := h.service.UpdatePublisher(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePublisher handles DELETE /publishers/:id
func (h *PublisherHandler) DeletePublisher(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePublisher(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads a positive integer :id; on failure it writes a 400 and returns false
func (h *PublisherHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.handleError(c, model.NewInvalidPublisherID(idStr))
		return 0, false
	}
	return id, true
}

func (h *PublisherHandler) handleError(c *gin.Context, err error) {
	statusCode, code, message, details := model.MapErrorToHTTP(err)

	if statusCode >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("publisher request failed")
	}

	response.ErrorWithDetails(c, statusCode, code, message, details)
}
