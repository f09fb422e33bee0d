package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"realestate/server/internal/catalog"
	"realestate/server/internal/models"
)

type Handler struct {
	catalog *catalog.Service
	logger  *logrus.Logger
}

func NewHandler(svc *catalog.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		catalog: svc,
		logger:  logger,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) SearchProperties(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.respondError(c, err, "Failed to get properties")
		return
	}

	properties, err := h.catalog.SearchProperties(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "Failed to get properties")
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponses(properties))
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.respondError(c, err, "Failed to get property")
		return
	}

	property, err := h.catalog.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get property")
		return
	}

	c.JSON(http.StatusOK, NewPropertyResponse(property))
}

func (h *Handler) GetPropertyInquiries(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.respondError(c, err, "Failed to get inquiries")
		return
	}

	inquiries, err := h.catalog.ListInquiries(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to get inquiries")
		return
	}

	c.JSON(http.StatusOK, NewInquiryResponses(inquiries))
}

// GetPropertyMap returns the located search results as a GeoJSON
// FeatureCollection.
func (h *Handler) GetPropertyMap(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.respondError(c, err, "Failed to get property map")
		return
	}

	features, err := h.catalog.MapFeatures(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err, "Failed to get property map")
		return
	}

	c.JSON(http.StatusOK, features)
}

func (h *Handler) CreateInquiry(c *gin.Context) {
	var input catalog.InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.respondError(c, decodeError(err), "Failed to create inquiry")
		return
	}

	inquiry, err := h.catalog.CreateInquiry(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "Failed to create inquiry")
		return
	}

	c.JSON(http.StatusCreated, NewInquiryResponse(inquiry))
}

// respondError maps catalog error kinds onto HTTP responses. Anything that
// is neither a validation failure nor a missing property is logged and
// reported generically.
func (h *Handler) respondError(c *gin.Context, err error, message string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
	default:
		h.logger.WithError(err).WithField("path", c.FullPath()).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, catalog.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

// bindFilter reads the optional search criteria from the query string and
// reports every malformed number at once.
func bindFilter(c *gin.Context) (models.PropertyFilter, error) {
	filter := models.PropertyFilter{
		City:         c.Query("city"),
		State:        c.Query("state"),
		PropertyType: c.Query("property_type"),
		Search:       c.Query("search"),
	}
	verr := &catalog.ValidationError{}

	parseInt := func(key string) *int64 {
		raw, ok := c.GetQuery(key)
		if !ok || raw == "" {
			return nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Fields = append(verr.Fields, catalog.FieldError{Field: key, Message: "must be an integer"})
			return nil
		}
		return &v
	}

	filter.MinPrice = parseInt("min_price")
	filter.MaxPrice = parseInt("max_price")
	if v := parseInt("bedrooms"); v != nil {
		bedrooms := int(*v)
		filter.Bedrooms = &bedrooms
	}

	if len(verr.Fields) > 0 {
		return filter, verr
	}
	return filter, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return catalog.NewValidationError(field, fmt.Sprintf("must be of type %s", typeErr.Type))
	}
	return catalog.NewValidationError("body", "must be a valid JSON object")
}
