package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"inmolista/server/internal/auth"
	"inmolista/server/internal/cache"
	"inmolista/server/internal/database"
	"inmolista/server/internal/listing"
	"inmolista/server/internal/models"
	"inmolista/server/internal/uploads"
)

const defaultFeaturedLimit = 3

type Handler struct {
	db      *database.Database
	cache   *cache.Cache
	uploads *uploads.Service
	logger  *logrus.Logger
}

// StatsResponse is the admin dashboard payload: the aggregate counters plus
// the distinct-city count and the preformatted total, which the dashboard
// renders in USD.
type StatsResponse struct {
	models.PropertyStats
	Cities            int    `json:"cities"`
	TotalValueDisplay string `json:"total_value_display"`
}

// PropertyResponse is the detail-page payload: the record plus display
// strings so the page never formats money or labels itself.
type PropertyResponse struct {
	models.Property
	PriceDisplay   string `json:"price_display"`
	TypeLabel      string `json:"type_label"`
	StatusLabel    string `json:"status_label"`
	OperationLabel string `json:"operation_label"`
}

func NewHandler(db *database.Database, propertyCache *cache.Cache, uploadService *uploads.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:      db,
		cache:   propertyCache,
		uploads: uploadService,
		logger:  logger,
	}
}

// loadProperties fetches the complete ordered collection, through the cache
// when one is configured. Derived views only ever run over the full result
// of this fetch, never a partial one.
func (h *Handler) loadProperties(ctx context.Context) ([]models.Property, error) {
	if h.cache != nil {
		if properties, ok := h.cache.GetProperties(ctx); ok {
			return properties, nil
		}
	}

	properties, err := h.db.List(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.SetProperties(ctx, properties)
	}
	return properties, nil
}

func (h *Handler) GetAllProperties(c *gin.Context) {
	var filters models.FilterSet
	if err := c.ShouldBindQuery(&filters); err != nil {
		h.logger.WithError(err).Error("Failed to parse filters")
	}

	properties, err := h.loadProperties(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, listing.Filter(properties, filters))
}

func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.db.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, h.propertyResponse(*property))
}

func (h *Handler) GetFeaturedProperties(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultFeaturedLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = defaultFeaturedLimit
	}

	properties, err := h.loadProperties(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get featured properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get featured properties"})
		return
	}

	c.JSON(http.StatusOK, listing.FeaturedSubset(properties, limit))
}

func (h *Handler) GetPropertyStats(c *gin.Context) {
	properties, err := h.loadProperties(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get property stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property stats"})
		return
	}

	stats := listing.Statistics(properties)

	display, err := listing.FormatPrice(stats.TotalValue, models.CurrencyUSD)
	if err != nil {
		h.logger.WithError(err).Error("Failed to format total value")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property stats"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		PropertyStats:     stats,
		Cities:            len(listing.DistinctCities(properties)),
		TotalValueDisplay: display,
	})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.db.Create(c.Request.Context(), &property); err != nil {
		if errors.Is(err, database.ErrInvalidRecord) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusCreated, property)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		h.logger.WithError(err).Error("Failed to parse property")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := h.db.Update(c.Request.Context(), c.Param("id"), &property)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if errors.Is(err, database.ErrInvalidRecord) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to update property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	err := h.db.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	h.invalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "Property deleted"})
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	url, err := h.uploads.Save(file)
	if errors.Is(err, uploads.ErrUnsupportedFileType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	claims := auth.CurrentUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
	})
}

func (h *Handler) invalidateCache(ctx context.Context) {
	if h.cache != nil {
		h.cache.Invalidate(ctx)
	}
}

func (h *Handler) propertyResponse(p models.Property) PropertyResponse {
	display, err := listing.FormatPrice(p.Price, p.Currency)
	if err != nil {
		// Stored records only carry supported currencies; an unknown one
		// means the row predates validation. Show it unformatted.
		h.logger.WithError(err).WithField("property_id", p.ID).Warn("Unformattable price")
		display = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	if p.Operation == models.OperationRental {
		display += "/mes"
	}

	return PropertyResponse{
		Property:       p,
		PriceDisplay:   display,
		TypeLabel:      p.Type.Label(),
		StatusLabel:    p.Status.Label(),
		OperationLabel: p.Operation.Label(),
	}
}
