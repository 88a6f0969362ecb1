package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"travelapi/internal/domain"
	"travelapi/internal/http/middleware"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps POST bodies on listing endpoints.
const MaxBodyBytes int64 = 1 << 20

// Collection is the capability a listing endpoint needs from its backing service.
type Collection interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, payload domain.Record) (domain.Record, error)
}

// ResourceHandler serves the uniform listing contract for one resource kind.
type ResourceHandler struct {
	Kind       domain.ResourceKind
	Collection Collection
}

func NewResourceHandler(kind domain.ResourceKind, col Collection) ResourceHandler {
	return ResourceHandler{Kind: kind, Collection: col}
}

func requestContext(c *gin.Context) context.Context {
	return services.WithRequestID(c.Request.Context(), middleware.GetRequestID(c))
}

// GET /api/<resource>
func (h ResourceHandler) List(c *gin.Context) {
	records, err := h.Collection.List(requestContext(c))
	if err != nil {
		RespondDomainError(c, fmt.Sprintf("Error fetching %s", h.Kind.Label()), err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/<resource>/:id
func (h ResourceHandler) Get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	rec, err := h.Collection.Get(requestContext(c), id)
	if err != nil {
		RespondDomainError(c, fmt.Sprintf("Error fetching %s", h.Kind.Label()), err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/<resource>
// Any JSON object is accepted; an empty body counts as {}.
func (h ResourceHandler) Create(c *gin.Context) {
	fail := fmt.Sprintf("Error creating %s", h.Kind.Label())

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			RespondError(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, fail, err)
		return
	}
	payload := domain.Record{}
	if len(bytes.TrimSpace(raw)) > 0 {
		payload, err = domain.DecodeRecord(raw)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, fail, err)
			return
		}
	}

	rec, err := h.Collection.Create(requestContext(c), payload)
	if err != nil {
		RespondDomainError(c, fail, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// OPTIONS /api/<resource>
func (h ResourceHandler) Options(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Mount registers the listing routes on g.
func (h ResourceHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.OPTIONS("", h.Options)
	g.GET("/:id", h.Get)
}
