package handlers

import (
	"net/http"
	"strings"

	"travelapi/internal/domain"
	"travelapi/internal/http/middleware"
	"travelapi/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	ResourceHandler
	Bookings services.BookingService
}

func NewBookingHandler(svc services.BookingService) BookingHandler {
	return BookingHandler{
		ResourceHandler: NewResourceHandler(domain.KindBookings, svc),
		Bookings:        svc,
	}
}

// GET /api/bookings/:id/receipt
func (h BookingHandler) Receipt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	svc := services.DocsService{
		Bookings:  h.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateReceipt(requestContext(c), id)
	if err != nil {
		RespondDomainError(c, "Error generating receipt", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h BookingHandler) Mount(g *gin.RouterGroup) {
	h.ResourceHandler.Mount(g)
	g.GET("/:id/receipt", h.Receipt)
}
