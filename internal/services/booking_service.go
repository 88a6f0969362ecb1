package services

import (
	"context"
	"strings"
	"time"

	"travelapi/internal/domain"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/google/uuid"
)

const (
	fieldConfirmationNumber = "confirmationNumber"
	fieldStatus             = "status"
	fieldCreatedAt          = "createdAt"

	bookingStatusConfirmed = "confirmed"
)

// BookingService echoes submitted bookings back with a confirmation number and keeps them in the store.
type BookingService struct {
	Resources ResourceService
	Now       func() time.Time
}

func NewBookingService(store repositories.Store) BookingService {
	return BookingService{Resources: NewResourceService(domain.KindBookings, store)}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s BookingService) List(ctx context.Context) ([]domain.Record, error) {
	return s.Resources.List(ctx)
}

func (s BookingService) Get(ctx context.Context, id string) (domain.Record, error) {
	return s.Resources.Get(ctx, id)
}

// Create keeps a caller-supplied confirmation number; otherwise one is generated.
func (s BookingService) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	if payload == nil {
		return s.Resources.Create(ctx, payload)
	}
	rec := payload.Clone()
	if strings.TrimSpace(rec.String(fieldConfirmationNumber)) == "" {
		rec[fieldConfirmationNumber] = NewConfirmationNumber()
	}
	if strings.TrimSpace(rec.String(fieldStatus)) == "" {
		rec[fieldStatus] = bookingStatusConfirmed
	}
	rec[fieldCreatedAt] = utils.FormatTimestamp(s.now())
	return s.Resources.Create(ctx, rec)
}

// NewConfirmationNumber returns "TRV-" followed by 8 upper-case hex characters.
func NewConfirmationNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRV-" + strings.ToUpper(raw[:8])
}
