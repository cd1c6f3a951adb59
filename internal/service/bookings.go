package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/Yurisurdi/flats/internal/errs"
	"github.com/Yurisurdi/flats/internal/model"
	"github.com/Yurisurdi/flats/internal/repository"
)

func validBookingStatus(s string) bool {
	switch s {
	case model.BookingPending, model.BookingConfirmed, model.BookingCancelled, model.BookingCompleted:
		return true
	}
	return false
}

func validPaymentMethod(s string) bool {
	return s == "" || s == model.PaymentCash || s == model.PaymentTransfer
}

// BookingService validates and persists a user's bookings. Referenced
// client/apartment/agent ids are not checked for existence; deletions
// elsewhere may leave them dangling.
type BookingService struct {
	repo     repository.Bookings
	settings repository.Settings
}

// NewBookingService constructs a booking service.
func NewBookingService(repo repository.Bookings, settings repository.Settings) *BookingService {
	return &BookingService{repo: repo, settings: settings}
}

// List returns the user's bookings, optionally filtered by status.
func (s *BookingService) List(ctx context.Context, userID, status string) ([]model.Booking, error) {
	all, err := s.repo.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	if !validBookingStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrValidation, status)
	}
	out := []model.Booking{}
	for _, b := range all {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BookingService) Get(ctx context.Context, userID string, id uuid.UUID) (*model.Booking, error) {
	return s.repo.GetBooking(ctx, userID, id)
}

// ByClient returns the user's bookings referencing one client.
func (s *BookingService) ByClient(ctx context.Context, userID string, clientID uuid.UUID) ([]model.Booking, error) {
	return s.repo.BookingsByClient(ctx, userID, clientID)
}

// Add validates the booking and persists it. Rooms default to one; a zero
// commission defaults to the user's per-room rate times rooms rented.
func (s *BookingService) Add(ctx context.Context, userID string, b model.Booking) (uuid.UUID, error) {
	if b.ClientID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: clienteId is required", errs.ErrValidation)
	}
	if b.ApartmentID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: apartamentoId is required", errs.ErrValidation)
	}
	if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
		return uuid.Nil, fmt.Errorf("%w: checkIn and checkOut are required", errs.ErrValidation)
	}
	if b.CheckOut.Before(b.CheckIn) {
		return uuid.Nil, fmt.Errorf("%w: checkOut before checkIn", errs.ErrValidation)
	}
	if b.RoomsRented < 1 {
		b.RoomsRented = 1
	}
	if b.Status == "" {
		b.Status = model.BookingPending
	}
	if !validBookingStatus(b.Status) {
		return uuid.Nil, fmt.Errorf("%w: unknown status %q", errs.ErrValidation, b.Status)
	}
	if !validPaymentMethod(b.DepositMethod) || !validPaymentMethod(b.BalanceMethod) {
		return uuid.Nil, fmt.Errorf("%w: unknown payment method", errs.ErrValidation)
	}
	if b.Commission == 0 {
		cfg, err := s.settings.GetSettings(ctx, userID)
		if err != nil {
			return uuid.Nil, err
		}
		b.Commission = float64(b.RoomsRented) * cfg.DefaultCommission
	}
	return s.repo.AddBooking(ctx, userID, b)
}

// Update shallow-merges the set fields into the stored booking.
func (s *BookingService) Update(ctx context.Context, userID string, id uuid.UUID, upd model.BookingUpdate) error {
	if upd.Status != nil && !validBookingStatus(*upd.Status) {
		return fmt.Errorf("%w: unknown status %q", errs.ErrValidation, *upd.Status)
	}
	if upd.DepositMethod != nil && !validPaymentMethod(*upd.DepositMethod) {
		return fmt.Errorf("%w: unknown payment method", errs.ErrValidation)
	}
	if upd.BalanceMethod != nil && !validPaymentMethod(*upd.BalanceMethod) {
		return fmt.Errorf("%w: unknown payment method", errs.ErrValidation)
	}
	if upd.CheckIn != nil && upd.CheckOut != nil && upd.CheckOut.Before(*upd.CheckIn) {
		return fmt.Errorf("%w: checkOut before checkIn", errs.ErrValidation)
	}
	return s.repo.UpdateBooking(ctx, userID, id, upd)
}

// Delete removes a booking; deleting an unknown id is a no-op.
func (s *BookingService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.DeleteBooking(ctx, userID, id)
}
