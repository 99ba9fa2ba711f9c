package services

import (
	"errors"
	"time"

	"github.com/LALo99-vk/Photography-Website/models"
)

// OwnerMutationWindow is how long after creation the owning client may
// still edit or delete a booking. Measured from created_at so unrelated
// edits cannot extend it.
const OwnerMutationWindow = time.Hour

var (
	ErrAccessDenied     = errors.New("access denied")
	ErrEditWindowClosed = errors.New("bookings can only be changed within one hour of creation")
	ErrStatusLocked     = errors.New("confirmed or completed bookings can no longer be edited")
	ErrAlreadyDeleted   = errors.New("booking has already been deleted")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrReasonRequired   = errors.New("a deletion reason is required")
)

// BookingState is the slice of a booking row the policy decisions need.
type BookingState struct {
	OwnerID   string
	Status    string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// CanViewBooking: the owner, a photographer or an admin may read a
// booking.
func CanViewBooking(callerID, callerRole, ownerID string) error {
	if callerID == ownerID || models.IsStaffRole(callerRole) {
		return nil
	}
	return ErrAccessDenied
}

// CanListBookingsFor: a user always sees their own list; anyone else's
// list requires staff.
func CanListBookingsFor(callerID, callerRole, targetUserID string) error {
	if callerID == targetUserID || models.IsStaffRole(callerRole) {
		return nil
	}
	return ErrAccessDenied
}

// CanUpdateStatus gates the status transition operation. Any staff
// member may move a booking between the five live statuses; there is no
// restriction on which prior status may transition to which next one.
func CanUpdateStatus(callerRole, newStatus string) error {
	if !models.IsStaffRole(callerRole) {
		return ErrAccessDenied
	}
	if !models.IsStatusUpdateTarget(newStatus) {
		return ErrInvalidStatus
	}
	return nil
}

// CanEditBooking gates a field edit. A soft-deleted booking is frozen
// for everyone. Admins edit anything else at any time. The owner may
// edit within the hour after creation, and only while the booking has
// not been confirmed or completed. Photographers get no edit access
// through this operation.
func CanEditBooking(callerID, callerRole string, b BookingState, now time.Time) error {
	if b.DeletedAt != nil {
		return ErrAlreadyDeleted
	}
	if callerRole == models.RoleAdmin {
		return nil
	}
	if callerID != b.OwnerID {
		return ErrAccessDenied
	}
	if now.Sub(b.CreatedAt) >= OwnerMutationWindow {
		return ErrEditWindowClosed
	}
	if b.Status == models.BookingConfirmed || b.Status == models.BookingCompleted {
		return ErrStatusLocked
	}
	return nil
}

// CanSoftDeleteBooking gates soft deletion. Double deletion is rejected
// for everyone. Admins may delete at any time; the owner only within the
// hour after creation. Unlike editing, the booking status does not
// matter: an owner may withdraw even a confirmed booking inside the
// window.
func CanSoftDeleteBooking(callerID, callerRole string, b BookingState, now time.Time) error {
	if b.DeletedAt != nil {
		return ErrAlreadyDeleted
	}
	if callerRole == models.RoleAdmin {
		return nil
	}
	if callerID != b.OwnerID {
		return ErrAccessDenied
	}
	if now.Sub(b.CreatedAt) >= OwnerMutationWindow {
		return ErrEditWindowClosed
	}
	return nil
}
