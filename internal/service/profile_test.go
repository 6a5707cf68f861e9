package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"greenhire-backend/internal/domain"
)

func TestProfileService_LoadProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewProfileService(userRepo, new(MockMachineRepo), new(MockBookingRepo))

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{
			ID: "u1", FirstName: "Anna", LastName: "Novak", Email: "anna@example.com", Role: domain.RoleOwner,
		}, nil)

		user, err := svc.LoadProfile(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleOwner, user.Role)
	})

	t.Run("Missing Role Defaults To Client", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewProfileService(userRepo, new(MockMachineRepo), new(MockBookingRepo))

		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "anna@example.com"}, nil)

		user, err := svc.LoadProfile(ctx, "u1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleClient, user.Role)
	})

	t.Run("Not Found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewProfileService(userRepo, new(MockMachineRepo), new(MockBookingRepo))

		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)

		user, err := svc.LoadProfile(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestProfileService_LoadOwnerOverview(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	machineRepo := new(MockMachineRepo)
	bookingRepo := new(MockBookingRepo)
	svc := NewProfileService(userRepo, machineRepo, bookingRepo)

	bookings := []domain.Booking{
		{ID: "b1", Status: domain.BookingStatusPending},
		{ID: "b2", Status: domain.BookingStatusApproved},
		{ID: "b3", Status: domain.BookingStatusPending},
	}
	machineRepo.On("CountByOwner", ctx, "owner-1").Return(4, nil)
	bookingRepo.On("ListByOwner", ctx, "owner-1").Return(bookings, nil)

	overview, err := svc.LoadOwnerOverview(ctx, "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, overview.MachineCount)
	assert.Equal(t, 3, overview.BookingCount)
	assert.Len(t, overview.Bookings, 3)

	// The status dropdown filters the already-loaded snapshot.
	pending := domain.FilterBookingsByStatus(overview.Bookings, "Pending")
	assert.Len(t, pending, 2)
}

func TestProfileService_LoadClientOverview(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	bookingRepo := new(MockBookingRepo)
	svc := NewProfileService(userRepo, new(MockMachineRepo), bookingRepo)

	bookingRepo.On("ListByClient", ctx, "client-1").Return([]domain.Booking{
		{ID: "b1", Status: domain.BookingStatusCancelled},
	}, nil)

	overview, err := svc.LoadClientOverview(ctx, "client-1")
	assert.NoError(t, err)
	assert.Len(t, overview.Bookings, 1)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Trims Input", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewProfileService(userRepo, new(MockMachineRepo), new(MockBookingRepo))

		updated := &domain.User{
			ID: "u1", FirstName: "Anna", LastName: "Horvat", Email: "anna@example.com",
			PhoneNumber: "040111222", Role: domain.RoleOwner,
		}
		userRepo.On("UpdateContactFields", ctx, "u1", "Anna", "Horvat", "040111222").Return(updated, nil)

		user, err := svc.UpdateProfile(ctx, "u1", " Anna ", " Horvat ", " 040111222 ")
		assert.NoError(t, err)
		assert.Equal(t, "Horvat", user.LastName)
		// Email and role never pass through the update path.
		assert.Equal(t, "anna@example.com", user.Email)
		assert.Equal(t, domain.RoleOwner, user.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("Blank Field Rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewProfileService(userRepo, new(MockMachineRepo), new(MockBookingRepo))

		for _, tc := range []struct {
			field                  string
			first, last, phone string
		}{
			{"firstName", "  ", "Horvat", "040111222"},
			{"lastName", "Anna", "", "040111222"},
			{"phone", "Anna", "Horvat", "  "},
		} {
			user, err := svc.UpdateProfile(ctx, "u1", tc.first, tc.last, tc.phone)
			assert.Nil(t, user)
			var verr *domain.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		}
		userRepo.AssertNotCalled(t, "UpdateContactFields",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
