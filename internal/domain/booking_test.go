package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending,
		BookingStatusApproved,
		BookingStatusRejected,
		BookingStatusCancelled,
	}

	allowed := map[BookingStatus]map[BookingStatus]bool{
		BookingStatusPending: {
			BookingStatusApproved:  true,
			BookingStatusRejected:  true,
			BookingStatusCancelled: true,
		},
		BookingStatusApproved: {
			BookingStatusCancelled: true,
		},
		BookingStatusRejected:  {},
		BookingStatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}

	t.Run("no self transitions", func(t *testing.T) {
		for _, s := range all {
			assert.False(t, s.CanTransitionTo(s))
		}
	})

	t.Run("unknown status has no edges", func(t *testing.T) {
		for _, to := range all {
			assert.False(t, BookingStatus("SHIPPED").CanTransitionTo(to))
		}
	})
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusApproved.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		in   string
		want BookingStatus
		ok   bool
	}{
		{"PENDING", BookingStatusPending, true},
		{"pending", BookingStatusPending, true},
		{" Approved ", BookingStatusApproved, true},
		{"rejected", BookingStatusRejected, true},
		{"CANCELLED", BookingStatusCancelled, true},
		{"All", "", false},
		{"", "", false},
		{"done", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseBookingStatus(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFilterBookingsByStatus(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", Status: BookingStatusPending},
		{ID: "b2", Status: BookingStatusApproved},
		{ID: "b3", Status: BookingStatusPending},
		{ID: "b4", Status: BookingStatusCancelled},
	}

	t.Run("All returns input unchanged", func(t *testing.T) {
		got := FilterBookingsByStatus(bookings, StatusFilterAll)
		assert.Equal(t, bookings, got)
	})

	t.Run("filters case-insensitively preserving order", func(t *testing.T) {
		got := FilterBookingsByStatus(bookings, "pending")
		assert.Len(t, got, 2)
		assert.Equal(t, "b1", got[0].ID)
		assert.Equal(t, "b3", got[1].ID)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got := FilterBookingsByStatus(bookings, string(BookingStatusRejected))
		assert.Empty(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FilterBookingsByStatus(nil, "PENDING"))
	})
}

func TestSortBookingsByCreatedAtDesc(t *testing.T) {
	bookings := []Booking{
		{ID: "old", CreatedAt: 100},
		{ID: "new", CreatedAt: 300},
		{ID: "mid", CreatedAt: 200},
	}

	SortBookingsByCreatedAtDesc(bookings)

	assert.Equal(t, "new", bookings[0].ID)
	assert.Equal(t, "mid", bookings[1].ID)
	assert.Equal(t, "old", bookings[2].ID)
}
