package domain

import (
	"sort"
	"strings"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// StatusFilterAll is the sentinel accepted by FilterBookingsByStatus meaning
// "no filtering".
const StatusFilterAll = "All"

// ParseBookingStatus maps a case-insensitive status string onto the enum.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(BookingStatusPending):
		return BookingStatusPending, true
	case string(BookingStatusApproved):
		return BookingStatusApproved, true
	case string(BookingStatusRejected):
		return BookingStatusRejected, true
	case string(BookingStatusCancelled):
		return BookingStatusCancelled, true
	}
	return "", false
}

// bookingTransitions is the closed set of legal status edges. REJECTED and
// CANCELLED are terminal; there is no path back to PENDING.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved:  {BookingStatusCancelled},
	BookingStatusRejected:  {},
	BookingStatusCancelled: {},
}

// CanTransitionTo reports whether the edge from s to target exists in the
// booking state machine.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// Booking is a reservation request linking one client, one machine, and a
// date range. Machine name/image and client name are snapshots taken at
// creation time; they do not track later edits to the machine or profile.
// Start/end dates and createdAt are epoch milliseconds.
type Booking struct {
	ID              string        `firestore:"id" json:"id"`
	MachineID       string        `firestore:"machineId" json:"machineId"`
	MachineName     string        `firestore:"machineName" json:"machineName"`
	MachineImageURL string        `firestore:"machineImageUrl" json:"machineImageUrl"`
	ClientID        string        `firestore:"clientId" json:"clientId"`
	ClientName      string        `firestore:"clientName" json:"clientName"`
	OwnerID         string        `firestore:"ownerId" json:"ownerId"`
	StartDate       int64         `firestore:"startDate" json:"startDate"`
	EndDate         int64         `firestore:"endDate" json:"endDate"`
	TotalPrice      float64       `firestore:"totalPrice" json:"totalPrice"`
	Status          BookingStatus `firestore:"status" json:"status"`
	CreatedAt       int64         `firestore:"createdAt" json:"createdAt"`
}

// FilterBookingsByStatus returns the order-preserving subset of bookings
// whose status equals the given filter, compared case-insensitively.
// The "All" sentinel returns the input unchanged. Pure; safe to re-run
// against the same snapshot without re-fetching.
func FilterBookingsByStatus(bookings []Booking, status string) []Booking {
	if status == StatusFilterAll {
		return bookings
	}
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if strings.EqualFold(string(b.Status), status) {
			out = append(out, b)
		}
	}
	return out
}

// SortBookingsByCreatedAtDesc orders bookings newest first, in place.
func SortBookingsByCreatedAtDesc(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt > bookings[j].CreatedAt
	})
}
