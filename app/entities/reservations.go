package entities

import (
	"time"
)

// DateLayout is the wire format for calendar dates. Reservations carry dates
// only, never a time of day.
const DateLayout = "2006-01-02"

// ==========================================
// 1. REQUEST MODELS
// ==========================================

type CreateReservationRequest struct {
	Room       int     `json:"room"`
	GuestName  string  `json:"guestName"`
	GuestPhone string  `json:"guestPhone"`
	GuestCount int     `json:"guestCount"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	DailyRate  float64 `json:"dailyRate" validate:"gte=0"`
}

// ListScope selects which slice of the agenda a listing returns.
type ListScope string

const (
	ScopeAll     ListScope = "all"
	ScopeActive  ListScope = "active"
	ScopeHistory ListScope = "history"
)

// ListFilter is translated by the repository into parameterized statements.
// Room == nil means all rooms.
type ListFilter struct {
	Room  *int
	Scope ListScope
	Today time.Time
}

// ==========================================
// 2. RESPONSE MODELS
// ==========================================

type ReservationInfo struct {
	ID          int64   `json:"id"`
	Room        int     `json:"room"`
	GuestName   string  `json:"guestName"`
	GuestPhone  string  `json:"guestPhone"`
	GuestCount  int     `json:"guestCount"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	DailyRate   float64 `json:"dailyRate"`
	TotalAmount float64 `json:"totalAmount"`
}

type ReservationResponse struct {
	Message string          `json:"message"`
	Data    ReservationInfo `json:"data"`
}

type ReservationListResponse struct {
	Message   string            `json:"message"`
	Data      []ReservationInfo `json:"data"`
	TotalData int               `json:"totalData"`
}

type AvailabilityResponse struct {
	Message   string `json:"message"`
	Room      int    `json:"room"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Available bool   `json:"available"`
}

// ==========================================
// 3. PERSISTED ENTITY
// ==========================================

// Reservation is the persisted row. It is created once, never mutated, and
// destroyed only by cancellation.
type Reservation struct {
	ID          int64
	Room        int
	GuestName   string
	GuestPhone  string
	GuestCount  int
	CheckIn     time.Time
	CheckOut    time.Time
	DailyRate   float64
	TotalAmount float64
	CreatedAt   time.Time
}

// Nights is the stay length in days. The floor of 1 mirrors the billing rule:
// a same-day range still bills one night.
func (r Reservation) Nights() int {
	days := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// Info formats the row for API responses, dates as YYYY-MM-DD.
func (r Reservation) Info() ReservationInfo {
	return ReservationInfo{
		ID:          r.ID,
		Room:        r.Room,
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		GuestCount:  r.GuestCount,
		CheckIn:     r.CheckIn.Format(DateLayout),
		CheckOut:    r.CheckOut.Format(DateLayout),
		DailyRate:   r.DailyRate,
		TotalAmount: r.TotalAmount,
	}
}

// Overlaps reports whether two half-open ranges [CheckIn, CheckOut) for the
// same room collide. The checkout day is not occupied, so back-to-back stays
// with same-day turnover do not conflict.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}
