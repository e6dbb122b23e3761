package usecases

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
	"github.com/LucasOrihuela13/sistema-hotel/app/repositories"
)

// nowFunc is swapped out by tests that need a fixed "today".
var nowFunc = time.Now

type ReservationUsecase interface {
	Create(req entities.CreateReservationRequest) (entities.ReservationResponse, error)
	List(roomParam, scopeParam string) (entities.ReservationListResponse, error)
	Cancel(id int64) (int64, error)
	IsAvailable(roomParam, checkInStr, checkOutStr string) (entities.AvailabilityResponse, error)
}

type reservationUsecase struct {
	resRepo repositories.ReservationRepository
	rooms   map[int]bool
	timeout time.Duration
}

// NewReservationUsecase wires the store with the configured room set. The
// room set is injected, never hard-coded.
func NewReservationUsecase(resRepo repositories.ReservationRepository, rooms []int, timeout time.Duration) ReservationUsecase {
	roomSet := make(map[int]bool, len(rooms))
	for _, room := range rooms {
		roomSet[room] = true
	}
	return &reservationUsecase{
		resRepo: resRepo,
		rooms:   roomSet,
		timeout: timeout,
	}
}

// today is the current calendar date at UTC midnight, comparable to parsed
// request dates.
func today() time.Time {
	now := nowFunc()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(entities.DateLayout, value)
}

func (u *reservationUsecase) storageCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), u.timeout)
}

// 1. Create
//
// Checks run in a fixed order and the first failure wins: past date, invalid
// range, missing guest, unknown room, duplicate submission, availability.
// The availability and duplicate pre-checks give friendly errors in the
// common case; the table constraints enforce the same rules when two
// requests race past the checks, and the insert maps those violations back
// to the same errors.
func (u *reservationUsecase) Create(req entities.CreateReservationRequest) (entities.ReservationResponse, error) {
	var response entities.ReservationResponse

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid check-in date format, use YYYY-MM-DD"}
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid check-out date format, use YYYY-MM-DD"}
	}

	if checkIn.Before(today()) {
		return response, newUseCaseError(http.StatusBadRequest, entities.ErrPastDate)
	}
	if !checkOut.After(checkIn) {
		return response, newUseCaseError(http.StatusBadRequest, entities.ErrInvalidRange)
	}

	guestName := strings.TrimSpace(req.GuestName)
	if guestName == "" {
		return response, newUseCaseError(http.StatusBadRequest, entities.ErrMissingGuest)
	}

	if !u.rooms[req.Room] {
		return response, newUseCaseError(http.StatusNotFound, entities.ErrUnknownRoom)
	}

	if req.DailyRate < 0 {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "daily rate must not be negative"}
	}

	guestCount := req.GuestCount
	if guestCount < 1 {
		guestCount = 1
	}

	ctx, cancel := u.storageCtx()
	defer cancel()

	// The duplicate guard runs before the availability check: a retried
	// submission always collides with its own first copy, and the caller
	// should learn it was a duplicate, not that the room is taken.
	duplicate, err := u.resRepo.HasDuplicate(ctx, req.Room, checkIn, guestName)
	if err != nil {
		return response, err
	}
	if duplicate {
		return response, newUseCaseError(http.StatusConflict, entities.ErrDuplicateSubmission)
	}

	available, err := u.resRepo.CheckAvailability(ctx, req.Room, checkIn, checkOut)
	if err != nil {
		return response, err
	}
	if !available {
		return response, newUseCaseError(http.StatusConflict, entities.ErrRoomOccupied)
	}

	reservation := entities.Reservation{
		Room:       req.Room,
		GuestName:  guestName,
		GuestPhone: strings.TrimSpace(req.GuestPhone),
		GuestCount: guestCount,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		DailyRate:  req.DailyRate,
	}
	// days is always >= 1 here given the range check, the floor stays as
	// billing policy.
	reservation.TotalAmount = req.DailyRate * float64(reservation.Nights())

	created, err := u.resRepo.Create(ctx, reservation)
	if err != nil {
		// A concurrent writer may have won the race between the checks
		// and the insert; the constraint violation tells us which rule
		// it tripped.
		if errors.Is(err, entities.ErrRoomOccupied) {
			return response, newUseCaseError(http.StatusConflict, entities.ErrRoomOccupied)
		}
		if errors.Is(err, entities.ErrDuplicateSubmission) {
			return response, newUseCaseError(http.StatusConflict, entities.ErrDuplicateSubmission)
		}
		return response, err
	}

	return entities.ReservationResponse{
		Message: "reservation created successfully",
		Data:    created.Info(),
	}, nil
}

// 2. List
func (u *reservationUsecase) List(roomParam, scopeParam string) (entities.ReservationListResponse, error) {
	var response entities.ReservationListResponse

	filter := entities.ListFilter{Scope: entities.ScopeAll, Today: today()}

	if roomParam != "" {
		room, err := strconv.Atoi(roomParam)
		if err != nil {
			return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid room"}
		}
		if !u.rooms[room] {
			return response, newUseCaseError(http.StatusNotFound, entities.ErrUnknownRoom)
		}
		filter.Room = &room
	}

	switch scopeParam {
	case "", string(entities.ScopeAll):
	case string(entities.ScopeActive):
		filter.Scope = entities.ScopeActive
	case string(entities.ScopeHistory):
		filter.Scope = entities.ScopeHistory
	default:
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid scope, use all, active or history"}
	}

	ctx, cancel := u.storageCtx()
	defer cancel()

	reservations, err := u.resRepo.List(ctx, filter)
	if err != nil {
		return response, err
	}

	data := []entities.ReservationInfo{}
	for _, res := range reservations {
		data = append(data, res.Info())
	}

	return entities.ReservationListResponse{
		Message:   "success",
		Data:      data,
		TotalData: len(data),
	}, nil
}

// 3. Cancel
//
// Hard delete. A missing id still reports success: the reservation is gone
// either way, and the observed system behaves the same. The affected row
// count comes back so the caller can log the distinction.
func (u *reservationUsecase) Cancel(id int64) (int64, error) {
	ctx, cancel := u.storageCtx()
	defer cancel()

	return u.resRepo.Delete(ctx, id)
}

// 4. Availability
func (u *reservationUsecase) IsAvailable(roomParam, checkInStr, checkOutStr string) (entities.AvailabilityResponse, error) {
	var response entities.AvailabilityResponse

	room, err := strconv.Atoi(roomParam)
	if err != nil {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid room"}
	}
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid check-in date format, use YYYY-MM-DD"}
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid check-out date format, use YYYY-MM-DD"}
	}
	if !checkOut.After(checkIn) {
		return response, newUseCaseError(http.StatusBadRequest, entities.ErrInvalidRange)
	}
	if !u.rooms[room] {
		return response, newUseCaseError(http.StatusNotFound, entities.ErrUnknownRoom)
	}

	ctx, cancel := u.storageCtx()
	defer cancel()

	available, err := u.resRepo.CheckAvailability(ctx, room, checkIn, checkOut)
	if err != nil {
		return response, err
	}

	return entities.AvailabilityResponse{
		Message:   "success",
		Room:      room,
		CheckIn:   checkIn.Format(entities.DateLayout),
		CheckOut:  checkOut.Format(entities.DateLayout),
		Available: available,
	}, nil
}
