package usecases

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
	"github.com/LucasOrihuela13/sistema-hotel/app/repositories"
)

type RoomUsecase interface {
	GetStatusBoard(dateParam string) (entities.RoomStatusResponse, error)
}

type roomUsecase struct {
	resRepo repositories.ReservationRepository
	rooms   []int
	timeout time.Duration
}

func NewRoomUsecase(resRepo repositories.ReservationRepository, rooms []int, timeout time.Duration) RoomUsecase {
	sorted := append([]int(nil), rooms...)
	sort.Ints(sorted)
	return &roomUsecase{
		resRepo: resRepo,
		rooms:   sorted,
		timeout: timeout,
	}
}

// GetStatusBoard answers the at-a-glance FREE/OCCUPIED view for every
// configured room over the one-day window [date, date+1). With no date it
// shows today.
func (u *roomUsecase) GetStatusBoard(dateParam string) (entities.RoomStatusResponse, error) {
	var response entities.RoomStatusResponse

	date := today()
	if dateParam != "" {
		parsed, err := parseDate(dateParam)
		if err != nil {
			return response, &UseCaseError{Code: http.StatusBadRequest, Message: "invalid date format, use YYYY-MM-DD"}
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(context.Background(), u.timeout)
	defer cancel()

	occupied, err := u.resRepo.OccupiedRooms(ctx, date, date.AddDate(0, 0, 1))
	if err != nil {
		return response, err
	}

	board := make([]entities.RoomStatus, 0, len(u.rooms))
	for _, room := range u.rooms {
		board = append(board, entities.RoomStatus{Room: room, Occupied: occupied[room]})
	}

	return entities.RoomStatusResponse{
		Message: "success",
		Date:    date.Format(entities.DateLayout),
		Data:    board,
	}, nil
}
