package usecases

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestStatusBoardDefaultsToToday(t *testing.T) {
	fixedToday(t)
	repo := &mockReservationRepo{occupied: map[int]bool{2: true, 5: true}}
	uc := NewRoomUsecase(repo, []int{6, 1, 2, 3, 4, 5}, 5*time.Second)

	resp, err := uc.GetStatusBoard("")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if resp.Date != "2025-01-01" {
		t.Fatalf("expected today's board, got %s", resp.Date)
	}
	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !repo.windowStart.Equal(wantStart) || !repo.windowEnd.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("expected one-day window from today, got [%v, %v)", repo.windowStart, repo.windowEnd)
	}

	if len(resp.Data) != 6 {
		t.Fatalf("expected 6 rooms on the board, got %d", len(resp.Data))
	}
	// Rooms come back sorted regardless of config order.
	for i, status := range resp.Data {
		if status.Room != i+1 {
			t.Fatalf("expected room %d at position %d, got %d", i+1, i, status.Room)
		}
	}
	if !resp.Data[1].Occupied || !resp.Data[4].Occupied {
		t.Fatalf("expected rooms 2 and 5 occupied, got %+v", resp.Data)
	}
	if resp.Data[0].Occupied || resp.Data[2].Occupied {
		t.Fatalf("expected rooms 1 and 3 free, got %+v", resp.Data)
	}
}

func TestStatusBoardExplicitDate(t *testing.T) {
	repo := &mockReservationRepo{occupied: map[int]bool{}}
	uc := NewRoomUsecase(repo, []int{1, 2}, 5*time.Second)

	resp, err := uc.GetStatusBoard("2025-06-15")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Date != "2025-06-15" {
		t.Fatalf("expected requested date, got %s", resp.Date)
	}

	_, err = uc.GetStatusBoard("15/06/2025")
	expectUseCaseError(t, err, http.StatusBadRequest, nil)
}

func TestStatusBoardSurfacesStorageError(t *testing.T) {
	repo := &mockReservationRepo{occupiedErr: errors.New("connection reset")}
	uc := NewRoomUsecase(repo, []int{1}, 5*time.Second)

	if _, err := uc.GetStatusBoard(""); err == nil {
		t.Fatalf("expected error")
	}
}
