package repositories

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/LucasOrihuela13/sistema-hotel/app/entities"
)

func TestBuildListQueryAllRooms(t *testing.T) {
	query, args := buildListQuery(entities.ListFilter{Scope: entities.ScopeAll})

	if strings.Contains(query, "room_id = $") {
		t.Fatalf("expected no room filter, got query: %s", query)
	}
	if strings.Contains(query, "ORDER BY") {
		t.Fatalf("scope all must use natural order, got query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildListQueryRoomFilter(t *testing.T) {
	room := 2
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args := buildListQuery(entities.ListFilter{Room: &room, Scope: entities.ScopeActive, Today: today})

	if !strings.Contains(query, "room_id = $1") {
		t.Fatalf("expected room filter at $1, got query: %s", query)
	}
	if !strings.Contains(query, "check_out >= $2") {
		t.Fatalf("expected active filter at $2, got query: %s", query)
	}
	if !strings.Contains(query, "ORDER BY check_in ASC") {
		t.Fatalf("active scope must order by check_in ascending, got query: %s", query)
	}
	if len(args) != 2 || args[0] != room || args[1] != today {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListQueryHistory(t *testing.T) {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args := buildListQuery(entities.ListFilter{Scope: entities.ScopeHistory, Today: today})

	if !strings.Contains(query, "check_out < $1") {
		t.Fatalf("expected history filter at $1, got query: %s", query)
	}
	if !strings.Contains(query, "ORDER BY check_out DESC") {
		t.Fatalf("history scope must order by check_out descending, got query: %s", query)
	}
	if len(args) != 1 || args[0] != today {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestMapConstraintError(t *testing.T) {
	overlap := &pq.Error{Code: pq.ErrorCode(exclusionViolation)}
	if got := mapConstraintError(overlap); !errors.Is(got, entities.ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied for 23P01, got %v", got)
	}

	dup := &pq.Error{Code: pq.ErrorCode(uniqueViolation)}
	if got := mapConstraintError(dup); !errors.Is(got, entities.ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission for 23505, got %v", got)
	}

	other := &pq.Error{Code: pq.ErrorCode("40001")}
	if got := mapConstraintError(other); got != nil {
		t.Fatalf("expected nil for unrelated pq code, got %v", got)
	}

	if got := mapConstraintError(errors.New("plain error")); got != nil {
		t.Fatalf("expected nil for non-pq error, got %v", got)
	}
}
