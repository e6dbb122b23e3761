package entities

// Status board for one room on a given day.
type RoomStatus struct {
	Room     int  `json:"room"`
	Occupied bool `json:"occupied"`
}

type RoomStatusResponse struct {
	Message string       `json:"message"`
	Date    string       `json:"date"`
	Data    []RoomStatus `json:"data"`
}
