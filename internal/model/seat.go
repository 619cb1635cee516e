package model

import (
	"errors"
	"strconv"
	"strings"
)

// rowLetters supplies the row label for each zero-based row index.  The
// grid is clamped to 26 rows, so a single letter is always enough.
const rowLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrMalformedSeatLabel is returned when a seat label does not match the
// row-letter + seat-number pattern.  Labels produced by this system
// always parse, but the check is still performed before reservation rows
// are built from them.
var ErrMalformedSeatLabel = errors.New("malformed seat label")

// SeatID uniquely addresses one seat across the whole system.  It is the
// composite of the showtime the seat belongs to and the seat's label
// within that showtime's grid ("A1", "B7", ...).
type SeatID struct {
	ShowtimeID string `json:"showtime_id"`
	Label      string `json:"label"`
}

// String renders the identifier in the "showtimeID-label" form used in
// logs and diagnostics, e.g. "st1-A1".
func (s SeatID) String() string {
	return s.ShowtimeID + "-" + s.Label
}

// ParseSeatKey splits a composite seat key such as "st1-A1" into a
// SeatID.  The segment before the first dash is the showtime id and the
// remainder is the seat label, which may itself contain dashes.
func ParseSeatKey(key string) (SeatID, error) {
	showtimeID, label, ok := strings.Cut(key, "-")
	if !ok || showtimeID == "" || label == "" {
		return SeatID{}, ErrMalformedSeatLabel
	}
	return SeatID{ShowtimeID: showtimeID, Label: label}, nil
}

// SeatLabel builds the label for the seat at the given zero-based row
// and column, e.g. row 0 col 0 -> "A1".
func SeatLabel(row, col int) string {
	return string(rowLetters[row]) + strconv.Itoa(col+1)
}

// ParseSeatLabel splits a label such as "C12" into its row letters and
// 1-based seat number.  It returns ErrMalformedSeatLabel when the label
// is not one or more capital letters followed by one or more digits.
func ParseSeatLabel(label string) (row string, number int, err error) {
	i := 0
	for i < len(label) && label[i] >= 'A' && label[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(label) {
		return "", 0, ErrMalformedSeatLabel
	}
	for j := i; j < len(label); j++ {
		if label[j] < '0' || label[j] > '9' {
			return "", 0, ErrMalformedSeatLabel
		}
	}
	number, err = strconv.Atoi(label[i:])
	if err != nil {
		return "", 0, ErrMalformedSeatLabel
	}
	return label[:i], number, nil
}

// Grid describes the fixed seating layout shared by every theater.  The
// grid bounds the addressable seats; a showtime's capacity then cuts the
// sellable seats off in row-major order.
type Grid struct {
	Rows        int
	SeatsPerRow int
}

// SeatLabels returns the labels of the sellable seats for the given
// capacity, in row-major order.  Cells beyond the grid or beyond the
// capacity are never offered.  Rows past "Z" cannot be labelled, so a
// grid configured with more than 26 rows is clamped to 26.
func (g Grid) SeatLabels(capacity int) []string {
	rows := g.Rows
	if rows > len(rowLetters) {
		rows = len(rowLetters)
	}
	if capacity > rows*g.SeatsPerRow {
		capacity = rows * g.SeatsPerRow
	}
	if capacity < 0 {
		capacity = 0
	}
	labels := make([]string, 0, capacity)
	for row := 0; row < rows; row++ {
		for col := 0; col < g.SeatsPerRow; col++ {
			if row*g.SeatsPerRow+col >= capacity {
				return labels
			}
			labels = append(labels, SeatLabel(row, col))
		}
	}
	return labels
}

// Contains reports whether label addresses a sellable seat for the given
// capacity.  A seat is sellable when its row and number fall inside the
// grid and its row-major index is below the capacity.
func (g Grid) Contains(label string, capacity int) bool {
	row, number, err := ParseSeatLabel(label)
	if err != nil {
		return false
	}
	if len(row) != 1 || number < 1 || number > g.SeatsPerRow {
		return false
	}
	rowIdx := strings.IndexByte(rowLetters, row[0])
	if rowIdx < 0 || rowIdx >= g.Rows {
		return false
	}
	return rowIdx*g.SeatsPerRow+(number-1) < capacity
}
