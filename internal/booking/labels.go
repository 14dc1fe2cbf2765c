package booking

import "fmt"

const (
	seatsPerRow = 10
	maxCapacity = 26 * seatsPerRow
)

// SeatLabels generates the seat universe for a screen capacity: rows of ten
// seats lettered A, B, C..., seat numbers cycling 1-10 within a row. A
// capacity of 25 yields A1..A10, B1..B10, C1..C5. The scheme is deterministic
// so that repeated initialization of the same show converges.
func SeatLabels(capacity int) ([]string, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("screen capacity must be positive, got %d", capacity)
	}
	if capacity > maxCapacity {
		return nil, fmt.Errorf("screen capacity %d exceeds the %d-seat labeling limit", capacity, maxCapacity)
	}

	labels := make([]string, capacity)
	for i := range capacity {
		row := rune('A' + i/seatsPerRow)
		labels[i] = fmt.Sprintf("%c%d", row, i%seatsPerRow+1)
	}

	return labels, nil
}
