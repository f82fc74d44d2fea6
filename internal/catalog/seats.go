package catalog

import "strconv"

// Fixed 2+2 coach layout, ten rows, aisle between B and C. Occupied and
// reserved sets are demonstration fixtures, not live inventory.

type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatOccupied  SeatState = "occupied"
	SeatReserved  SeatState = "reserved"
)

type Availability struct {
	layout   [][]string
	occupied map[string]bool
	reserved map[string]bool
}

func NewDefaultAvailability() *Availability {
	layout := make([][]string, 0, 10)
	for row := 1; row <= 10; row++ {
		n := strconv.Itoa(row)
		layout = append(layout, []string{n + "A", n + "B", n + "C", n + "D"})
	}
	return &Availability{
		layout:   layout,
		occupied: seatSet("1A", "2C", "3B", "5D", "7A", "8C"),
		reserved: seatSet("1C", "4A"),
	}
}

func seatSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

// Layout returns the seat rows in display order.
func (a *Availability) Layout() [][]string {
	out := make([][]string, len(a.layout))
	for i, row := range a.layout {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Known reports whether the seat code exists in the coach layout.
func (a *Availability) Known(seat string) bool {
	for _, row := range a.layout {
		for _, s := range row {
			if s == seat {
				return true
			}
		}
	}
	return false
}

func (a *Availability) State(seat string) SeatState {
	switch {
	case a.occupied[seat]:
		return SeatOccupied
	case a.reserved[seat]:
		return SeatReserved
	default:
		return SeatAvailable
	}
}

// Available reports whether the seat exists and is neither occupied nor
// reserved.
func (a *Availability) Available(seat string) bool {
	return a.Known(seat) && a.State(seat) == SeatAvailable
}

// OccupiedSeats lists the fixture occupied seats in layout order.
func (a *Availability) OccupiedSeats() []string {
	return a.inLayoutOrder(a.occupied)
}

// ReservedSeats lists the fixture reserved seats in layout order.
func (a *Availability) ReservedSeats() []string {
	return a.inLayoutOrder(a.reserved)
}

func (a *Availability) inLayoutOrder(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for _, row := range a.layout {
		for _, s := range row {
			if m[s] {
				out = append(out, s)
			}
		}
	}
	return out
}
