package world

// Rand is the source of uniform samples used during generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Strategy decides which rooms are proposed and how tunnels between them
// are shaped. The generator owns overlap rejection, carving and spawn
// assignment.
type Strategy interface {
	// Attempts returns how many rooms will be proposed.
	Attempts(cfg Config) int
	// NextRoom returns the candidate for the given attempt.
	NextRoom(cfg Config, attempt int) Rect
	// TunnelOrder chooses the L shape joining two consecutive room centers.
	TunnelOrder(prev, next Point) TunnelOrder
}

// RandomRooms places rooms by rejection sampling.
type RandomRooms struct {
	Rand Rand
}

// NewRandomRooms creates a randomized placement strategy.
func NewRandomRooms(rng Rand) *RandomRooms {
	return &RandomRooms{Rand: rng}
}

// Attempts returns cfg.MaxRooms.
func (s *RandomRooms) Attempts(cfg Config) int {
	return cfg.MaxRooms
}

// NextRoom samples width, height, then origin, in that order.
func (s *RandomRooms) NextRoom(cfg Config, _ int) Rect {
	w := cfg.RoomMinSize + s.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
	h := cfg.RoomMinSize + s.Rand.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)

	// Origins stop one short of the edge so the far wall stays on the grid
	x := s.Rand.Intn(cfg.Width - w)
	y := s.Rand.Intn(cfg.Height - h)

	return NewRect(x, y, w, h)
}

// TunnelOrder flips a fair coin.
func (s *RandomRooms) TunnelOrder(_, _ Point) TunnelOrder {
	if s.Rand.Intn(2) == 0 {
		return HorizontalFirst
	}
	return VerticalFirst
}

// FixedRooms replays a hand-authored list of rooms. Rooms that overlap an
// earlier one are still rejected.
type FixedRooms struct {
	Rooms []Rect
	Order TunnelOrder
}

// Attempts returns the number of authored rooms.
func (s *FixedRooms) Attempts(_ Config) int {
	return len(s.Rooms)
}

// NextRoom returns the authored room for the attempt.
func (s *FixedRooms) NextRoom(_ Config, attempt int) Rect {
	return s.Rooms[attempt]
}

// TunnelOrder returns the layout's fixed order.
func (s *FixedRooms) TunnelOrder(_, _ Point) TunnelOrder {
	return s.Order
}

var (
	_ Strategy = (*RandomRooms)(nil)
	_ Strategy = (*FixedRooms)(nil)
)
