package board

// The classic mansion: nine rooms ringed by twelve corridor spaces. C1-C6
// are the suspects' starting spaces on the outer edge, C7-C12 form the
// inner ring. Coordinates follow the printed board grid.
//
// The Billiard Room and Library sit on the inner ring (C8/C11 and C9/C12);
// every space must stay reachable from every other or Validate rejects the
// layout at startup.

var mansionLocations = []Location{
	{Name: "Kitchen", Kind: KindRoom, Coord: Coord{0, 1}},
	{Name: "Ballroom", Kind: KindRoom, Coord: Coord{0, 3}},
	{Name: "Conservatory", Kind: KindRoom, Coord: Coord{0, 5}},
	{Name: "Dining Room", Kind: KindRoom, Coord: Coord{2, 1}},
	{Name: "Billiard Room", Kind: KindRoom, Coord: Coord{2, 3}},
	{Name: "Library", Kind: KindRoom, Coord: Coord{2, 5}},
	{Name: "Lounge", Kind: KindRoom, Coord: Coord{4, 1}},
	{Name: "Hall", Kind: KindRoom, Coord: Coord{4, 3}},
	{Name: "Study", Kind: KindRoom, Coord: Coord{4, 5}},

	{Name: "C1", Kind: KindCorridor, Coord: Coord{4, 2}},
	{Name: "C2", Kind: KindCorridor, Coord: Coord{2, 2}},
	{Name: "C3", Kind: KindCorridor, Coord: Coord{0, 2}},
	{Name: "C4", Kind: KindCorridor, Coord: Coord{0, 4}},
	{Name: "C5", Kind: KindCorridor, Coord: Coord{1, 5}},
	{Name: "C6", Kind: KindCorridor, Coord: Coord{5, 5}},
	{Name: "C7", Kind: KindCorridor, Coord: Coord{3, 2}},
	{Name: "C8", Kind: KindCorridor, Coord: Coord{1, 2}},
	{Name: "C9", Kind: KindCorridor, Coord: Coord{1, 3}},
	{Name: "C10", Kind: KindCorridor, Coord: Coord{1, 4}},
	{Name: "C11", Kind: KindCorridor, Coord: Coord{2, 4}},
	{Name: "C12", Kind: KindCorridor, Coord: Coord{3, 4}},
}

var mansionEdges = [][2]string{
	// Outer starting spaces into their rooms and the inner ring.
	{"C1", "Lounge"}, {"C1", "C7"},
	{"C2", "Dining Room"}, {"C2", "C8"},
	{"C3", "Kitchen"}, {"C3", "C9"},
	{"C4", "Ballroom"}, {"C4", "C10"},
	{"C5", "Conservatory"}, {"C5", "C11"},
	{"C6", "Study"}, {"C6", "C12"},
	// Inner ring.
	{"C7", "C8"}, {"C8", "C9"}, {"C9", "C10"},
	{"C10", "C11"}, {"C11", "C12"},
	{"C7", "Hall"}, {"C12", "Hall"},
	// Room doors onto the ring.
	{"C7", "Lounge"},
	{"C8", "Dining Room"},
	{"C9", "Kitchen"},
	{"C10", "Ballroom"},
	{"C11", "Conservatory"},
	{"C12", "Study"},
	{"C8", "Billiard Room"}, {"C11", "Billiard Room"},
	{"C9", "Library"}, {"C12", "Library"},
}

var mansionStarts = []string{"C1", "C2", "C3", "C4", "C5", "C6"}

// NewMansion builds the classic board. The layout is a compile-time
// constant, so a failure here is a programming error.
func NewMansion() *Board {
	b, err := New(mansionLocations, mansionEdges)
	if err != nil {
		panic(err)
	}
	b.starts = append([]string(nil), mansionStarts...)
	return b
}
