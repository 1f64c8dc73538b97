package board

import (
	"errors"
	"testing"
)

func TestMansionInvariants(t *testing.T) {
	// GIVEN the classic mansion board
	b := NewMansion()

	t.Run("it has nine rooms and twelve corridor spaces", func(t *testing.T) {
		if got := len(b.Rooms()); got != 9 {
			t.Errorf("expected 9 rooms, got %d", got)
		}
		if got := len(b.Corridors()); got != 12 {
			t.Errorf("expected 12 corridor spaces, got %d", got)
		}
	})

	t.Run("every edge is symmetric", func(t *testing.T) {
		for _, space := range b.AllSpaces() {
			for _, n := range b.Neighbors(space) {
				if !b.IsValidMove(n, space) {
					t.Errorf("edge %s -> %s has no reverse", space, n)
				}
			}
		}
	})

	t.Run("every space reaches every other space", func(t *testing.T) {
		spaces := b.AllSpaces()
		for _, from := range spaces {
			for _, to := range spaces {
				if from == to {
					continue
				}
				if _, err := b.ShortestPath(from, to); err != nil {
					t.Errorf("no path from %s to %s: %v", from, to, err)
				}
			}
		}
	})
}

// bfsDistance is an independent distance computation used to cross-check
// ShortestPath results.
func bfsDistance(b *Board, from, to string) int {
	if from == to {
		return 0
	}
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.Neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == to {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}

func TestShortestPath(t *testing.T) {
	// GIVEN the mansion board
	b := NewMansion()

	// WHEN we compute the shortest path between every pair of spaces
	// THEN each hop is adjacent and the length matches an independent BFS
	for _, from := range b.AllSpaces() {
		for _, to := range b.AllSpaces() {
			path, err := b.ShortestPath(from, to)
			if err != nil {
				t.Fatalf("ShortestPath(%s, %s): %v", from, to, err)
			}
			if from == to {
				if len(path) != 0 {
					t.Errorf("path from %s to itself should be empty, got %v", from, path)
				}
				continue
			}
			prev := from
			for _, hop := range path {
				if !b.IsValidMove(prev, hop) {
					t.Errorf("path %s -> %s contains non-adjacent hop %s -> %s", from, to, prev, hop)
				}
				prev = hop
			}
			if path[len(path)-1] != to {
				t.Errorf("path from %s does not end at %s: %v", from, to, path)
			}
			if want := bfsDistance(b, from, to); len(path) != want {
				t.Errorf("path %s -> %s has length %d, expected %d", from, to, len(path), want)
			}
		}
	}
}

func TestShortestPathFourCycle(t *testing.T) {
	// GIVEN four locations in a cycle A-B-C-D-A
	locations := []Location{
		{Name: "A", Kind: KindRoom},
		{Name: "B", Kind: KindCorridor},
		{Name: "C", Kind: KindRoom},
		{Name: "D", Kind: KindCorridor},
	}
	edges := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}
	b, err := New(locations, edges)
	if err != nil {
		t.Fatalf("failed to build cycle board: %v", err)
	}

	// WHEN we compute the path from A to C twice
	first, err := b.ShortestPath("A", "C")
	if err != nil {
		t.Fatalf("ShortestPath(A, C): %v", err)
	}
	second, _ := b.ShortestPath("A", "C")

	// THEN the path has length 2 and ties resolve the same way every time
	if len(first) != 2 {
		t.Errorf("expected path of length 2, got %v", first)
	}
	if first[0] != "B" {
		t.Errorf("expected the tie to resolve through B, got %v", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("path is not deterministic: %v vs %v", first, second)
		}
	}
}

func TestNewRejectsBadBoards(t *testing.T) {
	t.Run("it rejects an edge to an unknown location", func(t *testing.T) {
		_, err := New([]Location{{Name: "A"}}, [][2]string{{"A", "Z"}})
		if !errors.Is(err, ErrUnknownLocation) {
			t.Errorf("expected ErrUnknownLocation, got %v", err)
		}
	})

	t.Run("it rejects a disconnected graph", func(t *testing.T) {
		locations := []Location{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}}
		_, err := New(locations, [][2]string{{"A", "B"}, {"C", "D"}})
		if !errors.Is(err, ErrNoPath) {
			t.Errorf("expected ErrNoPath, got %v", err)
		}
	})
}

func TestDestinationsFrom(t *testing.T) {
	// GIVEN the mansion board
	b := NewMansion()

	t.Run("one step from C3 reaches exactly its neighbors", func(t *testing.T) {
		got := b.DestinationsFrom("C3", 1)
		want := []string{"C9", "Kitchen"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("the starting space is never a destination", func(t *testing.T) {
		for steps := 1; steps <= 6; steps++ {
			for _, dest := range b.DestinationsFrom("C1", steps) {
				if dest == "C1" {
					t.Errorf("start C1 listed as destination at %d steps", steps)
				}
			}
		}
	})

	t.Run("larger rolls never shrink the range", func(t *testing.T) {
		prev := 0
		for steps := 1; steps <= 6; steps++ {
			n := len(b.DestinationsFrom("Hall", steps))
			if n < prev {
				t.Errorf("range shrank from %d to %d at %d steps", prev, n, steps)
			}
			prev = n
		}
	})

	t.Run("zero steps reach nothing", func(t *testing.T) {
		if got := b.DestinationsFrom("Hall", 0); got != nil {
			t.Errorf("expected no destinations, got %v", got)
		}
	})
}

func TestClosestRoom(t *testing.T) {
	// GIVEN the mansion board
	b := NewMansion()

	t.Run("a room matching the filter is its own answer", func(t *testing.T) {
		room, dist, ok := b.ClosestRoom("Kitchen", nil)
		if !ok || room != "Kitchen" || dist != 0 {
			t.Errorf("expected Kitchen at distance 0, got %s at %d (ok=%v)", room, dist, ok)
		}
	})

	t.Run("it finds the nearest room from a corridor", func(t *testing.T) {
		room, dist, ok := b.ClosestRoom("C3", nil)
		if !ok || room != "Kitchen" || dist != 1 {
			t.Errorf("expected Kitchen at distance 1, got %s at %d (ok=%v)", room, dist, ok)
		}
	})

	t.Run("it honors the filter", func(t *testing.T) {
		room, _, ok := b.ClosestRoom("C3", func(r string) bool { return r != "Kitchen" })
		if !ok {
			t.Fatal("expected a room to be found")
		}
		if room == "Kitchen" {
			t.Error("filter excluded Kitchen but it was returned")
		}
	})

	t.Run("it reports when no room matches", func(t *testing.T) {
		_, _, ok := b.ClosestRoom("C3", func(string) bool { return false })
		if ok {
			t.Error("expected no match")
		}
	})
}

func TestStartingSpaces(t *testing.T) {
	// GIVEN the mansion board with six marked starting spaces
	b := NewMansion()

	// THEN seats map to C1..C6 and wrap past the sixth seat
	for i := 0; i < 6; i++ {
		want := mansionStarts[i]
		if got := b.StartingSpace(i); got != want {
			t.Errorf("seat %d: expected %s, got %s", i, want, got)
		}
	}
	if got := b.StartingSpace(6); got != "C1" {
		t.Errorf("seat 6 should wrap to C1, got %s", got)
	}
}

func TestCoordLabels(t *testing.T) {
	// GIVEN grid coordinates
	// THEN they render as chess-style labels
	cases := []struct {
		coord Coord
		want  string
	}{
		{Coord{0, 1}, "A1"},
		{Coord{2, 3}, "C3"},
		{Coord{4, 5}, "E5"},
	}
	for _, c := range cases {
		if got := c.coord.String(); got != c.want {
			t.Errorf("Coord%v: expected %s, got %s", c.coord, c.want, got)
		}
	}
}
