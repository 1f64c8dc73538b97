// Package board models the mansion as an unweighted graph of rooms and
// corridor spaces, with a BFS pathfinder for movement queries.
package board

import (
	"errors"
	"fmt"
	"sort"
)

// Kind distinguishes suggestion-capable rooms from plain corridor spaces.
type Kind int

const (
	KindRoom Kind = iota
	KindCorridor
)

func (k Kind) String() string {
	return []string{"room", "corridor"}[k]
}

// Coord addresses a space on the display grid. Coordinates exist purely for
// rendering; movement cost is hop count on the graph.
type Coord struct {
	Row int
	Col int
}

// String renders a chess-style label, e.g. {0,1} -> "A1".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col)
}

// Location is a single space on the board.
type Location struct {
	Name  string
	Kind  Kind
	Coord Coord
}

// ErrNoPath is returned when two spaces are disconnected. The mansion graph
// is validated as connected at startup, so seeing this mid-game means the
// board definition is corrupt.
var ErrNoPath = errors.New("board: no path between locations")

// ErrUnknownLocation is returned for a space name not on the board.
var ErrUnknownLocation = errors.New("board: unknown location")

// Board is a symmetric, connected adjacency graph over Locations.
type Board struct {
	locations map[string]Location
	adjacency map[string][]string
	starts    []string
}

// New builds a board from locations and an undirected edge list, sorting
// every adjacency list so traversal order is deterministic. The board is
// validated before being returned.
func New(locations []Location, edges [][2]string) (*Board, error) {
	b := &Board{
		locations: make(map[string]Location, len(locations)),
		adjacency: make(map[string][]string, len(locations)),
	}
	for _, loc := range locations {
		b.locations[loc.Name] = loc
	}
	for _, e := range edges {
		for _, name := range e {
			if _, ok := b.locations[name]; !ok {
				return nil, fmt.Errorf("%w: edge endpoint %q", ErrUnknownLocation, name)
			}
		}
		b.addEdge(e[0], e[1])
	}
	for name := range b.adjacency {
		sort.Strings(b.adjacency[name])
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) addEdge(a, c string) {
	if !contains(b.adjacency[a], c) {
		b.adjacency[a] = append(b.adjacency[a], c)
	}
	if !contains(b.adjacency[c], a) {
		b.adjacency[c] = append(b.adjacency[c], a)
	}
}

// Validate checks the board invariants: adjacency symmetry and a single
// connected component. A failure is fatal at initialization, never mid-game.
func (b *Board) Validate() error {
	for name, neighbors := range b.adjacency {
		for _, n := range neighbors {
			if !contains(b.adjacency[n], name) {
				return fmt.Errorf("board: asymmetric edge %s -> %s", name, n)
			}
		}
	}
	names := b.AllSpaces()
	if len(names) == 0 {
		return errors.New("board: no locations defined")
	}
	seen := map[string]bool{names[0]: true}
	queue := []string{names[0]}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.adjacency[cur] {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(seen) != len(names) {
		return fmt.Errorf("%w: graph is not connected (%d of %d reachable)", ErrNoPath, len(seen), len(names))
	}
	return nil
}

// Lookup returns the Location for a space name.
func (b *Board) Lookup(name string) (Location, bool) {
	loc, ok := b.locations[name]
	return loc, ok
}

// IsRoom reports whether the named space is a room.
func (b *Board) IsRoom(name string) bool {
	loc, ok := b.locations[name]
	return ok && loc.Kind == KindRoom
}

// Rooms returns all room names, sorted.
func (b *Board) Rooms() []string {
	return b.spacesOfKind(KindRoom)
}

// Corridors returns all corridor space names, sorted.
func (b *Board) Corridors() []string {
	return b.spacesOfKind(KindCorridor)
}

func (b *Board) spacesOfKind(k Kind) []string {
	var names []string
	for name, loc := range b.locations {
		if loc.Kind == k {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AllSpaces returns every space name, sorted.
func (b *Board) AllSpaces() []string {
	names := make([]string, 0, len(b.locations))
	for name := range b.locations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Neighbors returns the spaces adjacent to loc, in sorted order.
func (b *Board) Neighbors(loc string) []string {
	return append([]string(nil), b.adjacency[loc]...)
}

// IsValidMove reports whether to is one hop from from.
func (b *Board) IsValidMove(from, to string) bool {
	return contains(b.adjacency[from], to)
}

// ShortestPath returns the minimal hop-count route from from to to,
// excluding the starting space. Ties between equally short routes resolve
// to the route through the alphabetically first neighbor, so results are
// reproducible. Returns ErrNoPath when the spaces are disconnected.
func (b *Board) ShortestPath(from, to string) ([]string, error) {
	if _, ok := b.locations[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	if _, ok := b.locations[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}
	if from == to {
		return []string{}, nil
	}

	prev := map[string]string{from: ""}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.adjacency[cur] {
			if _, visited := prev[n]; visited {
				continue
			}
			prev[n] = cur
			if n == to {
				return rebuildPath(prev, from, to), nil
			}
			queue = append(queue, n)
		}
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from, to)
}

func rebuildPath(prev map[string]string, from, to string) []string {
	var path []string
	for cur := to; cur != from; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DestinationsFrom returns every space reachable from start in at most
// steps hops, excluding start itself, sorted alphabetically. Mirrors a
// dice-roll movement range query.
func (b *Board) DestinationsFrom(start string, steps int) []string {
	if steps <= 0 {
		return nil
	}
	if _, ok := b.locations[start]; !ok {
		return nil
	}
	dist := map[string]int{start: 0}
	queue := []string{start}
	var reachable []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[cur] == steps {
			continue
		}
		for _, n := range b.adjacency[cur] {
			if _, visited := dist[n]; visited {
				continue
			}
			dist[n] = dist[cur] + 1
			reachable = append(reachable, n)
			queue = append(queue, n)
		}
	}
	sort.Strings(reachable)
	return reachable
}

// ClosestRoom finds the nearest room to start that passes filter (nil
// matches every room). Returns the room, its hop distance, and whether one
// was found. A room start that matches the filter is itself the answer.
func (b *Board) ClosestRoom(start string, filter func(string) bool) (string, int, bool) {
	match := func(name string) bool {
		return b.IsRoom(name) && (filter == nil || filter(name))
	}
	if match(start) {
		return start, 0, true
	}
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.adjacency[cur] {
			if _, visited := dist[n]; visited {
				continue
			}
			dist[n] = dist[cur] + 1
			if match(n) {
				return n, dist[n], true
			}
			queue = append(queue, n)
		}
	}
	return "", 0, false
}

// StartingSpace returns the corridor space where the player in seat i
// begins. Seats wrap when a game somehow has more players than marked
// starting spaces.
func (b *Board) StartingSpace(i int) string {
	if len(b.starts) == 0 {
		return b.AllSpaces()[0]
	}
	return b.starts[i%len(b.starts)]
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
