// Package splitter implements the Ball Splitter simulation core: the region
// partition, bouncing balls, closing walls and the level/run state machine.
// It has no knowledge of terminals; the platform layer drives it through Run.
package splitter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-splitter/internal/core"
)

// ErrCutOutOfRange is returned by Split when the cut coordinate does not lie
// strictly inside the region along the split axis.
var ErrCutOutOfRange = errors.New("splitter: cut coordinate outside region span")

// Orientation is the direction of a cut line.
type Orientation int

const (
	Vertical   Orientation = iota // Line at fixed x, splits left/right
	Horizontal                    // Line at fixed y, splits top/bottom
)

// Other returns the perpendicular orientation.
func (o Orientation) Other() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Short returns the one-letter aim indicator shown in the HUD.
func (o Orientation) Short() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// Region is a live rectangle of the play surface.
type Region struct {
	ID int
	core.Rect
}

// RegionStore holds the current partition of the surface.
// Region ids are assigned monotonically and reset only by CreateInitial.
type RegionStore struct {
	nextID  int
	regions []Region
	byID    map[int]Region

	surfaceW float64
	surfaceH float64
}

// NewRegionStore creates an empty store.
func NewRegionStore() *RegionStore {
	return &RegionStore{
		nextID: 1,
		byID:   make(map[int]Region),
	}
}

func (s *RegionStore) allocate(rect core.Rect) Region {
	r := Region{ID: s.nextID, Rect: rect}
	s.nextID++
	return r
}

func (s *RegionStore) reindex() {
	s.byID = make(map[int]Region, len(s.regions))
	for _, r := range s.regions {
		s.byID[r.ID] = r
	}
}

// CreateInitial resets the store to a single region covering the surface.
func (s *RegionStore) CreateInitial(w, h float64) Region {
	s.nextID = 1
	s.surfaceW = w
	s.surfaceH = h
	full := s.allocate(core.NewRect(0, 0, w, h))
	s.regions = []Region{full}
	s.reindex()
	return full
}

// Split cuts a region into two children with fresh ids. The store itself is
// not modified; use Replace to commit the children.
func (s *RegionStore) Split(r Region, o Orientation, cut float64) (Region, Region, error) {
	if o == Vertical {
		if cut <= r.X || cut >= r.Right() {
			return Region{}, Region{}, fmt.Errorf("%w: x=%v not in (%v, %v)", ErrCutOutOfRange, cut, r.X, r.Right())
		}
		a := s.allocate(core.NewRect(r.X, r.Y, cut-r.X, r.H))
		b := s.allocate(core.NewRect(cut, r.Y, r.Right()-cut, r.H))
		return a, b, nil
	}

	if cut <= r.Y || cut >= r.Bottom() {
		return Region{}, Region{}, fmt.Errorf("%w: y=%v not in (%v, %v)", ErrCutOutOfRange, cut, r.Y, r.Bottom())
	}
	a := s.allocate(core.NewRect(r.X, r.Y, r.W, cut-r.Y))
	b := s.allocate(core.NewRect(r.X, cut, r.W, r.Bottom()-cut))
	return a, b, nil
}

// Replace removes the parent region and appends the children.
func (s *RegionStore) Replace(parentID int, children ...Region) {
	next := make([]Region, 0, len(s.regions)+len(children))
	for _, r := range s.regions {
		if r.ID != parentID {
			next = append(next, r)
		}
	}
	s.regions = append(next, children...)
	s.reindex()
}

// Prune removes a region from the live set.
func (s *RegionStore) Prune(id int) {
	for i, r := range s.regions {
		if r.ID == id {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			break
		}
	}
	s.reindex()
}

// FindContaining returns the region whose rectangle contains the point.
func (s *RegionStore) FindContaining(x, y float64) (Region, bool) {
	for _, r := range s.regions {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}

// Get looks up a region by id.
func (s *RegionStore) Get(id int) (Region, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// ByID returns the id index. It is rebuilt after every mutation and must not
// be modified by callers.
func (s *RegionStore) ByID() map[int]Region {
	return s.byID
}

// All returns a copy of the live regions in insertion order.
func (s *RegionStore) All() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Len returns the number of live regions.
func (s *RegionStore) Len() int {
	return len(s.regions)
}

// TotalArea returns the area of the whole surface.
func (s *RegionStore) TotalArea() float64 {
	return s.surfaceW * s.surfaceH
}

// PlayableArea returns the summed area of all live regions.
func (s *RegionStore) PlayableArea() float64 {
	sum := 0.0
	for _, r := range s.regions {
		sum += r.Area()
	}
	return sum
}

// CaptureRatio returns the fraction of the surface no longer covered by any
// live region. An empty store counts as fully captured.
func (s *RegionStore) CaptureRatio() float64 {
	total := s.TotalArea()
	if len(s.regions) == 0 || total <= 0 {
		return 1
	}
	return 1 - s.PlayableArea()/total
}

// Rescale scales every region and the surface size.
func (s *RegionStore) Rescale(sx, sy float64) {
	for i := range s.regions {
		s.regions[i].Rect = s.regions[i].Scale(sx, sy)
	}
	s.surfaceW *= sx
	s.surfaceH *= sy
	s.reindex()
}
