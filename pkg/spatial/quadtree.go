// pkg/spatial/quadtree.go
package spatial

import (
	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/physics"
)

// Quadrant order used when a node splits
const (
	NorthEast = iota
	NorthWest
	SouthWest
	SouthEast
)

// Entry is one indexed object. The tree never owns Object; it is a handle
// the caller resolves.
type Entry[K comparable] struct {
	Object K
	Bounds geometry.Rectangle

	visited bool
}

// QuadTree is a depth and capacity bounded spatial partition over
// axis-aligned rectangles. A node is either a leaf holding entries or an
// internal node with exactly four children.
//
// An entry whose bounds straddle a split line is stored in every leaf it
// touches. Such leaves share the same *Entry, which is what lets
// NumObjects and QueryObjects count each object once.
//
// QuadTree is not safe for concurrent use.
type QuadTree[K comparable] struct {
	bounds   geometry.Rectangle
	depth    int
	maxDepth int
	capacity int

	divided  bool
	children [4]*QuadTree[K]
	entries  []*Entry[K]
}

// NewQuadTree creates an empty root covering bounds. maxDepth is the
// number of levels the tree may have, capacity the number of entries a
// leaf holds before it splits. Values below 1 are raised to 1.
func NewQuadTree[K comparable](bounds geometry.Rectangle, maxDepth, capacity int) *QuadTree[K] {
	return newNode[K](bounds.Normalized(), 0, max(maxDepth, 1), max(capacity, 1))
}

func newNode[K comparable](bounds geometry.Rectangle, depth, maxDepth, capacity int) *QuadTree[K] {
	return &QuadTree[K]{
		bounds:   bounds,
		depth:    depth,
		maxDepth: maxDepth,
		capacity: capacity,
		entries:  make([]*Entry[K], 0, capacity),
	}
}

// Bounds returns the fixed extent of the node
func (qt *QuadTree[K]) Bounds() geometry.Rectangle {
	return qt.bounds
}

// Depth returns the level of the node, the root being 0
func (qt *QuadTree[K]) Depth() int {
	return qt.depth
}

// IsLeaf reports whether the node has no children
func (qt *QuadTree[K]) IsLeaf() bool {
	return !qt.divided
}

// Children returns the four quadrants of an internal node in NorthEast,
// NorthWest, SouthWest, SouthEast order, or nil for a leaf.
func (qt *QuadTree[K]) Children() []*QuadTree[K] {
	if !qt.divided {
		return nil
	}
	return qt.children[:]
}

// Entries returns copies of the entries stored directly in this node
func (qt *QuadTree[K]) Entries() []Entry[K] {
	res := make([]Entry[K], 0, len(qt.entries))
	for _, e := range qt.entries {
		res = append(res, Entry[K]{Object: e.Object, Bounds: e.Bounds})
	}
	return res
}

// Insert adds entry to every leaf whose bounds it intersects. It returns
// false when the entry does not touch this node at all; the tree never
// grows to fit. Inserting the same object twice stores it twice.
//
// A full leaf stays a leaf when every entry it would hold covers its
// centre, since each quadrant would receive all of them again.
func (qt *QuadTree[K]) Insert(entry Entry[K]) bool {
	e := &Entry[K]{Object: entry.Object, Bounds: entry.Bounds}
	return qt.insert(e)
}

func (qt *QuadTree[K]) insert(e *Entry[K]) bool {
	if !qt.bounds.IntersectsRectangle(e.Bounds) {
		return false
	}

	if !qt.divided {
		if len(qt.entries) < qt.capacity || !qt.canSplit() || !qt.separates(e) {
			qt.entries = append(qt.entries, e)
			return true
		}
		qt.Subdivide()
	}

	return qt.insertChildren(e)
}

func (qt *QuadTree[K]) insertChildren(e *Entry[K]) bool {
	accepted := false
	for _, child := range qt.children {
		if child.insert(e) {
			accepted = true
		}
	}
	return accepted
}

func (qt *QuadTree[K]) canSplit() bool {
	return qt.depth+1 < qt.maxDepth
}

// separates reports whether splitting the leaf would leave some entry, e
// included, out of at least one quadrant. An axis-aligned box reaches all
// four quadrants exactly when it covers the centre.
func (qt *QuadTree[K]) separates(e *Entry[K]) bool {
	c := qt.bounds.Center()
	if !geometry.PointInRectangle(c, e.Bounds) {
		return true
	}
	for _, other := range qt.entries {
		if !geometry.PointInRectangle(c, other.Bounds) {
			return true
		}
	}
	return false
}

// Subdivide splits a leaf into four equal quadrants around its centre and
// pushes its entries down. It does nothing on an internal node.
func (qt *QuadTree[K]) Subdivide() {
	if qt.divided {
		return
	}

	lo := qt.bounds.Min()
	c := qt.bounds.Center()
	half := qt.bounds.Size.Scale(0.5)

	quadrant := func(origin physics.Vector2D) *QuadTree[K] {
		return newNode[K](geometry.Rectangle{Origin: origin, Size: half}, qt.depth+1, qt.maxDepth, qt.capacity)
	}
	qt.children[NorthEast] = quadrant(c)
	qt.children[NorthWest] = quadrant(physics.Vector2D{X: lo.X, Y: c.Y})
	qt.children[SouthWest] = quadrant(lo)
	qt.children[SouthEast] = quadrant(physics.Vector2D{X: c.X, Y: lo.Y})
	qt.divided = true

	entries := qt.entries
	qt.entries = nil
	for _, e := range entries {
		qt.insertChildren(e)
	}
}

// Remove deletes every entry whose Object equals obj and collapses the
// nodes that no longer need their children. It reports whether anything
// was removed.
func (qt *QuadTree[K]) Remove(obj K) bool {
	if !qt.divided {
		n := len(qt.entries)
		qt.entries = deleteObject(qt.entries, obj)
		return len(qt.entries) != n
	}

	removed := false
	for _, child := range qt.children {
		if child.Remove(obj) {
			removed = true
		}
	}
	if removed {
		qt.Shake()
	}
	return removed
}

// Update moves an entry to its new bounds. It is Remove followed by Insert
// and returns the result of the Insert.
func (qt *QuadTree[K]) Update(entry Entry[K]) bool {
	qt.Remove(entry.Object)
	return qt.Insert(entry)
}

// Shake collapses an internal node back into a leaf when its subtree is
// empty or holds no more distinct objects than a leaf may.
func (qt *QuadTree[K]) Shake() {
	if !qt.divided {
		return
	}

	qt.resetVisited()
	var distinct []*Entry[K]
	qt.visit(func(e *Entry[K]) {
		if len(distinct) <= qt.capacity {
			distinct = append(distinct, e)
		}
	})
	qt.resetVisited()

	if len(distinct) > qt.capacity {
		return
	}

	qt.children = [4]*QuadTree[K]{}
	qt.divided = false
	qt.entries = append(make([]*Entry[K], 0, qt.capacity), distinct...)
}

// Query returns every entry in the subtree whose bounds intersect region.
// An object stored in several leaves is returned once per leaf; use
// QueryObjects for a distinct result.
func (qt *QuadTree[K]) Query(region geometry.Rectangle) []Entry[K] {
	var res []Entry[K]
	qt.query(region, func(e *Entry[K]) {
		res = append(res, Entry[K]{Object: e.Object, Bounds: e.Bounds})
	})
	return res
}

// QueryObjects returns the distinct objects whose bounds intersect region
// in first-seen order.
func (qt *QuadTree[K]) QueryObjects(region geometry.Rectangle) []K {
	var res []K
	var seen []*Entry[K]
	qt.query(region, func(e *Entry[K]) {
		if e.visited {
			return
		}
		e.visited = true
		seen = append(seen, e)
		res = append(res, e.Object)
	})
	for _, e := range seen {
		e.visited = false
	}
	return res
}

func (qt *QuadTree[K]) query(region geometry.Rectangle, fn func(e *Entry[K])) {
	if !qt.bounds.IntersectsRectangle(region) {
		return
	}
	if qt.divided {
		for _, child := range qt.children {
			child.query(region, fn)
		}
		return
	}
	for _, e := range qt.entries {
		if e.Bounds.IntersectsRectangle(region) {
			fn(e)
		}
	}
}

// NumObjects counts the distinct objects stored in the subtree
func (qt *QuadTree[K]) NumObjects() int {
	qt.resetVisited()
	count := 0
	qt.visit(func(*Entry[K]) { count++ })
	qt.resetVisited()
	return count
}

// Clear drops every entry and child, keeping the node's bounds and limits
func (qt *QuadTree[K]) Clear() {
	qt.children = [4]*QuadTree[K]{}
	qt.divided = false
	clear(qt.entries)
	qt.entries = qt.entries[:0]
}

// Walk calls fn for every node in depth-first order, parents before
// children. Returning false from fn skips that node's children.
func (qt *QuadTree[K]) Walk(fn func(node *QuadTree[K]) bool) {
	if !fn(qt) || !qt.divided {
		return
	}
	for _, child := range qt.children {
		child.Walk(fn)
	}
}

// visit calls fn once per entry not yet marked visited, marking it
func (qt *QuadTree[K]) visit(fn func(e *Entry[K])) {
	if qt.divided {
		for _, child := range qt.children {
			child.visit(fn)
		}
		return
	}
	for _, e := range qt.entries {
		if !e.visited {
			e.visited = true
			fn(e)
		}
	}
}

func (qt *QuadTree[K]) resetVisited() {
	qt.Walk(func(node *QuadTree[K]) bool {
		for _, e := range node.entries {
			e.visited = false
		}
		return true
	})
}

func deleteObject[K comparable](entries []*Entry[K], obj K) []*Entry[K] {
	kept := entries[:0]
	for _, e := range entries {
		if e.Object != obj {
			kept = append(kept, e)
		}
	}
	clear(entries[len(kept):])
	return kept
}
