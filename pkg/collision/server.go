// pkg/collision/server.go
package collision

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/opd-ai/go-hitbox/pkg/config"
	"github.com/opd-ai/go-hitbox/pkg/event"
	"github.com/opd-ai/go-hitbox/pkg/geometry"
	"github.com/opd-ai/go-hitbox/pkg/logging"
	"github.com/opd-ai/go-hitbox/pkg/spatial"
)

// Server is the collider registry plus a quadtree over a fixed world. It
// is not safe for concurrent use.
type Server struct {
	world     geometry.Rectangle
	colliders map[ColliderID]*Collider
	tree      *spatial.QuadTree[ColliderID]
	ordered   []ColliderID
	dirty     bool

	eventBus *event.Bus
	logger   *logging.Logger
}

// RebuildResult reports what the last Rebuild indexed
type RebuildResult struct {
	Indexed int
	// Skipped lists colliders without area
	Skipped []ColliderID
	// Rejected lists colliders whose bounds miss the world entirely. They
	// are invisible to every query until they move back inside.
	Rejected []ColliderID
}

// Stats describes the registry and the current index
type Stats struct {
	Colliders int           `json:"colliders"`
	Tree      spatial.Stats `json:"tree"`
}

// NewServer creates a server over the configured world. A nil logger
// discards output.
func NewServer(cfg config.CollisionConfig, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	world := cfg.World()
	return &Server{
		world:     world,
		colliders: make(map[ColliderID]*Collider),
		tree:      spatial.NewQuadTree[ColliderID](world, cfg.MaxDepth, cfg.MaxObjectsPerLeaf),
		logger:    logger.WithComponent("collision"),
	}
}

// SetEventBus attaches a bus that receives registration, rebuild and
// out-of-world events. Pass nil to detach.
func (s *Server) SetEventBus(bus *event.Bus) {
	s.eventBus = bus
}

// World returns the indexed extent
func (s *Server) World() geometry.Rectangle {
	return s.world
}

// Register adds a collider. The collider is indexed on the next Rebuild.
func (s *Server) Register(c *Collider) error {
	if c == nil {
		return ErrNilCollider
	}
	if _, exists := s.colliders[c.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCollider, c.ID())
	}

	s.colliders[c.ID()] = c
	s.dirty = true
	s.publish(event.NewColliderEvent(event.ColliderRegistered, s, uint64(c.ID())))
	return nil
}

// Unregister removes a collider. Stale index entries are ignored until the
// next Rebuild drops them.
func (s *Server) Unregister(id ColliderID) bool {
	if _, exists := s.colliders[id]; !exists {
		return false
	}

	delete(s.colliders, id)
	s.dirty = true
	s.publish(event.NewColliderEvent(event.ColliderUnregistered, s, uint64(id)))
	return true
}

// Collider returns a registered collider
func (s *Server) Collider(id ColliderID) (*Collider, bool) {
	c, ok := s.colliders[id]
	return c, ok
}

// Len returns the number of registered colliders
func (s *Server) Len() int {
	return len(s.colliders)
}

// IDs returns the registered IDs in ascending order
func (s *Server) IDs() []ColliderID {
	return slices.Clone(s.sortedIDs())
}

func (s *Server) sortedIDs() []ColliderID {
	if s.dirty || len(s.ordered) != len(s.colliders) {
		s.ordered = s.ordered[:0]
		for id := range s.colliders {
			s.ordered = append(s.ordered, id)
		}
		slices.Sort(s.ordered)
		s.dirty = false
	}
	return s.ordered
}

// Rebuild discards the index and inserts the current bounds of every
// registered collider in ascending ID order. Call it once per tick before
// any Resolve.
func (s *Server) Rebuild(ctx context.Context) RebuildResult {
	s.tree.Clear()

	var res RebuildResult
	// handlers run synchronously and may unregister colliders mid loop
	for _, id := range s.IDs() {
		c, ok := s.colliders[id]
		if !ok {
			continue
		}
		if !c.shape.HasArea() {
			res.Skipped = append(res.Skipped, id)
			continue
		}

		bounds := c.Bounds()
		if !s.tree.Insert(spatial.Entry[ColliderID]{Object: id, Bounds: bounds}) {
			res.Rejected = append(res.Rejected, id)
			s.logger.Warn(ctx, "collider outside world",
				"collider_id", uint64(id),
				"collider_name", c.name,
				"bounds", bounds.String(),
				"world", s.world.String())
			s.publish(event.NewColliderEvent(event.ColliderOutOfWorld, s, uint64(id)))
			continue
		}
		res.Indexed++
	}

	if s.logger.Enabled(ctx, slog.LevelDebug) {
		s.logger.Debug(ctx, "index rebuilt",
			"indexed", res.Indexed,
			"skipped", len(res.Skipped),
			"rejected", len(res.Rejected))
	}
	s.publish(event.NewRebuildEvent(s, res.Indexed, len(res.Rejected)))
	return res
}

// Resolve returns the first registered collider whose hitbox intersects
// c's hitbox. Candidates come from the index built by the last Rebuild,
// tested against their current shapes. c does not need to be registered.
func (s *Server) Resolve(ctx context.Context, c *Collider) (Collision, bool) {
	if c == nil || !c.shape.HasArea() {
		return Collision{}, false
	}

	for _, id := range s.tree.QueryObjects(c.Bounds()) {
		if id == c.ID() {
			continue
		}
		other, ok := s.colliders[id]
		if !ok {
			continue
		}
		if c.shape.IntersectsBounding(other.shape) {
			if s.logger.Enabled(ctx, slog.LevelDebug) {
				s.logger.Debug(ctx, "collision", "subject", uint64(c.ID()), "other", uint64(id))
			}
			return Collision{Subject: c.ID(), Other: id}, true
		}
	}
	return Collision{}, false
}

// ResolveAll runs Resolve for every registered collider in ascending ID
// order. A touching pair appears twice, once per subject.
func (s *Server) ResolveAll(ctx context.Context) []Collision {
	var res []Collision
	for _, id := range s.IDs() {
		if col, ok := s.Resolve(ctx, s.colliders[id]); ok {
			res = append(res, col)
		}
	}
	return res
}

// Query returns the registered colliders whose indexed bounds intersect
// region, without a narrow phase.
func (s *Server) Query(region geometry.Rectangle) []ColliderID {
	candidates := s.tree.QueryObjects(region)
	res := candidates[:0]
	for _, id := range candidates {
		if _, ok := s.colliders[id]; ok {
			res = append(res, id)
		}
	}
	return res
}

// Overlapping returns every registered collider whose hitbox intersects
// shape, skipping the excluded IDs. Unlike Resolve it reports all hits, and
// shape may be a Line.
func (s *Server) Overlapping(shape geometry.Shape, exclude ...ColliderID) []ColliderID {
	if shape.Kind() == geometry.KindNone {
		return nil
	}

	var res []ColliderID
	for _, id := range s.Query(shape.Bounds()) {
		if slices.Contains(exclude, id) {
			continue
		}
		if s.colliders[id].shape.Intersects(shape) {
			res = append(res, id)
		}
	}
	return res
}

// Stats returns registry and index counters
func (s *Server) Stats() Stats {
	return Stats{
		Colliders: len(s.colliders),
		Tree:      s.tree.Stats(),
	}
}

func (s *Server) publish(e event.Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(e)
	}
}
