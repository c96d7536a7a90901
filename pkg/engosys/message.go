// pkg/engosys/message.go
package engosys

import "github.com/opd-ai/go-hitbox/pkg/collision"

// CollisionMessageType is the engo message type of CollisionMessage
const CollisionMessageType = "HitboxCollisionMessage"

// CollisionMessage is dispatched on the system's MessageManager for every
// collision found during Update.
type CollisionMessage struct {
	Subject collision.ColliderID
	Other   collision.ColliderID
	Tick    uint64
}

// Type implements engo.Message
func (CollisionMessage) Type() string {
	return CollisionMessageType
}
