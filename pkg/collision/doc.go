// Package collision owns the collider registry and the per-tick broad and
// narrow phase. A Server is a plain value handed to whatever drives the
// simulation loop: call Rebuild once per tick after moving colliders, then
// Resolve or ResolveAll.
//
// The server never mutates collider shapes and knows nothing about the
// entities that own them; it reports pairs of ColliderIDs.
package collision
