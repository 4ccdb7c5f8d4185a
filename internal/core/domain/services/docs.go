// Package services provides the stateless domain services driving the order
// lifecycle: the lifecycle engine deciding automatic state transitions, the
// commerce validation pipeline, and the Decision Oracle abstraction both
// consult for business outcomes.
//
// All services operate on order snapshots and never hold their own copies or
// touch storage; persistence is the responsibility of the application layer.
package services
