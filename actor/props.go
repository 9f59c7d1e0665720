// File: actor/props.go
package actor

// Producer builds a fresh Actor instance; the engine calls it once per
// Spawn, on the actor's own goroutine.
type Producer func() Actor

// Props configures how an actor is constructed when spawned.
type Props struct {
	producer Producer
}

// NewProps wraps a Producer in a Props. Panics if producer is nil.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("actor: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance.
func (p *Props) Produce() Actor {
	return p.producer()
}
