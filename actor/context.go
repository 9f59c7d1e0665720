// File: actor/context.go
package actor

// Context gives a Receive call access to the engine and the message
// envelope currently being processed.
type Context interface {
	// Engine returns the Engine managing this actor.
	Engine() *Engine
	// Self returns the PID of the actor processing the message.
	Self() *PID
	// Sender returns the PID of the actor (or reply waiter) that sent
	// the message, or nil if it originated outside the actor system.
	Sender() *PID
	// Message returns the message being processed.
	Message() interface{}
	// Respond sends message back to Sender(), if there is one. It is a
	// no-op (not an error) when Sender() is nil, since not every
	// message expects a reply.
	Respond(message interface{})
}

type actorContext struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *actorContext) Engine() *Engine        { return c.engine }
func (c *actorContext) Self() *PID             { return c.self }
func (c *actorContext) Sender() *PID           { return c.sender }
func (c *actorContext) Message() interface{}   { return c.message }

func (c *actorContext) Respond(message interface{}) {
	if c.sender == nil {
		return
	}
	c.engine.Send(c.sender, message, c.self)
}
