// File: actor/ask.go
package actor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAskTimeout is returned by Ask when no reply arrives within its
// deadline.
var ErrAskTimeout = errors.New("actor: ask timed out waiting for reply")

// replyWaiter is a one-shot actor that forwards the first message it
// receives to a channel and then asks the engine to stop it. Ask uses
// it as a synchronous PID any actor can Respond to.
type replyWaiter struct {
	replies chan interface{}
}

func (w *replyWaiter) Receive(ctx Context) {
	switch ctx.Message().(type) {
	case Started, Stopping, Stopped:
		return
	default:
		select {
		case w.replies <- ctx.Message():
		default:
		}
		ctx.Engine().Stop(ctx.Self())
	}
}

// Ask sends message to pid and blocks until the actor (or whichever
// actor it delegates to) replies via ctx.Respond, ctx errors out, or
// timeout elapses. It layers a synchronous request/response call on
// top of the mailbox model using only the engine's own primitives: a
// disposable reply-waiting actor stands in as the sender's PID, and
// Ask blocks on its reply channel instead of returning immediately.
func Ask(ctx context.Context, engine *Engine, pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	waiter := &replyWaiter{replies: make(chan interface{}, 1)}
	waiterPID := engine.Spawn(NewProps(func() Actor { return waiter }))
	if waiterPID == nil {
		return nil, fmt.Errorf("actor: ask could not spawn reply waiter: %w", ErrAskTimeout)
	}
	defer engine.Stop(waiterPID)

	engine.Send(pid, message, waiterPID)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-waiter.replies:
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("actor: %s: %w", pid, ErrAskTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
