// File: actor/process.go
package actor

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its state, its mailbox,
// and the goroutine driving Receive calls.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	props   *Props
	mailbox chan *messageEnvelope
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage enqueues a message for this actor. System messages that
// drive shutdown are delivered even to an actor already marked
// stopped; everything else is dropped silently once stopped, and
// dropped (not blocked on) if the mailbox is full.
func (p *process) sendMessage(message interface{}, sender *PID) {
	_, isStopping := message.(Stopping)
	_, isStopped := message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return
	}
	envelope := &messageEnvelope{Sender: sender, Message: message}
	select {
	case p.mailbox <- envelope:
	default:
		log.Printf("actor %s: mailbox full, dropping message %T", p.pid, message)
	}
}

func (p *process) closeStopCh() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

// run is the actor's message loop. It owns the actor's entire
// lifecycle: construction, Started, user messages, Stopping, Stopped.
func (p *process) run() {
	var stoppingInvoked bool

	defer func() {
		p.stopped.Store(true)
		defer func() {
			if r := recover(); r != nil {
				log.Printf("actor %s: panic during shutdown: %v", p.pid, r)
			}
			p.engine.remove(p.pid)
		}()
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("actor %s: panic: %v\n%s", p.pid, r, debug.Stack())
			if p.stopped.CompareAndSwap(false, true) {
				p.closeStopCh()
				if p.actor != nil && !stoppingInvoked {
					p.invokeReceive(Stopping{}, nil)
					stoppingInvoked = true
				}
			}
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actor %s: producer returned nil actor", p.pid))
	}
	p.invokeReceive(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) && !stoppingInvoked {
				p.invokeReceive(Stopping{}, nil)
				stoppingInvoked = true
			}
			return

		case envelope := <-p.mailbox:
			if _, ok := envelope.Message.(Stopping); ok {
				if p.stopped.CompareAndSwap(false, true) {
					if !stoppingInvoked {
						p.invokeReceive(envelope.Message, envelope.Sender)
						stoppingInvoked = true
					}
					p.closeStopCh()
				}
				continue
			}
			if p.stopped.Load() {
				continue
			}
			p.invokeReceive(envelope.Message, envelope.Sender)
		}
	}
}

func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &actorContext{engine: p.engine, self: p.pid, sender: sender, message: msg}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("actor %s: panic in Receive(%T): %v\n%s", p.pid, msg, r, debug.Stack())
			if p.stopped.CompareAndSwap(false, true) {
				p.closeStopCh()
			}
		}
	}()
	p.actor.Receive(ctx)
}
