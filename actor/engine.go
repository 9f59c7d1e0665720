// File: actor/engine.go
package actor

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Engine owns the set of running actors and routes messages between
// them by PID.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

// NewEngine creates an empty actor engine.
func NewEngine() *Engine {
	return &Engine{actors: make(map[string]*process)}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor from props and returns its PID. Returns nil
// if the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Println("actor: engine is stopping, refusing to spawn")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	e.Send(pid, Started{}, nil)
	return pid
}

// Send delivers message to pid's mailbox. sender may be nil.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		log.Printf("actor: %s not found, dropping %T", pid, message)
		return
	}
	proc.sendMessage(message, sender)
}

// Stop asks the actor at pid to shut down; it will process Stopping
// then Stopped before its goroutine exits.
func (e *Engine) Stop(pid *PID) {
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if ok {
		// Delivered directly rather than via Send, which drops every
		// message once Shutdown has begun.
		proc.sendMessage(Stopping{}, nil)
	}
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every actor and blocks until they exit or timeout
// elapses.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}

	e.mu.Lock()
	if len(e.actors) > 0 {
		log.Printf("actor: shutdown timed out with %d actors still running", len(e.actors))
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()
}
