// File: server/server.go
package server

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/lguibr/collide/actor"
)

// Server exposes one running SimActor over WebSocket connections, each
// of which may send command JSON and reads back the actor's JSON
// reply to each command. It is a thin demo/driver layer outside the simulation
// itself, with no behavior of its own beyond wiring connections to
// actor.Ask calls.
type Server struct {
	engine     *actor.Engine
	simPID     *actor.PID
	askTimeout time.Duration

	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

// New creates a Server that forwards commands to the actor at simPID.
func New(engine *actor.Engine, simPID *actor.PID, askTimeout time.Duration) *Server {
	return &Server{
		engine:     engine,
		simPID:     simPID,
		askTimeout: askTimeout,
		conns:      make(map[*websocket.Conn]bool),
	}
}

func (s *Server) openConnection(ws *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[ws] = true
}

func (s *Server) closeConnection(ws *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.conns[ws]; ok {
		delete(s.conns, ws)
		if err := ws.Close(); err != nil {
			log.Printf("server: error closing connection %s: %v", ws.RemoteAddr(), err)
		}
	}
}

// ask performs a bounded request/response against the SimActor,
// wrapping actor.Ask with the server's configured timeout.
func (s *Server) ask(message interface{}) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.askTimeout)
	defer cancel()
	return actor.Ask(ctx, s.engine, s.simPID, message, s.askTimeout)
}
