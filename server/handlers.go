// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"golang.org/x/net/websocket"

	"github.com/lguibr/collide/physics"
	"github.com/lguibr/collide/simactor"
)

// wireCommand is the JSON envelope a driver sends over the WebSocket
// connection. Type selects which simactor command the other fields
// decode into; unused fields are simply ignored.
type wireCommand struct {
	Type     string       `json:"type"`
	Index    int          `json:"index"`
	Delta    float64      `json:"delta"`
	Mass     float64      `json:"mass"`
	Radius   float64      `json:"radius"`
	Position physics.Vec2 `json:"position"`
	Velocity physics.Vec2 `json:"velocity"`
	Enabled  bool         `json:"enabled"`
}

func (c wireCommand) toMessage() (interface{}, error) {
	switch c.Type {
	case "step":
		return simactor.StepCommand{Delta: c.Delta}, nil
	case "setBall":
		return simactor.SetBallCommand{Index: c.Index, Mass: c.Mass, Radius: c.Radius, Position: c.Position, Velocity: c.Velocity}, nil
	case "setBallVelocity":
		return simactor.SetBallVelocityCommand{Index: c.Index, Velocity: c.Velocity}, nil
	case "setBallPosition":
		return simactor.SetBallPositionCommand{Index: c.Index, Position: c.Position}, nil
	case "setUserControlled":
		return simactor.SetUserControlledCommand{Index: c.Index, Controlled: c.Enabled}, nil
	case "deactivateBall":
		return simactor.DeactivateBallCommand{Index: c.Index}, nil
	case "setSticky":
		return simactor.SetStickyCommand{Enabled: c.Enabled}, nil
	case "setElasticity":
		return simactor.SetElasticityCommand{Elasticity: c.Delta}, nil
	case "setReflectingBorder":
		return simactor.SetReflectingBorderCommand{Enabled: c.Enabled}, nil
	case "setDirection":
		return simactor.SetDirectionCommand{Reversed: c.Enabled}, nil
	case "setSlow":
		return simactor.SetSlowCommand{Slow: c.Enabled}, nil
	case "snapshot", "":
		return simactor.SnapshotQuery{}, nil
	default:
		return nil, fmt.Errorf("server: unknown command type %q", c.Type)
	}
}

// HandleSubscribe upgrades an HTTP request to a WebSocket connection,
// decodes each incoming JSON command, forwards it to the SimActor via
// Ask, and writes the JSON-encoded reply back to the client.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		s.openConnection(ws)
		defer s.closeConnection(ws)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("server: panic in connection handler for %s: %v\n%s\n", ws.RemoteAddr(), r, debug.Stack())
			}
		}()

		decoder := json.NewDecoder(ws)
		encoder := json.NewEncoder(ws)
		for {
			var cmd wireCommand
			if err := decoder.Decode(&cmd); err != nil {
				if err != io.EOF {
					fmt.Printf("server: decode error from %s: %v\n", ws.RemoteAddr(), err)
				}
				return
			}

			message, err := cmd.toMessage()
			if err != nil {
				_ = encoder.Encode(map[string]string{"error": err.Error()})
				continue
			}

			reply, err := s.ask(message)
			if err != nil {
				_ = encoder.Encode(map[string]string{"error": err.Error()})
				continue
			}
			if err := encoder.Encode(reply); err != nil {
				fmt.Printf("server: encode error to %s: %v\n", ws.RemoteAddr(), err)
				return
			}
		}
	}
}

// HandleHealthCheck reports liveness for load balancers and local
// smoke tests.
func HandleHealthCheck() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
