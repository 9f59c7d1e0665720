// File: test/e2e_test.go
package test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/websocket"

	"github.com/lguibr/collide/config"
	"github.com/lguibr/collide/physics"
	"github.com/lguibr/collide/simactor"
)

const e2eTestTimeout = 5 * time.Second

func sendCommand(t *testing.T, ws *websocket.Conn, cmd map[string]interface{}) {
	t.Helper()
	assert.NoError(t, json.NewEncoder(ws).Encode(cmd))
}

func readSnapshot(t *testing.T, ws *websocket.Conn) simactor.SnapshotView {
	t.Helper()
	var view simactor.SnapshotView
	assert.NoError(t, json.NewDecoder(ws).Decode(&view))
	return view
}

// TestE2E_BallStaysContainedWhileStepping drives a real WebSocket
// connection against a live simulation: activate a ball moving toward
// a wall, step it repeatedly, and confirm every step succeeds and the
// ball's center stays inside the play area.
func TestE2E_BallStaysContainedWhileStepping(t *testing.T) {
	cfg := config.Fast()
	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup, e2eTestTimeout)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	assert.NoError(t, err)
	defer ws.Close()

	sendCommand(t, ws, map[string]interface{}{
		"type": "setBall", "index": 1,
		"mass": 1, "radius": cfg.DefaultBallRadius,
		"position": physics.Vec2{X: cfg.Width - 20, Y: cfg.Height / 2},
		"velocity": physics.Vec2{X: cfg.MaxBallVelocity, Y: 0},
	})
	var ack simactor.CommandAck
	assert.NoError(t, json.NewDecoder(ws).Decode(&ack))

	var lastX float64
	for i := 0; i < 20; i++ {
		sendCommand(t, ws, map[string]interface{}{"type": "step"})
		var result simactor.StepResult
		assert.NoError(t, json.NewDecoder(ws).Decode(&result))
		assert.Nil(t, result.Err)

		sendCommand(t, ws, map[string]interface{}{"type": "snapshot"})
		view := readSnapshot(t, ws)
		if len(view.Balls) == 1 {
			lastX = view.Balls[0].Position.X
			assert.GreaterOrEqual(t, lastX, 0.0)
			assert.LessOrEqual(t, lastX, cfg.Width)
		}
	}
}

// TestE2E_StickyCollisionFormsClusterAcrossTheWire exercises the
// sticky-clustering path end to end: two balls on a collision course
// with elasticity 0 and sticky mode enabled should end up stuck
// together, their centers exactly a radius sum apart, after enough steps.
func TestE2E_StickyCollisionFormsClusterAcrossTheWire(t *testing.T) {
	cfg := config.Fast()
	cfg.Elasticity = 0
	cfg.IsSticky = true
	cfg.ReflectingBorder = false
	setup := SetupE2ETest(t, cfg)
	defer TeardownE2ETest(t, setup, e2eTestTimeout)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	assert.NoError(t, err)
	defer ws.Close()

	sendCommand(t, ws, map[string]interface{}{
		"type": "setBall", "index": 1, "mass": 1, "radius": 10,
		"position": physics.Vec2{X: 0, Y: 0}, "velocity": physics.Vec2{X: 50, Y: 0},
	})
	var ack1 simactor.CommandAck
	assert.NoError(t, json.NewDecoder(ws).Decode(&ack1))

	sendCommand(t, ws, map[string]interface{}{
		"type": "setBall", "index": 2, "mass": 1, "radius": 10,
		"position": physics.Vec2{X: 100, Y: 0}, "velocity": physics.Vec2{X: -50, Y: 0},
	})
	var ack2 simactor.CommandAck
	assert.NoError(t, json.NewDecoder(ws).Decode(&ack2))

	for i := 0; i < 30; i++ {
		sendCommand(t, ws, map[string]interface{}{"type": "step", "delta": 0.05})
		var result simactor.StepResult
		assert.NoError(t, json.NewDecoder(ws).Decode(&result))
		assert.Nil(t, result.Err)
	}

	sendCommand(t, ws, map[string]interface{}{"type": "snapshot"})
	view := readSnapshot(t, ws)
	assert.Len(t, view.Balls, 2)

	dx := view.Balls[0].Position.X - view.Balls[1].Position.X
	dy := view.Balls[0].Position.Y - view.Balls[1].Position.Y
	separation := dx*dx + dy*dy
	assert.InDelta(t, 400, separation, 1, "stuck balls should stay exactly radius-sum apart")
}
