// File: main.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/websocket"

	"github.com/lguibr/collide/actor"
	"github.com/lguibr/collide/config"
	"github.com/lguibr/collide/physics"
	"github.com/lguibr/collide/server"
	"github.com/lguibr/collide/simactor"
)

const (
	defaultPort          = "8080"
	simActorWarmup       = 50 * time.Millisecond
	engineShutdownWindow = 5 * time.Second
)

func main() {
	cfg := config.Default()
	fmt.Printf("collide: starting with a %vx%v play area, elasticity %v, tick period %v\n",
		cfg.Width, cfg.Height, cfg.Elasticity, cfg.TickPeriod)

	actorSystem := actor.NewEngine()
	simPID := spawnSimulation(actorSystem, cfg)

	// Give the actor's Started handler a moment to run before traffic
	// starts arriving for it.
	time.Sleep(simActorWarmup)

	registerRoutes(server.New(actorSystem, simPID, cfg.AskTimeout))

	addr := listenAddress()
	fmt.Printf("collide: listening on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Println("collide: server stopped:", err)
		fmt.Println("collide: shutting down actor system...")
		actorSystem.Shutdown(engineShutdownWindow)
		fmt.Println("collide: shutdown complete.")
	}
}

// spawnSimulation spawns the single SimActor that owns the simulation's
// ball pool and play area, sized and bounded per cfg.
func spawnSimulation(actorSystem *actor.Engine, cfg config.Config) *actor.PID {
	bounds := physics.Bounds{MinX: 0, MinY: 0, MaxX: cfg.Width, MaxY: cfg.Height}
	producer := simactor.NewProducer(cfg.PoolSize, bounds, cfg.Elasticity, cfg.ReflectingBorder, cfg.IsSticky)
	pid := actorSystem.Spawn(actor.NewProps(producer))
	if pid == nil {
		panic("collide: failed to spawn SimActor")
	}
	fmt.Printf("collide: SimActor running at %s\n", pid)
	return pid
}

// registerRoutes wires the health check and WebSocket control channel
// into the default HTTP mux.
func registerRoutes(wsServer *server.Server) {
	http.HandleFunc("/", server.HandleHealthCheck())
	http.HandleFunc("/health-check/", server.HandleHealthCheck())
	http.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))
}

// listenAddress resolves the TCP address to listen on from the PORT
// environment variable, falling back to defaultPort.
func listenAddress() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
		fmt.Printf("collide: PORT not set, defaulting to %s\n", port)
	}
	return ":" + port
}
