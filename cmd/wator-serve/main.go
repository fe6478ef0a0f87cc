package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"wa-tor/internal/core"
	"wa-tor/internal/sims/wator"

	"github.com/gorilla/websocket"
)

// Frame is the JSON snapshot broadcast to subscribers once per tick.
type Frame struct {
	Tick   int   `json:"tick"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Cells  []int `json:"cells"`
	Fish   int   `json:"fish"`
	Sharks int   `json:"sharks"`
}

type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if h.conns[conn] {
		delete(h.conns, conn)
		conn.Close()
	}
	h.mu.Unlock()
}

// broadcast sends the frame to every subscriber, dropping connections that
// fail to accept the write.
func (h *hub) broadcast(frame Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(frame); err != nil {
			log.Printf("dropping subscriber %s: %v", conn.RemoteAddr(), err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

func snapshot(world *wator.World, tick int) Frame {
	cells := world.Cells()
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = int(c)
	}
	fish, sharks := world.Census()
	size := world.Size()
	return Frame{
		Tick:   tick,
		Width:  size.W,
		Height: size.H,
		Cells:  out,
		Fish:   fish,
		Sharks: sharks,
	}
}

func main() {
	addr := flag.String("addr", ":8089", "listen address")
	tps := flag.Int("tps", 10, "simulation ticks per second")
	seed := flag.Int64("seed", 0, "seed for seeding the world (0 uses the configured seed)")
	opts := map[string]string{}
	flag.Func("opt", "simulation option as key=value (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		opts[key] = value
		return nil
	})
	flag.Parse()

	cfg := wator.FromMap(opts)
	world, err := wator.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(*seed)

	subscribers := newHub()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("failed to upgrade connection: %v", err)
			return
		}
		subscribers.add(conn)
		log.Printf("subscriber connected from %s", conn.RemoteAddr())
		// Drain (and discard) client messages so closes are noticed.
		go func() {
			defer subscribers.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					log.Printf("subscriber %s disconnected: %v", conn.RemoteAddr(), err)
					return
				}
			}
		}()
	})

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// The snapshot for a tick is captured before the tick runs, matching
	// the recorded-history semantics of the headless driver.
	go func() {
		step := core.NewFixedStep(*tps)
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		tick := 0
		for range ticker.C {
			if !step.ShouldStep() {
				continue
			}
			subscribers.broadcast(snapshot(world, tick))
			world.Step()
			tick++
		}
	}()

	log.Printf("serving wa-tor snapshots on %s (tps=%d)", *addr, *tps)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
