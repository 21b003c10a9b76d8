package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ipRateLimiter tracks last connection time per IP to prevent abuse
type ipRateLimiter struct {
	mu       sync.Mutex
	cooldown time.Duration
	times    map[string]time.Time
	done     chan struct{}
	once     sync.Once
}

func newIPRateLimiter(cooldown time.Duration) *ipRateLimiter {
	rl := &ipRateLimiter{
		cooldown: cooldown,
		times:    make(map[string]time.Time),
		done:     make(chan struct{}),
	}
	// Cleanup stale entries every 60s
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-rl.done:
				return
			case <-ticker.C:
				rl.sweep(time.Now())
			}
		}
	}()
	return rl
}

// allow returns true if this IP can connect, and records the attempt
func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if last, ok := rl.times[ip]; ok {
		if time.Since(last) < rl.cooldown {
			return false
		}
	}
	rl.times[ip] = time.Now()
	return true
}

// sweep forgets IPs whose cooldown ended before now
func (rl *ipRateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := now.Add(-rl.cooldown)
	for ip, t := range rl.times {
		if t.Before(cutoff) {
			delete(rl.times, ip)
		}
	}
}

func (rl *ipRateLimiter) stop() {
	rl.once.Do(func() { close(rl.done) })
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for development; tighten in production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Grid frames are repetitive digit strings and compress well
	EnableCompression: true,
}

// sendErrorAndClose sends an error message via WebSocket then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file read before the environment")
	flag.Parse()

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	srv := NewServer(cfg)
	defer srv.Close()

	log.Printf("server listening on %s (grid %dx%d, tick %v, static %s)",
		cfg.Addr, cfg.Game.Height, cfg.Game.Width, cfg.Game.TickInterval, cfg.StaticDir)
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
