package main

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server owns everything shared between sessions: the connection registry,
// the leaderboard and the rate limiter.
type Server struct {
	cfg      Config
	conns    *ConnManager
	board    *Leaderboard
	limiter  *ipRateLimiter
	upgrader websocket.Upgrader
}

// NewServer wires a server for cfg. Call Close to stop its background
// sweeper.
func NewServer(cfg Config) *Server {
	return &Server{
		cfg:      cfg,
		conns:    NewConnManager(),
		board:    NewLeaderboard(cfg.LeaderboardSize),
		limiter:  newIPRateLimiter(cfg.IPCooldown),
		upgrader: upgrader,
	}
}

// Handler routes the WebSocket endpoint and the static client files.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(WebSocketPath, s.serveWS)
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.StaticDir)))
	return mux
}

// Close stops background work and drops every live connection. Each
// dropped connection ends its read loop, which cancels its session.
func (s *Server) Close() {
	s.limiter.stop()
	for _, c := range s.conns.Snapshot() {
		c.Close()
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	// Extract client IP (handle X-Forwarded-For for reverse proxies)
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip, _, _ = net.SplitHostPort(r.RemoteAddr)
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	// Check limits after upgrade so client can receive error messages
	if s.conns.Count() >= s.cfg.MaxPlayers {
		sendErrorAndClose(ws, "Server full. Please try again later.")
		return
	}
	if !s.limiter.allow(ip) {
		sendErrorAndClose(ws, "Too many connections. Please wait a moment.")
		return
	}

	conn := NewConn(ws)
	s.conns.Add(conn)
	log.Printf("player connected: %s", conn.ID)

	_ = conn.Send(WelcomeMsg{
		Type:   MsgWelcome,
		ID:     conn.ID,
		Height: s.cfg.Game.Height,
		Width:  s.cfg.Game.Width,
		TickMS: s.cfg.Game.TickInterval.Milliseconds(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewGameLoop(conn.ID, s.cfg.Game, conn, s.board)
	go func() {
		if err := loop.Run(ctx); err != nil {
			log.Printf("session stopped: %v", err)
			conn.Close()
		}
	}()

	onDisconnect := func(c *Conn) {
		cancel()
		s.conns.Remove(c.ID)
		log.Printf("player disconnected: %s", c.ID)
	}

	// Blocking read loop, runs until the client disconnects
	conn.ReadLoop(loop, onDisconnect)
}
