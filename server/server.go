package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// ConfigEditor reads and replaces the playfield configuration
type ConfigEditor interface {
	GameConfigStore
	Save(ctx context.Context, cfg GameConfig) error
}

// Routes holds what the HTTP surface needs
type Routes struct {
	Metrics *LoopMetrics
	Config  ConfigEditor
	Auth    *Auth
	Feed    *FeedHub
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// SetupRoutes configures HTTP routes
func SetupRoutes(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		payload := rt.Metrics.Snapshot()
		payload["feed_clients"] = rt.Feed.ClientCount()
		writeJSON(w, http.StatusOK, payload)
	})

	mux.HandleFunc("GET /admin/config", func(w http.ResponseWriter, r *http.Request) {
		cfg, err := rt.Config.Find(r.Context())
		if err != nil {
			Log.Errorw("read game config", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorMsg{Msg: "database error"})
			return
		}
		writeJSON(w, http.StatusOK, ConfigMsg{DisplayNumber: DisplayNumberOf(cfg)})
	})

	mux.HandleFunc("PUT /admin/config", func(w http.ResponseWriter, r *http.Request) {
		subject, err := rt.Auth.bearerSubject(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorMsg{Msg: "unauthorized"})
			return
		}
		var body ConfigMsg
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorMsg{Msg: "invalid json"})
			return
		}
		if body.DisplayNumber < 1 {
			writeJSON(w, http.StatusBadRequest, ErrorMsg{Msg: "displayNumber must be at least 1"})
			return
		}
		if err := rt.Config.Save(r.Context(), GameConfig{DisplayNumber: body.DisplayNumber}); err != nil {
			Log.Errorw("save game config", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorMsg{Msg: "database error"})
			return
		}
		Log.Infow("game config updated", "by", subject, "displayNumber", body.DisplayNumber)
		writeJSON(w, http.StatusOK, body)
	})

	// Collision event feed
	mux.HandleFunc("GET /feed", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			Log.Debugw("feed upgrade failed", "err", err)
			return
		}
		client := NewFeedClient(rt.Feed, conn)
		if !rt.Feed.register(client) {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many subscribers"),
				time.Now().Add(writeWait))
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	})

	return mux
}
