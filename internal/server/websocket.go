package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsMaxMessage = 64 * 1024
)

// handleWebsocket recomputes the scenario for every JSON form the client sends.
// Each reply is either a ScenarioResult or an errorResponse; the connection stays open on bad input.
// Every message spends a token from the client's rate limit bucket, the same one the HTTP API uses.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsMaxMessage)

	ip := clientIP(r)
	log := s.logger.WithField("client", ip)
	log.Debug("websocket connected")

	name := scenarioName(r)
	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.WithError(err).Debug("websocket read ended")
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var reply any
		if s.limiter != nil && !s.limiter.Allow(ip) {
			reply = errorResponse{Error: "rate limit exceeded"}
		} else if form, err := s.decodeForm(data); err != nil {
			reply = errorResponse{Error: err.Error()}
		} else if result, err := s.simulate(r, name, form); err != nil {
			reply = errorResponse{Error: err.Error()}
		} else {
			reply = result
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}
