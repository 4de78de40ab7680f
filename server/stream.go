package server

import (
	"encoding/json"
	"github.com/clambin/ledsweep/strip"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"net/http"
	"time"
)

const (
	clientBufferSize = 16
	writeWait        = 10 * time.Second
)

// Show sends the frame to all websocket clients. Clients that fall behind miss frames.
func (server *Server) Show(frame strip.Frame) error {
	message, err := json.Marshal(makeFrame(frame))
	if err != nil {
		return err
	}

	server.lock.Lock()
	defer server.lock.Unlock()
	for conn, send := range server.clients {
		select {
		case send <- message:
		default:
			log.WithField("client", conn.RemoteAddr()).Debug("frame dropped")
		}
	}
	return nil
}

// Clients returns the number of connected websocket clients
func (server *Server) Clients() int {
	server.lock.Lock()
	defer server.lock.Unlock()
	return len(server.clients)
}

func (server *Server) handleStream(w http.ResponseWriter, req *http.Request) {
	conn, err := server.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.WithError(err).Warning("failed to upgrade connection")
		return
	}

	send := make(chan []byte, clientBufferSize)
	server.lock.Lock()
	server.clients[conn] = send
	server.lock.Unlock()
	log.WithField("client", conn.RemoteAddr()).Debug("/stream")

	go server.write(conn, send)

	// we don't expect any messages. read until the client goes away.
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	server.removeClient(conn)
}

func (server *Server) write(conn *websocket.Conn, send chan []byte) {
	for message := range send {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.WithError(err).WithField("client", conn.RemoteAddr()).Debug("failed to send frame")
			break
		}
	}
	_ = conn.Close()
}

func (server *Server) removeClient(conn *websocket.Conn) {
	server.lock.Lock()
	defer server.lock.Unlock()
	if send, ok := server.clients[conn]; ok {
		delete(server.clients, conn)
		close(send)
	}
}

func (server *Server) closeClients() {
	server.lock.Lock()
	defer server.lock.Unlock()
	for conn, send := range server.clients {
		delete(server.clients, conn)
		close(send)
	}
}
