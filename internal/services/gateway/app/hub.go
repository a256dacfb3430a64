package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const writeWait = 5 * time.Second

// Hub ritrasmette le letture live a tutti i client WebSocket collegati.
// Run è l'unico writer sulle connessioni.
type Hub struct {
	upgrader   websocket.Upgrader
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	done       chan struct{} // chiuso quando Run esce
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// la dashboard gira su un'altra origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run smista i messaggi fino alla cancellazione del context.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				_ = conn.Close()
			}
		case msg := <-h.broadcast:
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					delete(h.clients, conn)
					_ = conn.Close()
				}
			}
		case <-ctx.Done():
			for conn := range h.clients {
				_ = conn.Close()
			}
			h.clients = map[*websocket.Conn]bool{}
			close(h.done)
			return
		}
	}
}

// Broadcast accoda un messaggio per tutti i client; se il canale è pieno il
// messaggio viene scartato (il feed live non deve bloccare MQTT).
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn("ws broadcast queue full, dropping message")
	}
}

// ServeWS gestisce l'upgrade e tiene la connessione registrata finché il
// client non chiude.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("ws upgrade: %v", err)
		return
	}
	select {
	case h.register <- conn:
	case <-h.done:
		_ = conn.Close()
		return
	}

	// I client non inviano dati: il read loop serve solo a vedere la close.
	go func() {
		defer func() {
			select {
			case h.unregister <- conn:
			case <-h.done:
			}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
