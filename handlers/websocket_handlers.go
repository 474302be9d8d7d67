package handlers

import (
	// Go Internal Packages
	"net/http"
	"time"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = pongWait * 9 / 10
	subscriberBuffer = 16
)

type feedMessage struct {
	Type     string    `json:"type"`
	Capacity int       `json:"capacity,omitempty"`
	Records  []FeedRow `json:"records,omitempty"`
	Record   *FeedRow  `json:"record,omitempty"`
}

// FeedRow is a transaction with its display attributes.
type FeedRow struct {
	models.Transaction
	Tone       models.Tone `json:"tone"`
	Badge      string      `json:"badge"`
	Reviewable bool        `json:"reviewable"`
}

func NewFeedRow(tx models.Transaction) FeedRow {
	return FeedRow{Transaction: tx, Tone: tx.Status.Tone(), Badge: tx.Status.Label(), Reviewable: tx.Reviewable()}
}

func feedRows(txs []models.Transaction) []FeedRow {
	rows := make([]FeedRow, len(txs))
	for i, tx := range txs {
		rows[i] = NewFeedRow(tx)
	}
	return rows
}

type WebSocketHandler struct {
	logger   *zap.Logger
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(logger *zap.Logger, hub *Hub, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		logger: logger,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

func (h *WebSocketHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/feed/ws", h.HandleConnection)
}

// HandleConnection streams the live feed to one viewer: a snapshot first,
// then one message per tick until either side goes away.
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Error upgrading connection", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, unsubscribe, ok := h.hub.Watch(subscriberBuffer)
	if !ok {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		return
	}
	defer h.hub.Leave()
	defer unsubscribe()

	feed := h.hub.Feed()

	h.logger.Info("New WebSocket connection", zap.String("remote", r.RemoteAddr), zap.Int("viewers", h.hub.Viewers()))

	snapshot := feedMessage{Type: "snapshot", Capacity: feed.Capacity(), Records: feedRows(feed.Snapshot())}
	if err = h.write(conn, snapshot); err != nil {
		h.logger.Warn("cannot send snapshot", zap.Error(err))
		return
	}

	closed := make(chan struct{})
	go h.readLoop(conn, closed)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			h.logger.Info("WebSocket connection closed", zap.String("remote", r.RemoteAddr))
			return
		case tx, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed stopped"),
					time.Now().Add(writeWait))
				return
			}
			row := NewFeedRow(tx)
			if err = h.write(conn, feedMessage{Type: "record", Record: &row}); err != nil {
				h.logger.Warn("cannot send record", zap.Error(err))
				return
			}
		case <-ping.C:
			if err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) write(conn *websocket.Conn, msg feedMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

// readLoop drains client frames so control frames are processed and a
// disconnect is noticed.
func (h *WebSocketHandler) readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
