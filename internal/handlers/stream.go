package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
	"github.com/Chethumuniraju/stockfolio/internal/search"
)

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	sendBuffer     = 32
)

// clientMessage is what a connected client can send:
//
//	{"type":"watch","symbols":["AAPL","MSFT"]}   replace the watched set
//	{"type":"search","query":"AAP"}              debounced symbol search
type clientMessage struct {
	Type    string   `json:"type"`
	Symbols []string `json:"symbols,omitempty"`
	Query   string   `json:"query,omitempty"`
}

// StreamHandler upgrades /ws connections and serves two live feeds per
// connection: quote pushes for the client's watched symbols, and debounced
// search. Each connection owns its debouncer, so one client's typing never
// throttles another's.
type StreamHandler struct {
	logger      *common.Logger
	resolver    *quotes.Resolver
	searchAPI   SearchAPI
	searchDelay time.Duration
	upgrader    websocket.Upgrader
}

// NewStreamHandler creates a new stream handler. A non-positive searchDelay
// falls back to the default debounce window.
func NewStreamHandler(logger *common.Logger, resolver *quotes.Resolver, searchAPI SearchAPI, searchDelay time.Duration) *StreamHandler {
	return &StreamHandler{
		logger:      logger,
		resolver:    resolver,
		searchAPI:   searchAPI,
		searchDelay: searchDelay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles GET /ws.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	c := &streamConn{
		handler: h,
		conn:    conn,
		send:    make(chan interface{}, sendBuffer),
		watched: make(map[string]bool),
	}
	c.debouncer = search.NewDebouncer(h.searchDelay, c.dispatchSearch, c.clearSearch)
	c.unsubscribe = h.resolver.Subscribe(c.onQuote)

	h.logger.Info().Str("remote", r.RemoteAddr).Msg("Stream client connected")

	go c.writePump()
	c.readPump()
}

// streamConn is one websocket client.
type streamConn struct {
	handler     *StreamHandler
	conn        *websocket.Conn
	send        chan interface{}
	debouncer   *search.Debouncer
	unsubscribe func()

	mu      sync.Mutex
	watched map[string]bool
	closed  bool
}

// enqueue drops the message if the client can't keep up; quote pushes are
// periodic so a dropped frame heals on the next update. The send happens
// under the mutex so it can never race the close in readPump's teardown.
func (c *streamConn) enqueue(msg interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

// onQuote forwards freshly fetched quotes the client watches.
func (c *streamConn) onQuote(q models.Quote) {
	c.mu.Lock()
	watched := c.watched[quotes.Key(q.Symbol)]
	c.mu.Unlock()
	if !watched {
		return
	}

	c.enqueue(map[string]interface{}{
		"type":  "quote",
		"quote": q,
		"display": map[string]string{
			"close":         common.FormatCurrency(q.Close),
			"percentChange": common.FormatSignedPct(q.PercentChange),
		},
	})
}

// dispatchSearch runs after the debounce window on a timer goroutine. The
// staleness check straddles the backend call: a query superseded while the
// request was in flight is dropped, never rendered.
func (c *streamConn) dispatchSearch(query string, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	results, err := c.handler.searchAPI.SearchStocks(ctx, query)
	if c.debouncer.Stale(seq) {
		return
	}
	if err != nil {
		c.handler.logger.Warn().Str("query", query).Err(err).Msg("Stream search failed")
		c.enqueue(map[string]interface{}{
			"type":  "searchError",
			"query": query,
			"error": err.Error(),
		})
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	c.enqueue(map[string]interface{}{
		"type":  "searchResults",
		"query": query,
		"data":  results,
	})
}

func (c *streamConn) clearSearch() {
	c.enqueue(map[string]string{"type": "searchCleared"})
}

// readPump handles incoming messages and acts as the connection watchdog.
func (c *streamConn) readPump() {
	defer func() {
		c.debouncer.Stop()
		c.unsubscribe()
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		c.conn.Close()
		c.handler.logger.Info().Msg("Stream client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg clientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.handler.logger.Warn().Err(err).Msg("WebSocket read error")
			}
			return
		}
		c.handleMessage(msg)
	}
}

func (c *streamConn) handleMessage(msg clientMessage) {
	switch msg.Type {
	case "watch":
		watched := make(map[string]bool, len(msg.Symbols))
		for _, s := range msg.Symbols {
			if key := quotes.Key(s); key != "" {
				watched[key] = true
			}
		}
		c.mu.Lock()
		c.watched = watched
		c.mu.Unlock()

		// Warm the cache so the client gets current prices immediately.
		go func(symbols []string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			for _, q := range c.handler.resolver.Resolve(ctx, symbols) {
				c.onQuote(q)
			}
		}(msg.Symbols)

	case "search":
		c.debouncer.QueryChanged(msg.Query)

	default:
		c.enqueue(map[string]string{
			"type":  "error",
			"error": "unknown message type: " + strings.TrimSpace(msg.Type),
		})
	}
}

// writePump sends queued messages and keeps the connection alive with pings.
func (c *streamConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
