package infrastructure

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/draftea/checkout-system/checkout-service/domain"
	"github.com/draftea/checkout-system/shared/logging"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var (
	ErrUnknownHost   = errors.New("no embedded host for session")
	ErrInvalidOrigin = errors.New("invalid parent origin")
	ErrHostReleased  = errors.New("embedded host released")
	errOutboundFull  = errors.New("host outbound queue full")
)

var (
	_ domain.HostMessenger    = (*hostChannel)(nil)
	_ domain.MessengerFactory = (*hostChannel)(nil)
)

const (
	hostWriteWait      = 10 * time.Second
	hostPongWait       = 60 * time.Second
	hostPingPeriod     = (hostPongWait * 9) / 10
	hostMaxMessageSize = 64 * 1024
	maxPendingFrames   = 64
)

// Frame types exchanged with the parent frame
const (
	FrameLoaded    = "frame_loaded"
	FrameCheckout  = "loaded"
	FrameComplete  = "complete"
	FrameError     = "error"
	FrameSignedOut = "signed_out"
	FrameStyles    = "styles"
)

// HostFrame is one message on the embedded host channel
type HostFrame struct {
	Type        string          `json:"type"`
	ContainerID string          `json:"container_id,omitempty"`
	Error       *HostFrameError `json:"error,omitempty"`
	Styles      domain.Styles   `json:"styles,omitempty"`
}

type HostFrameError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// HostHub keeps one websocket channel per embedded session. Frames posted before the
// parent frame connected are held and flushed on attach.
type HostHub struct {
	mu       sync.Mutex
	channels map[string]*hostChannel
}

func NewHostHub() *HostHub {
	return &HostHub{channels: map[string]*hostChannel{}}
}

// ForSession returns the messenger factory of the session, creating its channel
func (h *HostHub) ForSession(sessionID string) domain.MessengerFactory {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.channels[sessionID]
	if !ok {
		c = &hostChannel{sessionID: sessionID}
		h.channels[sessionID] = c
	}
	return c
}

// Release drops the channel of the session and closes its connection
func (h *HostHub) Release(sessionID string) {
	h.mu.Lock()
	c, ok := h.channels[sessionID]
	delete(h.channels, sessionID)
	h.mu.Unlock()

	if ok {
		c.close()
	}
}

// AllowsOrigin reports whether origin is the parent frame the session was bound to
func (h *HostHub) AllowsOrigin(sessionID, origin string) bool {
	c, err := h.channel(sessionID)
	if err != nil {
		return false
	}
	return c.allows(origin)
}

// Attach binds an upgraded connection to the session, replacing any previous one
func (h *HostHub) Attach(sessionID string, conn *websocket.Conn) error {
	c, err := h.channel(sessionID)
	if err != nil {
		return err
	}
	return c.attach(conn)
}

// Connected reports whether the parent frame of the session is attached
func (h *HostHub) Connected(sessionID string) bool {
	c, err := h.channel(sessionID)
	if err != nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link != nil
}

func (h *HostHub) channel(sessionID string) (*hostChannel, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.channels[sessionID]
	if !ok {
		return nil, ErrUnknownHost
	}
	return c, nil
}

type hostChannel struct {
	sessionID string

	mu       sync.Mutex
	origin   string
	onStyles func(domain.Styles)
	link     *hostLink
	pending  [][]byte
	closed   bool
}

type hostLink struct {
	conn     *websocket.Conn
	outbound chan []byte
	done     chan struct{}
	once     sync.Once
}

func (l *hostLink) stop() {
	l.once.Do(func() {
		close(l.done)
	})
}

// CreateMessenger binds the channel to the origin of the parent frame
func (c *hostChannel) CreateMessenger(parentOrigin string) (domain.HostMessenger, error) {
	origin, err := originOf(parentOrigin)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrHostReleased
	}
	c.origin = origin
	return c, nil
}

func originOf(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", errors.Wrapf(ErrInvalidOrigin, "%q", raw)
	}
	return u.Scheme + "://" + u.Host, nil
}

func (c *hostChannel) allows(origin string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed && c.origin != "" && c.origin == origin
}

func (c *hostChannel) ReceiveStyles(fn func(domain.Styles)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStyles = fn
}

func (c *hostChannel) PostFrameLoaded(containerID string) {
	c.send(HostFrame{Type: FrameLoaded, ContainerID: containerID})
}

func (c *hostChannel) PostLoaded() {
	c.send(HostFrame{Type: FrameCheckout})
}

func (c *hostChannel) PostComplete() {
	c.send(HostFrame{Type: FrameComplete})
}

func (c *hostChannel) PostError(err error) {
	c.send(HostFrame{
		Type:  FrameError,
		Error: &HostFrameError{Kind: domain.ErrorKind(err), Message: err.Error()},
	})
}

func (c *hostChannel) PostSignedOut() {
	c.send(HostFrame{Type: FrameSignedOut})
}

func (c *hostChannel) send(frame HostFrame) {
	data, err := json.Marshal(frame)
	if err != nil {
		slog.Error("Failed to marshal host frame",
			logging.SessionID(c.sessionID),
			logging.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if c.link == nil {
		c.hold(data)
		return
	}

	select {
	case c.link.outbound <- data:
	default:
		slog.Warn("Dropping host frame",
			logging.SessionID(c.sessionID),
			slog.String("type", frame.Type),
			logging.Error(errOutboundFull))
	}
}

// hold keeps the newest frames while no parent frame is attached
func (c *hostChannel) hold(data []byte) {
	if len(c.pending) >= maxPendingFrames {
		c.pending = c.pending[1:]
	}
	c.pending = append(c.pending, data)
}

func (c *hostChannel) attach(conn *websocket.Conn) error {
	link := &hostLink{
		conn:     conn,
		outbound: make(chan []byte, maxPendingFrames),
		done:     make(chan struct{}),
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrHostReleased
	}
	previous := c.link
	c.link = link
	for _, data := range c.pending {
		link.outbound <- data
	}
	c.pending = nil
	c.mu.Unlock()

	if previous != nil {
		previous.stop()
	}

	go c.write(link)
	go c.read(link)
	return nil
}

func (c *hostChannel) detach(link *hostLink) {
	c.mu.Lock()
	if c.link == link {
		c.link = nil
	}
	c.mu.Unlock()
	link.stop()
}

func (c *hostChannel) close() {
	c.mu.Lock()
	c.closed = true
	link := c.link
	c.link = nil
	c.pending = nil
	c.mu.Unlock()

	if link != nil {
		link.stop()
	}
}

func (c *hostChannel) write(link *hostLink) {
	ticker := time.NewTicker(hostPingPeriod)
	defer func() {
		ticker.Stop()
		_ = link.conn.Close()
	}()

	for {
		select {
		case data := <-link.outbound:
			_ = link.conn.SetWriteDeadline(time.Now().Add(hostWriteWait))
			if err := link.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Warn("Host frame write failed",
					logging.SessionID(c.sessionID),
					logging.Error(err))
				c.detach(link)
				return
			}

		case <-ticker.C:
			_ = link.conn.SetWriteDeadline(time.Now().Add(hostWriteWait))
			if err := link.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.detach(link)
				return
			}

		case <-link.done:
			_ = link.conn.SetWriteDeadline(time.Now().Add(hostWriteWait))
			_ = link.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *hostChannel) read(link *hostLink) {
	defer c.detach(link)

	link.conn.SetReadLimit(hostMaxMessageSize)
	_ = link.conn.SetReadDeadline(time.Now().Add(hostPongWait))
	link.conn.SetPongHandler(func(string) error {
		return link.conn.SetReadDeadline(time.Now().Add(hostPongWait))
	})

	for {
		_, message, err := link.conn.ReadMessage()
		if err != nil {
			return
		}
		c.receive(message)
	}
}

func (c *hostChannel) receive(message []byte) {
	var frame HostFrame
	if err := json.Unmarshal(message, &frame); err != nil {
		slog.Warn("Failed to parse host frame",
			logging.SessionID(c.sessionID),
			logging.Error(err))
		return
	}
	if frame.Type != FrameStyles || len(frame.Styles) == 0 {
		return
	}

	c.mu.Lock()
	fn := c.onStyles
	c.mu.Unlock()
	if fn != nil {
		fn(frame.Styles)
	}
}
