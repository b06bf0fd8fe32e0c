// Package ws provides the realtime client for the StandX websocket APIs:
// a market data stream and an order entry stream, held on two
// independent connections.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/standx/go-standx/auth"
	"github.com/standx/go-standx/constants"
)

var (
	// ErrNotConnected reports a frame sent on a stream that is not open.
	ErrNotConnected = errors.New("websocket not connected")
	// ErrMissingCredentials reports a signed command attempted without an
	// API secret.
	ErrMissingCredentials = errors.New("api credentials not configured")
)

// Stream identifies which connection a message or close event belongs to.
type Stream string

const (
	// StreamMarket is the public market data connection.
	StreamMarket Stream = "market"
	// StreamOrder is the order entry connection.
	StreamOrder Stream = "order"
)

type Config struct {
	// MarketUrl is the market data stream endpoint.
	// If none is provided, the mainnet url will be used.
	MarketUrl string
	// OrderUrl is the order entry stream endpoint.
	// If none is provided, the mainnet url will be used.
	OrderUrl string
	// Token is the bearer session credential. Optional: public market
	// channels work without it, private channels and the order stream
	// login require it.
	Token string
	// ApiSecret signs order commands on the order stream. Independent of
	// the wallet-derived session credentials.
	ApiSecret string
	// SessionId correlates order commands with their stream responses.
	// A random id is generated when none is provided.
	SessionId string
	// Streams narrows the market auth frame to the given subscriptions.
	Streams []Subscription
	// OnMessage receives every decoded frame together with the stream it
	// arrived on.
	OnMessage func(message json.RawMessage, stream Stream)
	// OnError receives malformed frames and write failures that do not
	// terminate a stream.
	OnError func(err error)
	// OnClose fires once when a stream's receive loop ends. err is nil
	// when the stream closed cleanly. The client never reconnects on its
	// own: to resume, call the connect method again.
	OnClose func(stream Stream, err error)
}

// Client holds the two websocket connections. Both are optional: connect
// only the streams you need.
type Client struct {
	marketUrl string
	orderUrl  string
	token     string
	signer    *auth.HMACSigner
	sessionId string
	streams   []Subscription

	onMessage func(json.RawMessage, Stream)
	onError   func(error)
	onClose   func(Stream, error)

	market streamConn
	order  streamConn
}

// streamConn is the per-connection state. Each connection serializes its
// writes behind its own lock so the market and order streams never block
// each other.
type streamConn struct {
	stream Stream

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
	wg     sync.WaitGroup

	writeMu sync.Mutex
}

// New creates a new client instance with the
// provided configuration.
func New(c Config) *Client {
	marketUrl := c.MarketUrl
	orderUrl := c.OrderUrl
	sessionId := c.SessionId

	if marketUrl == "" {
		marketUrl = constants.MARKET_STREAM_URL
	}
	if orderUrl == "" {
		orderUrl = constants.ORDER_STREAM_URL
	}
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	var signer *auth.HMACSigner
	if c.ApiSecret != "" {
		signer = auth.NewHMACSigner(c.ApiSecret)
	}

	return &Client{
		marketUrl: marketUrl,
		orderUrl:  orderUrl,
		token:     c.Token,
		signer:    signer,
		sessionId: sessionId,
		streams:   c.Streams,
		onMessage: c.OnMessage,
		onError:   c.OnError,
		onClose:   c.OnClose,
		market:    streamConn{stream: StreamMarket},
		order:     streamConn{stream: StreamOrder},
	}
}

// SessionId returns the session id carried on order stream commands. It
// can be shared with the REST client so order events on the stream
// correlate with orders placed over HTTP.
func (c *Client) SessionId() string {
	return c.sessionId
}

// ConnectMarket dials the market data stream and starts its receive
// loop. When a token is configured an auth frame is sent first; it is
// fire-and-forget, so subscriptions may follow immediately without
// waiting for an acknowledgement.
func (c *Client) ConnectMarket(ctx context.Context) error {
	if err := c.dial(ctx, &c.market, c.marketUrl); err != nil {
		return err
	}

	if c.token != "" {
		frame := marketAuthFrame{Auth: marketAuth{Token: c.token, Streams: c.streams}}
		if err := c.writeJSON(ctx, &c.market, frame); err != nil {
			c.CloseMarket()
			return fmt.Errorf("market auth: %w", err)
		}
	}

	c.startReading(&c.market)
	return nil
}

// ConnectOrder dials the order entry stream and starts its receive loop.
// When a token is configured a login command is sent first.
func (c *Client) ConnectOrder(ctx context.Context) error {
	if err := c.dial(ctx, &c.order, c.orderUrl); err != nil {
		return err
	}

	if c.token != "" {
		params, err := json.Marshal(loginParams{Token: c.token})
		if err != nil {
			c.CloseOrder()
			return fmt.Errorf("marshal login params: %w", err)
		}

		frame := orderFrame{
			SessionId: c.sessionId,
			RequestId: uuid.NewString(),
			Method:    "auth:login",
			Params:    string(params),
		}
		if err := c.writeJSON(ctx, &c.order, frame); err != nil {
			c.CloseOrder()
			return fmt.Errorf("order auth: %w", err)
		}
	}

	c.startReading(&c.order)
	return nil
}

// CloseMarket closes the market data stream and waits for its receive
// loop to end. Safe to call on a stream that never connected.
func (c *Client) CloseMarket() {
	c.closeStream(&c.market)
}

// CloseOrder closes the order entry stream and waits for its receive
// loop to end.
func (c *Client) CloseOrder() {
	c.closeStream(&c.order)
}

// Close closes both streams.
func (c *Client) Close() {
	c.CloseMarket()
	c.CloseOrder()
}

type marketAuth struct {
	Token   string         `json:"token"`
	Streams []Subscription `json:"streams,omitempty"`
}

type marketAuthFrame struct {
	Auth marketAuth `json:"auth"`
}

func (c *Client) dial(ctx context.Context, sc *streamConn, url string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.conn != nil {
		return fmt.Errorf("%s stream already connected", sc.stream)
	}

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s stream: %w", sc.stream, err)
	}

	sc.conn = conn
	log.Debug().Str("stream", string(sc.stream)).Str("url", url).Msg("websocket connected")
	return nil
}

func (c *Client) startReading(sc *streamConn) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.conn == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sc.cancel = cancel

	sc.wg.Add(1)
	go c.readLoop(ctx, sc, sc.conn)
}

// readLoop handles incoming messages until the connection dies or is
// closed locally.
func (c *Client) readLoop(ctx context.Context, sc *streamConn, conn *websocket.Conn) {
	defer sc.wg.Done()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Normal closure or local shutdown - exit gracefully
			if errors.Is(err, context.Canceled) ||
				errors.Is(err, net.ErrClosed) ||
				websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				err = nil
			} else {
				log.Warn().Err(err).Str("stream", string(sc.stream)).Msg("websocket read error")
			}
			c.finish(sc, conn, err)
			return
		}

		c.handleFrame(sc, data)
	}
}

// finish clears the connection so the caller can connect again, then
// reports the closure.
func (c *Client) finish(sc *streamConn, conn *websocket.Conn, err error) {
	sc.mu.Lock()
	if sc.conn == conn {
		sc.conn = nil
		sc.cancel = nil
	}
	sc.mu.Unlock()

	if c.onClose != nil {
		c.onClose(sc.stream, err)
	}
}

// handleFrame routes one inbound frame. The market stream's liveness
// probe is a bare "ping" text frame answered with "pong"; it is checked
// before any JSON parsing and never forwarded.
func (c *Client) handleFrame(sc *streamConn, data []byte) {
	if sc.stream == StreamMarket && string(data) == "ping" {
		if err := c.write(context.Background(), sc, []byte("pong")); err != nil {
			c.reportError(fmt.Errorf("market stream pong: %w", err))
		}
		return
	}

	if !json.Valid(data) {
		c.reportError(fmt.Errorf("%s stream: invalid frame: %q", sc.stream, data))
		return
	}

	if c.onMessage != nil {
		c.onMessage(json.RawMessage(data), sc.stream)
	}
}

func (c *Client) reportError(err error) {
	if c.onError != nil {
		c.onError(err)
		return
	}
	log.Warn().Err(err).Msg("websocket error")
}

func (c *Client) closeStream(sc *streamConn) {
	sc.mu.Lock()
	conn := sc.conn
	cancel := sc.cancel
	sc.conn = nil
	sc.cancel = nil
	sc.mu.Unlock()

	if conn == nil {
		return
	}
	if cancel != nil {
		cancel()
	}
	conn.Close(websocket.StatusNormalClosure, "closing")

	sc.wg.Wait()
}

func (c *Client) writeJSON(ctx context.Context, sc *streamConn, frame any) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal %s frame: %w", sc.stream, err)
	}
	return c.write(ctx, sc, payload)
}

func (c *Client) write(ctx context.Context, sc *streamConn, payload []byte) error {
	sc.mu.Lock()
	conn := sc.conn
	sc.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("%s stream: %w", sc.stream, ErrNotConnected)
	}

	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
