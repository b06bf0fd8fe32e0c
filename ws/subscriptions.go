package ws

import (
	"context"
	"fmt"
)

// Channel identifies a market stream feed.
type Channel string

const (
	ChannelPrice     Channel = "price"
	ChannelDepthBook Channel = "depth_book"
	ChannelOrder     Channel = "order"
	ChannelPosition  Channel = "position"
	ChannelBalance   Channel = "balance"
	ChannelTrade     Channel = "trade"
)

// Subscription names a channel and, for symbol-scoped channels, the
// symbol it covers.
type Subscription struct {
	Channel Channel `json:"channel"`
	Symbol  string  `json:"symbol,omitempty"`
}

type subscribeFrame struct {
	Subscribe Subscription `json:"subscribe"`
}

// Subscribe requests a feed on the market stream. The frame is
// fire-and-forget: the server sends no acknowledgement and updates
// simply start arriving on the message handler. Leave symbol empty for
// account-scoped channels.
func (c *Client) Subscribe(ctx context.Context, channel Channel, symbol string) error {
	frame := subscribeFrame{Subscribe: Subscription{Channel: channel, Symbol: symbol}}
	if err := c.writeJSON(ctx, &c.market, frame); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	return nil
}

// ===== Type-safe subscription methods =====

// SubscribePrice subscribes to price updates for a symbol.
func (c *Client) SubscribePrice(ctx context.Context, symbol string) error {
	return c.Subscribe(ctx, ChannelPrice, symbol)
}

// SubscribeDepthBook subscribes to order book updates for a symbol.
func (c *Client) SubscribeDepthBook(ctx context.Context, symbol string) error {
	return c.Subscribe(ctx, ChannelDepthBook, symbol)
}

// SubscribeTrades subscribes to trade prints for a symbol.
func (c *Client) SubscribeTrades(ctx context.Context, symbol string) error {
	return c.Subscribe(ctx, ChannelTrade, symbol)
}

// SubscribeOrders subscribes to the account's order events. Requires the
// market auth frame to have been sent.
func (c *Client) SubscribeOrders(ctx context.Context) error {
	return c.Subscribe(ctx, ChannelOrder, "")
}

// SubscribePositions subscribes to the account's position updates.
// Requires the market auth frame to have been sent.
func (c *Client) SubscribePositions(ctx context.Context) error {
	return c.Subscribe(ctx, ChannelPosition, "")
}

// SubscribeBalance subscribes to the account's balance updates. Requires
// the market auth frame to have been sent.
func (c *Client) SubscribeBalance(ctx context.Context) error {
	return c.Subscribe(ctx, ChannelBalance, "")
}
