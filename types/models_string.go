package types

import (
	"fmt"
	"strings"
)

// String implements fmt.Stringer for Order
func (o Order) String() string {
	return fmt.Sprintf(
		"Order{\n"+
			"  Id:           %d\n"+
			"  ClOrdId:      %s\n"+
			"  Symbol:       %s\n"+
			"  Side:         %s\n"+
			"  OrderType:    %s\n"+
			"  Qty:          %s\n"+
			"  Price:        %s\n"+
			"  TimeInForce:  %s\n"+
			"  ReduceOnly:   %v\n"+
			"  Status:       %s\n"+
			"  FillQty:      %s\n"+
			"  FillAvgPrice: %s\n"+
			"  Leverage:     %s\n"+
			"  Margin:       %s\n"+
			"  PositionId:   %d\n"+
			"  CreatedAt:    %s\n"+
			"  UpdatedAt:    %s\n"+
			"}",
		o.Id, o.ClOrdId, o.Symbol, o.Side, o.OrderType, o.Qty, o.Price,
		o.TimeInForce, o.ReduceOnly, o.Status, o.FillQty, o.FillAvgPrice,
		o.Leverage, o.Margin, o.PositionId, o.CreatedAt, o.UpdatedAt,
	)
}

// String implements fmt.Stringer for Trade
func (t Trade) String() string {
	return fmt.Sprintf(
		"Trade{\n"+
			"  Id:        %d\n"+
			"  Symbol:    %s\n"+
			"  Side:      %s\n"+
			"  Qty:       %s\n"+
			"  Price:     %s\n"+
			"  Timestamp: %d\n"+
			"  OrderId:   %d\n"+
			"}",
		t.Id, t.Symbol, t.Side, t.Qty, t.Price, t.Timestamp, t.OrderId,
	)
}

// String implements fmt.Stringer for Position
func (p Position) String() string {
	return fmt.Sprintf(
		"Position{\n"+
			"  Id:            %d\n"+
			"  Symbol:        %s\n"+
			"  Qty:           %s\n"+
			"  EntryPrice:    %s\n"+
			"  EntryValue:    %s\n"+
			"  Leverage:      %d\n"+
			"  MarginMode:    %s\n"+
			"  InitialMargin: %s\n"+
			"  RealizedPnl:   %s\n"+
			"  Status:        %s\n"+
			"  MarginAsset:   %s\n"+
			"}",
		p.Id, p.Symbol, p.Qty, p.EntryPrice, p.EntryValue, p.Leverage,
		p.MarginMode, p.InitialMargin, p.RealizedPnl, p.Status, p.MarginAsset,
	)
}

// String implements fmt.Stringer for PositionConfig
func (p PositionConfig) String() string {
	return fmt.Sprintf(
		"PositionConfig{\n"+
			"  Symbol:      %s\n"+
			"  Leverage:    %d\n"+
			"  MarginMode:  %s\n"+
			"  MaxLeverage: %d\n"+
			"  MinLeverage: %d\n"+
			"}",
		p.Symbol, p.Leverage, p.MarginMode, p.MaxLeverage, p.MinLeverage,
	)
}

// String implements fmt.Stringer for Balance
func (b Balance) String() string {
	return fmt.Sprintf(
		"Balance{\n"+
			"  Token:       %s\n"+
			"  Free:        %s\n"+
			"  Locked:      %s\n"+
			"  Total:       %s\n"+
			"  Occupied:    %s\n"+
			"  AccountType: %s\n"+
			"  Kind:        %s\n"+
			"  IsEnabled:   %v\n"+
			"}",
		b.Token, b.Free, b.Locked, b.Total, b.Occupied, b.AccountType,
		b.Kind, b.IsEnabled,
	)
}

// String implements fmt.Stringer for SymbolInfo
func (s SymbolInfo) String() string {
	return fmt.Sprintf(
		"SymbolInfo{\n"+
			"  Symbol:   %s\n"+
			"  Base:     %s\n"+
			"  Quote:    %s\n"+
			"  Status:   %s\n"+
			"  MinQty:   %s\n"+
			"  MaxQty:   %s\n"+
			"  TickSize: %s\n"+
			"  StepSize: %s\n"+
			"}",
		s.Symbol, s.Base, s.Quote, s.Status, s.MinQty, s.MaxQty,
		s.TickSize, s.StepSize,
	)
}

// String implements fmt.Stringer for SymbolMarket
func (s SymbolMarket) String() string {
	return fmt.Sprintf(
		"SymbolMarket{\n"+
			"  Symbol:           %s\n"+
			"  LastPrice:        %s\n"+
			"  MarkPrice:        %s\n"+
			"  IndexPrice:       %s\n"+
			"  Volume24h:        %s\n"+
			"  Turnover24h:      %s\n"+
			"  High24h:          %s\n"+
			"  Low24h:           %s\n"+
			"  Change24h:        %s\n"+
			"  ChangePercent24h: %s\n"+
			"}",
		s.Symbol, s.LastPrice, s.MarkPrice, s.IndexPrice, s.Volume24h,
		s.Turnover24h, s.High24h, s.Low24h, s.Change24h, s.ChangePercent24h,
	)
}

// String implements fmt.Stringer for SymbolPrice
func (s SymbolPrice) String() string {
	return fmt.Sprintf(
		"SymbolPrice{\n"+
			"  Symbol:     %s\n"+
			"  LastPrice:  %s\n"+
			"  MarkPrice:  %s\n"+
			"  IndexPrice: %s\n"+
			"  MidPrice:   %s\n"+
			"  Spread:     [%s]\n"+
			"  Time:       %s\n"+
			"}",
		s.Symbol, s.LastPrice, s.MarkPrice, s.IndexPrice, s.MidPrice,
		strings.Join(s.Spread, ", "), s.Time,
	)
}

// String implements fmt.Stringer for DepthBook
func (d DepthBook) String() string {
	return fmt.Sprintf(
		"DepthBook{\n"+
			"  Symbol:    %s\n"+
			"  Timestamp: %d\n"+
			"  Asks:      %s\n"+
			"  Bids:      %s\n"+
			"}",
		d.Symbol, d.Timestamp, formatPriceLevels(d.Asks), formatPriceLevels(d.Bids),
	)
}

// String implements fmt.Stringer for RecentTrade
func (r RecentTrade) String() string {
	return fmt.Sprintf(
		"RecentTrade{\n"+
			"  Id:        %d\n"+
			"  Symbol:    %s\n"+
			"  Side:      %s\n"+
			"  Qty:       %s\n"+
			"  Price:     %s\n"+
			"  Timestamp: %d\n"+
			"}",
		r.Id, r.Symbol, r.Side, r.Qty, r.Price, r.Timestamp,
	)
}

// String implements fmt.Stringer for FundingRates
func (f FundingRates) String() string {
	return fmt.Sprintf(
		"FundingRates{\n"+
			"  Symbol:               %s\n"+
			"  FundingRate:          %s\n"+
			"  NextFundingTime:      %d\n"+
			"  PredictedFundingRate: %s\n"+
			"}",
		f.Symbol, f.FundingRate, f.NextFundingTime, f.PredictedFundingRate,
	)
}

// String implements fmt.Stringer for ServerTime
func (s ServerTime) String() string {
	return fmt.Sprintf(
		"ServerTime{\n"+
			"  ServerTime: %d\n"+
			"  Timestamp:  %d\n"+
			"}",
		s.ServerTime, s.Timestamp,
	)
}

// String implements fmt.Stringer for Kline
func (k Kline) String() string {
	return fmt.Sprintf(
		"Kline{\n"+
			"  Time:   %d\n"+
			"  Open:   %s\n"+
			"  High:   %s\n"+
			"  Low:    %s\n"+
			"  Close:  %s\n"+
			"  Volume: %s\n"+
			"  Symbol: %s\n"+
			"}",
		k.Time, k.Open, k.High, k.Low, k.Close, k.Volume, k.Symbol,
	)
}

// String implements fmt.Stringer for Health
func (h Health) String() string {
	return fmt.Sprintf(
		"Health{\n"+
			"  Status:    %s\n"+
			"  Timestamp: %d\n"+
			"}",
		h.Status, h.Timestamp,
	)
}

// Helper functions

func formatPriceLevels(levels []PriceLevel) string {
	if len(levels) == 0 {
		return "[]"
	}
	var buf strings.Builder
	buf.WriteString("[\n")
	for i, level := range levels {
		buf.WriteString(fmt.Sprintf("    %s", level))
		if i < len(levels)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("  ]")
	return buf.String()
}
