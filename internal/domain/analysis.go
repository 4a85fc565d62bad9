package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyValuationPoint is the portfolio value and cost on one day, in USD.
type DailyValuationPoint struct {
	Date        time.Time `json:"date"`
	TotalValue  float64   `json:"totalValue"`
	TotalCost   float64   `json:"totalCost"`
	LiquidValue float64   `json:"liquidValue"`
	LiquidCost  float64   `json:"liquidCost"`
	StockValue  float64   `json:"stockValue"`
	CryptoValue float64   `json:"cryptoValue"`
	CashValue   float64   `json:"cashValue"`
}

type Return struct {
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type Drawdown struct {
	Percent float64    `json:"percent"`
	Date    *time.Time `json:"date,omitempty"`
}

type DayReturn struct {
	Date    time.Time `json:"date"`
	Percent float64   `json:"percent"`
}

type AssetPerformance struct {
	AssetID    uuid.UUID `json:"assetID"`
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Type       AssetType `json:"type"`
	StartPrice Money     `json:"startPrice"`
	EndPrice   Money     `json:"endPrice"`
	Percent    float64   `json:"percent"`
}

type MonthlyPnL struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type PortfolioAnalysis struct {
	Range     AnalysisRange `json:"range"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`

	// TotalReturn is relative to the cost basis at the end of the window.
	TotalReturn Return `json:"totalReturn"`
	// PeriodReturn is the change in value between the first and last day.
	PeriodReturn Return `json:"periodReturn"`

	MaxDrawdown       Drawdown          `json:"maxDrawdown"`
	SharpeRatio       float64           `json:"sharpeRatio"`
	Volatility        float64           `json:"volatility"`
	BestDay           *DayReturn        `json:"bestDay"`
	WorstDay          *DayReturn        `json:"worstDay"`
	BestAsset         *AssetPerformance `json:"bestAsset"`
	WorstAsset        *AssetPerformance `json:"worstAsset"`
	LongestWinStreak  int               `json:"longestWinStreak"`
	LongestLossStreak int               `json:"longestLossStreak"`

	Sparkline        []float64             `json:"sparkline"`
	History          []DailyValuationPoint `json:"history"`
	MonthlyPnL       []MonthlyPnL          `json:"monthlyPnL"`
	AssetPerformance []AssetPerformance    `json:"assetPerformance"`
}

// EmptyPortfolioAnalysis is the zero result, with empty (not nil) slices.
func EmptyPortfolioAnalysis(r AnalysisRange, w Window) *PortfolioAnalysis {
	return &PortfolioAnalysis{
		Range:            r,
		StartDate:        w.Start,
		EndDate:          w.End,
		Sparkline:        []float64{},
		History:          []DailyValuationPoint{},
		MonthlyPnL:       []MonthlyPnL{},
		AssetPerformance: []AssetPerformance{},
	}
}

// HistoryPoint is one persisted current-total-value row.
type HistoryPoint struct {
	PortfolioHistoryID uuid.UUID `json:"portfolioHistoryID"`
	UserID             uuid.UUID `json:"userID"`
	Date               time.Time `json:"date"`
	TotalValue         float64   `json:"totalValue"`
}

type PortfolioHistory struct {
	Range  AnalysisRange  `json:"range"`
	Points []HistoryPoint `json:"points"`
	Return Return         `json:"return"`
}
