package calculator

import (
	"math"
	"sort"
	"time"
	"wealthtrack/internal/domain"
	"wealthtrack/internal/util"

	"github.com/montanaflynn/stats"
)

const tradingDaysPerYear = 252

// deviations below this are rounding noise from a constant return series
const zeroVarianceEpsilon = 1e-12

// AssetPrices is what ranking needs to know about one quoted asset.
type AssetPrices struct {
	Asset  domain.Asset
	Series domain.PriceSeries
	Quote  domain.Quote
}

type MetricsInput struct {
	Range  domain.AnalysisRange
	Window domain.Window
	Points []domain.DailyValuationPoint
	Assets []AssetPrices

	// LookbackDays bounds the backward scan for an asset's start price.
	LookbackDays    int
	SparklinePoints int
}

// CalculateMetrics reduces the valuation series to the analysis result. An
// empty series gives the zero analysis.
func CalculateMetrics(in MetricsInput) *domain.PortfolioAnalysis {
	out := domain.EmptyPortfolioAnalysis(in.Range, in.Window)
	if len(in.Points) == 0 {
		return out
	}

	returns := DailyReturns(in.Points)
	sharpe, volatility := RiskMetrics(returns)
	best, worst := BestAndWorstDay(returns)
	win, loss := Streaks(returns)

	out.TotalReturn = TotalReturn(in.Points)
	out.PeriodReturn = PeriodReturn(in.Points)
	out.MaxDrawdown = MaxDrawdown(in.Points)
	out.SharpeRatio = sharpe
	out.Volatility = volatility
	out.BestDay = best
	out.WorstDay = worst
	out.LongestWinStreak = win
	out.LongestLossStreak = loss
	out.Sparkline = Sparkline(in.Points, in.SparklinePoints)
	out.History = in.Points
	out.MonthlyPnL = MonthlyPnL(in.Points)

	out.AssetPerformance = RankAssets(in.Assets, in.Window, in.LookbackDays)
	if n := len(out.AssetPerformance); n > 0 {
		bestAsset := out.AssetPerformance[0]
		worstAsset := out.AssetPerformance[n-1]
		out.BestAsset = &bestAsset
		out.WorstAsset = &worstAsset
	}

	return out
}

// TotalReturn is measured against the cost basis on the last day.
func TotalReturn(points []domain.DailyValuationPoint) domain.Return {
	if len(points) == 0 {
		return domain.Return{}
	}
	last := points[len(points)-1]
	r := domain.Return{Value: last.TotalValue - last.TotalCost}
	if last.TotalCost != 0 {
		r.Percent = r.Value / last.TotalCost * 100
	}
	return r
}

// PeriodReturn is the change in value from the first to the last day.
func PeriodReturn(points []domain.DailyValuationPoint) domain.Return {
	if len(points) == 0 {
		return domain.Return{}
	}
	first := points[0].TotalValue
	last := points[len(points)-1].TotalValue
	return SimpleReturn(first, last)
}

func SimpleReturn(first, last float64) domain.Return {
	r := domain.Return{Value: last - first}
	if first != 0 {
		r.Percent = r.Value / first * 100
	}
	return r
}

// MaxDrawdown is the largest decline from a running peak, as a positive
// percentage.
func MaxDrawdown(points []domain.DailyValuationPoint) domain.Drawdown {
	out := domain.Drawdown{}
	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, p.TotalValue)
		if peak <= 0 {
			continue
		}
		dd := (peak - p.TotalValue) / peak * 100
		if dd > out.Percent {
			out.Percent = math.Min(dd, 100)
			out.Date = util.TimePointer(p.Date)
		}
	}
	return out
}

// DailyReturns skips the first point and any day whose previous value is 0.
// Percent is a fraction here, not scaled by 100.
func DailyReturns(points []domain.DailyValuationPoint) []domain.DayReturn {
	out := []domain.DayReturn{}
	for i := 1; i < len(points); i++ {
		prev := points[i-1].TotalValue
		if prev == 0 {
			continue
		}
		out = append(out, domain.DayReturn{
			Date:    points[i].Date,
			Percent: (points[i].TotalValue - prev) / prev,
		})
	}
	return out
}

func returnValues(returns []domain.DayReturn) []float64 {
	out := make([]float64, 0, len(returns))
	for _, r := range returns {
		out = append(out, r.Percent)
	}
	return out
}

// RiskMetrics annualizes the daily Sharpe ratio and volatility from the
// population standard deviation. Zero variance gives 0 for both.
func RiskMetrics(returns []domain.DayReturn) (sharpe float64, volatility float64) {
	values := returnValues(returns)
	if len(values) == 0 {
		return 0, 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, 0
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return 0, 0
	}

	if stdev < zeroVarianceEpsilon {
		return 0, 0
	}
	volatility = stdev * math.Sqrt(tradingDaysPerYear) * 100
	sharpe = mean / stdev * math.Sqrt(tradingDaysPerYear)
	return sharpe, volatility
}

// BestAndWorstDay returns the largest gain and the largest loss, either nil
// when the series has none. Percent is scaled by 100.
func BestAndWorstDay(returns []domain.DayReturn) (best *domain.DayReturn, worst *domain.DayReturn) {
	for _, r := range returns {
		if r.Percent > 0 && (best == nil || r.Percent*100 > best.Percent) {
			best = &domain.DayReturn{Date: r.Date, Percent: r.Percent * 100}
		}
		if r.Percent < 0 && (worst == nil || r.Percent*100 < worst.Percent) {
			worst = &domain.DayReturn{Date: r.Date, Percent: r.Percent * 100}
		}
	}
	return best, worst
}

// Streaks counts the longest run of up days and of down days. A flat day ends
// both.
func Streaks(returns []domain.DayReturn) (win int, loss int) {
	curWin, curLoss := 0, 0
	for _, r := range returns {
		switch {
		case r.Percent > 0:
			curWin++
			curLoss = 0
		case r.Percent < 0:
			curLoss++
			curWin = 0
		default:
			curWin, curLoss = 0, 0
		}
		win = max(win, curWin)
		loss = max(loss, curLoss)
	}
	return win, loss
}

// MonthlyPnL is the change in value between the first and last point of each
// calendar month, in series order.
func MonthlyPnL(points []domain.DailyValuationPoint) []domain.MonthlyPnL {
	out := []domain.MonthlyPnL{}
	var first, last float64
	month := ""
	flush := func() {
		if month != "" {
			out = append(out, domain.MonthlyPnL{Month: month, Value: last - first})
		}
	}
	for _, p := range points {
		m := util.MonthKey(p.Date)
		if m != month {
			flush()
			month = m
			first = p.TotalValue
		}
		last = p.TotalValue
	}
	flush()
	return out
}

// Sparkline samples n evenly spaced total values, always keeping the first
// and the last.
func Sparkline(points []domain.DailyValuationPoint, n int) []float64 {
	out := []float64{}
	if len(points) == 0 || n <= 0 {
		return out
	}
	if len(points) <= n {
		for _, p := range points {
			out = append(out, p.TotalValue)
		}
		return out
	}
	if n == 1 {
		return append(out, points[len(points)-1].TotalValue)
	}
	for i := 0; i < n; i++ {
		idx := i * (len(points) - 1) / (n - 1)
		out = append(out, points[idx].TotalValue)
	}
	return out
}

// RankAssets orders quoted assets by price change over the window, best
// first. Assets whose start or end price cannot be found are left out.
func RankAssets(assets []AssetPrices, w domain.Window, lookbackDays int) []domain.AssetPerformance {
	out := []domain.AssetPerformance{}
	for _, a := range assets {
		holding, ok := a.Asset.Holding.(domain.MarketHolding)
		if !ok || holding.Symbol == "" {
			continue
		}
		start := startPrice(a.Series, w.Start, lookbackDays)
		end := endPrice(a.Series, w.End, a.Quote, holding)
		if start <= 0 || end <= 0 {
			continue
		}
		out = append(out, domain.AssetPerformance{
			AssetID:    a.Asset.AssetID,
			Symbol:     holding.Symbol,
			Name:       a.Asset.Name,
			Type:       a.Asset.Type,
			StartPrice: domain.NewMoneyFromFloat(start, a.Asset.Currency),
			EndPrice:   domain.NewMoneyFromFloat(end, a.Asset.Currency),
			Percent:    (end - start) / start * 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].AssetID.String() < out[j].AssetID.String()
	})
	return out
}

// startPrice takes the close on the start day, else the latest close in the
// lookback buffer, else the earliest close fetched.
func startPrice(series domain.PriceSeries, start time.Time, lookbackDays int) float64 {
	for i := 0; i <= lookbackDays; i++ {
		if p, ok := series.On(start.AddDate(0, 0, -i)); ok {
			return p
		}
	}
	if p, ok := series.Earliest(); ok {
		return p
	}
	return 0
}

func endPrice(series domain.PriceSeries, end time.Time, quote domain.Quote, holding domain.MarketHolding) float64 {
	if p, ok := series.On(end); ok {
		return p
	}
	if quote.Price > 0 {
		return quote.Price
	}
	return holding.LastPrice.InexactFloat64()
}
