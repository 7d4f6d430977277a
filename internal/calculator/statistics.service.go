package calculator

import (
	"math"
	"sort"

	"portfoliowatch/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	// behavioral constants - changing any of these changes what the
	// dashboard recommends
	liquidityVolumeThreshold = 100_000
	targetStockPercentage    = 60.0
	targetFiiPercentage      = 40.0
	// a rebalance plan is only surfaced when the combined absolute deviation
	// exceeds this amount, and a per-class trade only when that class alone
	// deviates by more than the per-class floor
	rebalanceMaterialityTotal    = 5_000.0
	rebalanceMaterialityPerClass = 1_000.0
	highCorrelationCutoff        = 0.8
	maxCorrelatedPairsShown      = 3
	riskFreeRate                 = 4.5

	// reference index returns shown next to the portfolio's own yearly
	// performance
	ibovespaReferenceReturn = 15.2
	ifixReferenceReturn     = 12.8
)

type PortfolioStatistics struct {
	TotalValue float64 `json:"totalValue"`
	AssetCount int     `json:"assetCount"`

	// arithmetic mean of every asset's daily change
	DailyChange float64 `json:"dailyChange"`

	StockValue      float64 `json:"stockValue"`
	FiiValue        float64 `json:"fiiValue"`
	StockCount      int     `json:"stockCount"`
	FiiCount        int     `json:"fiiCount"`
	StockPercentage float64 `json:"stockPercentage"`
	FiiPercentage   float64 `json:"fiiPercentage"`

	// nil when the portfolio is empty
	BestPerformer  *domain.Asset `json:"bestPerformer"`
	WorstPerformer *domain.Asset `json:"worstPerformer"`

	TopSectors []SectorWeight `json:"topSectors"`

	MonthlyPerformance float64 `json:"monthlyPerformance"`
	YearlyPerformance  float64 `json:"yearlyPerformance"`

	TotalDividends           float64 `json:"totalDividends"`
	AverageYield             float64 `json:"averageYield"`
	AnnualDividendProjection float64 `json:"annualDividendProjection"`
	ProjectedYield           float64 `json:"projectedYield"`

	Volatility           float64 `json:"volatility"`
	DiversificationScore float64 `json:"diversificationScore"`
	LiquidityScore       float64 `json:"liquidityScore"`
	HealthScore          float64 `json:"healthScore"`

	HealthLabel     string `json:"healthLabel"`
	VolatilityLabel string `json:"volatilityLabel"`
	LiquidityLabel  string `json:"liquidityLabel"`

	// nil when the portfolio is close enough to the target allocation
	Rebalance *RebalancePlan `json:"rebalance"`

	HighCorrelations CorrelationReport `json:"highCorrelations"`

	MaxDrawdown float64 `json:"maxDrawdown"`
	SharpeRatio float64 `json:"sharpeRatio"`

	Benchmark BenchmarkComparison `json:"benchmark"`
	Insights  Insights            `json:"insights"`
}

type SectorWeight struct {
	Sector string `json:"sector"`
	// share of total stock value, not of total portfolio value
	Percentage float64 `json:"percentage"`
}

type TradeAction string

const (
	TradeActionBuy  TradeAction = "buy"
	TradeActionSell TradeAction = "sell"
)

type SuggestedTrade struct {
	Action TradeAction     `json:"action"`
	Amount decimal.Decimal `json:"amount"`
}

type RebalancePlan struct {
	TargetStockPercentage float64         `json:"targetStockPercentage"`
	TargetFiiPercentage   float64         `json:"targetFiiPercentage"`
	StockTrade            *SuggestedTrade `json:"stockTrade"`
	FiiTrade              *SuggestedTrade `json:"fiiTrade"`
}

type CorrelatedPair struct {
	Ticker1     string  `json:"ticker1"`
	Ticker2     string  `json:"ticker2"`
	Correlation float64 `json:"correlation"`
	Label       string  `json:"label"`
}

type CorrelationReport struct {
	Pairs []CorrelatedPair `json:"pairs"`
	// how many qualifying pairs exist beyond the ones listed
	Additional int `json:"additional"`
}

type BenchmarkComparison struct {
	Portfolio float64 `json:"portfolio"`
	Ibovespa  float64 `json:"ibovespa"`
	Ifix      float64 `json:"ifix"`
}

type Insights struct {
	Allocation string `json:"allocation"`
	Yield      string `json:"yield"`
	Volatility string `json:"volatility"`
}

// ComputeStatistics derives the full dashboard statistics set from the given
// holdings. It is a pure function: it never mutates its input, never errors,
// and degenerate input (empty portfolio, zero totals, missing history) always
// resolves to a defined zero or nil value.
func ComputeStatistics(assets []domain.Asset) PortfolioStatistics {
	s := PortfolioStatistics{
		AssetCount: len(assets),
		TopSectors: []SectorWeight{},
	}

	for _, a := range assets {
		// valuation intentionally sums unit prices; quantity is recorded on
		// the asset but is not part of the valuation contract
		s.TotalValue += a.Price
		switch a.Type {
		case domain.AssetTypeStock:
			s.StockValue += a.Price
			s.StockCount++
		case domain.AssetTypeFii:
			s.FiiValue += a.Price
			s.FiiCount++
		}

		s.TotalDividends += a.LastDividend
		s.AnnualDividendProjection += a.LastDividend * 12

		// copies, so the snapshot holds no references into the caller's slice
		if s.BestPerformer == nil || a.Change > s.BestPerformer.Change {
			best := a
			s.BestPerformer = &best
		}
		if s.WorstPerformer == nil || a.Change < s.WorstPerformer.Change {
			worst := a
			s.WorstPerformer = &worst
		}
	}

	if s.TotalValue > 0 {
		s.StockPercentage = s.StockValue / s.TotalValue * 100
		s.FiiPercentage = s.FiiValue / s.TotalValue * 100
		s.ProjectedYield = s.AnnualDividendProjection / s.TotalValue * 100
	}

	s.DailyChange = mean(collect(assets, func(a domain.Asset) float64 { return a.Change }))
	s.MonthlyPerformance = mean(collect(assets, func(a domain.Asset) float64 { return a.MonthlyChange }))
	s.YearlyPerformance = mean(collect(assets, func(a domain.Asset) float64 { return a.YearlyChange }))
	s.AverageYield = mean(collect(assets, func(a domain.Asset) float64 { return a.DividendYield }))

	// population RMS of daily changes, not stdev around the mean
	s.Volatility = math.Sqrt(mean(collect(assets, func(a domain.Asset) float64 { return a.Change * a.Change })))

	s.TopSectors = topSectors(assets, s.StockValue)

	s.DiversificationScore = math.Min(100, float64(len(assets))/10*100)
	s.LiquidityScore = liquidityScore(assets)
	s.HealthScore = (s.DiversificationScore + s.LiquidityScore) / 2

	s.HealthLabel = healthLabel(s.HealthScore)
	s.VolatilityLabel = volatilityLabel(s.Volatility)
	s.LiquidityLabel = liquidityLabel(s.LiquidityScore)

	s.Rebalance = rebalancePlan(s.TotalValue, s.StockValue, s.FiiValue)
	s.HighCorrelations = highCorrelations(assets)
	s.MaxDrawdown = maxDrawdown(assets)

	denominator := s.Volatility
	if denominator == 0 {
		denominator = 1
	}
	s.SharpeRatio = (s.YearlyPerformance - riskFreeRate) / denominator

	s.Benchmark = BenchmarkComparison{
		Portfolio: s.YearlyPerformance,
		Ibovespa:  ibovespaReferenceReturn,
		Ifix:      ifixReferenceReturn,
	}
	s.Insights = insights(s.StockPercentage, s.FiiPercentage, s.AverageYield, s.DailyChange)

	return s
}

func collect(assets []domain.Asset, f func(domain.Asset) float64) []float64 {
	values := make([]float64, 0, len(assets))
	for _, a := range assets {
		values = append(values, f(a))
	}
	return values
}

// mean is 0 for an empty series.
func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func topSectors(assets []domain.Asset, stockValue float64) []SectorWeight {
	bySector := map[string]float64{}
	for _, a := range assets {
		if a.Type != domain.AssetTypeStock {
			continue
		}
		bySector[a.Sector] += a.Price
	}

	weights := make([]SectorWeight, 0, len(bySector))
	for sector, value := range bySector {
		percentage := 0.0
		if stockValue > 0 {
			percentage = value / stockValue * 100
		}
		weights = append(weights, SectorWeight{Sector: sector, Percentage: percentage})
	}
	sort.SliceStable(weights, func(i, j int) bool {
		if weights[i].Percentage != weights[j].Percentage {
			return weights[i].Percentage > weights[j].Percentage
		}
		return weights[i].Sector < weights[j].Sector
	})

	if len(weights) > 3 {
		weights = weights[:3]
	}
	return weights
}

func liquidityScore(assets []domain.Asset) float64 {
	if len(assets) == 0 {
		return 0
	}
	liquid := 0
	for _, a := range assets {
		if a.Volume > liquidityVolumeThreshold {
			liquid++
		}
	}
	return float64(liquid) / float64(len(assets)) * 100
}

func healthLabel(score float64) string {
	switch {
	case score < 50:
		return "needs attention"
	case score < 75:
		return "good"
	default:
		return "excellent"
	}
}

func volatilityLabel(volatility float64) string {
	switch {
	case volatility < 15:
		return "low"
	case volatility < 30:
		return "medium"
	default:
		return "high"
	}
}

func liquidityLabel(score float64) string {
	switch {
	case score < 50:
		return "low"
	case score < 80:
		return "medium"
	default:
		return "high"
	}
}

func rebalancePlan(totalValue, stockValue, fiiValue float64) *RebalancePlan {
	stockDelta := targetStockPercentage/100*totalValue - stockValue
	fiiDelta := targetFiiPercentage/100*totalValue - fiiValue

	if math.Abs(stockDelta)+math.Abs(fiiDelta) <= rebalanceMaterialityTotal {
		return nil
	}

	plan := &RebalancePlan{
		TargetStockPercentage: targetStockPercentage,
		TargetFiiPercentage:   targetFiiPercentage,
	}
	if math.Abs(stockDelta) > rebalanceMaterialityPerClass {
		plan.StockTrade = suggestedTrade(stockDelta)
	}
	if math.Abs(fiiDelta) > rebalanceMaterialityPerClass {
		plan.FiiTrade = suggestedTrade(fiiDelta)
	}
	return plan
}

func suggestedTrade(delta float64) *SuggestedTrade {
	action := TradeActionBuy
	if delta < 0 {
		action = TradeActionSell
	}
	return &SuggestedTrade{
		Action: action,
		Amount: decimal.NewFromFloat(math.Abs(delta)).Round(2),
	}
}

// pearson is the population correlation coefficient of two aligned series.
// Series that are mismatched in length, shorter than 2 points, or flat
// (zero variance) correlate as 0 rather than erroring.
func pearson(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}

	meanA := mean(a)
	meanB := mean(b)

	var covariance, varianceA, varianceB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		covariance += da * db
		varianceA += da * da
		varianceB += db * db
	}

	denominator := math.Sqrt(varianceA * varianceB)
	if denominator == 0 {
		return 0
	}
	return covariance / denominator
}

func correlationMatrix(assets []domain.Asset) [][]float64 {
	matrix := make([][]float64, len(assets))
	for i := range assets {
		matrix[i] = make([]float64, len(assets))
		for j := range assets {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = pearson(assets[i].HistoricalPrices, assets[j].HistoricalPrices)
		}
	}
	return matrix
}

func highCorrelations(assets []domain.Asset) CorrelationReport {
	matrix := correlationMatrix(assets)

	pairs := []CorrelatedPair{}
	for i := 0; i < len(assets); i++ {
		for j := i + 1; j < len(assets); j++ {
			correlation := matrix[i][j]
			if math.Abs(correlation) <= highCorrelationCutoff {
				continue
			}
			label := "positive correlation"
			if correlation < 0 {
				label = "negative correlation"
			}
			pairs = append(pairs, CorrelatedPair{
				Ticker1:     assets[i].Ticker,
				Ticker2:     assets[j].Ticker,
				Correlation: correlation,
				Label:       label,
			})
		}
	}

	report := CorrelationReport{Pairs: pairs}
	if len(pairs) > maxCorrelatedPairsShown {
		report.Pairs = pairs[:maxCorrelatedPairsShown]
		report.Additional = len(pairs) - maxCorrelatedPairsShown
	}
	return report
}

// maxDrawdown walks a combined portfolio series built by summing every
// asset's historical price at each index. The grid length is taken from the
// first asset and a missing point on any series reads as 0, so all series
// are assumed to share one sampling grid.
func maxDrawdown(assets []domain.Asset) float64 {
	if len(assets) == 0 {
		return 0
	}

	gridLen := len(assets[0].HistoricalPrices)
	combined := make([]float64, gridLen)
	for i := 0; i < gridLen; i++ {
		for _, a := range assets {
			if i < len(a.HistoricalPrices) {
				combined[i] += a.HistoricalPrices[i]
			}
		}
	}

	worst := 0.0
	peak := 0.0
	if gridLen > 0 {
		peak = combined[0]
	}
	for _, value := range combined {
		if value > peak {
			peak = value
		}
		if peak <= 0 {
			continue
		}
		drawdown := (peak - value) / peak * 100
		if drawdown > worst {
			worst = drawdown
		}
	}
	return worst
}

func insights(stockPercentage, fiiPercentage, averageYield, dailyChange float64) Insights {
	out := Insights{}

	switch {
	case stockPercentage > 70:
		out.Allocation = "High concentration in stocks. Consider diversifying into FIIs."
	case fiiPercentage > 70:
		out.Allocation = "High concentration in FIIs. Consider diversifying into stocks."
	default:
		out.Allocation = "Healthy split between stocks and FIIs."
	}

	switch {
	case averageYield < 4:
		out.Yield = "Yield below market average. Consider assets with higher payouts."
	case averageYield > 8:
		out.Yield = "Excellent yield. Keep the focus on consistent dividends."
	default:
		out.Yield = "Yield within market average."
	}

	if math.Abs(dailyChange) > 3 {
		out.Volatility = "High volatility detected. Consider rebalancing the portfolio."
	} else {
		out.Volatility = "Volatility within the expected range."
	}

	return out
}
