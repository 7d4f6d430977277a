package calculator

import (
	"testing"

	"portfoliowatch/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func stock(ticker string, price, change float64, sector string) domain.Asset {
	return domain.Asset{
		Ticker: ticker,
		Type:   domain.AssetTypeStock,
		Price:  price,
		Change: change,
		Sector: sector,
	}
}

func fii(ticker string, price, change float64) domain.Asset {
	return domain.Asset{
		Ticker: ticker,
		Type:   domain.AssetTypeFii,
		Price:  price,
		Change: change,
	}
}

func Test_ComputeStatistics(t *testing.T) {
	t.Run("three asset scenario", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 100, 5, "Energy"),
			fii("BBBB11", 200, -2),
			stock("CCCC3", 50, 10, "Energy"),
		}

		out := ComputeStatistics(assets)

		require.Equal(t, 350.0, out.TotalValue)
		require.Equal(t, 150.0, out.StockValue)
		require.Equal(t, 200.0, out.FiiValue)
		require.InDelta(t, 42.857, out.StockPercentage, 0.001)
		require.InDelta(t, 57.143, out.FiiPercentage, 0.001)
		require.NotNil(t, out.BestPerformer)
		require.Equal(t, "CCCC3", out.BestPerformer.Ticker)
		require.NotNil(t, out.WorstPerformer)
		require.Equal(t, "BBBB11", out.WorstPerformer.Ticker)
		require.InDelta(t, 4.333, out.DailyChange, 0.001)
	})

	t.Run("per type values sum to total", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 123.45, 1, "Banking"),
			stock("BBBB3", 67.89, -1, "Mining"),
			fii("CCCC11", 10.11, 0),
		}

		out := ComputeStatistics(assets)

		require.InDelta(t, out.TotalValue, out.StockValue+out.FiiValue, 1e-9)
	})

	t.Run("empty portfolio never panics and zeroes every ratio", func(t *testing.T) {
		out := ComputeStatistics([]domain.Asset{})

		require.Equal(t, 0.0, out.TotalValue)
		require.Equal(t, 0.0, out.DailyChange)
		require.Equal(t, 0.0, out.StockPercentage)
		require.Equal(t, 0.0, out.FiiPercentage)
		require.Equal(t, 0.0, out.Volatility)
		require.Equal(t, 0.0, out.DiversificationScore)
		require.Equal(t, 0.0, out.LiquidityScore)
		require.Equal(t, 0.0, out.HealthScore)
		require.Equal(t, 0.0, out.MaxDrawdown)
		require.Nil(t, out.BestPerformer)
		require.Nil(t, out.WorstPerformer)
		require.Empty(t, out.TopSectors)
		require.Nil(t, out.Rebalance)
	})

	t.Run("best performer tie keeps first in iteration order", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 10, 5, "Energy"),
			stock("BBBB3", 10, 5, "Energy"),
		}

		out := ComputeStatistics(assets)

		require.Equal(t, "AAAA3", out.BestPerformer.Ticker)
		require.Equal(t, "AAAA3", out.WorstPerformer.Ticker)
	})

	t.Run("diversification score saturates at ten assets", func(t *testing.T) {
		five := make([]domain.Asset, 5)
		twelve := make([]domain.Asset, 12)
		for i := range five {
			five[i] = stock("AAAA3", 10, 0, "Energy")
		}
		for i := range twelve {
			twelve[i] = stock("AAAA3", 10, 0, "Energy")
		}

		require.Equal(t, 50.0, ComputeStatistics(five).DiversificationScore)
		require.Equal(t, 100.0, ComputeStatistics(twelve).DiversificationScore)
	})

	t.Run("liquidity score counts volume above threshold", func(t *testing.T) {
		liquid := stock("AAAA3", 10, 0, "Energy")
		liquid.Volume = 500_000
		illiquid := stock("BBBB3", 10, 0, "Energy")
		illiquid.Volume = 99_000

		out := ComputeStatistics([]domain.Asset{liquid, illiquid})

		require.Equal(t, 50.0, out.LiquidityScore)
		// health is the unweighted mean of diversification (20) and liquidity (50)
		require.Equal(t, 35.0, out.HealthScore)
	})

	t.Run("volatility is population RMS of change", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 10, 3, "Energy"),
			stock("BBBB3", 10, 4, "Energy"),
		}

		out := ComputeStatistics(assets)

		require.InDelta(t, 3.5355, out.Volatility, 0.0001)
	})

	t.Run("sharpe ratio floors denominator at one when volatility is zero", func(t *testing.T) {
		a := stock("AAAA3", 10, 0, "Energy")
		a.YearlyChange = 10.5

		out := ComputeStatistics([]domain.Asset{a})

		require.Equal(t, 0.0, out.Volatility)
		require.InDelta(t, 6.0, out.SharpeRatio, 1e-9)
	})

	t.Run("top sectors rank by stock value share", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 500, 0, "Energy"),
			stock("BBBB3", 300, 0, "Banking"),
			stock("CCCC3", 150, 0, "Mining"),
			stock("DDDD3", 50, 0, "Retail"),
			fii("EEEE11", 1000, 0),
		}

		out := ComputeStatistics(assets)

		require.Len(t, out.TopSectors, 3)
		require.Equal(t, "Energy", out.TopSectors[0].Sector)
		require.InDelta(t, 50.0, out.TopSectors[0].Percentage, 1e-9)
		require.Equal(t, "Banking", out.TopSectors[1].Sector)
		require.Equal(t, "Mining", out.TopSectors[2].Sector)
	})

	t.Run("dividend aggregates and projection", func(t *testing.T) {
		a := stock("AAAA3", 100, 0, "Energy")
		a.LastDividend = 2
		a.DividendYield = 6
		b := fii("BBBB11", 100, 0)
		b.LastDividend = 1
		b.DividendYield = 10

		out := ComputeStatistics([]domain.Asset{a, b})

		require.Equal(t, 3.0, out.TotalDividends)
		require.Equal(t, 8.0, out.AverageYield)
		require.Equal(t, 36.0, out.AnnualDividendProjection)
		require.InDelta(t, 18.0, out.ProjectedYield, 1e-9)
	})
}

func Test_rebalancePlan(t *testing.T) {
	t.Run("no plan when allocation is close to target", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 6_000, 0, "Energy"),
			fii("BBBB11", 4_000, 0),
		}

		out := ComputeStatistics(assets)

		require.Nil(t, out.Rebalance)
	})

	t.Run("plan with both trades on a one sided portfolio", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 20_000, 0, "Energy"),
		}

		out := ComputeStatistics(assets)

		require.NotNil(t, out.Rebalance)
		require.NotNil(t, out.Rebalance.StockTrade)
		require.Equal(t, TradeActionSell, out.Rebalance.StockTrade.Action)
		require.True(t, out.Rebalance.StockTrade.Amount.Equal(decimal.NewFromInt(8_000)))
		require.NotNil(t, out.Rebalance.FiiTrade)
		require.Equal(t, TradeActionBuy, out.Rebalance.FiiTrade.Action)
		require.True(t, out.Rebalance.FiiTrade.Amount.Equal(decimal.NewFromInt(8_000)))
	})

	t.Run("per class trade omitted below per class floor", func(t *testing.T) {
		// combined deviation is material but the stock leg alone is not
		plan := rebalancePlan(100_000, 59_500, 34_500)

		require.NotNil(t, plan)
		require.Nil(t, plan.StockTrade)
		require.NotNil(t, plan.FiiTrade)
		require.Equal(t, TradeActionBuy, plan.FiiTrade.Action)
		require.True(t, plan.FiiTrade.Amount.Equal(decimal.NewFromInt(5_500)))
	})
}

func Test_pearson(t *testing.T) {
	t.Run("identical series correlate to one", func(t *testing.T) {
		series := []float64{1, 2, 3, 4, 5}
		require.InDelta(t, 1.0, pearson(series, series), 1e-9)
	})

	t.Run("inversely proportional series correlate to minus one", func(t *testing.T) {
		a := []float64{1, 2, 3, 4, 5}
		b := []float64{9, 8, 7, 6, 5}
		require.InDelta(t, -1.0, pearson(a, b), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float64{1, 3, 2, 5, 4}
		b := []float64{2, 2, 3, 6, 5}
		require.Equal(t, pearson(a, b), pearson(b, a))
	})

	t.Run("mismatched lengths correlate to zero", func(t *testing.T) {
		require.Equal(t, 0.0, pearson([]float64{1, 2, 3}, []float64{1, 2}))
	})

	t.Run("fewer than two points correlate to zero", func(t *testing.T) {
		require.Equal(t, 0.0, pearson([]float64{1}, []float64{1}))
		require.Equal(t, 0.0, pearson(nil, nil))
	})

	t.Run("flat series correlate to zero", func(t *testing.T) {
		require.Equal(t, 0.0, pearson([]float64{5, 5, 5}, []float64{1, 2, 3}))
	})
}

func Test_correlationMatrix(t *testing.T) {
	t.Run("diagonal is one regardless of history", func(t *testing.T) {
		assets := []domain.Asset{
			stock("AAAA3", 10, 0, "Energy"),
			stock("BBBB3", 10, 0, "Energy"),
		}

		matrix := correlationMatrix(assets)

		require.Equal(t, 1.0, matrix[0][0])
		require.Equal(t, 1.0, matrix[1][1])
		require.Equal(t, matrix[0][1], matrix[1][0])
	})
}

func Test_highCorrelations(t *testing.T) {
	withHistory := func(ticker string, history []float64) domain.Asset {
		a := stock(ticker, 10, 0, "Energy")
		a.HistoricalPrices = history
		return a
	}

	t.Run("reports sign qualified pairs in scan order", func(t *testing.T) {
		assets := []domain.Asset{
			withHistory("AAAA3", []float64{1, 2, 3}),
			withHistory("BBBB3", []float64{2, 4, 6}),
			withHistory("CCCC3", []float64{6, 4, 2}),
		}

		report := highCorrelations(assets)

		require.Len(t, report.Pairs, 3)
		require.Equal(t, 0, report.Additional)
		require.Equal(t, "AAAA3", report.Pairs[0].Ticker1)
		require.Equal(t, "BBBB3", report.Pairs[0].Ticker2)
		require.Equal(t, "positive correlation", report.Pairs[0].Label)
		require.Equal(t, "negative correlation", report.Pairs[1].Label)
	})

	t.Run("limits to three pairs and counts the rest", func(t *testing.T) {
		assets := []domain.Asset{
			withHistory("AAAA3", []float64{1, 2, 3}),
			withHistory("BBBB3", []float64{2, 4, 6}),
			withHistory("CCCC3", []float64{3, 6, 9}),
			withHistory("DDDD3", []float64{4, 8, 12}),
		}

		report := highCorrelations(assets)

		require.Len(t, report.Pairs, 3)
		require.Equal(t, 3, report.Additional)
	})

	t.Run("uncorrelated assets yield no pairs", func(t *testing.T) {
		assets := []domain.Asset{
			withHistory("AAAA3", []float64{1, 2}),
			withHistory("BBBB3", nil),
		}

		report := highCorrelations(assets)

		require.Empty(t, report.Pairs)
		require.Equal(t, 0, report.Additional)
	})
}

func Test_maxDrawdown(t *testing.T) {
	withHistory := func(history []float64) domain.Asset {
		a := stock("AAAA3", 10, 0, "Energy")
		a.HistoricalPrices = history
		return a
	}

	t.Run("monotonically increasing series has zero drawdown", func(t *testing.T) {
		out := maxDrawdown([]domain.Asset{withHistory([]float64{100, 110, 120, 130})})
		require.Equal(t, 0.0, out)
	})

	t.Run("series that rises then halves draws down fifty percent", func(t *testing.T) {
		out := maxDrawdown([]domain.Asset{withHistory([]float64{100, 120, 60})})
		require.InDelta(t, 50.0, out, 1e-9)
	})

	t.Run("combined series sums positionally across assets", func(t *testing.T) {
		out := maxDrawdown([]domain.Asset{
			withHistory([]float64{100, 50}),
			withHistory([]float64{100, 50}),
		})
		require.InDelta(t, 50.0, out, 1e-9)
	})

	t.Run("grid follows the first asset's series", func(t *testing.T) {
		// the first asset has no history, so no combined series exists even
		// though a later asset has one
		out := maxDrawdown([]domain.Asset{
			withHistory(nil),
			withHistory([]float64{100, 10}),
		})
		require.Equal(t, 0.0, out)
	})

	t.Run("shorter series read as zero past their end", func(t *testing.T) {
		out := maxDrawdown([]domain.Asset{
			withHistory([]float64{100, 100, 100}),
			withHistory([]float64{100}),
		})
		// combined series is 200, 100, 100
		require.InDelta(t, 50.0, out, 1e-9)
	})

	t.Run("no assets means zero drawdown", func(t *testing.T) {
		require.Equal(t, 0.0, maxDrawdown(nil))
	})
}

func Test_insights(t *testing.T) {
	t.Run("stock heavy portfolio flags concentration", func(t *testing.T) {
		out := insights(80, 20, 5, 0)
		require.Contains(t, out.Allocation, "stocks")
	})

	t.Run("balanced portfolio", func(t *testing.T) {
		out := insights(60, 40, 5, 1)
		require.Equal(t, "Healthy split between stocks and FIIs.", out.Allocation)
		require.Equal(t, "Yield within market average.", out.Yield)
		require.Equal(t, "Volatility within the expected range.", out.Volatility)
	})

	t.Run("sharp daily swing flags volatility", func(t *testing.T) {
		out := insights(60, 40, 5, -3.5)
		require.Contains(t, out.Volatility, "High volatility")
	})
}
