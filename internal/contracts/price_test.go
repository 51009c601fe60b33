package contracts

import (
	"testing"
	"time"
)

func testSeries(closes ...float64) PriceSeries {
	series := make(PriceSeries, len(closes))
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		series[i] = PricePoint{
			Date:  base.AddDate(0, 0, i),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return series
}

func TestPriceSeries_DailyReturns(t *testing.T) {
	series := testSeries(100, 110, 99)

	returns := series.DailyReturns()
	if len(returns) != 2 {
		t.Fatalf("len(returns) = %d, want 2", len(returns))
	}

	if diff := returns[0] - 0.10; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("returns[0] = %v, want 0.10", returns[0])
	}
	if diff := returns[1] - (-0.10); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("returns[1] = %v, want -0.10", returns[1])
	}
}

func TestPriceSeries_DailyReturns_Degenerate(t *testing.T) {
	if got := testSeries().DailyReturns(); len(got) != 0 {
		t.Errorf("empty series returns = %v, want empty", got)
	}
	if got := testSeries(100).DailyReturns(); len(got) != 0 {
		t.Errorf("single point returns = %v, want empty", got)
	}

	// A zero previous close is skipped, not divided by.
	withZero := testSeries(100, 0, 50)
	if got := withZero.DailyReturns(); len(got) != 1 {
		t.Errorf("series with zero close returns = %v, want one entry", got)
	}
}

func TestPriceSeries_Tail(t *testing.T) {
	series := testSeries(1, 2, 3, 4, 5)

	tail := series.Tail(3)
	if len(tail) != 3 || tail[0].Close != 3 {
		t.Errorf("Tail(3) = %v", tail.Closes())
	}

	if got := series.Tail(10); len(got) != 5 {
		t.Errorf("Tail(10) should return whole series, got %d points", len(got))
	}
	if got := series.Tail(0); len(got) != 0 {
		t.Errorf("Tail(0) should be empty, got %d points", len(got))
	}
}

func TestPriceSeries_Latest(t *testing.T) {
	if _, ok := (PriceSeries{}).Latest(); ok {
		t.Error("Latest() on empty series should report false")
	}

	series := testSeries(100, 105)
	p, ok := series.Latest()
	if !ok || p.Close != 105 {
		t.Errorf("Latest() = %v, %v", p, ok)
	}
}
