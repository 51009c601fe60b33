package selection

import (
	"io"
	"testing"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.NewWriter(io.Discard)
}

func analysisWithScores(symbol string, short, medium, long float64) *contracts.Analysis {
	return &contracts.Analysis{
		Symbol:     symbol,
		ShortTerm:  contracts.HorizonScore{Score: short, Signal: contracts.SignalFromScore(short)},
		MediumTerm: contracts.HorizonScore{Score: medium, Signal: contracts.SignalFromScore(medium)},
		LongTerm:   contracts.HorizonScore{Score: long, Signal: contracts.SignalFromScore(long)},
	}
}

func TestRank_OrdersByCompositeScore(t *testing.T) {
	analyses := []*contracts.Analysis{
		analysisWithScores("MID", 50, 50, 50),
		analysisWithScores("TOP", 80, 70, 90),
		analysisWithScores("LOW", 30, 40, 20),
	}

	ranked := NewRanker(newTestLogger()).Rank(analyses)

	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}

	wantOrder := []string{"TOP", "MID", "LOW"}
	for i, symbol := range wantOrder {
		if ranked[i].Symbol != symbol {
			t.Errorf("ranked[%d].Symbol = %q, want %q", i, ranked[i].Symbol, symbol)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("ranked[%d].Rank = %d, want %d", i, ranked[i].Rank, i+1)
		}
	}
}

func TestRank_EmptyInput(t *testing.T) {
	ranked := NewRanker(newTestLogger()).Rank(nil)
	if len(ranked) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", ranked)
	}
}

func TestTopN(t *testing.T) {
	ranked := NewRanker(newTestLogger()).Rank([]*contracts.Analysis{
		analysisWithScores("A", 90, 90, 90),
		analysisWithScores("B", 70, 70, 70),
		analysisWithScores("C", 50, 50, 50),
	})

	tests := []struct {
		n    int
		want int
	}{
		{2, 2},
		{0, 0},
		{10, 3},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := TopN(ranked, tt.n); len(got) != tt.want {
			t.Errorf("TopN(%d) returned %d entries, want %d", tt.n, len(got), tt.want)
		}
	}
}

func TestScreen_Filters(t *testing.T) {
	ranked := NewRanker(newTestLogger()).Rank([]*contracts.Analysis{
		analysisWithScores("7203", 80, 80, 80), // AUTOMOTIVE, BUY
		analysisWithScores("6758", 70, 70, 70), // ELECTRONICS, BUY
		analysisWithScores("9984", 30, 30, 30), // TELECOM, SELL
	})

	tests := []struct {
		name   string
		config ScreenerConfig
		want   []string
	}{
		{"min score", ScreenerConfig{MinScore: 60}, []string{"7203", "6758"}},
		{"buy only", ScreenerConfig{Signal: contracts.SignalBuy}, []string{"7203", "6758"}},
		{"sector", ScreenerConfig{Sector: SectorAutomotive}, []string{"7203"}},
		{"max results", ScreenerConfig{MaxResults: 1}, []string{"7203"}},
		{"no filters", ScreenerConfig{}, []string{"7203", "6758", "9984"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed := NewScreener(tt.config, newTestLogger()).Screen(ranked)

			if len(passed) != len(tt.want) {
				t.Fatalf("passed %d symbols, want %d", len(passed), len(tt.want))
			}
			for i, symbol := range tt.want {
				if passed[i].Symbol != symbol {
					t.Errorf("passed[%d] = %q, want %q", i, passed[i].Symbol, symbol)
				}
			}
		})
	}
}

func TestScreen_EmptyInput(t *testing.T) {
	screener := NewScreener(ScreenerConfig{MinScore: 60}, newTestLogger())
	if got := screener.Screen(nil); len(got) != 0 {
		t.Errorf("Screen(nil) = %v, want empty", got)
	}
}

func TestSectorOf(t *testing.T) {
	if got := SectorOf("7203"); got != SectorAutomotive {
		t.Errorf("SectorOf(7203) = %q", got)
	}
	if got := SectorOf("0000"); got != SectorOther {
		t.Errorf("SectorOf(unknown) = %q, want OTHER", got)
	}
}
