package contracts

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSignalFromScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Signal
	}{
		{60, SignalBuy},
		{59, SignalHold},
		{41, SignalHold},
		{40, SignalSell},
		{100, SignalBuy},
		{0, SignalSell},
		{50, SignalHold},
		{115, SignalBuy}, // unclamped scores still map
		{-10, SignalSell},
	}

	for _, tt := range tests {
		if got := SignalFromScore(tt.score); got != tt.want {
			t.Errorf("SignalFromScore(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestAnalysis_CompositeScore(t *testing.T) {
	a := &Analysis{
		ShortTerm:  HorizonScore{Score: 60},
		MediumTerm: HorizonScore{Score: 50},
		LongTerm:   HorizonScore{Score: 70},
	}

	if got := a.CompositeScore(); got != 60 {
		t.Errorf("CompositeScore() = %v, want 60", got)
	}
}

func TestAnalysis_JSONRoundTrip(t *testing.T) {
	a := &Analysis{
		Symbol: "7203",
		Date:   time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Price:  2810,
		ShortTerm: HorizonScore{
			Horizon: HorizonShort,
			Signal:  SignalBuy,
			Score:   65,
			Reasons: []string{"RSI oversold"},
		},
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Analysis
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Symbol != "7203" || decoded.ShortTerm.Signal != SignalBuy {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}
