package selection

import (
	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/logger"
)

// ScreenerConfig defines the hard-cut filter conditions.
type ScreenerConfig struct {
	MinScore   float64          // minimum composite score
	Signal     contracts.Signal // keep only this long-term signal ("" keeps all)
	Sector     string           // keep only this sector ("" keeps all)
	MaxResults int              // 0 means unlimited
}

// Screener filters ranked symbols by score, signal and sector.
// Sector membership comes from a static lookup table, not market data.
type Screener struct {
	config ScreenerConfig
	logger *logger.Logger
}

// NewScreener creates a new screener
func NewScreener(config ScreenerConfig, log *logger.Logger) *Screener {
	return &Screener{
		config: config,
		logger: log,
	}
}

// Screen applies the configured filters, preserving rank order.
// An empty input yields an empty result, never an error.
func (s *Screener) Screen(ranked []contracts.RankedSymbol) []contracts.RankedSymbol {
	passed := make([]contracts.RankedSymbol, 0, len(ranked))

	for _, r := range ranked {
		if r.Score < s.config.MinScore {
			continue
		}
		if s.config.Signal != "" && r.LongTerm != s.config.Signal {
			continue
		}
		if s.config.Sector != "" && SectorOf(r.Symbol) != s.config.Sector {
			continue
		}

		passed = append(passed, r)
		if s.config.MaxResults > 0 && len(passed) >= s.config.MaxResults {
			break
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"input":  len(ranked),
		"passed": len(passed),
	}).Debug("Screening completed")

	return passed
}

// sectorTable maps well-known TSE codes to their sector. Static data;
// symbols not listed here fall into the OTHER bucket.
var sectorTable = map[string]string{
	"7203": SectorAutomotive,
	"7267": SectorAutomotive,
	"7201": SectorAutomotive,
	"6758": SectorElectronics,
	"6861": SectorElectronics,
	"6954": SectorElectronics,
	"6501": SectorElectronics,
	"8035": SectorSemiconductor,
	"6857": SectorSemiconductor,
	"6146": SectorSemiconductor,
	"9432": SectorTelecom,
	"9433": SectorTelecom,
	"9434": SectorTelecom,
	"9984": SectorTelecom,
	"8306": SectorBanking,
	"8316": SectorBanking,
	"8411": SectorBanking,
	"4502": SectorPharma,
	"4503": SectorPharma,
	"4568": SectorPharma,
	"9983": SectorRetail,
	"3382": SectorRetail,
	"8267": SectorRetail,
	"2914": SectorFood,
	"2502": SectorFood,
	"9501": SectorUtilities,
	"9502": SectorUtilities,
}

// Sector names used by the static lookup table.
const (
	SectorAutomotive    = "AUTOMOTIVE"
	SectorElectronics   = "ELECTRONICS"
	SectorSemiconductor = "SEMICONDUCTOR"
	SectorTelecom       = "TELECOM"
	SectorBanking       = "BANKING"
	SectorPharma        = "PHARMACEUTICAL"
	SectorRetail        = "RETAIL"
	SectorFood          = "FOOD"
	SectorUtilities     = "UTILITIES"
	SectorOther         = "OTHER"
)

// SectorOf looks up a symbol's sector in the static table.
func SectorOf(symbol string) string {
	if sector, ok := sectorTable[symbol]; ok {
		return sector
	}
	return SectorOther
}
