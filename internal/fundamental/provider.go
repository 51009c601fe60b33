package fundamental

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/wonny/kabu/internal/contracts"
	"github.com/wonny/kabu/pkg/config"
	"github.com/wonny/kabu/pkg/logger"
)

// Provider supplies financial statement data for a symbol.
type Provider interface {
	Fetch(ctx context.Context, symbol string) (*contracts.FinancialData, error)
}

// scriptError is the payload the helper script writes to stderr on failure.
type scriptError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Symbol  string `json:"symbol"`
}

// SubprocessProvider shells out to the fundamentals helper script,
// which prints FinancialData JSON on stdout or an error JSON on stderr.
type SubprocessProvider struct {
	cfg    config.FundamentalsConfig
	logger *logger.Logger
}

// NewSubprocessProvider creates a provider backed by the configured script.
func NewSubprocessProvider(cfg config.FundamentalsConfig, log *logger.Logger) *SubprocessProvider {
	return &SubprocessProvider{
		cfg:    cfg,
		logger: log.WithComponent("fundamental"),
	}
}

// Fetch runs the helper script for one symbol and decodes its output.
func (p *SubprocessProvider) Fetch(ctx context.Context, symbol string) (*contracts.FinancialData, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.cfg.Python, p.cfg.ScriptPath, symbol)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("fundamentals fetch timed out for %s: %w", symbol, ctx.Err())
		}

		// The script reports failures as a JSON object on stderr.
		var se scriptError
		if jsonErr := json.Unmarshal(stderr.Bytes(), &se); jsonErr == nil && se.Error {
			return nil, fmt.Errorf("fundamentals fetch failed for %s: %s", symbol, se.Message)
		}
		return nil, fmt.Errorf("fundamentals script failed for %s: %w", symbol, err)
	}

	data, err := parseFinancialData(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("parse fundamentals for %s: %w", symbol, err)
	}

	p.logger.WithFields(map[string]interface{}{
		"symbol":  symbol,
		"company": data.CompanyName,
	}).Debug("Fetched financial data")

	return data, nil
}

func parseFinancialData(out []byte) (*contracts.FinancialData, error) {
	var data contracts.FinancialData
	if err := json.Unmarshal(out, &data); err != nil {
		return nil, err
	}
	if data.Symbol == "" {
		return nil, fmt.Errorf("missing symbol in script output")
	}
	return &data, nil
}
