package reporting

import (
	"strings"
	"testing"
)

func renderedSample(t *testing.T) string {
	t.Helper()
	r, err := Assemble(samplePositions(), 0.12)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	return RenderText(r)
}

func TestRenderText_Sections(t *testing.T) {
	out := renderedSample(t)

	for _, header := range []string{
		"general data:",
		"winning trades:",
		"losing trades:",
		"sharpe ratio:",
		"symbol data:",
	} {
		if !strings.Contains(out, header) {
			t.Errorf("Missing header %q", header)
		}
	}
}

func TestRenderText_RoundsToThreeDecimals(t *testing.T) {
	out := renderedSample(t)

	if !strings.Contains(out, "\tprofit: 9.000\n") {
		t.Errorf("Profit not rendered with 3 decimals:\n%s", out)
	}
	if !strings.Contains(out, "\tsum: 13.000\n") {
		t.Errorf("Winning sum not rendered with 3 decimals:\n%s", out)
	}
}

func TestRenderText_SharpeBreakdownLine(t *testing.T) {
	out := renderedSample(t)

	// Excess mean 4.38, stddev 1.5, ratio 2.92
	if !strings.Contains(out, "\tsharpe ratio: 4.380 / 1.500 = 2.920\n") {
		t.Errorf("Sharpe breakdown line missing:\n%s", out)
	}
}

func TestRenderText_YieldFullPrecision(t *testing.T) {
	out := renderedSample(t)

	// The configured rate is shown as-is, not rounded to 0.120.
	if !strings.Contains(out, "\tUS10Y monthly yield: 0.12\n") {
		t.Errorf("Yield line mismatch:\n%s", out)
	}
}

func TestRenderText_SymbolsOrderedByProfitDesc(t *testing.T) {
	out := renderedSample(t)

	aapl := strings.Index(out, "\tAAPL:")
	msft := strings.Index(out, "\tMSFT:")
	if aapl == -1 || msft == -1 {
		t.Fatalf("Symbol blocks missing:\n%s", out)
	}
	if aapl > msft {
		t.Error("AAPL (higher profit) should be listed before MSFT")
	}
}

func TestSymbolsByProfit_TieBrokenBySymbol(t *testing.T) {
	data := SymbolDataSection{
		SymbolToProfit: map[string]float64{"MSFT": 5.0, "AAPL": 5.0, "TSLA": 7.0},
	}

	got := symbolsByProfit(data)
	want := []string{"TSLA", "AAPL", "MSFT"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
