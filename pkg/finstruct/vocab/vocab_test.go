package vocab

import (
	"testing"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasEveryStatement(t *testing.T) {
	v := Default()
	for _, st := range models.StatementTypes {
		s, err := v.Statement(st)
		require.NoError(t, err, st)
		assert.NotEmpty(t, s.Metrics, st)
		assert.NotEmpty(t, s.Derivations, st)
		assert.NotEmpty(t, s.ChartTitle, st)
	}
}

func TestMatchesPeriod(t *testing.T) {
	s, err := Default().Statement(models.BalanceSheet)
	require.NoError(t, err)

	tests := []struct {
		text     string
		expected bool
	}{
		{"Year 201103 201203", true},
		{"YEAR", true},
		{"Mar 2011", true},
		{"FY 12", false},
		{"2011-12", true},
		{"Rs. in Crores", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := s.MatchesPeriod(tt.text); got != tt.expected {
			t.Errorf("MatchesPeriod(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}

func TestDataStartRules(t *testing.T) {
	v := Default()

	pl, err := v.Statement(models.ProfitLoss)
	require.NoError(t, err)
	assert.Equal(t, ModeKeyword, pl.DataStart.Mode)
	assert.Equal(t, ScopeAfterPeriod, pl.DataStart.Scope)
	assert.True(t, pl.DataStart.Match("INCOME :"))
	assert.True(t, pl.DataStart.Match("Net Sales"))
	assert.True(t, pl.DataStart.Match("P & L Account"))
	assert.False(t, pl.DataStart.Match("Expenditure"))

	cf, err := v.Statement(models.CashFlow)
	require.NoError(t, err)
	assert.True(t, cf.DataStart.Match("Cash Flow Summary"))
	assert.False(t, cf.DataStart.Match("cash flow summary"), "literal anchor is case-sensitive")
	assert.Equal(t, 2, cf.DataStart.Offset)

	bs, err := v.Statement(models.BalanceSheet)
	require.NoError(t, err)
	assert.Equal(t, ModeAfterPeriod, bs.DataStart.Mode)
	assert.Equal(t, 1, bs.DataStart.Offset)
}

func TestDerivationDefaults(t *testing.T) {
	bs, err := Default().Statement(models.BalanceSheet)
	require.NoError(t, err)

	var growthKeys []string
	for _, d := range bs.Derivations {
		if d.Kind == KindGrowth {
			growthKeys = append(growthKeys, d.Key)
		}
		if d.Kind == KindRatio {
			assert.Equal(t, 1.0, d.Scale, d.Key)
		}
	}
	assert.Equal(t, []string{"total_assets_yoy_growth", "total_liabilities_yoy_growth", "shareholders_funds_yoy_growth"}, growthKeys)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "period_patterns: ['year']\nbogus: 1\n"},
		{"no period patterns", "statements: []\n"},
		{"bad regex", "period_patterns: ['(']\n"},
		{"missing statements", "period_patterns: ['year']\nstatements: []\n"},
		{"unknown derivation metric", `
period_patterns: ['year']
statements:
  - type: balance_sheet
    data_start: {mode: after_period, offset: 1}
    metrics: [{key: a, candidates: [x]}]
    derivations: [{kind: growth, metric: b}]
`},
	}

	for _, tt := range tests {
		if _, err := Load([]byte(tt.doc)); err == nil {
			t.Errorf("Load(%s) succeeded, expected error", tt.name)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := Default().YAML()
	require.NoError(t, err)

	v, err := Load(data)
	require.NoError(t, err)
	s, err := v.Statement(models.CashFlow)
	require.NoError(t, err)
	assert.Equal(t, "Cash Flow Trends Over Time", s.ChartTitle)
}
