// Package vocab holds the per-statement heuristic tables: period patterns,
// structural keywords, metric vocabularies, derivations and trend patterns.
//
// A Vocabulary is built once and never modified; callers share it freely.
package vocab

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/models"
	"gopkg.in/yaml.v2"
)

//go:embed statements.yaml
var defaultYAML []byte

// Data start modes.
const (
	// ModeAfterPeriod starts data a fixed offset after the period row.
	ModeAfterPeriod = "after_period"
	// ModeKeyword starts data a fixed offset after the first keyword row.
	ModeKeyword = "keyword"
)

// Keyword scan scopes.
const (
	// ScopeAll scans every row of the grid.
	ScopeAll = "all"
	// ScopeAfterPeriod scans only rows strictly after the period row.
	ScopeAfterPeriod = "after_period"
)

// Derivation kinds.
const (
	// KindRatio divides one metric by another.
	KindRatio = "ratio"
	// KindGrowth computes period-over-period growth of one metric.
	KindGrowth = "growth"
)

// DataStartRule describes how the first line-item row is found.
type DataStartRule struct {
	Mode     string   `yaml:"mode"`
	Scope    string   `yaml:"scope"`
	Literal  bool     `yaml:"literal"`
	Offset   int      `yaml:"offset"`
	Keywords []string `yaml:"keywords"`

	keywordRes []*regexp.Regexp
}

// Match reports whether row text matches one of the rule's keywords.
// Literal keywords are matched case-sensitively against the raw text,
// patterns against the lowercased text.
func (r *DataStartRule) Match(text string) bool {
	if r.Literal {
		for _, k := range r.Keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
	lower := strings.ToLower(text)
	for _, re := range r.keywordRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// Metric is a canonical metric key and its ordered candidate substrings.
type Metric struct {
	Key        string   `yaml:"key"`
	Candidates []string `yaml:"candidates"`
}

// Derivation is one ratio or growth series computed from resolved metrics.
type Derivation struct {
	Kind        string  `yaml:"kind"`
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Metric      string  `yaml:"metric"`
	Numerator   string  `yaml:"numerator"`
	Denominator string  `yaml:"denominator"`
	Scale       float64 `yaml:"scale"`
}

// Statement is the compiled configuration of one statement type.
type Statement struct {
	Type          models.StatementType `yaml:"type"`
	ChartTitle    string               `yaml:"chart_title"`
	YAxisTitle    string               `yaml:"y_axis_title"`
	DataStart     DataStartRule        `yaml:"data_start"`
	Metrics       []Metric             `yaml:"metrics"`
	Derivations   []Derivation         `yaml:"derivations"`
	TrendPatterns []string             `yaml:"trend_patterns"`

	periodRes []*regexp.Regexp
	trendRes  []*regexp.Regexp
}

// MatchesPeriod reports whether row text looks like a period header.
func (s *Statement) MatchesPeriod(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range s.periodRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// MatchesTrend reports whether a column label is trend-relevant.
func (s *Statement) MatchesTrend(label string) bool {
	lower := strings.ToLower(label)
	for _, re := range s.trendRes {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// Vocabulary is the full set of statement configurations.
type Vocabulary struct {
	PeriodPatterns []string     `yaml:"period_patterns"`
	Statements     []*Statement `yaml:"statements"`
}

// Statement returns the configuration for st.
func (v *Vocabulary) Statement(st models.StatementType) (*Statement, error) {
	for _, s := range v.Statements {
		if s.Type == st {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no vocabulary for statement type %q", st)
}

// YAML re-encodes the vocabulary.
func (v *Vocabulary) YAML() ([]byte, error) {
	return yaml.Marshal(v)
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
	defaultErr   error
)

// Default returns the embedded vocabulary. It panics if the embedded file
// is invalid, which is a build defect.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		defaultVocab, defaultErr = Load(defaultYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("vocab: embedded statements.yaml: %v", defaultErr))
	}
	return defaultVocab
}

// LoadFile reads and compiles a vocabulary file.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}
	v, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Load parses and compiles a vocabulary document. Unknown fields are
// rejected.
func Load(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.UnmarshalStrict(data, &v); err != nil {
		return nil, err
	}
	if err := v.compile(); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *Vocabulary) compile() error {
	if len(v.PeriodPatterns) == 0 {
		return fmt.Errorf("period_patterns is empty")
	}
	periodRes, err := compileAll(v.PeriodPatterns)
	if err != nil {
		return fmt.Errorf("period_patterns: %w", err)
	}

	seen := make(map[models.StatementType]bool)
	for _, s := range v.Statements {
		if s == nil {
			return fmt.Errorf("empty statement entry")
		}
		if seen[s.Type] {
			return fmt.Errorf("duplicate statement type %q", s.Type)
		}
		seen[s.Type] = true

		s.periodRes = periodRes
		if s.trendRes, err = compileAll(s.TrendPatterns); err != nil {
			return fmt.Errorf("%s trend_patterns: %w", s.Type, err)
		}
		if err := s.DataStart.compile(); err != nil {
			return fmt.Errorf("%s data_start: %w", s.Type, err)
		}
		if err := s.validateMetrics(); err != nil {
			return fmt.Errorf("%s: %w", s.Type, err)
		}
	}

	for _, st := range models.StatementTypes {
		if !seen[st] {
			return fmt.Errorf("missing statement type %q", st)
		}
	}
	return nil
}

func (r *DataStartRule) compile() error {
	switch r.Mode {
	case ModeAfterPeriod:
	case ModeKeyword:
		if len(r.Keywords) == 0 {
			return fmt.Errorf("keyword mode needs keywords")
		}
		switch r.Scope {
		case "":
			r.Scope = ScopeAfterPeriod
		case ScopeAll, ScopeAfterPeriod:
		default:
			return fmt.Errorf("unknown scope %q", r.Scope)
		}
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	if !r.Literal {
		res, err := compileAll(r.Keywords)
		if err != nil {
			return err
		}
		r.keywordRes = res
	}
	return nil
}

func (s *Statement) validateMetrics() error {
	keys := make(map[string]bool, len(s.Metrics))
	for i := range s.Metrics {
		m := &s.Metrics[i]
		if m.Key == "" || len(m.Candidates) == 0 {
			return fmt.Errorf("metric %d needs a key and candidates", i)
		}
		for j, c := range m.Candidates {
			m.Candidates[j] = strings.ToLower(c)
		}
		keys[m.Key] = true
	}

	for i := range s.Derivations {
		d := &s.Derivations[i]
		switch d.Kind {
		case KindRatio:
			if d.Key == "" || d.Name == "" {
				return fmt.Errorf("ratio derivation %d needs a key and name", i)
			}
			if !keys[d.Numerator] || !keys[d.Denominator] {
				return fmt.Errorf("ratio %s references unknown metric", d.Key)
			}
			if d.Scale == 0 {
				d.Scale = 1
			}
		case KindGrowth:
			if !keys[d.Metric] {
				return fmt.Errorf("growth derivation references unknown metric %q", d.Metric)
			}
			if d.Key == "" {
				d.Key = d.Metric + "_yoy_growth"
			}
		default:
			return fmt.Errorf("unknown derivation kind %q", d.Kind)
		}
	}
	return nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		res = append(res, re)
	}
	return res, nil
}
