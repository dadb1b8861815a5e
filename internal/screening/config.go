package screening

import (
	"fmt"
	"regexp"
)

// Pattern is one weighted catalog entry. Regex is matched against normalized
// text (lowercase ASCII letters, digits, apostrophes, single spaces), so
// patterns are written without case or punctuation concerns.
type Pattern struct {
	// Regex is the pattern to test against normalized text
	Regex string `koanf:"regex" json:"regex"`

	// Weight is added to the category score when the pattern fires
	Weight int `koanf:"weight" json:"weight"`

	// Description is the human-readable label reported in Matches
	Description string `koanf:"description" json:"description"`
}

// CategoryConfig defines one anxiety category's pattern set and threshold.
type CategoryConfig struct {
	// Name is one of the canonical category names
	Name string `koanf:"name"`

	// Threshold is the minimum cumulative weight for ThresholdMet
	Threshold int `koanf:"threshold"`

	// Patterns is the weighted pattern set for this category
	Patterns []Pattern `koanf:"patterns"`
}

// TriggerConfig defines one trigger tag's keyword bucket. A bucket
// contributes its tag when any one pattern matches.
type TriggerConfig struct {
	Tag      string   `koanf:"tag"`
	Patterns []string `koanf:"patterns"`
}

// DistortionConfig defines one cognitive distortion's cue pattern.
type DistortionConfig struct {
	Label   string `koanf:"label"`
	Pattern string `koanf:"pattern"`
}

// AgencyConfig defines the token-windowed agency/surveillance check.
//
// Anchor must match a whole token (it is compiled anchored to token
// boundaries), so "cia" never fires on substrings of longer words. Phrases
// are plain substrings searched in the joined window text.
type AgencyConfig struct {
	// Anchor is the alternation of agency tokens
	Anchor string `koanf:"anchor"`

	// Phrases are surveillance phrases searched near each anchor token
	Phrases []string `koanf:"phrases"`

	// Window is the symmetric token window around each anchor (default 4)
	Window int `koanf:"window"`

	// Weight is added to the psychosis score on a windowed hit
	Weight int `koanf:"weight"`

	// Description is the label reported in Matches
	Description string `koanf:"description"`
}

// PsychosisConfig defines the psychosis indicator detector.
type PsychosisConfig struct {
	// Threshold is the minimum score for HasIndicators (default 3)
	Threshold int `koanf:"threshold"`

	// Direct are standalone diagnostic keywords
	Direct []Pattern `koanf:"direct"`

	// Contextual are multi-word experiential phrases
	Contextual []Pattern `koanf:"contextual"`

	// Agency is the windowed co-occurrence check
	Agency AgencyConfig `koanf:"agency"`
}

// Config configures the screener. Zero-value sections fall back to the
// default catalogs.
type Config struct {
	Categories  []CategoryConfig   `koanf:"categories"`
	Triggers    []TriggerConfig    `koanf:"triggers"`
	Distortions []DistortionConfig `koanf:"distortions"`
	Psychosis   PsychosisConfig    `koanf:"psychosis"`

	// compiled forms (populated by Validate)
	compiledCategories  map[string]*compiledCategory
	compiledTriggers    []*compiledTrigger
	compiledDistortions []*compiledDistortion
	compiledPsychosis   *compiledPsychosis
}

type compiledPattern struct {
	Pattern
	re *regexp.Regexp
}

type compiledCategory struct {
	name      string
	threshold int
	patterns  []compiledPattern
}

type compiledTrigger struct {
	tag      string
	patterns []*regexp.Regexp
}

type compiledDistortion struct {
	label string
	re    *regexp.Regexp
}

type compiledPsychosis struct {
	threshold  int
	direct     []compiledPattern
	contextual []compiledPattern

	anchor       *regexp.Regexp
	phrases      []string
	window       int
	agencyWeight int
	agencyDesc   string
}

// canonicalCategories are the categories AnalyzeContext reports, in
// evaluation order.
var canonicalCategories = []string{
	CategoryGeneralAnxiety,
	CategoryPanic,
	CategoryPTSD,
	CategoryOCD,
	CategoryDepression,
	CategoryCrisis,
	CategoryPositive,
}

// DefaultConfig returns a configuration with the standard screening catalogs.
func DefaultConfig() *Config {
	return &Config{
		Categories:  DefaultCategories(),
		Triggers:    DefaultTriggers(),
		Distortions: DefaultDistortions(),
		Psychosis:   DefaultPsychosis(),
	}
}

// Validate validates and compiles the configuration. Empty sections are
// filled from the default catalogs first, so a partial config only overrides
// what it names.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		c.Categories = DefaultCategories()
	}
	if len(c.Triggers) == 0 {
		c.Triggers = DefaultTriggers()
	}
	if len(c.Distortions) == 0 {
		c.Distortions = DefaultDistortions()
	}
	if len(c.Psychosis.Direct) == 0 && len(c.Psychosis.Contextual) == 0 {
		c.Psychosis = DefaultPsychosis()
	}

	c.compiledCategories = make(map[string]*compiledCategory, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category name is required")
		}
		if cat.Threshold <= 0 {
			return fmt.Errorf("category %s: threshold must be > 0", cat.Name)
		}
		compiled := &compiledCategory{
			name:      cat.Name,
			threshold: cat.Threshold,
			patterns:  make([]compiledPattern, 0, len(cat.Patterns)),
		}
		for _, p := range cat.Patterns {
			cp, err := compilePattern(cat.Name, p)
			if err != nil {
				return err
			}
			compiled.patterns = append(compiled.patterns, cp)
		}
		c.compiledCategories[cat.Name] = compiled
	}
	for _, name := range canonicalCategories {
		if _, ok := c.compiledCategories[name]; !ok {
			return fmt.Errorf("category %s is not defined", name)
		}
	}

	c.compiledTriggers = make([]*compiledTrigger, 0, len(c.Triggers))
	for _, t := range c.Triggers {
		if t.Tag == "" {
			return fmt.Errorf("trigger tag is required")
		}
		compiled := &compiledTrigger{tag: t.Tag}
		for _, expr := range t.Patterns {
			re, err := regexp.Compile(expr)
			if err != nil {
				return fmt.Errorf("trigger %s: invalid pattern %q: %w", t.Tag, expr, err)
			}
			compiled.patterns = append(compiled.patterns, re)
		}
		c.compiledTriggers = append(c.compiledTriggers, compiled)
	}

	c.compiledDistortions = make([]*compiledDistortion, 0, len(c.Distortions))
	for _, d := range c.Distortions {
		if d.Label == "" {
			return fmt.Errorf("distortion label is required")
		}
		re, err := regexp.Compile(d.Pattern)
		if err != nil {
			return fmt.Errorf("distortion %s: invalid pattern: %w", d.Label, err)
		}
		c.compiledDistortions = append(c.compiledDistortions, &compiledDistortion{label: d.Label, re: re})
	}

	ps := c.Psychosis
	if ps.Threshold == 0 {
		ps.Threshold = 3
	}
	if ps.Agency.Window == 0 {
		ps.Agency.Window = 4
	}
	compiled := &compiledPsychosis{
		threshold:    ps.Threshold,
		phrases:      ps.Agency.Phrases,
		window:       ps.Agency.Window,
		agencyWeight: ps.Agency.Weight,
		agencyDesc:   ps.Agency.Description,
	}
	for _, p := range ps.Direct {
		cp, err := compilePattern("psychosis direct", p)
		if err != nil {
			return err
		}
		compiled.direct = append(compiled.direct, cp)
	}
	for _, p := range ps.Contextual {
		cp, err := compilePattern("psychosis contextual", p)
		if err != nil {
			return err
		}
		compiled.contextual = append(compiled.contextual, cp)
	}
	if ps.Agency.Anchor != "" {
		// Token-anchored so substrings of longer words never match.
		re, err := regexp.Compile("^(?:" + ps.Agency.Anchor + ")$")
		if err != nil {
			return fmt.Errorf("psychosis agency: invalid anchor: %w", err)
		}
		compiled.anchor = re
	}
	c.compiledPsychosis = compiled
	c.Psychosis = ps

	return nil
}

func compilePattern(scope string, p Pattern) (compiledPattern, error) {
	if p.Regex == "" {
		return compiledPattern{}, fmt.Errorf("%s: pattern regex is required", scope)
	}
	if p.Weight <= 0 {
		return compiledPattern{}, fmt.Errorf("%s: pattern %q: weight must be > 0", scope, p.Regex)
	}
	re, err := regexp.Compile(p.Regex)
	if err != nil {
		return compiledPattern{}, fmt.Errorf("%s: invalid pattern %q: %w", scope, p.Regex, err)
	}
	return compiledPattern{Pattern: p, re: re}, nil
}
