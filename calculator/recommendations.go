package calculator

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed recommendations.yaml
var recommendationsYAML []byte

type adviceBundle struct {
	Diet     []string `yaml:"diet"`
	Exercise []string `yaml:"exercise"`
	Tip      string   `yaml:"tip"`
	Focus    []string `yaml:"focus"`
}

type adviceTable struct {
	Goals    map[Goal]adviceBundle `yaml:"goals"`
	Fallback adviceBundle          `yaml:"fallback"`
}

// advice is read-only after init.
var advice = mustLoadAdvice(recommendationsYAML)

func mustLoadAdvice(raw []byte) adviceTable {
	t, err := loadAdvice(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func loadAdvice(raw []byte) (adviceTable, error) {
	var t adviceTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return adviceTable{}, fmt.Errorf("decode recommendations: %w", err)
	}
	for _, g := range []Goal{GainWeight, LoseWeight, GainMuscle, ManageStress} {
		b, ok := t.Goals[g]
		if !ok {
			return adviceTable{}, fmt.Errorf("recommendations: missing goal %q", g)
		}
		if len(b.Diet) != 5 || len(b.Exercise) != 5 {
			return adviceTable{}, fmt.Errorf("recommendations: goal %q needs 5 diet and 5 exercise entries, got %d/%d", g, len(b.Diet), len(b.Exercise))
		}
	}
	if len(t.Fallback.Diet) != 1 || len(t.Fallback.Exercise) != 1 {
		return adviceTable{}, fmt.Errorf("recommendations: fallback needs exactly one diet and one exercise entry")
	}
	return t, nil
}

func bundleFor(g Goal) adviceBundle {
	switch g {
	case GainWeight, LoseWeight, GainMuscle, ManageStress:
		return advice.Goals[g]
	default:
		return advice.Fallback
	}
}

// SelectRecommendations returns the ordered diet and exercise advice for a
// goal. Unknown goals get a single generic entry per category.
func SelectRecommendations(g Goal) Recommendations {
	b := bundleFor(g)
	return Recommendations{
		Diet:     clone(b.Diet),
		Exercise: clone(b.Exercise),
	}
}

// DailyTip is the dashboard tip for a goal, empty for unknown goals.
func DailyTip(g Goal) string {
	return bundleFor(g).Tip
}

// DailyFocus lists today's focus items for a goal. The {protein} placeholder
// is replaced with the protein target.
func DailyFocus(g Goal, m Macros) []string {
	items := bundleFor(g).Focus
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, strings.ReplaceAll(s, "{protein}", strconv.Itoa(m.Protein)))
	}
	return out
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
