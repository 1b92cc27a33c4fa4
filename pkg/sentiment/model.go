package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Predictor classifies texts. Implementations must return one label per input text.
type Predictor interface {
	Predict(ctx context.Context, texts []string) ([]string, error)
}

// LinearArtifact is the on-disk form of a trained bag-of-words linear classifier.
type LinearArtifact struct {
	Language     Language           `json:"language"`
	Labels       [2]string          `json:"labels"`
	Bias         float64            `json:"bias"`
	Weights      map[string]float64 `json:"weights"`
	Binary       bool               `json:"binary"`
	StripAccents bool               `json:"strip_accents"`
	// NeutralLabel, when set, is emitted for texts with no weighted token
	// instead of letting the bias pick a class.
	NeutralLabel string `json:"neutral_label,omitempty"`
}

// LinearModel scores texts with a frozen LinearArtifact. Safe for concurrent use.
type LinearModel struct {
	artifact LinearArtifact
}

// LoadLinearModel reads and validates an artifact file.
func LoadLinearModel(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var artifact LinearArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	return NewLinearModel(artifact)
}

// NewLinearModel validates an in-memory artifact.
func NewLinearModel(artifact LinearArtifact) (*LinearModel, error) {
	if artifact.Labels[0] == "" || artifact.Labels[1] == "" {
		return nil, fmt.Errorf("model artifact must declare two labels")
	}
	if len(artifact.Weights) == 0 {
		return nil, fmt.Errorf("model artifact has no weights")
	}
	return &LinearModel{artifact: artifact}, nil
}

// Language reports the language the artifact was trained for.
func (m *LinearModel) Language() Language {
	return m.artifact.Language
}

// Predict labels every text with Labels[1] when its score is non-negative, Labels[0] otherwise.
// Texts without any weighted token get NeutralLabel when the artifact declares one.
func (m *LinearModel) Predict(_ context.Context, texts []string) ([]string, error) {
	labels := make([]string, len(texts))
	for i, text := range texts {
		score, matched := m.score(text)
		switch {
		case !matched && m.artifact.NeutralLabel != "":
			labels[i] = m.artifact.NeutralLabel
		case score >= 0:
			labels[i] = m.artifact.Labels[1]
		default:
			labels[i] = m.artifact.Labels[0]
		}
	}
	return labels, nil
}

// Score returns the decision value for text.
func (m *LinearModel) Score(text string) float64 {
	score, _ := m.score(text)
	return score
}

func (m *LinearModel) score(text string) (float64, bool) {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text, m.artifact.StripAccents) {
		counts[tok]++
	}
	score := m.artifact.Bias
	matched := false
	for tok, n := range counts {
		w, ok := m.artifact.Weights[tok]
		if !ok {
			continue
		}
		matched = true
		if m.artifact.Binary {
			score += w
		} else {
			score += w * float64(n)
		}
	}
	return score, matched
}

// Tokenize lowercases text, optionally folds accents, and splits on anything
// that is not a letter or digit.
func Tokenize(text string, stripAccents bool) []string {
	text = strings.ToLower(text)
	if stripAccents {
		text = foldAccents(text)
	}
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
