package sentiment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Language identifies a review language supported by the pipeline.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Languages lists the supported languages in presentation order.
var Languages = []Language{English, Portuguese}

// Class is the canonical binary sentiment class.
type Class int

const (
	Unknown Class = iota
	Positive
	Negative
)

func (c Class) String() string {
	switch c {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// ErrUnknownClass is returned when an alias points at a class that is not positive or negative.
var ErrUnknownClass = errors.New("unknown sentiment class")

// Tally counts classified reviews. Neutral or unrecognized labels are not counted.
type Tally struct {
	Positive int `json:"positivos"`
	Negative int `json:"negativos"`
}

// Add returns the sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Positive: t.Positive + o.Positive, Negative: t.Negative + o.Negative}
}

// Total is Positive + Negative.
func (t Tally) Total() int {
	return t.Positive + t.Negative
}

var defaultAliases = map[string]Class{
	"positive": Positive,
	"pos":      Positive,
	"1":        Positive,
	"positivo": Positive,
	"positiva": Positive,
	"negative": Negative,
	"neg":      Negative,
	"0":        Negative,
	"-1":       Negative,
	"negativo": Negative,
	"negativa": Negative,
}

// Normalizer maps raw classifier labels onto canonical classes. It is built
// once at startup and is read-only afterwards.
type Normalizer struct {
	aliases map[string]Class
}

// NewNormalizer builds a Normalizer from the default alias table plus extra
// aliases keyed by raw token, valued "positive" or "negative".
func NewNormalizer(extra map[string]string) (*Normalizer, error) {
	aliases := make(map[string]Class, len(defaultAliases)+len(extra))
	for k, v := range defaultAliases {
		aliases[k] = v
	}
	for raw, class := range extra {
		token := normalizeToken(raw)
		if token == "" {
			return nil, fmt.Errorf("empty sentiment alias for class %q", class)
		}
		switch normalizeToken(class) {
		case "positive":
			aliases[token] = Positive
		case "negative":
			aliases[token] = Negative
		default:
			return nil, fmt.Errorf("alias %q -> %q: %w", raw, class, ErrUnknownClass)
		}
	}
	return &Normalizer{aliases: aliases}, nil
}

// Normalize returns the class for a raw label, or Unknown.
func (n *Normalizer) Normalize(label string) Class {
	return n.aliases[normalizeToken(label)]
}

// Tally counts the labels that normalize to a known class.
func (n *Normalizer) Tally(labels []string) Tally {
	var t Tally
	for _, l := range labels {
		switch n.Normalize(l) {
		case Positive:
			t.Positive++
		case Negative:
			t.Negative++
		}
	}
	return t
}

// Tokens lists the raw labels that normalize to c, sorted.
func (n *Normalizer) Tokens(c Class) []string {
	var out []string
	for token, class := range n.aliases {
		if class == c {
			out = append(out, token)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
