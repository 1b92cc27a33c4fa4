package sentiment

import (
	"context"
	"fmt"
	"time"

	"cinepulse/pkg/logger"
)

// ModelSource describes where a language's classifier comes from. Exactly one
// of ArtifactPath or Endpoint is expected.
type ModelSource struct {
	ArtifactPath string
	Endpoint     string
	Timeout      time.Duration
}

// Registry holds one Predictor per language. A language without a predictor
// contributes nothing to tallies.
type Registry struct {
	predictors map[Language]Predictor
}

// NewRegistry wraps an explicit predictor set.
func NewRegistry(predictors map[Language]Predictor) *Registry {
	copied := make(map[Language]Predictor, len(predictors))
	for lang, p := range predictors {
		if p != nil {
			copied[lang] = p
		}
	}
	return &Registry{predictors: copied}
}

// LoadRegistry builds predictors for every configured language. Sources that
// fail to load are logged and skipped.
func LoadRegistry(sources map[Language]ModelSource, log *logger.Logger) *Registry {
	predictors := make(map[Language]Predictor, len(sources))
	for lang, src := range sources {
		switch {
		case src.ArtifactPath != "":
			model, err := LoadLinearModel(src.ArtifactPath)
			if err != nil {
				log.Warn("Sentiment model unavailable, language disabled",
					logger.StringField("language", string(lang)),
					logger.StringField("artifact", src.ArtifactPath),
					logger.ErrorField(err))
				continue
			}
			predictors[lang] = model
		case src.Endpoint != "":
			predictors[lang] = NewRemotePredictor(src.Endpoint, lang, src.Timeout)
		default:
			log.Warn("No sentiment model configured, language disabled", logger.StringField("language", string(lang)))
		}
	}
	return &Registry{predictors: predictors}
}

// Available reports whether lang has a predictor.
func (r *Registry) Available(lang Language) bool {
	_, ok := r.predictors[lang]
	return ok
}

// Classify runs the predictor for lang.
func (r *Registry) Classify(ctx context.Context, lang Language, texts []string) ([]string, error) {
	p, ok := r.predictors[lang]
	if !ok {
		return nil, fmt.Errorf("no classifier for language %q", lang)
	}
	return p.Predict(ctx, texts)
}
