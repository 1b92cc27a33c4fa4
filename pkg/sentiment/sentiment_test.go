package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"cinepulse/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizerAlternateSpellings(t *testing.T) {
	n, err := NewNormalizer(nil)
	require.NoError(t, err)

	canonical := n.Tally([]string{"positive", "positive", "positive", "negative"})
	mixed := n.Tally([]string{"Positive", "pos", "1", " NEG "})
	assert.Equal(t, canonical, mixed)
	assert.Equal(t, Tally{Positive: 3, Negative: 1}, mixed)
}

func TestNormalizerDropsUnknownLabels(t *testing.T) {
	n, err := NewNormalizer(nil)
	require.NoError(t, err)

	labels := []string{"neutro", "neutral", "", "positivo", "negativo", "??"}
	tally := n.Tally(labels)
	assert.Equal(t, Tally{Positive: 1, Negative: 1}, tally)
	assert.LessOrEqual(t, tally.Total(), len(labels))
	assert.Equal(t, Unknown, n.Normalize("neutro"))
}

func TestNormalizerExtraAliases(t *testing.T) {
	n, err := NewNormalizer(map[string]string{"LABEL_1": "Positive", "label_0": "negative"})
	require.NoError(t, err)
	assert.Equal(t, Positive, n.Normalize("label_1"))
	assert.Equal(t, Negative, n.Normalize("LABEL_0"))
}

func TestNormalizerTokens(t *testing.T) {
	n, err := NewNormalizer(map[string]string{"LABEL_1": "positive"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "label_1", "pos", "positiva", "positive", "positivo"}, n.Tokens(Positive))
	assert.Equal(t, []string{"-1", "0", "neg", "negativa", "negative", "negativo"}, n.Tokens(Negative))
	assert.Empty(t, n.Tokens(Unknown))
}

func TestNormalizerRejectsInvalidAlias(t *testing.T) {
	_, err := NewNormalizer(map[string]string{"neutro": "neutral"})
	assert.ErrorIs(t, err, ErrUnknownClass)

	_, err = NewNormalizer(map[string]string{"  ": "positive"})
	assert.Error(t, err)
}

func TestTallyAdd(t *testing.T) {
	got := Tally{Positive: 2}.Add(Tally{Positive: 1, Negative: 4})
	assert.Equal(t, Tally{Positive: 3, Negative: 4}, got)
	assert.Equal(t, 7, got.Total())
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"otimo", "filme", "nao", "e", "ruim"}, Tokenize("Ótimo filme! Não é ruim...", true))
	assert.Equal(t, []string{"ótimo", "filme"}, Tokenize("Ótimo, filme", false))
	assert.Empty(t, Tokenize("  !!! ", true))
}

func testArtifact() LinearArtifact {
	return LinearArtifact{
		Language:     Portuguese,
		Labels:       [2]string{"negativo", "positivo"},
		Bias:         -0.1,
		Weights:      map[string]float64{"bom": 1.0, "otimo": 1.5, "ruim": -1.2, "chato": -1.0},
		StripAccents: true,
	}
}

func TestLinearModelPredict(t *testing.T) {
	m, err := NewLinearModel(testArtifact())
	require.NoError(t, err)

	labels, err := m.Predict(context.Background(), []string{"Filme bom", "Muito chato e ruim", "Ótimo!", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"positivo", "negativo", "positivo", "negativo"}, labels)
}

func TestLinearModelTermFrequency(t *testing.T) {
	a := testArtifact()
	m, err := NewLinearModel(a)
	require.NoError(t, err)
	assert.InDelta(t, 1.9, m.Score("bom bom"), 1e-9)

	a.Binary = true
	mb, err := NewLinearModel(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, mb.Score("bom bom"), 1e-9)
}

func TestLinearModelNeutralLabel(t *testing.T) {
	a := testArtifact()
	a.Bias = 0.3
	a.NeutralLabel = "neutro"
	m, err := NewLinearModel(a)
	require.NoError(t, err)

	labels, err := m.Predict(context.Background(), []string{"", "Assisti ontem", "Filme bom", "chato"})
	require.NoError(t, err)
	assert.Equal(t, []string{"neutro", "neutro", "positivo", "negativo"}, labels)
}

func TestShippedModels(t *testing.T) {
	n, err := NewNormalizer(nil)
	require.NoError(t, err)

	cases := []struct {
		path     string
		positive string
		negative string
		neutral  string
	}{
		{path: "../../models/en.json", positive: "Great movie, loved it", negative: "Boring, a waste of time", neutral: "I watched it on Tuesday"},
		{path: "../../models/pt.json", positive: "Filme bom, ótimo elenco", negative: "Chato e ruim", neutral: "Assisti na terça"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			m, err := LoadLinearModel(tc.path)
			require.NoError(t, err)
			assert.LessOrEqual(t, m.artifact.Bias, 0.0)

			labels, err := m.Predict(context.Background(), []string{tc.positive, tc.negative, tc.neutral})
			require.NoError(t, err)
			assert.Equal(t, Tally{Positive: 1, Negative: 1}, n.Tally(labels))
			assert.Equal(t, Unknown, n.Normalize(labels[2]))
		})
	}
}

func TestNewLinearModelValidation(t *testing.T) {
	a := testArtifact()
	a.Labels = [2]string{"", "pos"}
	_, err := NewLinearModel(a)
	assert.Error(t, err)

	a = testArtifact()
	a.Weights = nil
	_, err = NewLinearModel(a)
	assert.Error(t, err)
}

func TestLoadLinearModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pt.json")
	raw, err := json.Marshal(testArtifact())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	m, err := LoadLinearModel(path)
	require.NoError(t, err)
	assert.Equal(t, Portuguese, m.Language())

	_, err = LoadLinearModel(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestRemotePredictor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, English, req.Language)
		labels := make([]string, len(req.Texts))
		for i := range labels {
			labels[i] = "pos"
		}
		_ = json.NewEncoder(w).Encode(predictResponse{Labels: labels})
	}))
	t.Cleanup(server.Close)

	p := NewRemotePredictor(server.URL, English, 0)
	labels, err := p.Predict(context.Background(), []string{"Great movie", "Loved it"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pos", "pos"}, labels)
}

func TestRemotePredictorErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/short" {
			_, _ = w.Write([]byte(`{"labels":["pos"]}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	_, err := NewRemotePredictor(server.URL, English, 0).Predict(context.Background(), []string{"a"})
	assert.Error(t, err)

	_, err = NewRemotePredictor(server.URL+"/short", English, 0).Predict(context.Background(), []string{"a", "b"})
	assert.Error(t, err)
}

func TestLoadRegistrySkipsMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pt.json")
	raw, err := json.Marshal(testArtifact())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	reg := LoadRegistry(map[Language]ModelSource{
		English:    {ArtifactPath: filepath.Join(dir, "en.json")},
		Portuguese: {ArtifactPath: path},
	}, logger.NewNop())

	assert.False(t, reg.Available(English))
	assert.True(t, reg.Available(Portuguese))

	_, err = reg.Classify(context.Background(), English, []string{"x"})
	assert.Error(t, err)

	labels, err := reg.Classify(context.Background(), Portuguese, []string{"Filme bom"})
	require.NoError(t, err)
	assert.Equal(t, []string{"positivo"}, labels)
}

func TestNewRegistryIgnoresNil(t *testing.T) {
	reg := NewRegistry(map[Language]Predictor{English: nil})
	assert.False(t, reg.Available(English))
}
