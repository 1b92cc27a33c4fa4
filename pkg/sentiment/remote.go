package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type predictRequest struct {
	Language Language `json:"language"`
	Texts    []string `json:"texts"`
}

type predictResponse struct {
	Labels []string `json:"labels"`
}

// RemotePredictor calls an inference service that hosts the frozen pipeline.
type RemotePredictor struct {
	endpoint string
	language Language
	client   *http.Client
}

// NewRemotePredictor creates a predictor posting to endpoint.
func NewRemotePredictor(endpoint string, language Language, timeout time.Duration) *RemotePredictor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemotePredictor{
		endpoint: endpoint,
		language: language,
		client:   &http.Client{Timeout: timeout},
	}
}

// Predict posts texts and expects exactly one label back per text.
func (p *RemotePredictor) Predict(ctx context.Context, texts []string) ([]string, error) {
	body, err := json.Marshal(predictRequest{Language: p.language, Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("predict service returned %d: %s", resp.StatusCode, string(b))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}
	if len(out.Labels) != len(texts) {
		return nil, fmt.Errorf("predict service returned %d labels for %d texts", len(out.Labels), len(texts))
	}
	return out.Labels, nil
}
