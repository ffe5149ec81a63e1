package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/your-org/pawmatch/internal/models"
)

// remotePrediction is one detection from the remote model.
type remotePrediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type remoteResponse struct {
	Predictions []remotePrediction `json:"predictions"`
	Image       struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"image"`
}

// RemoteProvider calls a hosted detection endpoint (Roboflow-style: the API
// key travels as a query parameter, the image as a multipart "file" field)
// and maps the highest-confidence detection to pet attributes.
type RemoteProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewRemoteProvider(endpoint, apiKey string) *RemoteProvider {
	return &RemoteProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) Analyze(ctx context.Context, image []byte) (models.PetFeatures, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return models.PetFeatures{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return models.PetFeatures{}, fmt.Errorf("write image part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return models.PetFeatures{}, fmt.Errorf("close multipart body: %w", err)
	}

	reqURL := p.endpoint + "?api_key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, &body)
	if err != nil {
		return models.PetFeatures{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return models.PetFeatures{}, fmt.Errorf("call detection endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.PetFeatures{}, fmt.Errorf("detection endpoint returned %d: %s", resp.StatusCode, msg)
	}

	var parsed remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.PetFeatures{}, fmt.Errorf("decode detection response: %w", err)
	}

	if len(parsed.Predictions) == 0 {
		return models.PetFeatures{Confidence: 0}, nil
	}

	best := parsed.Predictions[0]
	for _, pred := range parsed.Predictions[1:] {
		if pred.Confidence > best.Confidence {
			best = pred
		}
	}

	return featuresFromLabel(best.Class, best.Confidence), nil
}
