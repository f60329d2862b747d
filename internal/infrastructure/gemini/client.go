package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API with the two model configurations the
// application needs: a cooler vision model for per-image ratings and a
// warmer text model for marketing copy.
type Client struct {
	client      *genai.Client
	visionModel *genai.GenerativeModel
	textModel   *genai.GenerativeModel
	httpClient  *http.Client
}

func NewClient(apiKey, visionModelName, textModelName string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	vision := client.GenerativeModel(visionModelName)
	vision.SetTemperature(0.4)
	vision.SetMaxOutputTokens(1024)

	text := client.GenerativeModel(textModelName)
	text.SetTemperature(0.8)
	text.SetMaxOutputTokens(1024)

	return &Client{
		client:      client,
		visionModel: vision,
		textModel:   text,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// AnalyzeImage fetches the image and sends it with the prompt to the vision
// model, returning the raw completion text.
func (c *Client) AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	data, format, err := c.fetchImage(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}

	resp, err := c.visionModel.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(format, data))
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}

	return textFromResponse(resp)
}

// GenerateText sends a text-only prompt to the text model.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("text request failed: %w", err)
	}

	return textFromResponse(resp)
}

// fetchImage downloads the image bytes and derives the format token Gemini
// expects ("jpeg", "png", "webp").
func (c *Client) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	format := "jpeg"
	switch {
	case strings.Contains(contentType, "png"):
		format = "png"
	case strings.Contains(contentType, "webp"):
		format = "webp"
	}

	return data, format, nil
}

// textFromResponse flattens the first candidate's parts into one string and
// strips markdown code fences the model sometimes adds around JSON.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text), nil
}
