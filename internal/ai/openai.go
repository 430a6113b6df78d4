package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"go-career-watcher/internal/models"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

type openAIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient creates a chat-completions scorer against the OpenAI API
func NewOpenAIClient(apiKey, model string) Client {
	return &openAIClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ScoreListing sends the resume and one listing to the model and parses the
// strict-JSON verdict it was instructed to return.
func (c *openAIClient) ScoreListing(ctx context.Context, resumeText string, listing models.Listing) (*MatchResult, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: buildSystemPrompt(),
			},
			{
				Role:    "user",
				Content: buildUserPrompt(resumeText, listing),
			},
		},
		Temperature: 0.0, // deterministic scoring across runs
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openAIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from openai API")
	}

	result, err := ParseVerdict(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return result, nil
}

var braceRegex = regexp.MustCompile(`(?s)\{.*\}`)

// ParseVerdict turns the model output into a MatchResult. Models sometimes
// wrap the JSON in markdown fences or chat around it, so after a straight
// parse fails we strip fences and finally fall back to the outermost
// brace-enclosed snippet.
func ParseVerdict(content string) (*MatchResult, error) {
	candidates := []string{
		strings.TrimSpace(content),
		cleanMarkdownJSON(content),
	}
	if m := braceRegex.FindString(content); m != "" {
		candidates = append(candidates, m)
	}

	for _, candidate := range candidates {
		var result MatchResult
		if err := json.Unmarshal([]byte(candidate), &result); err == nil {
			result.Analysis = strings.ReplaceAll(result.Analysis, "\n", " ")
			result.Recommend = clampScore(result.Recommend)
			return &result, nil
		}
	}
	return nil, fmt.Errorf("unable to parse scoring response (raw length: %d)", len(content))
}

func clampScore(score int) int {
	if score > 10 {
		return 10
	}
	if score < 0 {
		return 0
	}
	return score
}

// cleanMarkdownJSON removes backticks and "json" prefix if the model tries to be helpful
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
