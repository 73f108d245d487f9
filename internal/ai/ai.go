// Package ai is a thin client for the hosted generative-AI gateway. Every
// call fails open: an unconfigured or unreachable gateway yields a fixed
// human-readable fallback instead of propagating a raw fault.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"eventPortal/internal/config"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"
)

type Client struct {
	log  *slog.Logger
	cfg  config.Assistant
	http *http.Client
}

func New(log *slog.Logger, cfg config.Assistant) *Client {
	return &Client{
		log:  log,
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type SearchLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type SearchResult struct {
	Text  string       `json:"text"`
	Links []SearchLink `json:"links"`
}

// Request/response shapes for the generateContent endpoint.

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type generationConfig struct {
	ImageConfig *imageConfig `json:"imageConfig,omitempty"`
}

type tool struct {
	GoogleSearch map[string]any `json:"googleSearch,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`

		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, model, c.cfg.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return &out, nil
}

func (r *generateResponse) firstText() string {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}

	return ""
}

// GenerateDescription writes a short event description for the submission
// form.
func (c *Client) GenerateDescription(ctx context.Context, title, category string) string {
	if c.cfg.APIKey == "" {
		return "API Key missing. Cannot generate description."
	}

	prompt := fmt.Sprintf(
		"Write a catchy, short event description (max 50 words) for a college event titled %q in the category %q at P.A. College of Engineering (PACE).",
		title, category,
	)

	resp, err := c.generate(ctx, c.cfg.TextModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		c.log.Error("description generation failed", sl.Err(err))
		return "Failed to generate description."
	}

	if text := resp.firstText(); text != "" {
		return text
	}

	return "No description generated."
}

// GenerateImage produces a poster image for the given prompt and returns the
// raw image bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	if c.cfg.APIKey == "" {
		return nil, errors.New("API key missing")
	}
	if aspectRatio == "" {
		aspectRatio = "16:9"
	}

	resp, err := c.generate(ctx, c.cfg.ImageModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: aspectRatio},
		},
	})
	if err != nil {
		c.log.Error("image generation failed", sl.Err(err))
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode image data: %w", err)
				}
				return data, nil
			}
		}
	}

	return nil, errors.New("no image data found in response")
}

// GroundedSearch answers a query with web grounding and returns the summary
// plus source links.
func (c *Client) GroundedSearch(ctx context.Context, query string) SearchResult {
	if c.cfg.APIKey == "" {
		return SearchResult{Text: "API Key missing"}
	}

	resp, err := c.generate(ctx, c.cfg.TextModel, generateRequest{
		Contents: []content{{Parts: []part{{Text: query}}}},
		Tools:    []tool{{GoogleSearch: map[string]any{}}},
	})
	if err != nil {
		c.log.Error("grounded search failed", sl.Err(err))
		return SearchResult{Text: "Error performing search."}
	}

	result := SearchResult{Text: resp.firstText()}
	if result.Text == "" {
		result.Text = "No results found."
	}

	for _, cand := range resp.Candidates {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web.URI != "" {
				result.Links = append(result.Links, SearchLink{
					Title: chunk.Web.Title,
					URL:   chunk.Web.URI,
				})
			}
		}
	}

	return result
}

const chatSystemPrompt = "You are a helpful assistant for P.A. College of Engineering (PACE) event management system. " +
	"You help students find events, clubs plan them, and answer questions about the college. Keep answers concise."

// Chat continues a conversation with the campus assistant.
func (c *Client) Chat(ctx context.Context, history []models.ChatMessage, message string) string {
	if c.cfg.APIKey == "" {
		return "API Key missing."
	}

	contents := make([]content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, content{Role: msg.Role, Parts: []part{{Text: msg.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	resp, err := c.generate(ctx, c.cfg.ChatModel, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: chatSystemPrompt}}},
	})
	if err != nil {
		c.log.Error("chat request failed", sl.Err(err))
		return "Sorry, I'm having trouble connecting right now."
	}

	if text := resp.firstText(); text != "" {
		return text
	}

	return "I didn't understand that."
}
