// Package gemini implements the sample oracle using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/locdata"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Oracle implements locdata.SampleOracle at compile time.
var _ locdata.SampleOracle = (*Oracle)(nil)

// Oracle asks Gemini for a small sample of the records the user requested,
// copied literally from the page text.
type Oracle struct {
	client *genai.Client
}

// NewOracle creates a new Oracle.
func NewOracle(client *genai.Client) *Oracle {
	return &Oracle{client: client}
}

// GenerateSample requests boundary records for the query from the model.
// The returned records are untrusted model output; fewer than two records
// means the model found no relevant data.
func (o *Oracle) GenerateSample(ctx context.Context, req locdata.SampleRequest) ([]locdata.Record, error) {
	if req.Query == "" {
		return nil, locdata.Errorf(locdata.EINVALID, "query required")
	}
	if req.PageText == "" {
		return nil, locdata.Errorf(locdata.EINVALID, "page text required")
	}

	result, err := o.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildPrompt(req)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, locdata.Errorf(locdata.EINTERNAL, "gemini returned nil result")
	}

	return ParseSample(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Responses are constrained to JSON.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract sample data from website text. Copy values literally from the text. Always answer with valid JSON.",
			}},
		},
		ResponseMIMEType: "application/json",
		Temperature:      &temp,
	}
}

// BuildPrompt builds the user prompt asking for boundary records.
func BuildPrompt(req locdata.SampleRequest) string {
	var sb strings.Builder
	sb.WriteString("Write a JSON array that contains the first data item, three in-between items, and last item the user requested.\n")
	sb.WriteString("Make sure the last item is the bottommost item of relevant data and not the last item of the first section of the website.\n")
	sb.WriteString("Copy the values literally from the website's text. Write valid JSON. Example:\n")
	sb.WriteString(`{"data": [{"country": "Austria", "capital": "Vienna"}, {"country": "Sweden", "capital": "Stockholm"}]}` + "\n")
	sb.WriteString("Data should not have any value that's identical for all objects (no generic or null values allowed).\n")
	sb.WriteString("If there's no relevant data in the website's text, return an empty array.\n")
	sb.WriteString("Data requested by the user: ")
	sb.WriteString(req.Query)
	sb.WriteString("\nWebsite's text (long strings are truncated using ...): ")
	sb.WriteString(req.PageText)
	if req.Feedback != "" {
		sb.WriteString("\nUser feedback from the previous data location attempt: ")
		sb.WriteString(req.Feedback)
	}
	return sb.String()
}

// ParseSample decodes the model's JSON answer. Numbers are kept as
// json.Number so numeric leaves match page text exactly.
func ParseSample(text string) ([]locdata.Record, error) {
	var answer struct {
		Data []locdata.Record `json:"data"`
	}
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	if err := dec.Decode(&answer); err != nil {
		return nil, locdata.Errorf(locdata.EINVALID, "malformed sample JSON: %v", err)
	}
	return answer.Data, nil
}
