package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/marketlens/backend/internal/domain"
)

// productPayloadRegex locates the first JSON product payload inside a reply
// that may wrap it in prose: either an array of objects or an object carrying
// a "products" key. (?s) lets the match span line boundaries.
var productPayloadRegex = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]|\{\s*"products"\s*:\s*\[.*\]\s*\}`)

// Extract recovers the product list from raw model output. Search models
// regularly wrap structured output in explanatory prose or an object envelope
// despite instructions, so extraction is layered: locate an embedded payload
// first, fall back to parsing the whole text, and accept both the bare-array
// and the {"products": [...]} shapes.
//
// A parseable value of any other shape counts as zero products. Only invalid
// JSON is an error, wrapping domain.ErrExtraction with the parser's message.
func Extract(raw string) ([]domain.Product, error) {
	payload := productPayloadRegex.FindString(raw)
	if payload == "" {
		payload = raw
	}
	payload = strings.TrimSpace(payload)

	var listRaw json.RawMessage
	switch {
	case strings.HasPrefix(payload, "["):
		listRaw = json.RawMessage(payload)

	case strings.HasPrefix(payload, "{"):
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
		}
		inner, ok := envelope["products"]
		if !ok || !isJSONArray(inner) {
			// Valid JSON object without a usable product list: zero matches
			return nil, nil
		}
		listRaw = inner

	default:
		// Not an array or object; a bare scalar is still valid JSON and
		// counts as zero products, anything else is a hard parse failure
		var value any
		if err := json.Unmarshal([]byte(payload), &value); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
		}
		return nil, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(listRaw, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}
	return products, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}
