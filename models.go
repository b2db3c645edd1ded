package hovercode

import (
	"encoding/json"
	"math"
)

// TagInput identifies a tag to add to a QR code, by title or by ID. A tag
// with an unknown title may be created by the API; an unknown ID is ignored.
type TagInput struct {
	Title Optional[string]
	ID    Optional[string]
}

// TagTitle returns a TagInput that adds a tag by title.
func TagTitle(title string) TagInput {
	return TagInput{Title: Some(title)}
}

// TagID returns a TagInput that adds an existing tag by ID.
func TagID(id string) TagInput {
	return TagInput{ID: Some(id)}
}

func (t TagInput) requestBody() (map[string]any, error) {
	if !t.Title.IsSet() && !t.ID.IsSet() {
		return nil, validationError("TagInput requires at least one of: title, id.", nil)
	}
	body := make(map[string]any, 2)
	t.Title.put(body, "title")
	t.ID.put(body, "id")
	return body, nil
}

// Page is one page of a paginated list response.
type Page struct {
	// Count is the total number of items across all pages.
	Count int
	// Next is the URL of the next page, nil on the last page.
	Next *string
	// Previous is the URL of the previous page, nil on the first page.
	Previous *string
	Results  []map[string]any
}

// HasNext reports whether another page follows.
func (p *Page) HasNext() bool {
	return p.Next != nil
}

// Map converts the page back to its JSON object form.
func (p *Page) Map() map[string]any {
	results := make([]any, len(p.Results))
	for i, r := range p.Results {
		results[i] = r
	}
	return map[string]any{
		"count":    p.Count,
		"next":     stringOrNil(p.Next),
		"previous": stringOrNil(p.Previous),
		"results":  results,
	}
}

// ParsePage validates a list payload, as returned by ListForWorkspace or
// GetActivity, and converts it to a Page. count must be an integer, next and
// previous a string or null, and results a list of objects.
func ParsePage(payload map[string]any) (*Page, error) {
	count, ok := integer(payload["count"])
	if !ok {
		return nil, validationError("Expected integer 'count' in paginated response.", payload)
	}

	next, ok := optionalString(payload["next"])
	if !ok {
		return nil, validationError("Expected 'next' to be a string URL or null.", payload)
	}
	previous, ok := optionalString(payload["previous"])
	if !ok {
		return nil, validationError("Expected 'previous' to be a string URL or null.", payload)
	}

	raw, ok := payload["results"].([]any)
	if !ok {
		return nil, validationError("Expected list 'results' in paginated response.", payload)
	}
	results := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, validationError("Expected each item in 'results' to be an object.", payload)
		}
		results = append(results, obj)
	}

	return &Page{Count: count, Next: next, Previous: previous, Results: results}, nil
}

func integer(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func optionalString(v any) (*string, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case string:
		return &s, true
	default:
		return nil, false
	}
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
