package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"skillpath/career-advisor/internal/apperr"
	"skillpath/career-advisor/internal/models"
)

var numberedItemPattern = regexp.MustCompile(`\d+\.\s*`)

// StripCodeFences removes a leading and trailing markdown code fence (with
// or without a language tag) around text. Stripping is lenient: only the
// outermost fence lines are touched, backticks inside the content survive.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}

// DecodeStrict parses a strict-schema model reply into target after fence
// stripping. There are no repair heuristics: anything json.Unmarshal rejects
// is classified as malformed output, with the raw reply kept in the error
// for diagnostics.
func DecodeStrict(raw string, target any) error {
	cleaned := StripCodeFences(raw)

	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return fmt.Errorf("%w: %v\nresponse: %s", apperr.ErrMalformedOutput, err, raw)
	}

	return nil
}

// SplitNumberedList segments a numbered-list reply into trimmed items,
// dropping empty entries. It tolerates numbering variations and does not
// assume a fixed count.
func SplitNumberedList(text string) []string {
	var items []string
	for _, part := range numberedItemPattern.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// SegmentListReply applies fence stripping and numbered-list segmentation
// to a semi-structured reply. A reply that yields zero items is classified
// as malformed output; anything else is accepted best-effort.
func SegmentListReply(raw string) ([]string, error) {
	items := SplitNumberedList(StripCodeFences(raw))
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no list items found\nresponse: %s", apperr.ErrMalformedOutput, raw)
	}
	return items, nil
}

// ParseListItems splits each segmented item into a display name and the URL
// found in its last parenthesized group. Items without a recognizable URL
// keep the full text as name and an empty URL.
func ParseListItems(items []string) []models.ListItem {
	parsed := make([]models.ListItem, 0, len(items))

	for _, item := range items {
		name, url := item, ""
		if open := strings.LastIndex(item, "("); open != -1 {
			if length := strings.Index(item[open:], ")"); length != -1 {
				candidate := strings.TrimSpace(item[open+1 : open+length])
				if strings.HasPrefix(candidate, "http") {
					name = strings.TrimSpace(item[:open])
					url = candidate
				}
			}
		}
		parsed = append(parsed, models.ListItem{Name: name, URL: url})
	}

	return parsed
}
