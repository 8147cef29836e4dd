package pagination

import (
	"encoding/base64"
	"errors"

	"github.com/goccy/go-json"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor points at the last item of the previous page.
type Cursor struct {
	Key string `json:"key"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil || cursor.Key == "" {
		return nil, ErrInvalidCursor
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Page is one slice of an ordered listing.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// Paginate returns the items following cursor in an ordered slice. key must be
// unique per item. An unknown cursor key yields ErrInvalidCursor.
func Paginate[T any](items []T, key func(T) string, cursor *Cursor, limit int) (Page[T], error) {
	start := 0
	if cursor != nil {
		start = -1
		for i, item := range items {
			if key(item) == cursor.Key {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page[T]{}, ErrInvalidCursor
		}
	}

	limit = NormalizeLimit(limit)
	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	page := Page[T]{Items: items[start:end], HasMore: end < len(items)}
	if page.HasMore && end > start {
		page.NextCursor = (&Cursor{Key: key(items[end-1])}).Encode()
	}
	return page, nil
}
