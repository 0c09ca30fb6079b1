package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ------------------------------
// Response Types
// ------------------------------

// Response is a successful reply of the service.
//
// Payload is the decoded body with numbers kept as json.Number. When the
// request carried an access token it is re-attached under "accesstoken"
// and mirrored in AccessToken.
type Response struct {
	StatusCode  int
	AccessToken string
	Payload     map[string]any
	Raw         []byte
}

// Decode unmarshals the payload (including a re-attached token) into v.
func (r *Response) Decode(v any) error {
	if r == nil {
		return fmt.Errorf("decode: nil response")
	}
	buf, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// String returns the payload value under key rendered as a string, or "".
func (r *Response) String(key string) string {
	if r == nil {
		return ""
	}
	switch v := r.Payload[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Int returns the payload value under key as an integer. Numeric strings
// are accepted; the service sends ids both ways.
func (r *Response) Int(key string) (int64, bool) {
	if r == nil {
		return 0, false
	}
	switch v := r.Payload[key].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// Items returns the list entries of a list payload. The service encodes
// lists as objects keyed "0", "1", ... next to scalar metadata such as
// httpstatuscode; only object values under numeric keys are returned, in
// index order.
func (r *Response) Items() []map[string]any {
	if r == nil {
		return nil
	}
	type indexed struct {
		i    int
		item map[string]any
	}
	var found []indexed
	for k, v := range r.Payload {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			continue
		}
		if m, ok := v.(map[string]any); ok {
			found = append(found, indexed{i: i, item: m})
		}
	}
	sort.Slice(found, func(a, b int) bool { return found[a].i < found[b].i })
	out := make([]map[string]any, len(found))
	for n, f := range found {
		out[n] = f.item
	}
	return out
}
