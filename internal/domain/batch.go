package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
)

// Batch parameter names.
const (
	ParamBatchData   = "data"
	ParamBatchAction = "action"
	ParamBatchIDs    = "idx"
	ParamAllElements = "all_elements"

	paramBatchIDsArray = "idx[]"

	// ConfirmationOK is the marker value carried by a confirmed resubmission.
	ConfirmationOK = "ok"
)

// BatchRequest is the normalized batch payload. It is built once by
// ParseBatchRequest and passed by value through relevance, confirmation and
// execution.
type BatchRequest struct {
	Action      string
	SelectedIDs []string
	AllElements bool
	Confirmed   bool

	// Params is the merged parameter space: the flat request parameters
	// overwritten by the fields of the JSON payload, if any. Extra fields
	// reach the executing handler unchanged.
	Params url.Values
}

// IsEmpty reports whether the request selects nothing at all.
func (b BatchRequest) IsEmpty() bool {
	return len(b.SelectedIDs) == 0 && !b.AllElements
}

// WithSelection returns a copy of b carrying a different selection.
func (b BatchRequest) WithSelection(ids []string, all bool) BatchRequest {
	b.SelectedIDs = slices.Clone(ids)
	b.AllElements = all
	return b
}

// Payload encodes the request as the JSON blob embedded in the confirmation
// page, so the confirmed submission replays it with only the marker added.
// Transport-only fields (csrf token, the raw data field, the marker itself)
// are excluded.
func (b BatchRequest) Payload() (string, error) {
	out := map[string]any{
		ParamBatchAction: b.Action,
		ParamBatchIDs:    nonNil(b.SelectedIDs),
		ParamAllElements: b.AllElements,
	}
	for key, vals := range b.Params {
		switch key {
		case ParamBatchAction, ParamBatchIDs, paramBatchIDsArray, ParamAllElements,
			ParamBatchData, ParamConfirmation, ParamCsrfToken:
			continue
		}
		if len(vals) == 1 {
			out[key] = vals[0]
		} else {
			out[key] = vals
		}
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding batch payload: %w", err)
	}
	return string(raw), nil
}

// ParseBatchRequest normalizes the two transports of a batch submission. A
// valid JSON object in the data field is merged over the flat parameters;
// otherwise action, idx[] (or idx) and all_elements are read directly.
// Confirmation is read from the flat parameters in both cases.
func ParseBatchRequest(params url.Values) BatchRequest {
	merged := cloneValues(params)

	if raw := params.Get(ParamBatchData); raw != "" {
		if fields, ok := decodeBatchData(raw); ok {
			for key, vals := range fields {
				merged[key] = vals
			}
		}
	}

	ids := merged[paramBatchIDsArray]
	if vals, ok := merged[ParamBatchIDs]; ok {
		ids = vals
	}

	return BatchRequest{
		Action:      merged.Get(ParamBatchAction),
		SelectedIDs: compactIDs(ids),
		AllElements: ParseBool(merged.Get(ParamAllElements)),
		Confirmed:   params.Get(ParamConfirmation) == ConfirmationOK,
		Params:      merged,
	}
}

func decodeBatchData(raw string) (url.Values, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}

	out := url.Values{}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[k] = flatten(obj[k])
	}
	return out, true
}

func flatten(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{""}
	case string:
		return []string{t}
	case bool:
		return []string{strconv.FormatBool(t)}
	case json.Number:
		return []string{t.String()}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, flatten(item)...)
		}
		return out
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return []string{fmt.Sprint(t)}
		}
		return []string{string(raw)}
	}
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = slices.Clone(vals)
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// Relevance is the outcome of a batch relevance predicate: relevant, not
// relevant, or not relevant with a specific message key.
type Relevance struct {
	relevant bool
	key      string
}

// Relevant lets the batch action proceed.
func Relevant() Relevance { return Relevance{relevant: true} }

// NotRelevant stops the batch action with the default message.
func NotRelevant() Relevance { return Relevance{} }

// NotRelevantBecause stops the batch action with key as the message. The key
// is used as a translation key unchanged.
func NotRelevantBecause(key string) Relevance { return Relevance{key: key} }

// IsRelevant reports whether the action may proceed.
func (r Relevance) IsRelevant() bool { return r.relevant }

// MessageKey returns the predicate's key, or def when it returned none.
func (r Relevance) MessageKey(def string) string {
	if r.key == "" {
		return def
	}
	return r.key
}

// RelevanceFunc decides whether a batch action applies to a selection.
type RelevanceFunc func(selectedIDs []string, allElements bool, req BatchRequest) Relevance

// DefaultRelevance is relevant iff something is selected or all elements are.
func DefaultRelevance(selectedIDs []string, allElements bool, _ BatchRequest) Relevance {
	if len(selectedIDs) > 0 || allElements {
		return Relevant()
	}
	return NotRelevant()
}

// BatchActionSpec describes one registered batch action.
type BatchActionSpec struct {
	Name              string
	Label             string
	TranslationDomain string

	// AskConfirmation defaults to true when nil.
	AskConfirmation *bool

	// Relevance defaults to DefaultRelevance when nil.
	Relevance RelevanceFunc
}

// RequiresConfirmation reports whether execution needs confirmation=ok.
func (s BatchActionSpec) RequiresConfirmation() bool {
	return s.AskConfirmation == nil || *s.AskConfirmation
}

// Evaluate runs the action's relevance predicate (or the default one).
func (s BatchActionSpec) Evaluate(req BatchRequest) Relevance {
	fn := s.Relevance
	if fn == nil {
		fn = DefaultRelevance
	}
	return fn(req.SelectedIDs, req.AllElements, req)
}
