package domain

import (
	"encoding/json"
	"net/url"
	"slices"
	"testing"
)

func TestParseBatchRequest_JSONAndFlatAreEquivalent(t *testing.T) {
	t.Parallel()

	fromJSON := ParseBatchRequest(url.Values{
		ParamBatchData: {`{"action":"delete","idx":["1","2"],"all_elements":false}`},
	})
	fromFlat := ParseBatchRequest(url.Values{
		"action":       {"delete"},
		"idx[]":        {"1", "2"},
		"all_elements": {"false"},
	})

	if fromJSON.Action != fromFlat.Action {
		t.Errorf("Action = %q vs %q", fromJSON.Action, fromFlat.Action)
	}
	if !slices.Equal(fromJSON.SelectedIDs, fromFlat.SelectedIDs) {
		t.Errorf("SelectedIDs = %v vs %v", fromJSON.SelectedIDs, fromFlat.SelectedIDs)
	}
	if fromJSON.AllElements != fromFlat.AllElements {
		t.Errorf("AllElements = %v vs %v", fromJSON.AllElements, fromFlat.AllElements)
	}
	if fromJSON.Confirmed || fromFlat.Confirmed {
		t.Error("Confirmed = true, want false for both")
	}
}

func TestParseBatchRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  url.Values
		action  string
		ids     []string
		all     bool
		confirm bool
	}{
		{
			name:   "empty defaults",
			params: url.Values{},
			ids:    []string{},
		},
		{
			name:   "flat idx without brackets",
			params: url.Values{"action": {"publish"}, "idx": {"3"}},
			action: "publish",
			ids:    []string{"3"},
		},
		{
			name:   "all elements truthy spelling",
			params: url.Values{"action": {"delete"}, "all_elements": {"on"}},
			action: "delete",
			ids:    []string{},
			all:    true,
		},
		{
			name:    "confirmation marker",
			params:  url.Values{"action": {"delete"}, "idx[]": {"1"}, "confirmation": {"ok"}},
			action:  "delete",
			ids:     []string{"1"},
			confirm: true,
		},
		{
			name: "json overwrites flat fields",
			params: url.Values{
				"action": {"publish"},
				"data":   {`{"action":"delete","idx":[4,5],"all_elements":true}`},
			},
			action: "delete",
			ids:    []string{"4", "5"},
			all:    true,
		},
		{
			name:   "invalid json falls back to flat fields",
			params: url.Values{"action": {"publish"}, "idx[]": {"9"}, "data": {"{broken"}},
			action: "publish",
			ids:    []string{"9"},
		},
		{
			name:   "blank ids are dropped",
			params: url.Values{"action": {"delete"}, "idx[]": {"", "2"}},
			action: "delete",
			ids:    []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseBatchRequest(tt.params)
			if got.Action != tt.action {
				t.Errorf("Action = %q, want %q", got.Action, tt.action)
			}
			if !slices.Equal(got.SelectedIDs, tt.ids) {
				t.Errorf("SelectedIDs = %v, want %v", got.SelectedIDs, tt.ids)
			}
			if got.AllElements != tt.all {
				t.Errorf("AllElements = %v, want %v", got.AllElements, tt.all)
			}
			if got.Confirmed != tt.confirm {
				t.Errorf("Confirmed = %v, want %v", got.Confirmed, tt.confirm)
			}
		})
	}
}

func TestParseBatchRequest_ExtraFieldsPassThrough(t *testing.T) {
	t.Parallel()

	got := ParseBatchRequest(url.Values{
		"data":   {`{"action":"move","idx":["1"],"target":"archive"}`},
		"filter": {"kept"},
	})

	if v := got.Params.Get("target"); v != "archive" {
		t.Errorf("Params[target] = %q, want %q", v, "archive")
	}
	if v := got.Params.Get("filter"); v != "kept" {
		t.Errorf("Params[filter] = %q, want %q", v, "kept")
	}
}

func TestBatchRequest_PayloadRoundTrip(t *testing.T) {
	t.Parallel()

	orig := ParseBatchRequest(url.Values{
		"action":      {"delete"},
		"idx[]":       {"1", "2"},
		"target":      {"archive"},
		"_csrf_token": {"secret"},
	})

	payload, err := orig.Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if _, ok := decoded["_csrf_token"]; ok {
		t.Error("payload leaks the csrf token")
	}

	replay := ParseBatchRequest(url.Values{"data": {payload}, "confirmation": {"ok"}})
	if replay.Action != orig.Action || !slices.Equal(replay.SelectedIDs, orig.SelectedIDs) {
		t.Errorf("replay = %+v, want action/ids of %+v", replay, orig)
	}
	if replay.Params.Get("target") != "archive" {
		t.Errorf("replay lost extra field, got %v", replay.Params)
	}
	if !replay.Confirmed {
		t.Error("replay.Confirmed = false, want true")
	}
}

func TestDefaultRelevance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []string
		all  bool
		want bool
	}{
		{name: "nothing selected", ids: nil, all: false, want: false},
		{name: "ids selected", ids: []string{"1"}, all: false, want: true},
		{name: "all elements", ids: nil, all: true, want: true},
		{name: "both", ids: []string{"1"}, all: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := BatchRequest{SelectedIDs: tt.ids, AllElements: tt.all}
			got := BatchActionSpec{Name: "any"}.Evaluate(req)
			if got.IsRelevant() != tt.want {
				t.Errorf("Evaluate() relevant = %v, want %v", got.IsRelevant(), tt.want)
			}
			if got.IsRelevant() != !req.IsEmpty() {
				t.Errorf("relevance disagrees with IsEmpty()")
			}
		})
	}
}

func TestBatchActionSpec_CustomRelevance(t *testing.T) {
	t.Parallel()

	spec := BatchActionSpec{
		Name: "merge",
		Relevance: func(ids []string, _ bool, _ BatchRequest) Relevance {
			if len(ids) < 2 {
				return NotRelevantBecause("flash_batch_merge_needs_two")
			}
			return Relevant()
		},
	}

	got := spec.Evaluate(BatchRequest{SelectedIDs: []string{"1"}})
	if got.IsRelevant() {
		t.Fatal("IsRelevant() = true, want false")
	}
	if key := got.MessageKey("flash_batch_empty"); key != "flash_batch_merge_needs_two" {
		t.Errorf("MessageKey() = %q, want custom key", key)
	}
	if key := NotRelevant().MessageKey("flash_batch_empty"); key != "flash_batch_empty" {
		t.Errorf("NotRelevant().MessageKey() = %q, want default", key)
	}
}

func TestBatchActionSpec_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	no := false
	if !(BatchActionSpec{}).RequiresConfirmation() {
		t.Error("nil AskConfirmation should default to true")
	}
	if (BatchActionSpec{AskConfirmation: &no}).RequiresConfirmation() {
		t.Error("explicit false should disable confirmation")
	}
}
