package types

import (
	"encoding/json"
	"testing"
)

func TestEditedUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantIsEdited  bool
		wantTimestamp float64
		wantErr       bool
	}{
		{"false", `false`, false, 0, false},
		{"null", `null`, false, 0, false},
		{"true without timestamp", `true`, true, 0, false},
		{"timestamp", `1697040000.0`, true, 1697040000, false},
		{"integer timestamp", `1697040000`, true, 1697040000, false},
		{"string rejected", `"yesterday"`, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Edited
			err := json.Unmarshal([]byte(tt.input), &e)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.IsEdited != tt.wantIsEdited || e.Timestamp != tt.wantTimestamp {
				t.Errorf("got %+v, want IsEdited=%v Timestamp=%v", e, tt.wantIsEdited, tt.wantTimestamp)
			}
		})
	}
}

func TestEditedInsidePost(t *testing.T) {
	raw := `{"id": "abc", "edited": 1697040000.0, "created_utc": 1697000000.0}`

	var post PostData
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !post.Edited.IsEdited || post.Edited.Timestamp != 1697040000 {
		t.Errorf("Edited = %+v", post.Edited)
	}
}

func TestListingDataCursor(t *testing.T) {
	raw := `{"after": "t3_xyz", "before": null, "children": [{"kind": "t3", "data": {"id": "a"}}]}`

	var listing ListingData
	if err := json.Unmarshal([]byte(raw), &listing); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if listing.AfterFullname != "t3_xyz" {
		t.Errorf("AfterFullname = %q, want t3_xyz", listing.AfterFullname)
	}
	if len(listing.Children) != 1 || listing.Children[0].Kind != "t3" {
		t.Errorf("children = %+v", listing.Children)
	}
}
