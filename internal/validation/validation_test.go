/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package validation

import (
	"reflect"
	"strings"
	"testing"
)

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "in range", raw: "10", want: 10},
		{name: "lower bound", raw: "1", want: 1},
		{name: "upper bound", raw: "100", want: 100},
		{name: "clamped up", raw: "0", want: 1},
		{name: "clamped up from negative", raw: "-5", want: 1},
		{name: "clamped down", raw: "150", want: 100},
		{name: "surrounding whitespace", raw: " 25 ", want: 25},
		{name: "not an integer", raw: "abc", wantErr: true},
		{name: "float", raw: "2.5", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Limit(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Limit(%q) expected error, got %d", tt.raw, got)
				}
				if !strings.Contains(err.Message, "integer") {
					t.Errorf("Limit(%q) error %q does not mention integer", tt.raw, err.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("Limit(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Limit(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "zero accepted", raw: "0", want: 0},
		{name: "positive", raw: "30", want: 30},
		{name: "no upper clamp", raw: "100000", want: 100000},
		{name: "negative rejected", raw: "-1", wantErr: true},
		{name: "not an integer", raw: "week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Days(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Days(%q) expected error, got %d", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Days(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Days(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "published", raw: "published", want: "published"},
		{name: "draft upper-cased", raw: "DRAFT", want: "draft"},
		{name: "scheduled mixed case", raw: "Scheduled", want: "scheduled"},
		{name: "all", raw: "all", want: "all"},
		{name: "unknown", raw: "archived", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Status(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Status(%q) expected error, got %q", tt.raw, got)
				}
				// The error must enumerate the valid set
				for _, valid := range []string{"published", "draft", "scheduled", "all"} {
					if !strings.Contains(err.Message, valid) {
						t.Errorf("Status(%q) error %q does not enumerate %q", tt.raw, err.Message, valid)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Status(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Status(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFeatured(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    bool
		wantErr bool
	}{
		{name: "true", raw: "true", want: true},
		{name: "one", raw: "1", want: true},
		{name: "yes upper-cased", raw: "YES", want: true},
		{name: "mixed case true", raw: "True", want: true},
		{name: "false", raw: "false", want: false},
		{name: "zero", raw: "0", want: false},
		{name: "no", raw: "no", want: false},
		{name: "anything else", raw: "maybe", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Featured(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Featured(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Featured(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Featured(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestISODate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "bare date", raw: "2024-01-01"},
		{name: "datetime with Z", raw: "2024-01-01T00:00:00Z"},
		{name: "datetime with offset", raw: "2024-01-01T12:30:00+02:00"},
		{name: "naive datetime", raw: "2024-01-01T12:30:00"},
		{name: "not a date", raw: "not-a-date", wantErr: true},
		{name: "wrong order", raw: "01-01-2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ISODate("published_after", tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ISODate(%q) expected error, got %q", tt.raw, got)
				}
				if !strings.Contains(err.Message, "ISO-8601") {
					t.Errorf("ISODate(%q) error %q does not name the ISO format", tt.raw, err.Message)
				}
				if !strings.Contains(err.Message, "published_after") {
					t.Errorf("ISODate(%q) error %q does not name the field", tt.raw, err.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("ISODate(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.raw {
				t.Errorf("ISODate(%q) = %q, want the original string back", tt.raw, got)
			}
		})
	}
}

func TestPostID(t *testing.T) {
	if _, err := PostID("  abc123  "); err != nil {
		t.Errorf("PostID with surrounding whitespace unexpectedly rejected: %v", err)
	}
	if id, _ := PostID(" abc123 "); id != "abc123" {
		t.Errorf("PostID did not trim, got %q", id)
	}
	if _, err := PostID("   "); err == nil {
		t.Error("PostID accepted a whitespace-only identifier")
	}
	if _, err := PostID(""); err == nil {
		t.Error("PostID accepted an empty identifier")
	}
}

func TestPostIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{name: "blanks dropped", raw: []string{"", " ", "abc"}, want: []string{"abc"}},
		{name: "all blank", raw: []string{"", " "}, wantErr: true},
		{name: "empty list", raw: []string{}, wantErr: true},
		{name: "trimmed", raw: []string{" a ", "b"}, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PostIDs(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PostIDs(%v) expected error, got %v", tt.raw, got)
				}
				if !strings.Contains(err.Message, "at least one valid ID") {
					t.Errorf("PostIDs(%v) error %q missing expected phrase", tt.raw, err.Message)
				}
				return
			}
			if err != nil {
				t.Fatalf("PostIDs(%v) unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PostIDs(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
