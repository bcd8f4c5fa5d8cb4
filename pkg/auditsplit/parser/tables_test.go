package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/auditsplit-go/pkg/auditsplit/models"
)

func TestLocateTable(t *testing.T) {
	rows := [][]string{
		{"QA Report"},
		{"", "Audit Leader summary"},
		{"", "Detailed Results"},
		{},
		{"ID", "Audit Leader", "Overall Test Result\n(after considering any applicable test result overrides)", "Notes", ""},
		{"1", "Alice", "Pass"},
		{"2", "Bob", "DNC", "late"},
		{},
		{"Footer"},
	}

	params := DefaultTableParams()
	params.Anchor = "Detailed Results"
	params.AnchorCol = 2
	params.Result = HeaderMatcher{
		Name:    "Overall Test Result (after considering any applicable test result overrides)",
		Include: []string{"overall test result", "considering", "applicable"},
		Exclude: []string{"override"},
	}

	table, err := LocateTable(rows, params)
	if err != nil {
		t.Fatalf("LocateTable failed: %v", err)
	}

	want := models.TableBounds{R1: 5, C1: 1, R2: 7, C2: 4}
	if table.Bounds != want {
		t.Errorf("Bounds = %+v, expected %+v", table.Bounds, want)
	}
	if table.LeaderCol != 2 {
		t.Errorf("LeaderCol = %d, expected 2", table.LeaderCol)
	}
	if table.ResultCol != 3 {
		t.Errorf("ResultCol = %d, expected 3", table.ResultCol)
	}
	if len(table.Header) != 4 {
		t.Errorf("Header width = %d, expected 4", len(table.Header))
	}
}

func TestLocateTableErrors(t *testing.T) {
	rows := [][]string{
		{"Audit Leader", "Status"},
		{"Alice", "Pass"},
	}

	tests := []struct {
		name     string
		params   func() TableParams
		expected error
	}{
		{
			name: "missing anchor",
			params: func() TableParams {
				p := DefaultTableParams()
				p.Anchor = "Detailed Results"
				return p
			},
			expected: ErrAnchorNotFound,
		},
		{
			name: "missing leader header",
			params: func() TableParams {
				p := DefaultTableParams()
				p.Leader = HeaderMatcher{Name: "Owner"}
				return p
			},
			expected: ErrHeaderNotFound,
		},
		{
			name:     "missing result column",
			params:   DefaultTableParams,
			expected: ErrResultColumnNotFound,
		},
	}

	for _, tt := range tests {
		_, err := LocateTable(rows, tt.params())
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: got error %v, expected %v", tt.name, err, tt.expected)
		}
	}
}

func TestLocateTableHeaderOnly(t *testing.T) {
	rows := [][]string{{"Audit Leader", "QA Result"}}

	table, err := LocateTable(rows, DefaultTableParams())
	if err != nil {
		t.Fatalf("LocateTable failed: %v", err)
	}
	if table.Bounds.DataRows() != 0 {
		t.Errorf("Expected no data rows, got %d", table.Bounds.DataRows())
	}
	if got := ExtractRecords(rows, table); len(got) != 0 {
		t.Errorf("Expected no records, got %d", len(got))
	}
}

func TestLocateTableExplicitRange(t *testing.T) {
	rows := [][]string{
		{"title"},
		{"", "Audit Leader", "QA Result"},
		{"", "Alice", "Pass"},
		{"", "Bob", "DNC"},
	}

	bounds, err := models.ParseBounds("$B$2:$C$10")
	if err != nil {
		t.Fatalf("ParseBounds failed: %v", err)
	}
	params := DefaultTableParams()
	params.Range = &bounds

	table, err := LocateTable(rows, params)
	if err != nil {
		t.Fatalf("LocateTable failed: %v", err)
	}
	if table.Bounds.R2 != 4 {
		t.Errorf("Expected R2 clipped to 4, got %d", table.Bounds.R2)
	}
	if table.LeaderCol != 2 || table.ResultCol != 3 {
		t.Errorf("Expected sheet columns 2 and 3, got %d and %d", table.LeaderCol, table.ResultCol)
	}
}

func TestFindColumn(t *testing.T) {
	matcher := HeaderMatcher{
		Name:    "Overall Test Result (after considering any applicable test result overrides)",
		Include: []string{"overall test result", "considering", "applicable"},
		Exclude: []string{"override"},
	}

	tests := []struct {
		header   []string
		expected int
	}{
		// Exact match wins even when a keyword match comes first
		{[]string{"Overall test result considering applicable", "OVERALL  TEST RESULT\n(after considering any applicable test result overrides)"}, 2},
		// Keyword fallback
		{[]string{"ID", "Overall Test Result after considering applicable rules"}, 2},
		// Excluded keyword
		{[]string{"Overall Test Result considering applicable override"}, 0},
		{[]string{}, 0},
	}

	for _, tt := range tests {
		result := FindColumn(tt.header, matcher)
		if result != tt.expected {
			t.Errorf("FindColumn(%q) = %d, expected %d", tt.header, result, tt.expected)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Audit Leader", "audit leader"},
		{"  Audit\n  Leader ", "audit leader"},
		{"", ""},
	}

	for _, tt := range tests {
		if result := NormalizeHeader(tt.input); result != tt.expected {
			t.Errorf("NormalizeHeader(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestLocateTableSpacesOnlyRow(t *testing.T) {
	rows := [][]string{
		{"ID", "Audit Leader", "QA Result"},
		{"Q-1", "Alice", "Pass"},
		{" ", "", ""},
		{"Q-3", "Bob", "DNC"},
		{},
		{"Footer"},
	}

	table, err := LocateTable(rows, DefaultTableParams())
	if err != nil {
		t.Fatalf("LocateTable failed: %v", err)
	}

	want := models.TableBounds{R1: 1, C1: 1, R2: 4, C2: 3}
	if table.Bounds != want {
		t.Errorf("Bounds = %+v, expected %+v", table.Bounds, want)
	}

	records := ExtractRecords(rows, table)
	if len(records) != 3 {
		t.Fatalf("got %d records, expected 3", len(records))
	}
	if records[1].Leader != "" || records[1].Values[0] != " " {
		t.Errorf("spaces-only row = %+v, expected a record with a blank leader", records[1])
	}
	if records[2].Leader != "Bob" || records[2].Row != 4 {
		t.Errorf("last record = %+v, expected Bob on row 4", records[2])
	}
}
