package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/yield/rank"
	"github.com/etnz/yield/trend"
)

func TestDecodeRecords(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		path    string
		want    int
		wantErr bool
	}{
		{"array", `[{"date":"2025-01-02","close":1},{"date":"2025-01-03","close":2}]`, "", 2, false},
		{"jsonl", "{\"date\":\"2025-01-02\",\"close\":1}\n{\"date\":\"2025-01-03\",\"close\":2}\n", "", 2, false},
		{"empty", "  \n", "", 0, false},
		{"path", `{"prices":[{"date":"2025-01-02","close":1}]}`, "$.prices", 1, false},
		{"path to a single record", `{"last":{"date":"2025-01-02","close":1}}`, "$.last", 1, false},
		{"unknown path", `{"prices":[]}`, "$.missing", 0, true},
		{"invalid", `[{"date":`, "", 0, true},
		{"invalid date", `[{"date":"01/02/2025","close":1}]`, "", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeRecords[trend.PricePoint](strings.NewReader(tc.content), tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("decodeRecords() error = %v want error %v", err, tc.wantErr)
			}
			if len(got) != tc.want {
				t.Errorf("decodeRecords() = %d records want %d", len(got), tc.want)
			}
		})
	}
}

func TestDecodeEntitiesValidation(t *testing.T) {
	if _, err := decodeRecords[rank.Entity](strings.NewReader(`[{"metrics":{"yield":1}}]`), ""); err == nil {
		t.Errorf("decodeRecords(entity without id) error = nil want an error")
	}
}

func TestTickerOf(t *testing.T) {
	for in, want := range map[string]string{
		"data/QQQX.json":   "QQQX",
		"SPY.prices.jsonl": "SPY.prices",
		"-":                "stdin",
		"":                 "stdin",
	} {
		if got := tickerOf(in); got != want {
			t.Errorf("tickerOf(%q) = %q want %q", in, got, want)
		}
	}
}
