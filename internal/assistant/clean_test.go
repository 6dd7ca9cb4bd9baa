package assistant

import (
	"reflect"
	"testing"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips bold markers", "**Answer:** the speaker says yes", "Answer: the speaker says yes"},
		{"trims whitespace", "  \n answer \t", "answer"},
		{"empty", "", ""},
		{"only markers", "****", ""},
		{"plain text untouched", "plain answer", "plain answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanResponse(tt.input); got != tt.want {
				t.Errorf("cleanResponse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTopics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "Cats, Dogs", []string{"Cats", "Dogs"}},
		{"numbered list", "1. Cats, 2. Dogs", []string{"Cats", "Dogs"}},
		{"bulleted lines", "- Cats,\n* Dogs", []string{"Cats", "Dogs"}},
		{"extra spaces and empties", " Cats ,, Dogs , ", []string{"Cats", "Dogs"}},
		{"order preserved", "Zebra, Apple, Mango", []string{"Zebra", "Apple", "Mango"}},
		{"bold markers removed", "**Cats**, **Dogs**", []string{"Cats", "Dogs"}},
		{"bold wrapping numbered items", "**1. Cats**, 2. Dogs", []string{"Cats", "Dogs"}},
		{"bold wrapping bullet", "**- Cats**, Dogs", []string{"Cats", "Dogs"}},
		{"empty input", "", []string{}},
		{"whitespace only", "  \n ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTopics(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTopics(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
