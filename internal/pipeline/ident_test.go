package pipeline

import (
	"testing"

	"github.com/akorchak/patentgrab/internal/model"
)

func TestCleanPatentID(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"7654321", "7654321"},
		{"US 7,654,321", "US7654321"},
		{"US-6285999-B1", "US6285999B1"},
		{"us7654321", "us7654321"},
		{" 7654321 \n", "7654321"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanPatentID(tt.raw); got != tt.want {
			t.Errorf("CleanPatentID(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPatentURL(t *testing.T) {
	src := model.DefaultConfig().Source

	got := PatentURL(src, "7654321")
	want := "https://patents.google.com/patent/US7654321B2/en"
	if got != want {
		t.Errorf("PatentURL = %q, want %q", got, want)
	}
}

func TestPatentURLCustomSource(t *testing.T) {
	src := model.SourceConfig{
		BaseURL:      "http://localhost/patent/",
		Jurisdiction: "EP",
		KindCode:     "A1",
		Locale:       "de",
	}

	got := PatentURL(src, "111222")
	if want := "http://localhost/patent/EP111222A1/de"; got != want {
		t.Errorf("PatentURL = %q, want %q", got, want)
	}
}
