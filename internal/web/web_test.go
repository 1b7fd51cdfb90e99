package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
)

func TestHelpers(t *testing.T) {
	if got := Money(decimal.RequireFromString("25.5")); got != "$25.50" {
		t.Fatalf("money: %s", got)
	}
	if got := ClockLabel("14:30:00"); got != "2:30 PM" {
		t.Fatalf("clock label: %s", got)
	}
	if got := ClockInput("09:05:00"); got != "09:05" {
		t.Fatalf("clock input: %s", got)
	}
	if got := StatusLabel("no_show"); got != "No-show" {
		t.Fatalf("status label: %s", got)
	}
	if got := Weekdays(); got[0].Name != "Sunday" || got[6].Value != 6 {
		t.Fatalf("weekdays: %+v", got)
	}
	if got := Initial("  ana"); got != "A" {
		t.Fatalf("initial: %s", got)
	}
}

func TestMarkdown_DropsRawHTML(t *testing.T) {
	out := string(Markdown(goldmark.New(), "**Open** daily <script>alert(1)</script>"))

	if !strings.Contains(out, "<strong>Open</strong>") {
		t.Fatalf("expected emphasis rendered, got %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html must not pass through: %s", out)
	}
}

func TestTemplates_ParseAndRenderBase(t *testing.T) {
	tmpl, err := Templates(Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "base", map[string]any{
		"Page":    "error",
		"Title":   "Not found",
		"Message": "Business not found",
		"Session": anonymousView{},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "Business not found") {
		t.Fatalf("expected message in output")
	}
}

type anonymousView struct{}

func (anonymousView) IsAuthenticated() bool { return false }
