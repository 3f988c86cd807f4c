package service

import (
	"strings"
	"testing"

	"persona-engine/internal/domain"
)

const validAnalyzerReply = `{
	"persona_scores": {"builder": 10, "connector": 20, "dreamer": 30, "driver": 95, "explorer": 40, "giver": 5, "guardian": 15, "harmonizer": 25, "sage": 60},
	"core_values": ["ambition", "clarity", " momentum ", ""],
	"insights": ["Clear goal orientation.", "  ", "Low need for approval."]
}`

func TestParseValidReply(t *testing.T) {
	analysis, err := DefaultAnalyzerParser.Parse(validAnalyzerReply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := analysis.Scores[domain.PersonaDriver]; got != 95 {
		t.Fatalf("expected driver 95, got %v", got)
	}
	if len(analysis.Scores) != 9 {
		t.Fatalf("expected 9 scores, got %d", len(analysis.Scores))
	}
	if len(analysis.CoreValues) != 3 {
		t.Fatalf("expected blank values dropped, got %v", analysis.CoreValues)
	}
	if len(analysis.Insights) != 2 {
		t.Fatalf("expected blank insights dropped, got %v", analysis.Insights)
	}
	if analysis.FromFallback {
		t.Fatalf("parsed reply must not be marked fallback")
	}
}

func TestParseStripsFencesAndNoise(t *testing.T) {
	raw := "```json\n" + validAnalyzerReply + "\n```"
	if _, err := DefaultAnalyzerParser.Parse(raw); err != nil {
		t.Fatalf("fenced reply should parse: %v", err)
	}

	raw = "Sure! Here is the analysis you asked for:\n" + validAnalyzerReply + "\nLet me know if you need more."
	if _, err := DefaultAnalyzerParser.Parse(raw); err != nil {
		t.Fatalf("reply with prose around json should parse: %v", err)
	}
}

func TestParseMissingPersonaFails(t *testing.T) {
	raw := `{"persona_scores": {"driver": 90}, "core_values": [], "insights": []}`
	if _, err := DefaultAnalyzerParser.Parse(raw); err == nil {
		t.Fatalf("expected error when persona scores are incomplete")
	}
	if _, err := DefaultAnalyzerParser.Parse(strings.ReplaceAll(validAnalyzerReply, `"sage": 60`, `"other": 60`)); err == nil {
		t.Fatalf("expected error when a canonical persona is missing")
	}
}

func TestParseClampsScores(t *testing.T) {
	raw := strings.ReplaceAll(validAnalyzerReply, `"driver": 95`, `"driver": 250`)
	raw = strings.ReplaceAll(raw, `"giver": 5`, `"giver": -10`)

	analysis, err := DefaultAnalyzerParser.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Scores[domain.PersonaDriver] != 100 {
		t.Fatalf("expected driver clamped to 100, got %v", analysis.Scores[domain.PersonaDriver])
	}
	if analysis.Scores[domain.PersonaGiver] != 0 {
		t.Fatalf("expected giver clamped to 0, got %v", analysis.Scores[domain.PersonaGiver])
	}
}

func TestParseGarbageFails(t *testing.T) {
	for _, raw := range []string{"", "   ", "not json at all", "{broken", `[1, 2, 3]`} {
		if _, err := DefaultAnalyzerParser.Parse(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
