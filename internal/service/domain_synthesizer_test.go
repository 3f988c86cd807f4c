package service

import (
	"strings"
	"testing"

	"persona-engine/internal/domain"
)

func TestSynthesizePrimaryOnly(t *testing.T) {
	catalog := domain.DefaultCatalog()
	synth := NewLifeDomainSynthesizer(catalog)

	out := synth.Synthesize(domain.RankedResult{Primary: domain.PersonaDriver, PrimaryScore: 10})

	if len(out) != len(domain.AllLifeDomains) {
		t.Fatalf("expected %d domains, got %d", len(domain.AllLifeDomains), len(out))
	}
	driver, _ := catalog.Get(domain.PersonaDriver)
	for _, d := range domain.AllLifeDomains {
		if out[d] != strings.TrimSpace(driver.Templates[d]) {
			t.Fatalf("domain %s: expected bare primary template, got %q", d, out[d])
		}
		if strings.Contains(out[d], secondaryConnective) {
			t.Fatalf("domain %s: no connective without secondary", d)
		}
	}
}

func TestSynthesizeWithSecondary(t *testing.T) {
	catalog := domain.DefaultCatalog()
	synth := NewLifeDomainSynthesizer(catalog)

	out := synth.Synthesize(domain.RankedResult{
		Primary:      domain.PersonaDriver,
		PrimaryScore: 10,
		Secondaries: []domain.ScoredPersona{
			{ID: domain.PersonaSage, Score: 9},
			{ID: domain.PersonaGiver, Score: 8}, // solo la top secundaria aporta clausula
		},
	})

	sage, _ := catalog.Get(domain.PersonaSage)
	for _, d := range domain.AllLifeDomains {
		if !strings.Contains(out[d], secondaryConnective) {
			t.Fatalf("domain %s: expected connective, got %q", d, out[d])
		}
		// La clausula es la primera oracion (hasta el primer ';') de la
		// plantilla de la secundaria.
		firstSentence := sage.Templates[d]
		if i := strings.IndexByte(firstSentence, ';'); i >= 0 {
			firstSentence = firstSentence[:i]
		}
		want := lowerFirst(strings.TrimSpace(firstSentence))
		if !strings.Contains(out[d], want) {
			t.Fatalf("domain %s: expected clause %q in %q", d, want, out[d])
		}
		giver, _ := catalog.Get(domain.PersonaGiver)
		if strings.Contains(out[d], lowerFirst(firstClause(giver.Templates[d]))) {
			t.Fatalf("domain %s: second secondary must not contribute", d)
		}
	}
}

func TestFirstClause(t *testing.T) {
	if got := firstClause("One thing; another thing."); got != "One thing" {
		t.Fatalf("expected clause before ';', got %q", got)
	}
	if got := firstClause("No semicolon here."); got != "No semicolon here" {
		t.Fatalf("expected full sentence without trailing dot, got %q", got)
	}
	if got := firstClause("   "); got != "" {
		t.Fatalf("expected empty clause, got %q", got)
	}
}
