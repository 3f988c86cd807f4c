package domain

import "testing"

func TestDefaultCatalogComplete(t *testing.T) {
	catalog := DefaultCatalog()

	if got := len(catalog.All()); got != 9 {
		t.Fatalf("expected 9 personas, got %d", got)
	}

	for _, id := range AllPersonaIDs {
		p, ok := catalog.Get(id)
		if !ok {
			t.Fatalf("missing persona %s", id)
		}
		if p.DisplayName == "" || p.TypeLabel == "" || p.Description == "" {
			t.Fatalf("persona %s has incomplete identity", id)
		}
		if len(p.Traits) == 0 || len(p.CoreValues) == 0 || len(p.CoreNeeds) == 0 {
			t.Fatalf("persona %s has incomplete trait data", id)
		}
		if len(p.Keywords) == 0 {
			t.Fatalf("persona %s needs keywords for the fallback heuristic", id)
		}
		if p.ScoringWeight <= 0 {
			t.Fatalf("persona %s scoring weight must be positive, got %v", id, p.ScoringWeight)
		}
		for _, d := range AllLifeDomains {
			if p.Templates[d] == "" {
				t.Fatalf("persona %s missing template for domain %s", id, d)
			}
		}
	}
}

func TestCatalogOrderIsCanonical(t *testing.T) {
	catalog := DefaultCatalog()
	all := catalog.All()
	for i, p := range all {
		if p.ID != AllPersonaIDs[i] {
			t.Fatalf("position %d: expected %s, got %s", i, AllPersonaIDs[i], p.ID)
		}
	}
	for i := 1; i < len(AllPersonaIDs); i++ {
		if !(AllPersonaIDs[i-1] < AllPersonaIDs[i]) {
			t.Fatalf("AllPersonaIDs must stay alphabetical: %s before %s", AllPersonaIDs[i-1], AllPersonaIDs[i])
		}
	}
}

func TestNewCatalogDefaultsWeight(t *testing.T) {
	catalog := NewCatalog([]Persona{{ID: PersonaDriver}})
	p, _ := catalog.Get(PersonaDriver)
	if p.ScoringWeight != 1.0 {
		t.Fatalf("expected default scoring weight 1.0, got %v", p.ScoringWeight)
	}
}

func TestDefaultAnswerPersonaMapCoversAllPersonas(t *testing.T) {
	m := DefaultAnswerPersonaMap()
	weights := DefaultPhaseWeights()

	for phase := range weights {
		byAnswer, ok := m[phase]
		if !ok {
			t.Fatalf("phase %s missing from answer map", phase)
		}
		covered := make(map[PersonaID]bool)
		for _, id := range byAnswer {
			covered[id] = true
		}
		for _, id := range AllPersonaIDs {
			if !covered[id] {
				t.Fatalf("phase %s has no answer for persona %s", phase, id)
			}
		}
	}

	if _, ok := m.Resolve(PhaseInitial, "take_the_lead"); !ok {
		t.Fatalf("expected known answer to resolve")
	}
	if _, ok := m.Resolve(PhaseInitial, "nope"); ok {
		t.Fatalf("unknown answer must not resolve")
	}
	if _, ok := m.Resolve(Phase("bonus"), "take_the_lead"); ok {
		t.Fatalf("unknown phase must not resolve")
	}
}

func TestDefaultQuestionCatalog(t *testing.T) {
	qc := DefaultQuestionCatalog()
	weights := DefaultPhaseWeights()

	seenPhases := make(map[Phase]bool)
	hasFreeText := false
	for _, q := range qc.All() {
		if _, ok := weights[q.Phase]; !ok {
			t.Fatalf("question %s has unweighted phase %s", q.ID, q.Phase)
		}
		seenPhases[q.Phase] = true
		if q.FreeText {
			hasFreeText = true
		}
	}
	for phase := range weights {
		if !seenPhases[phase] {
			t.Fatalf("no question for phase %s", phase)
		}
	}
	if !hasFreeText {
		t.Fatalf("catalog needs at least one free-text question")
	}
}
