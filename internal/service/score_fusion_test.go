package service

import (
	"math"
	"testing"

	"persona-engine/internal/domain"
)

func TestNewFusionConfigValidation(t *testing.T) {
	if _, err := NewFusionConfig(0.6, 0.4); err != nil {
		t.Fatalf("valid weights rejected: %v", err)
	}
	if _, err := NewFusionConfig(0.6, 0.5); err == nil {
		t.Fatalf("expected error when weights do not sum to 1.0")
	}
	if _, err := NewFusionConfig(-0.2, 1.2); err == nil {
		t.Fatalf("expected error for negative weight")
	}
}

func TestFuseWithoutTextVector(t *testing.T) {
	fusion := NewScoreFusion(DefaultFusionConfig())

	mc := vectorWith(map[domain.PersonaID]float64{domain.PersonaDriver: 10})
	combined := fusion.Fuse(mc, nil)

	if math.Abs(combined[domain.PersonaDriver]-10) > 1e-9 {
		t.Fatalf("expected pass-through without text vector, got %v", combined[domain.PersonaDriver])
	}
	// Pass-through pero por valor: mutar la salida no toca la entrada.
	combined[domain.PersonaDriver] = 999
	if mc[domain.PersonaDriver] != 10 {
		t.Fatalf("fusion output must not alias its input")
	}
}

func TestFuseWeightedMerge(t *testing.T) {
	fusion := NewScoreFusion(DefaultFusionConfig())

	mc := vectorWith(map[domain.PersonaID]float64{domain.PersonaDriver: 50, domain.PersonaSage: 10})
	text := vectorWith(map[domain.PersonaID]float64{domain.PersonaDriver: 100, domain.PersonaGiver: 40})

	combined := fusion.Fuse(mc, text)

	if got := combined[domain.PersonaDriver]; math.Abs(got-(50*0.6+100*0.4)) > 1e-9 {
		t.Fatalf("driver: expected 70, got %v", got)
	}
	if got := combined[domain.PersonaSage]; math.Abs(got-6) > 1e-9 {
		t.Fatalf("sage: expected 6, got %v", got)
	}
	if got := combined[domain.PersonaGiver]; math.Abs(got-16) > 1e-9 {
		t.Fatalf("giver: expected 16, got %v", got)
	}
	if len(combined) != 9 {
		t.Fatalf("combined vector must keep all 9 personas, got %d", len(combined))
	}
}

func TestFuseSanitizesAnomalies(t *testing.T) {
	fusion := NewScoreFusion(DefaultFusionConfig())

	mc := vectorWith(map[domain.PersonaID]float64{domain.PersonaDriver: math.NaN()})
	text := vectorWith(map[domain.PersonaID]float64{domain.PersonaGiver: math.Inf(1), domain.PersonaSage: -50})

	combined := fusion.Fuse(mc, text)
	for id, s := range combined {
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			t.Fatalf("anomalous value survived fusion: %s=%v", id, s)
		}
	}
}
