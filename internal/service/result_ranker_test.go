package service

import (
	"testing"

	"persona-engine/internal/domain"
)

func vectorWith(scores map[domain.PersonaID]float64) domain.ScoreVector {
	v := domain.NewScoreVector()
	for id, s := range scores {
		v[id] = s
	}
	return v
}

func TestRankPrimaryAndThreshold(t *testing.T) {
	ranker := NewResultRanker(DefaultRankerConfig())

	ranked := ranker.Rank(vectorWith(map[domain.PersonaID]float64{
		domain.PersonaDriver:     100,
		domain.PersonaSage:       80,
		domain.PersonaGiver:      69, // bajo el umbral 0.7*100
		domain.PersonaHarmonizer: 71,
	}))

	if ranked.Primary != domain.PersonaDriver {
		t.Fatalf("expected driver primary, got %s", ranked.Primary)
	}
	if len(ranked.Secondaries) != 2 {
		t.Fatalf("expected 2 secondaries, got %d", len(ranked.Secondaries))
	}
	if ranked.Secondaries[0].ID != domain.PersonaSage || ranked.Secondaries[1].ID != domain.PersonaHarmonizer {
		t.Fatalf("unexpected secondary order: %+v", ranked.Secondaries)
	}
	cutoff := 0.7 * ranked.PrimaryScore
	for _, sp := range ranked.Secondaries {
		if sp.Score < cutoff {
			t.Fatalf("secondary %s score %v below cutoff %v", sp.ID, sp.Score, cutoff)
		}
	}
}

func TestRankSecondaryCap(t *testing.T) {
	ranker := NewResultRanker(RankerConfig{SecondaryThreshold: 0.7, MaxSecondary: 1})

	ranked := ranker.Rank(vectorWith(map[domain.PersonaID]float64{
		domain.PersonaDriver: 100,
		domain.PersonaSage:   95,
		domain.PersonaGiver:  90,
	}))
	if len(ranked.Secondaries) != 1 {
		t.Fatalf("expected cap of 1 secondary, got %d", len(ranked.Secondaries))
	}
	if ranked.Secondaries[0].ID != domain.PersonaSage {
		t.Fatalf("expected highest secondary first, got %s", ranked.Secondaries[0].ID)
	}
}

func TestRankTieBreakIsAlphabetical(t *testing.T) {
	ranker := NewResultRanker(DefaultRankerConfig())

	// giver y harmonizer empatan exacto: gana el id alfabeticamente menor,
	// en cada corrida.
	for i := 0; i < 50; i++ {
		ranked := ranker.Rank(vectorWith(map[domain.PersonaID]float64{
			domain.PersonaGiver:      42,
			domain.PersonaHarmonizer: 42,
		}))
		if ranked.Primary != domain.PersonaGiver {
			t.Fatalf("run %d: expected giver on tie, got %s", i, ranked.Primary)
		}
		if len(ranked.Secondaries) != 1 || ranked.Secondaries[0].ID != domain.PersonaHarmonizer {
			t.Fatalf("run %d: expected harmonizer secondary, got %+v", i, ranked.Secondaries)
		}
	}
}

func TestRankZeroScoresNeverSecondary(t *testing.T) {
	ranker := NewResultRanker(DefaultRankerConfig())

	ranked := ranker.Rank(vectorWith(map[domain.PersonaID]float64{
		domain.PersonaDriver: 10,
	}))
	if ranked.Primary != domain.PersonaDriver {
		t.Fatalf("expected driver primary, got %s", ranked.Primary)
	}
	if len(ranked.Secondaries) != 0 {
		t.Fatalf("expected no secondaries, got %+v", ranked.Secondaries)
	}

	// Vector completamente en cero: primaria deterministica, sin
	// secundarias fantasma.
	ranked = ranker.Rank(domain.NewScoreVector())
	if ranked.Primary != domain.PersonaBuilder {
		t.Fatalf("expected alphabetical first on zero vector, got %s", ranked.Primary)
	}
	if len(ranked.Secondaries) != 0 {
		t.Fatalf("zero-score personas must not be secondaries: %+v", ranked.Secondaries)
	}
}
