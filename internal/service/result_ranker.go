package service

import (
	"sort"

	"persona-engine/internal/domain"
)

// RankerConfig define el umbral relativo para secundarias y su tope.
// Inmutable: se construye una vez y se pasa por valor.
type RankerConfig struct {
	SecondaryThreshold float64
	MaxSecondary       int
}

// DefaultRankerConfig devuelve los valores de producto.
func DefaultRankerConfig() RankerConfig {
	return RankerConfig{SecondaryThreshold: 0.7, MaxSecondary: 2}
}

// ResultRanker ordena el vector combinado y elige primaria y secundarias.
type ResultRanker struct {
	cfg RankerConfig
}

func NewResultRanker(cfg RankerConfig) ResultRanker {
	if cfg.SecondaryThreshold <= 0 || cfg.SecondaryThreshold > 1 {
		cfg.SecondaryThreshold = 0.7
	}
	if cfg.MaxSecondary < 0 {
		cfg.MaxSecondary = 0
	}
	return ResultRanker{cfg: cfg}
}

// Rank ordena por puntaje descendente. Desempate: ante puntajes iguales
// gana el id alfabeticamente menor, siempre. Eso hace el resultado
// reproducible corrida tras corrida con el mismo input.
// Secundarias: score >= threshold * primario, con score > 0, excluyendo
// la primaria, tope MaxSecondary.
func (r ResultRanker) Rank(scores domain.ScoreVector) domain.RankedResult {
	scores = scores.Sanitized()

	ranked := make([]domain.ScoredPersona, 0, len(domain.AllPersonaIDs))
	for _, id := range domain.AllPersonaIDs {
		ranked = append(ranked, domain.ScoredPersona{ID: id, Score: scores[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	primary := ranked[0]
	cutoff := r.cfg.SecondaryThreshold * primary.Score

	secondaries := make([]domain.ScoredPersona, 0, r.cfg.MaxSecondary)
	for _, sp := range ranked[1:] {
		if len(secondaries) >= r.cfg.MaxSecondary {
			break
		}
		// Un arquetipo sin senal alguna nunca se reporta como secundario.
		if sp.Score <= 0 || sp.Score < cutoff {
			continue
		}
		secondaries = append(secondaries, sp)
	}

	return domain.RankedResult{
		Primary:      primary.ID,
		PrimaryScore: primary.Score,
		Secondaries:  secondaries,
	}
}
