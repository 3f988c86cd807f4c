package service

import "persona-engine/internal/domain"

// Pesos base de los cuatro factores de confianza; suman 1.0 antes de
// ajustes por tipo de pregunta.
const (
	baseWeightKeyword  = 0.25
	baseWeightSemantic = 0.30
	baseWeightQuality  = 0.25
	baseWeightContext  = 0.20
)

// ConfidenceCalculator convierte los factores por respuesta en un unico
// valor de confianza en [0,1].
type ConfidenceCalculator struct{}

// DefaultConfidenceCalculator permite uso directo sin instanciar.
var DefaultConfidenceCalculator = ConfidenceCalculator{}

// Calculate pondera los factores presentes y renormaliza por la suma de
// pesos efectivamente usados, asi la funcion sigue bien definida con
// factores parciales. Los ajustes por tipo de pregunta se aplican antes
// de normalizar, en este orden: primero personal, despues detalle.
func (ConfidenceCalculator) Calculate(f domain.ConfidenceFactors, isPersonalQuestion, requiresDetail bool) float64 {
	wKeyword := baseWeightKeyword
	wSemantic := baseWeightSemantic
	wQuality := baseWeightQuality
	wContext := baseWeightContext

	if isPersonalQuestion {
		wSemantic += 0.10
		wKeyword -= 0.05
	}
	if requiresDetail {
		wQuality += 0.10
		wContext -= 0.05
		wKeyword -= 0.05
	}

	weightedSum := 0.0
	weightUsed := 0.0

	apply := func(factor *float64, weight float64) {
		if factor == nil || weight <= 0 {
			return
		}
		weightedSum += clamp01(*factor) * weight
		weightUsed += weight
	}

	apply(f.KeywordMatches, wKeyword)
	apply(f.SemanticRelevance, wSemantic)
	apply(f.AnswerQuality, wQuality)
	apply(f.ContextMatch, wContext)

	if weightUsed == 0 {
		return 0
	}
	return clamp01(weightedSum / weightUsed)
}

func clamp01(v float64) float64 {
	if v != v { // NaN
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
