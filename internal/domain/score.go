package domain

import "math"

// ScoreVector mapea cada uno de los 9 arquetipos a un puntaje >= 0.
// Siempre contiene exactamente los 9 ids canonicos; se produce y se
// consume por valor, combinar dos vectores crea uno nuevo.
type ScoreVector map[PersonaID]float64

// NewScoreVector crea un vector inicializado en cero para los 9 arquetipos.
func NewScoreVector() ScoreVector {
	v := make(ScoreVector, len(AllPersonaIDs))
	for _, id := range AllPersonaIDs {
		v[id] = 0
	}
	return v
}

// Clone devuelve una copia independiente del vector.
func (v ScoreVector) Clone() ScoreVector {
	out := make(ScoreVector, len(v))
	for id, s := range v {
		out[id] = s
	}
	return out
}

// Sanitized devuelve una copia con los 9 ids garantizados y cada valor
// saneado: NaN, infinitos y negativos colapsan a 0.
func (v ScoreVector) Sanitized() ScoreVector {
	out := NewScoreVector()
	for _, id := range AllPersonaIDs {
		s := v[id]
		if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			s = 0
		}
		out[id] = s
	}
	return out
}

// Rounded devuelve el vector como enteros redondeados, para la salida.
func (v ScoreVector) Rounded() map[PersonaID]int {
	out := make(map[PersonaID]int, len(AllPersonaIDs))
	for _, id := range AllPersonaIDs {
		out[id] = int(math.Round(v[id]))
	}
	return out
}

// ConfidenceFactors agrupa las cuatro senales de confianza de una
// respuesta analizada. Los campos son punteros: nil significa que el
// factor no esta disponible y queda fuera de la normalizacion.
type ConfidenceFactors struct {
	KeywordMatches    *float64
	SemanticRelevance *float64
	AnswerQuality     *float64
	ContextMatch      *float64
}

// Factor es un helper para construir factores opcionales en llamadas.
func Factor(v float64) *float64 { return &v }
