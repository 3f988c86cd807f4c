package domain

// TextAnalysis es la salida del adaptador de texto libre: puntajes 0-100
// por arquetipo mas valores e insights. FromFallback marca si vino de la
// heuristica degradada en lugar del colaborador externo.
type TextAnalysis struct {
	Scores       ScoreVector
	CoreValues   []string
	Insights     []string
	Factors      ConfidenceFactors
	FromFallback bool
}

// ScoredPersona es una entrada del ranking.
type ScoredPersona struct {
	ID    PersonaID `json:"id"`
	Score float64   `json:"score"`
}

// RankedResult es la salida del ranker: primaria + secundarias en orden
// descendente. Las secundarias cumplen score >= threshold * primaryScore.
type RankedResult struct {
	Primary      PersonaID
	PrimaryScore float64
	Secondaries  []ScoredPersona
}

// PersonaSummary es la vista publica de una persona puntuada.
type PersonaSummary struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Score       int    `json:"score"`
	Description string `json:"description,omitempty"`
}

// AssessmentResult es el contrato de salida del engine. Se construye una
// vez por request, se devuelve y se descarta; no hay persistencia.
type AssessmentResult struct {
	AssessmentID      string                `json:"assessment_id"`
	PrimaryPersona    PersonaSummary        `json:"primary_persona"`
	SecondaryPersonas []PersonaSummary      `json:"secondary_personas"`
	CoreValues        []string              `json:"core_values"`
	CoreNeeds         []string              `json:"core_needs"`
	Insights          []string              `json:"insights,omitempty"`
	LifeDomains       map[LifeDomain]string `json:"life_domains"`
	AllScores         map[PersonaID]int     `json:"all_scores"`
	Confidence        float64               `json:"confidence"`
}
