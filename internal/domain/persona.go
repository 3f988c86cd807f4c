package domain

// PersonaID identifica uno de los 9 arquetipos fijos del sistema.
type PersonaID string

const (
	PersonaBuilder    PersonaID = "builder"
	PersonaConnector  PersonaID = "connector"
	PersonaDreamer    PersonaID = "dreamer"
	PersonaDriver     PersonaID = "driver"
	PersonaExplorer   PersonaID = "explorer"
	PersonaGiver      PersonaID = "giver"
	PersonaGuardian   PersonaID = "guardian"
	PersonaHarmonizer PersonaID = "harmonizer"
	PersonaSage       PersonaID = "sage"
)

// AllPersonaIDs lista los 9 arquetipos en orden alfabetico.
// Este orden es tambien el criterio de desempate del ranking: ante
// puntajes identicos gana el id que aparece primero aca.
var AllPersonaIDs = []PersonaID{
	PersonaBuilder,
	PersonaConnector,
	PersonaDreamer,
	PersonaDriver,
	PersonaExplorer,
	PersonaGiver,
	PersonaGuardian,
	PersonaHarmonizer,
	PersonaSage,
}

// LifeDomain es una de las 5 areas de vida para las que se genera narrativa.
type LifeDomain string

const (
	DomainRelationships LifeDomain = "relationships"
	DomainCareer        LifeDomain = "career"
	DomainHealth        LifeDomain = "health"
	DomainLifestyle     LifeDomain = "lifestyle"
	DomainPurpose       LifeDomain = "purpose"
)

// AllLifeDomains define el orden canonico de las areas en la salida.
var AllLifeDomains = []LifeDomain{
	DomainRelationships,
	DomainCareer,
	DomainHealth,
	DomainLifestyle,
	DomainPurpose,
}

// Persona describe un arquetipo completo: identidad, rasgos, valores,
// necesidades, plantillas narrativas por area y su multiplicador de puntaje.
// Es data pura, cargada una vez y de solo lectura.
type Persona struct {
	ID            PersonaID             `json:"id"`
	DisplayName   string                `json:"display_name"`
	TypeLabel     string                `json:"type_label"`
	Description   string                `json:"description"`
	Traits        []string              `json:"traits"`
	CoreValues    []string              `json:"core_values"`
	CoreNeeds     []string              `json:"core_needs"`
	Keywords      []string              `json:"keywords"`
	ScoringWeight float64               `json:"scoring_weight"`
	Templates     map[LifeDomain]string `json:"templates"`
}
