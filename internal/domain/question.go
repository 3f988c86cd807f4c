package domain

// Phase es la etapa del cuestionario a la que pertenece una respuesta.
// La fase viaja explicita en cada QuestionResponse; nunca se infiere
// del formato del id de la pregunta.
type Phase string

const (
	PhaseInitial      Phase = "initial"
	PhaseDetailed     Phase = "detailed"
	PhaseConfirmation Phase = "confirmation"
)

// PhaseWeight define el peso de una fase y su aporte maximo teorico.
type PhaseWeight struct {
	Weight   float64
	MaxScore float64
}

// DefaultPhaseWeights devuelve la tabla de pesos por fase del producto.
func DefaultPhaseWeights() map[Phase]PhaseWeight {
	return map[Phase]PhaseWeight{
		PhaseInitial:      {Weight: 0.3, MaxScore: 30},
		PhaseDetailed:     {Weight: 0.4, MaxScore: 40},
		PhaseConfirmation: {Weight: 0.3, MaxScore: 30},
	}
}

// QuestionResponse es una respuesta ya resuelta en el borde HTTP:
// fase explicita y, o bien ids de opciones elegidas, o texto libre.
// Vive solo durante el request que la creo.
type QuestionResponse struct {
	QuestionID string
	Phase      Phase
	AnswerIDs  []string
	FreeText   string
}

// AnswerPersonaMap resuelve (fase, id de opcion) -> persona.
// Es configuracion estatica de solo lectura.
type AnswerPersonaMap map[Phase]map[string]PersonaID

// Resolve devuelve la persona mapeada para una opcion, si existe.
func (m AnswerPersonaMap) Resolve(phase Phase, answerID string) (PersonaID, bool) {
	byAnswer, ok := m[phase]
	if !ok {
		return "", false
	}
	id, ok := byAnswer[answerID]
	return id, ok
}

// DefaultAnswerPersonaMap es la tabla opcion->persona del cuestionario fijo.
func DefaultAnswerPersonaMap() AnswerPersonaMap {
	return AnswerPersonaMap{
		PhaseInitial: {
			"take_the_lead":    PersonaDriver,
			"rally_everyone":   PersonaConnector,
			"sketch_the_plan":  PersonaBuilder,
			"scout_options":    PersonaExplorer,
			"keep_the_peace":   PersonaHarmonizer,
			"check_on_others":  PersonaGiver,
			"watch_for_risks":  PersonaGuardian,
			"imagine_outcomes": PersonaDreamer,
			"research_first":   PersonaSage,
		},
		PhaseDetailed: {
			"set_ambitious_goals": PersonaDriver,
			"host_gatherings":     PersonaConnector,
			"finish_what_i_start": PersonaBuilder,
			"book_the_trip":       PersonaExplorer,
			"smooth_things_over":  PersonaHarmonizer,
			"volunteer_time":      PersonaGiver,
			"keep_promises":       PersonaGuardian,
			"chase_big_ideas":     PersonaDreamer,
			"read_and_reflect":    PersonaSage,
		},
		PhaseConfirmation: {
			"driven_by_results":    PersonaDriver,
			"energized_by_people":  PersonaConnector,
			"proud_of_what_i_make": PersonaBuilder,
			"alive_when_exploring": PersonaExplorer,
			"calm_in_the_storm":    PersonaHarmonizer,
			"fulfilled_by_helping": PersonaGiver,
			"steady_and_reliable":  PersonaGuardian,
			"guided_by_vision":     PersonaDreamer,
			"curious_above_all":    PersonaSage,
		},
	}
}

// Question es la metadata estatica de una pregunta del cuestionario.
// IsPersonal y RequiresDetail alimentan el ajuste de pesos de confianza.
type Question struct {
	ID             string `json:"id"`
	Phase          Phase  `json:"phase"`
	Prompt         string `json:"prompt"`
	IsPersonal     bool   `json:"is_personal"`
	RequiresDetail bool   `json:"requires_detail"`
	FreeText       bool   `json:"free_text"`
	MultiSelect    bool   `json:"multi_select"`
}

// QuestionCatalog es el registro de preguntas, cargado una vez al inicio.
type QuestionCatalog struct {
	byID  map[string]Question
	order []string
}

func NewQuestionCatalog(questions []Question) *QuestionCatalog {
	c := &QuestionCatalog{byID: make(map[string]Question, len(questions))}
	for _, q := range questions {
		c.byID[q.ID] = q
		c.order = append(c.order, q.ID)
	}
	return c
}

// Get devuelve la pregunta por id.
func (c *QuestionCatalog) Get(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// All devuelve las preguntas en orden de definicion.
func (c *QuestionCatalog) All() []Question {
	out := make([]Question, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// DefaultQuestionCatalog es el cuestionario fijo de tres fases.
func DefaultQuestionCatalog() *QuestionCatalog {
	return NewQuestionCatalog([]Question{
		{
			ID:          "q_group_role",
			Phase:       PhaseInitial,
			Prompt:      "When a group you care about has to get something done, what do you usually do first?",
			MultiSelect: true,
		},
		{
			ID:     "q_free_saturday",
			Phase:  PhaseInitial,
			Prompt: "A Saturday opens up with no plans. What does it turn into?",
		},
		{
			ID:          "q_proud_moments",
			Phase:       PhaseDetailed,
			Prompt:      "Which of these moments from the past year left you genuinely proud?",
			MultiSelect: true,
		},
		{
			ID:         "q_hard_choice",
			Phase:      PhaseDetailed,
			Prompt:     "Think of the last hard choice you made. What tipped the balance?",
			IsPersonal: true,
		},
		{
			ID:     "q_self_statement",
			Phase:  PhaseConfirmation,
			Prompt: "Which statement sounds most like something you would actually say?",
		},
		{
			ID:             "q_reflection",
			Phase:          PhaseConfirmation,
			Prompt:         "In your own words: what does a good life look like for you, and what are you doing about it?",
			IsPersonal:     true,
			RequiresDetail: true,
			FreeText:       true,
		},
	})
}
