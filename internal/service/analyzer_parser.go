package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"persona-engine/internal/domain"
)

// AnalyzerParser centraliza la limpieza y el parseo estricto de la
// respuesta del colaborador. El contrato es JSON estructurado validado
// contra el esquema; si falta cualquiera de los 9 puntajes el parseo
// falla completo y el extractor cae a la heuristica degradada.
type AnalyzerParser struct{}

// DefaultAnalyzerParser permite uso directo sin instanciar.
var DefaultAnalyzerParser = AnalyzerParser{}

// analyzerReply es el esquema que el colaborador se compromete a devolver.
type analyzerReply struct {
	PersonaScores map[string]float64 `json:"persona_scores"`
	CoreValues    []string           `json:"core_values"`
	Insights      []string           `json:"insights"`
}

// Parse limpia fences/BOM, aisla el primer objeto JSON y valida el
// esquema completo. Los puntajes se acotan a [0,100].
func (AnalyzerParser) Parse(raw string) (domain.TextAnalysis, error) {
	cleaned := cleanAnalyzerJSONResponse(raw)

	jsonObj := extractFirstJSONObject(cleaned)
	if jsonObj == "" {
		jsonObj = extractFirstJSONObject(raw)
	}
	if jsonObj == "" {
		return domain.TextAnalysis{}, fmt.Errorf("no json object in analyzer reply")
	}

	var reply analyzerReply
	if err := json.Unmarshal([]byte(jsonObj), &reply); err != nil {
		return domain.TextAnalysis{}, fmt.Errorf("unmarshal analyzer reply: %w", err)
	}

	scores := domain.NewScoreVector()
	for _, id := range domain.AllPersonaIDs {
		v, ok := reply.PersonaScores[string(id)]
		if !ok {
			return domain.TextAnalysis{}, fmt.Errorf("analyzer reply missing score for %q", id)
		}
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		scores[id] = v
	}

	values := make([]string, 0, len(reply.CoreValues))
	for _, cv := range reply.CoreValues {
		if cv = strings.TrimSpace(cv); cv != "" {
			values = append(values, cv)
		}
	}
	insights := make([]string, 0, len(reply.Insights))
	for _, in := range reply.Insights {
		if in = strings.TrimSpace(in); in != "" {
			insights = append(insights, in)
		}
	}

	return domain.TextAnalysis{
		Scores:     scores.Sanitized(),
		CoreValues: values,
		Insights:   insights,
	}, nil
}

// cleanAnalyzerJSONResponse quita fences ```json ... ``` y BOM, dejando el contenido usable.
func cleanAnalyzerJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")

	reStart := regexp.MustCompile("(?is)^\\s*```(?:json)?\\s*")
	reEnd := regexp.MustCompile("(?is)\\s*```\\s*$")
	s = reStart.ReplaceAllString(s, "")
	s = reEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// extractFirstJSONObject devuelve el primer objeto JSON balanceado del
// input, respetando strings y escapes.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}
