package service

import (
	"strings"
	"unicode"

	"persona-engine/internal/domain"
)

// secondaryConnective une la narrativa principal con la clausula del
// arquetipo secundario. Fijo a proposito: la salida debe ser identica
// para el mismo input.
const secondaryConnective = " Alongside this, "

// LifeDomainSynthesizer compone la narrativa por area de vida a partir
// de las plantillas del catalogo. Templating puro, sin mas ramas que
// "hay secundaria o no".
type LifeDomainSynthesizer struct {
	catalog *domain.Catalog
}

func NewLifeDomainSynthesizer(catalog *domain.Catalog) LifeDomainSynthesizer {
	return LifeDomainSynthesizer{catalog: catalog}
}

// Synthesize devuelve el texto por area: la plantilla de la primaria
// como base y, si existe al menos una secundaria, la primera oracion
// (hasta el primer ';') de la plantilla de la secundaria top, prefijada
// con el conector fijo.
func (s LifeDomainSynthesizer) Synthesize(ranked domain.RankedResult) map[domain.LifeDomain]string {
	out := make(map[domain.LifeDomain]string, len(domain.AllLifeDomains))

	primary, ok := s.catalog.Get(ranked.Primary)
	if !ok {
		return out
	}

	var secondary *domain.Persona
	if len(ranked.Secondaries) > 0 {
		if p, ok := s.catalog.Get(ranked.Secondaries[0].ID); ok {
			secondary = &p
		}
	}

	for _, d := range domain.AllLifeDomains {
		base := strings.TrimSpace(primary.Templates[d])
		if secondary == nil {
			out[d] = base
			continue
		}
		clause := firstClause(secondary.Templates[d])
		if clause == "" {
			out[d] = base
			continue
		}
		out[d] = base + secondaryConnective + lowerFirst(clause) + "."
	}

	return out
}

// firstClause corta la plantilla en el primer ';' y limpia puntuacion final.
func firstClause(template string) string {
	t := strings.TrimSpace(template)
	if t == "" {
		return ""
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimRight(strings.TrimSpace(t), ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
