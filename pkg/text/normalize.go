// Package text implementa la normalización de texto usada por los buscadores
// de la aplicación: el catálogo de una ferretería mezcla nombres con y sin
// tilde ("tornillería", "tornilleria"), así que la búsqueda debe ignorar
// acentos y mayúsculas.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
// "Tornillería" -> "tornilleria". Si la transformación falla se devuelve
// s en minúsculas sin más cambios.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// ContainsFold indica si s contiene substr comparando sin acentos ni mayúsculas.
// Un substr vacío siempre coincide.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(Fold(s), Fold(substr))
}
