// Package search contiene la normalización de texto para la búsqueda de
// productos por palabra clave (nombre o SKU).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas ("café" -> "cafe")
	norm.NFC,
)

// Fold normaliza un texto para comparación insensible a mayúsculas y acentos.
// Todos los adaptadores pliegan con esta misma función: el almacén en memoria
// al comparar y el de PostgreSQL al escribir las columnas normalizadas y al
// plegar la palabra clave.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches indica si keyword (ya plegada o no) aparece como subcadena en s,
// sin distinguir mayúsculas ni acentos.
func Matches(s, keyword string) bool {
	return strings.Contains(Fold(s), Fold(keyword))
}
