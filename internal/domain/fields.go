package domain

import (
	"sort"
	"strings"
)

// FieldErrors resultado de validación por campo: clave = nombre del campo,
// valor = mensaje para mostrar junto al input. Un mapa vacío o nil significa
// validación superada. Sustituye a los flags booleanos dispersos que cada
// formulario mantenía por su cuenta.
type FieldErrors map[string]string

// Error implementa error concatenando los campos en orden estable.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// HasErrors indica si hay al menos un campo inválido.
func (e FieldErrors) HasErrors() bool { return len(e) > 0 }
