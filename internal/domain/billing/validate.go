package billing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// rucPattern el RUC debe tener la forma dígitos-guion-dígitos (ej: 1234567-8).
var rucPattern = regexp.MustCompile(`^\d+-\d+$`)

// Violation una regla incumplida al validar el borrador para envío.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateForSubmission evalúa TODAS las reglas y devuelve la lista completa
// de violaciones (nil si el borrador es válido). No corta en la primera: el
// usuario debe ver todos los errores juntos.
//
// Reglas:
//   - nombre del cliente obligatorio;
//   - tipo "ruc": número obligatorio, con guión y forma dígitos-dígitos;
//   - tipo "cedula": número obligatorio, cualquier formato;
//   - tipo "ninguno": sin chequeos de documento;
//   - al menos una línea;
//   - cada línea con producto, cantidad > 0 y precio > 0.
func ValidateForSubmission(d *Draft) []Violation {
	var vs []Violation

	if strings.TrimSpace(d.CustomerName) == "" {
		vs = append(vs, Violation{Field: "nombre_cliente", Message: "El nombre del cliente es obligatorio"})
	}

	doc := strings.TrimSpace(d.DocumentNumber)
	switch d.DocumentType {
	case entity.DocumentRUC:
		if doc == "" {
			vs = append(vs, Violation{Field: "numero_documento", Message: "El número de RUC es obligatorio"})
		} else if !strings.Contains(doc, "-") {
			vs = append(vs, Violation{Field: "numero_documento", Message: "El RUC debe contener un guión (-)"})
		} else if !rucPattern.MatchString(doc) {
			vs = append(vs, Violation{Field: "numero_documento", Message: "El RUC debe tener la forma dígitos-dígitos (ej: 1234567-8)"})
		}
	case entity.DocumentCedula:
		if doc == "" {
			vs = append(vs, Violation{Field: "numero_documento", Message: "El número de cédula es obligatorio"})
		}
		// Sin más validaciones: cualquier formato de cédula es válido
	case entity.DocumentNone:
		// No se exige documento
	default:
		vs = append(vs, Violation{Field: "tipo_documento", Message: "El tipo de documento es obligatorio"})
	}

	if len(d.Lines) == 0 {
		vs = append(vs, Violation{Field: "detalles", Message: "Debe incluir al menos un producto"})
	}
	for i, l := range d.Lines {
		n := i + 1
		if l.ProductID <= 0 {
			vs = append(vs, Violation{Field: "detalles", Message: fmt.Sprintf("Producto %d: Debe seleccionar un producto", n)})
		}
		if l.Quantity <= 0 {
			vs = append(vs, Violation{Field: "detalles", Message: fmt.Sprintf("Producto %d: La cantidad debe ser mayor a 0", n)})
		}
		if !l.UnitPrice.GreaterThan(decimal.Zero) {
			vs = append(vs, Violation{Field: "detalles", Message: fmt.Sprintf("Producto %d: El precio debe ser mayor a 0", n)})
		}
	}

	return vs
}
