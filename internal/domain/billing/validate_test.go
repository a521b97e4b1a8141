package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// borradorValido arma un borrador que pasa todas las reglas.
func borradorValido(t *testing.T) *billing.Draft {
	t.Helper()
	d := billing.NewDraft()
	d.CustomerName = "Juan Pérez"
	d.DocumentType = entity.DocumentCedula
	d.DocumentNumber = "4123456"
	require.NoError(t, d.AddLine(producto(1, "12500", 10), 2))
	return d
}

func mensajes(vs []billing.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Message)
	}
	return out
}

func TestValidate_BorradorValido(t *testing.T) {
	assert.Empty(t, billing.ValidateForSubmission(borradorValido(t)))
}

func TestValidate_NombreObligatorio(t *testing.T) {
	d := borradorValido(t)
	d.CustomerName = "   "
	vs := billing.ValidateForSubmission(d)
	assert.Contains(t, mensajes(vs), "El nombre del cliente es obligatorio")
}

// RUC sin guión falla; con la forma dígitos-dígitos pasa.
func TestValidate_FormatoRUC(t *testing.T) {
	cases := []struct {
		doc    string
		valido bool
	}{
		{"1234567-8", true},
		{"80012345-1", true},
		{"1234567", false},  // sin guión
		{"12-34-56", false}, // más de un guión
		{"abc-123", false},  // no numérico
		{"", false},         // obligatorio
	}
	for _, c := range cases {
		t.Run(c.doc, func(t *testing.T) {
			d := borradorValido(t)
			d.DocumentType = entity.DocumentRUC
			d.DocumentNumber = c.doc
			vs := billing.ValidateForSubmission(d)
			if c.valido {
				assert.Empty(t, vs)
			} else {
				assert.NotEmpty(t, vs, "RUC %q debería ser rechazado", c.doc)
			}
		})
	}
}

func TestValidate_CedulaCualquierFormato(t *testing.T) {
	d := borradorValido(t)
	d.DocumentNumber = "V-12.345.678" // cualquier contenido es aceptable
	assert.Empty(t, billing.ValidateForSubmission(d))

	d.DocumentNumber = ""
	vs := billing.ValidateForSubmission(d)
	assert.Contains(t, mensajes(vs), "El número de cédula es obligatorio")
}

func TestValidate_TipoNingunoSinDocumento(t *testing.T) {
	d := borradorValido(t)
	d.DocumentType = entity.DocumentNone
	d.DocumentNumber = ""
	assert.Empty(t, billing.ValidateForSubmission(d))
}

// Carrito vacío siempre falla, incluso con datos de cliente válidos.
func TestValidate_CarritoVacioSiempreFalla(t *testing.T) {
	d := billing.NewDraft()
	d.CustomerName = "Juan Pérez"
	d.DocumentNumber = "4123456"
	vs := billing.ValidateForSubmission(d)
	assert.Contains(t, mensajes(vs), "Debe incluir al menos un producto")
}

// Todas las reglas se evalúan: las violaciones se acumulan, no se corta en la primera.
func TestValidate_AcumulaTodasLasViolaciones(t *testing.T) {
	d := billing.NewDraft()
	d.DocumentType = entity.DocumentRUC
	d.DocumentNumber = "1234567" // sin guión
	// sin nombre y sin líneas

	vs := billing.ValidateForSubmission(d)
	ms := mensajes(vs)
	assert.Contains(t, ms, "El nombre del cliente es obligatorio")
	assert.Contains(t, ms, "El RUC debe contener un guión (-)")
	assert.Contains(t, ms, "Debe incluir al menos un producto")
	assert.Len(t, vs, 3)
}

func TestValidate_LineasInvalidas(t *testing.T) {
	d := borradorValido(t)
	// Línea corrupta inyectada directamente (el carrito normal no la produce)
	d.Lines = append(d.Lines, billing.Line{ProductID: 0, Quantity: 0})

	ms := mensajes(billing.ValidateForSubmission(d))
	assert.Contains(t, ms, "Producto 2: Debe seleccionar un producto")
	assert.Contains(t, ms, "Producto 2: La cantidad debe ser mayor a 0")
	assert.Contains(t, ms, "Producto 2: El precio debe ser mayor a 0")
}
