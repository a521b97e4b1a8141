package purchasing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/domain/purchasing"
)

func linea(solicitada, recibida int64) entity.PurchaseOrderLine {
	return entity.PurchaseOrderLine{QuantityOrdered: solicitada, QuantityReceived: recibida}
}

func TestInferStatus(t *testing.T) {
	cases := []struct {
		nombre string
		lineas []entity.PurchaseOrderLine
		estado string
		want   string
	}{
		{"nada recibido", []entity.PurchaseOrderLine{linea(10, 0), linea(5, 0)}, entity.OrderPending, entity.OrderPending},
		{"recepción parcial", []entity.PurchaseOrderLine{linea(10, 4), linea(5, 0)}, entity.OrderPending, entity.OrderPartial},
		{"todo recibido", []entity.PurchaseOrderLine{linea(10, 10), linea(5, 5)}, entity.OrderPartial, entity.OrderComplete},
		{"sobre-recepción cuenta como completa", []entity.PurchaseOrderLine{linea(10, 12)}, entity.OrderPartial, entity.OrderComplete},
		{"una completa y otra vacía es parcial", []entity.PurchaseOrderLine{linea(10, 10), linea(5, 0)}, entity.OrderPending, entity.OrderPartial},
		{"sin líneas", nil, entity.OrderPending, entity.OrderPending},
		{"cancelada nunca se reinfiere", []entity.PurchaseOrderLine{linea(10, 10)}, entity.OrderCancelled, entity.OrderCancelled},
	}
	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			orden := &entity.PurchaseOrder{Status: c.estado, Lines: c.lineas}
			assert.Equal(t, c.want, purchasing.InferStatus(orden))
		})
	}
}
