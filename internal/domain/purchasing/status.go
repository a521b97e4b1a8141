// Package purchasing contiene las reglas de dominio del flujo de compras:
// la inferencia del estado de una orden a partir de sus cantidades recibidas.
package purchasing

import "github.com/ferreteriapro/admin-api/internal/domain/entity"

// InferStatus deriva el estado de una orden de compra a partir de sus líneas:
//
//	todas las líneas con recibido >= solicitado  -> completa
//	alguna línea con recibido > 0                -> parcial
//	en otro caso                                 -> pendiente
//
// "cancelada" nunca se infiere: es una acción explícita del usuario y se
// respeta tal cual venga del backend.
//
// El resultado es SOLO CONSULTIVO: el estado autoritativo vive en el backend.
// Escribir el estado inferido de vuelta (ver ReceivingUseCase) reproduce el
// comportamiento heredado y puede pisar escrituras de otro cliente
// concurrente; no usarlo como fuente de verdad.
func InferStatus(order *entity.PurchaseOrder) string {
	if order.Status == entity.OrderCancelled {
		return entity.OrderCancelled
	}
	if len(order.Lines) == 0 {
		return entity.OrderPending
	}

	allComplete := true
	anyReceived := false
	for _, l := range order.Lines {
		if l.QuantityReceived < l.QuantityOrdered {
			allComplete = false
		}
		if l.QuantityReceived > 0 {
			anyReceived = true
		}
	}

	switch {
	case allComplete:
		return entity.OrderComplete
	case anyReceived:
		return entity.OrderPartial
	default:
		return entity.OrderPending
	}
}
