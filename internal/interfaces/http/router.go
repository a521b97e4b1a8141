package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/analytics"
	"github.com/ferreteriapro/admin-api/internal/application/auth"
	appbilling "github.com/ferreteriapro/admin-api/internal/application/billing"
	"github.com/ferreteriapro/admin-api/internal/application/purchasing"
	"github.com/ferreteriapro/admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	SupplierUC  *usecase.SupplierUseCase
	InvoiceUC   *usecase.InvoiceUseCase
	MovementUC  *usecase.MovementUseCase
	OrderUC     *purchasing.OrderUseCase
	ReceivingUC *purchasing.ReceivingUseCase
	DraftUC     *appbilling.DraftUseCase
	InvoicePDF  *appbilling.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Solo auth es público; todo lo demás
// requiere Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Las eliminaciones son solo para administradores
	adminOnly := RequireRole("admin")

	// Productos
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/dropdown", productHandler.Dropdown)
	products.Get("/stock-bajo", productHandler.LowStock)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.PatchStock)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Clientes
	clients := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/buscar-por-documento", clientHandler.SearchByDocument)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/dropdown", supplierHandler.Dropdown)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Órdenes de compra
	orders := protected.Group("/ordenes-compra")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Post("/:id/cancelar", orderHandler.Cancel)

	// Recepciones de mercadería
	receivings := protected.Group("/recepciones")
	receivingHandler := NewReceivingHandler(deps.ReceivingUC)
	receivings.Get("/", receivingHandler.List)
	receivings.Post("/", receivingHandler.Create)
	receivings.Get("/:id", receivingHandler.GetByID)

	// Borrador de factura (uno por usuario)
	draft := protected.Group("/borrador")
	draftHandler := NewDraftHandler(deps.DraftUC)
	draft.Get("/", draftHandler.Get)
	draft.Delete("/", draftHandler.Clear)
	draft.Post("/lineas", draftHandler.AddLine)
	draft.Put("/lineas/:index", draftHandler.ChangeQuantity)
	draft.Delete("/lineas/:index", draftHandler.RemoveLine)
	draft.Put("/cliente", draftHandler.SetCustomer)
	draft.Put("/descuento", draftHandler.SetDiscount)
	draft.Put("/exoneracion", draftHandler.SetExempt)
	draft.Post("/emitir", draftHandler.Submit)

	// Facturas emitidas
	invoices := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/datos-completos", invoiceHandler.FullData)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Delete("/:id", adminOnly, invoiceHandler.Delete)

	// Movimientos de inventario
	movements := protected.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)

	// Dashboard
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	protected.Get("/dashboard", analyticsHandler.Dashboard)
}
