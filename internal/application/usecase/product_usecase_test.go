package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteriapro/admin-api/internal/application/usecase"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/pkg/config"
	"github.com/ferreteriapro/admin-api/pkg/logger"
)

// nuevoProductUC levanta un backend falso y devuelve el caso de uso apuntándole.
func nuevoProductUC(t *testing.T, handler http.HandlerFunc) *usecase.ProductUseCase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	gw := backend.New(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 2}, logger.NewNop())
	return usecase.NewProductUseCase(gw)
}

const dropdownJSON = `[
	{"id": 1, "codigo": "FER-001", "nombre": "Martillo de uña", "marca": "Truper"},
	{"id": 2, "codigo": "FER-002", "nombre": "Taládro percutor", "marca": "DeWalt"},
	{"id": 3, "codigo": "TOR-100", "nombre": "Tornillo 3mm", "marca": "Genérico"}
]`

func TestProductDropdown_SinBusquedaDevuelveTodo(t *testing.T) {
	uc := nuevoProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/productos/dropdown/", r.URL.Path)
		w.Write([]byte(dropdownJSON))
	})

	products, err := uc.Dropdown(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestProductDropdown_FiltraSinDistinguirAcentos(t *testing.T) {
	uc := nuevoProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dropdownJSON))
	})

	// "taladro" sin acento encuentra "Taládro percutor"
	products, err := uc.Dropdown(context.Background(), "taladro")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Taládro percutor", products[0].Name)
}

func TestProductDropdown_FiltraPorMarcaYCodigo(t *testing.T) {
	uc := nuevoProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dropdownJSON))
	})

	porMarca, err := uc.Dropdown(context.Background(), "dewalt")
	require.NoError(t, err)
	require.Len(t, porMarca, 1)
	assert.Equal(t, int64(2), porMarca[0].ID)

	porCodigo, err := uc.Dropdown(context.Background(), "tor-100")
	require.NoError(t, err)
	require.Len(t, porCodigo, 1)
	assert.Equal(t, "Tornillo 3mm", porCodigo[0].Name)
}

func TestProductDropdown_SinCoincidenciasDevuelveVacio(t *testing.T) {
	uc := nuevoProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(dropdownJSON))
	})

	products, err := uc.Dropdown(context.Background(), "llave inglesa")
	require.NoError(t, err)
	assert.Empty(t, products)
}
