package pharmacy_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/ayursetu-client/gateway"
	"github.com/jrsteele09/ayursetu-client/internal/testutil"
	"github.com/jrsteele09/ayursetu-client/internal/utils"
	"github.com/jrsteele09/ayursetu-client/pharmacy"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*pharmacy.API, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	return pharmacy.NewAPI(gateway.New(backend.URL())), backend
}

func TestListEndpoints(t *testing.T) {
	api, backend := newTestAPI(t)
	list := []pharmacy.Medicine{{ID: 1, Name: "Triphala Churna", Category: "Digestive", StockQuantity: utils.Ptr(40)}}
	for _, p := range []string{
		"/api/pharmacy/medicines",
		"/api/pharmacy/medicines/category/{c}",
		"/api/pharmacy/medicines/available",
		"/api/pharmacy/medicines/search",
		"/api/pharmacy/medicines/low-stock",
	} {
		backend.Handle(http.MethodGet, p, http.StatusOK, list)
	}
	ctx := context.Background()

	got, err := api.List(ctx)
	require.NoError(t, err)
	require.Equal(t, list, got)
	require.True(t, got[0].InStock())

	_, err = api.ByCategory(ctx, "Digestive")
	require.NoError(t, err)
	require.Equal(t, "/api/pharmacy/medicines/category/Digestive", backend.Last().Path)

	_, err = api.Available(ctx)
	require.NoError(t, err)
	require.Equal(t, "/api/pharmacy/medicines/available", backend.Last().Path)

	_, err = api.Search(ctx, "tulsi drops")
	require.NoError(t, err)
	require.Equal(t, "/api/pharmacy/medicines/search", backend.Last().Path)
	require.Equal(t, "tulsi drops", backend.Last().Query.Get("query"))

	_, err = api.LowStock(ctx)
	require.NoError(t, err)
	require.Equal(t, "/api/pharmacy/medicines/low-stock", backend.Last().Path)
}

func TestCRUDAndStock(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodPost, "/api/pharmacy/medicines", http.StatusCreated, pharmacy.Medicine{ID: 8, Name: "Chyawanprash"})
	backend.Handle(http.MethodGet, "/api/pharmacy/medicines/{id}", http.StatusOK, pharmacy.Medicine{ID: 8, Name: "Chyawanprash"})
	backend.Handle(http.MethodPut, "/api/pharmacy/medicines/{id}", http.StatusOK, pharmacy.Medicine{ID: 8, Price: utils.Ptr(349.0)})
	backend.Handle(http.MethodPut, "/api/pharmacy/medicines/{id}/stock", http.StatusOK, nil)
	backend.Handle(http.MethodDelete, "/api/pharmacy/medicines/{id}", http.StatusNoContent, nil)
	ctx := context.Background()

	created, err := api.Create(ctx, pharmacy.Medicine{Name: "Chyawanprash", RequiresPrescription: utils.Ptr(false)})
	require.NoError(t, err)
	require.Equal(t, int64(8), created.ID)
	var sent map[string]any
	backend.Last().DecodeBody(t, &sent)
	require.Equal(t, false, sent["requiresPrescription"])

	got, err := api.Get(ctx, 8)
	require.NoError(t, err)
	require.Equal(t, "Chyawanprash", got.Name)

	updated, err := api.Update(ctx, 8, pharmacy.Medicine{Price: utils.Ptr(349.0)})
	require.NoError(t, err)
	require.Equal(t, 349.0, utils.Value(updated.Price))

	require.NoError(t, api.UpdateStock(ctx, 8, 0))
	require.Equal(t, "/api/pharmacy/medicines/8/stock", backend.Last().Path)
	require.Equal(t, "0", backend.Last().Query.Get("quantity"))
	require.False(t, pharmacy.Medicine{StockQuantity: utils.Ptr(0)}.InStock())

	require.NoError(t, api.Delete(ctx, 8))
	require.Equal(t, http.MethodDelete, backend.Last().Method)
}

func TestDecodesBackendPayload(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.HandleFunc(http.MethodGet, "/api/pharmacy/medicines/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 4,
			"name": "Ashwagandha Churna",
			"genericName": "Withania somnifera",
			"manufacturer": "Dabur",
			"category": "Rasayana",
			"dosageForm": "Powder",
			"strength": "100g",
			"price": 245.50,
			"stockQuantity": 12,
			"requiresPrescription": false,
			"isAvailable": true,
			"imageUrl": null
		}`))
	})

	m, err := api.Get(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "Withania somnifera", m.GenericName)
	require.Equal(t, "Powder", m.DosageForm)
	require.Equal(t, "100g", m.Strength)
	require.Equal(t, 245.5, utils.Value(m.Price))
	require.Equal(t, 12, utils.Value(m.StockQuantity))
	require.True(t, m.InStock())
}

func TestHealthReturnsPlainText(t *testing.T) {
	api, backend := newTestAPI(t)
	backend.Handle(http.MethodGet, "/api/pharmacy/health", http.StatusOK, "Pharmacy Service is running")

	msg, err := api.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Pharmacy Service is running", msg)
}
