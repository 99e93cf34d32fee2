package httppresentation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appAuth "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/auth"
	appCatalog "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/catalog"
	appLoyalty "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/loyalty"
	appOrder "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/order"
	appPayment "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/payment"
	appStock "github.com/neftalics/Lab01-Inkafarma-Software/internal/application/stock"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ledger := memory.NewLedgerRepository(memory.SeedStock())
	locations := memory.NewLocationRepository(memory.SeedLocations())
	orders := memory.NewOrderRepository()
	payments := memory.NewPaymentRepository()

	stockSvc := appStock.NewService(ledger, locations, nil)
	handler := NewHandler(
		appAuth.NewService(memory.NewUserRepository(memory.SeedUsers()), nil),
		appCatalog.NewService(memory.NewCatalogRepository(memory.SeedProducts()), nil),
		stockSvc,
		appOrder.NewService(orders, nil, nil),
		appPayment.NewService(orders, ledger, payments, stockSvc, false, nil),
		appLoyalty.NewService(memory.NewLoyaltyRepository(map[int]int{1: 250}), nil),
		nil,
	)

	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login",
		map[string]any{"user_id": 1, "username": "admin", "password": "password123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Login successful"}`, string(body))

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/login",
		map[string]any{"user_id": 1, "username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductRoutes(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 20)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/products/category/Baby/id/3", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/products/category/Baby/id/2", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/products/recommendations/5", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &products))
	assert.Len(t, products, 3)
}

func TestOrderAndPaymentFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/orders/create", map[string]any{
		"order_id":    999,
		"user_id":     1,
		"product_ids": []int{2, 4},
		"quantity":    []int{5, 2},
		"location_id": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Order created successfully"}`, string(body))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/payments/process",
		map[string]any{"order_id": 999, "status": "Paid"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Payment processed"}`, string(body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/stock/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entry struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, 115, entry.Quantity)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/locations/1/stock/4/quantity", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, 78, entry.Quantity)

	// A second payment for the same order is refused.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/payments/process",
		map[string]any{"order_id": 999, "status": "Paid"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateOrderValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/orders/create", map[string]any{
		"order_id":    1,
		"user_id":     1,
		"product_ids": []int{2, 4},
		"quantity":    []int{5},
		"location_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPaymentForUnknownOrder(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/payments/process",
		map[string]any{"order_id": 404, "status": "Paid"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoyaltyPoints(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/loyalty/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user_id":1,"points":250}`, string(body))

	// Unknown users read as zero points, not 404.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/loyalty/101", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user_id":101,"points":0}`, string(body))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}
