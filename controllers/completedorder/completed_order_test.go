package completedOrderControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tornelo-labs/commerce-api/models"
	"github.com/tornelo-labs/commerce-api/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ShoppingCartItem{},
		&models.AnalyticsRecord{},
		&models.ShippingInfo{},
		&models.CompletedOrder{},
		&models.User{},
	))

	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCompletedOrderRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	input := map[string]any{
		"userId":       1,
		"prodId":       7,
		"prodName":     "Tournament Set",
		"prodQuantity": 2,
		"prodCost":     30.0,
	}
	w := doJSON(t, r, http.MethodPost, "/api/completedOrders/", input)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.CompletedOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.OrderRef)
	assert.Equal(t, "Tournament Set", created.ProdName)
	assert.Equal(t, 2, created.ProdQuantity)

	got := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/completedOrders/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, got.Code)
}

func TestCompletedOrderValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/completedOrders/", map[string]any{"prodName": "Set"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompletedOrderNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/completedOrders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/completedOrders/999", map[string]any{"prodQuantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/completedOrders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
