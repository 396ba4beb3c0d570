package checkout_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tornelo-labs/commerce-api/checkout"
	"github.com/tornelo-labs/commerce-api/models"
	"github.com/tornelo-labs/commerce-api/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
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

	// The orchestrator fans out concurrent requests; a single connection
	// keeps the in-memory database from returning busy errors.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	r := gin.New()
	routes.SetupRoutes(r, db)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, db
}

func currentMonthBucket() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// First sale of a product in a month: a fresh analytics record is seeded from
// the cart line and the stock count is left alone.
func TestCompletePaymentSeedsNewAnalyticsRecord(t *testing.T) {
	srv, db := newTestServer(t)

	product := models.Product{ProdName: "A", ProdCost: 10, StockCount: 5}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ShoppingCartItem{
		UserID: 1, ProdID: product.ID, ProdName: "A", ProdQuantity: 2, ProdCost: 10,
	}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, checkout.Applied, result.Items[0].Kind)
	assert.False(t, result.Failed())
	assert.Equal(t, 20.0, result.TotalCost)

	var records []models.AnalyticsRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, 20.0, records[0].TotalSales)
	assert.Equal(t, 2, records[0].Uptakes)

	// Stock is untouched on the create path
	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 5, fresh.StockCount)

	// Cart cleared
	var cartCount int64
	require.NoError(t, db.Model(&models.ShoppingCartItem{}).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	// One audit row per purchased line
	var orders []models.CompletedOrder
	require.NoError(t, db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Equal(t, "A", orders[0].ProdName)
	assert.Equal(t, 2, orders[0].ProdQuantity)
	assert.NotEmpty(t, orders[0].OrderRef)
}

// Repeat sale in the same month: accumulators are bumped and stock is
// decremented through the product resource.
func TestCompletePaymentUpdatesExistingRecord(t *testing.T) {
	srv, db := newTestServer(t)

	product := models.Product{ProdName: "A", ProdCost: 10, StockCount: 9}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ShoppingCartItem{
		UserID: 1, ProdID: product.ID, ProdName: "A", ProdQuantity: 1, ProdCost: 10,
	}).Error)
	require.NoError(t, db.Create(&models.AnalyticsRecord{
		Name: "A", TotalSales: 50, Uptakes: 5, Month: currentMonthBucket(),
	}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, checkout.Applied, result.Items[0].Kind)

	var record models.AnalyticsRecord
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, 60.0, record.TotalSales)
	assert.Equal(t, 6, record.Uptakes)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 8, fresh.StockCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.ShoppingCartItem{}).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

// A record from an earlier month is not a match: the flow seeds a new record
// for the current month instead of bumping the old one.
func TestCompletePaymentIgnoresOtherMonths(t *testing.T) {
	srv, db := newTestServer(t)

	product := models.Product{ProdName: "A", ProdCost: 10, StockCount: 5}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.ShoppingCartItem{
		UserID: 1, ProdID: product.ID, ProdName: "A", ProdQuantity: 1, ProdCost: 10,
	}).Error)
	require.NoError(t, db.Create(&models.AnalyticsRecord{
		Name: "A", TotalSales: 100, Uptakes: 10, Month: currentMonthBucket().AddDate(0, -1, 0),
	}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Failed())

	var count int64
	require.NoError(t, db.Model(&models.AnalyticsRecord{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var old models.AnalyticsRecord
	require.NoError(t, db.Where("total_sales = ?", 100).First(&old).Error)
	assert.Equal(t, 10, old.Uptakes)
}

// The stock update is an independent request: when the product is gone the
// item is tagged StockFailed, the analytics bump still lands and the cart is
// still cleared.
func TestCompletePaymentTagsStockFailure(t *testing.T) {
	srv, db := newTestServer(t)

	require.NoError(t, db.Create(&models.ShoppingCartItem{
		UserID: 1, ProdID: 424242, ProdName: "A", ProdQuantity: 1, ProdCost: 10,
	}).Error)
	require.NoError(t, db.Create(&models.AnalyticsRecord{
		Name: "A", TotalSales: 50, Uptakes: 5, Month: currentMonthBucket(),
	}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, checkout.StockFailed, result.Items[0].Kind)
	assert.Error(t, result.Items[0].Err)
	assert.True(t, result.Failed())

	var record models.AnalyticsRecord
	require.NoError(t, db.First(&record).Error)
	assert.Equal(t, 60.0, record.TotalSales)

	var cartCount int64
	require.NoError(t, db.Model(&models.ShoppingCartItem{}).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

// Multiple cart lines are processed independently and all deleted at the end.
func TestCompletePaymentMultipleItems(t *testing.T) {
	srv, db := newTestServer(t)

	prodA := models.Product{ProdName: "A", ProdCost: 10, StockCount: 5}
	prodB := models.Product{ProdName: "B", ProdCost: 20, StockCount: 7}
	require.NoError(t, db.Create(&prodA).Error)
	require.NoError(t, db.Create(&prodB).Error)
	require.NoError(t, db.Create(&models.ShoppingCartItem{UserID: 1, ProdID: prodA.ID, ProdName: "A", ProdQuantity: 2, ProdCost: 10}).Error)
	require.NoError(t, db.Create(&models.ShoppingCartItem{UserID: 1, ProdID: prodB.ID, ProdName: "B", ProdQuantity: 1, ProdCost: 20}).Error)
	require.NoError(t, db.Create(&models.AnalyticsRecord{Name: "B", TotalSales: 40, Uptakes: 2, Month: currentMonthBucket()}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.False(t, result.Failed())
	assert.Equal(t, 40.0, result.TotalCost)

	// "A" had no record: seeded, stock untouched. "B" had one: bumped, stock decremented.
	var recA, recB models.AnalyticsRecord
	require.NoError(t, db.Where("name = ?", "A").First(&recA).Error)
	require.NoError(t, db.Where("name = ?", "B").First(&recB).Error)
	assert.Equal(t, 20.0, recA.TotalSales)
	assert.Equal(t, 2, recA.Uptakes)
	assert.Equal(t, 60.0, recB.TotalSales)
	assert.Equal(t, 3, recB.Uptakes)

	var freshA, freshB models.Product
	require.NoError(t, db.First(&freshA, prodA.ID).Error)
	require.NoError(t, db.First(&freshB, prodB.ID).Error)
	assert.Equal(t, 5, freshA.StockCount)
	assert.Equal(t, 6, freshB.StockCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.ShoppingCartItem{}).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	var orderCount int64
	require.NoError(t, db.Model(&models.CompletedOrder{}).Count(&orderCount).Error)
	assert.Equal(t, int64(2), orderCount)
}

// The "current" shipping record is the last element of the unordered list.
func TestCompletePaymentPicksLastShippingRecord(t *testing.T) {
	srv, db := newTestServer(t)

	require.NoError(t, db.Create(&models.ShippingInfo{Name: "Old Address", Address: "1 Castle Rd", Email: "a@example.com"}).Error)
	require.NoError(t, db.Create(&models.ShippingInfo{Name: "Current Address", Address: "2 Rook St", Email: "a@example.com"}).Error)

	client := checkout.New(srv.URL)
	result, err := client.CompletePayment(context.Background())
	require.NoError(t, err)

	require.NotNil(t, result.Shipping)
	assert.Equal(t, "Current Address", result.Shipping.Name)
	assert.Empty(t, result.Items)
}
