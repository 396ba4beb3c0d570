// Package checkout drives the payment-completion flow against the REST API
// the way the storefront does: one concurrent batch of per-item analytics and
// stock updates, then one concurrent batch of cart deletions. No transaction
// spans the sub-operations; two overlapping checkouts can lose analytics
// updates (last write wins). Instead of swallowing failures, every item gets
// a tagged outcome so the caller can decide to retry or alert.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"golang.org/x/sync/errgroup"
)

// OutcomeKind tags how a single cart item fared during checkout.
type OutcomeKind string

const (
	Applied         OutcomeKind = "applied"
	AnalyticsFailed OutcomeKind = "analytics_failed"
	StockFailed     OutcomeKind = "stock_failed"
	DeleteFailed    OutcomeKind = "delete_failed"
)

// ItemOutcome is the per-item verdict of CompletePayment.
type ItemOutcome struct {
	ItemID   uint
	ProdName string
	Kind     OutcomeKind
	Err      error
}

// Result aggregates a whole checkout run.
type Result struct {
	Items     []ItemOutcome
	Shipping  *models.ShippingInfo
	TotalCost float64
}

// Failed reports whether any item ended in a non-applied state.
func (r *Result) Failed() bool {
	for _, item := range r.Items {
		if item.Kind != Applied {
			return true
		}
	}
	return false
}

// Client issues checkout operations against a running API server.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Concurrency bounds the per-item fan-out; zero means defaultConcurrency.
	Concurrency int
}

const defaultConcurrency = 8

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// CompletePayment runs the full checkout flow for whatever is currently in
// the cart. The analytics list is fetched once up front and matched in
// memory; the "current" shipping record is the last element of the unordered
// shipping list, as the storefront selects it.
func (c *Client) CompletePayment(ctx context.Context) (*Result, error) {
	var cart []models.ShoppingCartItem
	if err := c.getJSON(ctx, "/api/shoppingCart/", &cart); err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}

	var analytics []models.AnalyticsRecord
	if err := c.getJSON(ctx, "/api/analytics/", &analytics); err != nil {
		return nil, fmt.Errorf("fetch analytics: %w", err)
	}

	var shippingList []models.ShippingInfo
	if err := c.getJSON(ctx, "/api/shipping/", &shippingList); err != nil {
		return nil, fmt.Errorf("fetch shipping: %w", err)
	}

	result := &Result{Items: make([]ItemOutcome, len(cart))}
	if len(shippingList) > 0 {
		result.Shipping = &shippingList[len(shippingList)-1]
	}
	for _, item := range cart {
		result.TotalCost += item.ProdCost * float64(item.ProdQuantity)
	}

	now := time.Now().UTC()

	// Phase one: per-item analytics and stock updates, in parallel.
	limit := c.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i, item := range cart {
		i, item := i, item
		g.Go(func() error {
			result.Items[i] = c.processItem(ctx, item, analytics, now)
			return nil
		})
	}
	_ = g.Wait()

	// Phase two: clear the cart. Runs only after every item settled; one
	// failed delete neither blocks the others nor aborts the flow.
	var d errgroup.Group
	d.SetLimit(limit)
	for i, item := range cart {
		i, item := i, item
		d.Go(func() error {
			if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/shoppingCart/%d", item.ID), nil); err != nil {
				logger.Log.Errorw("cart item delete failed", "itemId", item.ID, "err", err)
				if result.Items[i].Kind == Applied {
					result.Items[i] = ItemOutcome{
						ItemID:   item.ID,
						ProdName: item.ProdName,
						Kind:     DeleteFailed,
						Err:      err,
					}
				}
			}
			return nil
		})
	}
	_ = d.Wait()

	return result, nil
}

// processItem reconciles one cart line against the pre-fetched analytics
// list. A matched record gets its accumulators bumped and the product's stock
// decremented via two independent requests with no ordering guarantee and no
// rollback. An unmatched item seeds a fresh record for the current month;
// stock is NOT touched on that path. That asymmetry matches the storefront's
// historical behavior and is deliberately left as is.
func (c *Client) processItem(ctx context.Context, item models.ShoppingCartItem, analytics []models.AnalyticsRecord, now time.Time) ItemOutcome {
	outcome := ItemOutcome{ItemID: item.ID, ProdName: item.ProdName, Kind: Applied}
	saleTotal := item.ProdCost * float64(item.ProdQuantity)

	existing := matchRecord(analytics, item.ProdName, now)
	if existing == nil {
		body := map[string]any{
			"name":       item.ProdName,
			"totalSales": saleTotal,
			"uptakes":    item.ProdQuantity,
			"month":      monthBucket(now),
		}
		if err := c.send(ctx, http.MethodPost, "/api/analytics/", body); err != nil {
			logger.Log.Errorw("analytics create failed", "prodName", item.ProdName, "err", err)
			outcome.Kind = AnalyticsFailed
			outcome.Err = err
		}
		c.recordCompletedOrder(ctx, item)
		return outcome
	}

	update := map[string]any{
		"totalSales": existing.TotalSales + saleTotal,
		"uptakes":    existing.Uptakes + item.ProdQuantity,
	}
	analyticsErr := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/analytics/%d", existing.ID), update)
	if analyticsErr != nil {
		logger.Log.Errorw("analytics update failed", "prodName", item.ProdName, "err", analyticsErr)
	}

	stockErr := c.decrementStock(ctx, item)
	if stockErr != nil {
		logger.Log.Errorw("stock update failed", "prodId", item.ProdID, "err", stockErr)
	}

	switch {
	case analyticsErr != nil:
		outcome.Kind = AnalyticsFailed
		outcome.Err = analyticsErr
	case stockErr != nil:
		outcome.Kind = StockFailed
		outcome.Err = stockErr
	}

	c.recordCompletedOrder(ctx, item)
	return outcome
}

// decrementStock reads the product's current stock and writes it back minus
// the purchased quantity. Read and write are separate requests; a concurrent
// checkout between them loses one of the decrements.
func (c *Client) decrementStock(ctx context.Context, item models.ShoppingCartItem) error {
	var product models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/api/products/%d", item.ProdID), &product); err != nil {
		return fmt.Errorf("fetch stock: %w", err)
	}

	update := map[string]any{"stockCount": product.StockCount - item.ProdQuantity}
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", item.ProdID), update); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// recordCompletedOrder writes the audit row for a purchased item. Best
// effort: nothing reads these back during checkout, so a failure is logged
// without changing the item's outcome.
func (c *Client) recordCompletedOrder(ctx context.Context, item models.ShoppingCartItem) {
	body := map[string]any{
		"userId":       item.UserID,
		"prodId":       item.ProdID,
		"prodName":     item.ProdName,
		"prodQuantity": item.ProdQuantity,
		"prodCost":     item.ProdCost,
	}
	if err := c.send(ctx, http.MethodPost, "/api/completedOrders/", body); err != nil {
		logger.Log.Errorw("completed order record failed", "prodName", item.ProdName, "err", err)
	}
}

// matchRecord finds the analytics record for this product name in the
// current month's bucket.
func matchRecord(analytics []models.AnalyticsRecord, prodName string, now time.Time) *models.AnalyticsRecord {
	bucket := monthBucket(now)
	for i := range analytics {
		if analytics[i].Name == prodName && monthBucket(analytics[i].Month).Equal(bucket) {
			return &analytics[i]
		}
	}
	return nil
}

// monthBucket truncates a timestamp to the first instant of its UTC month.
func monthBucket(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
