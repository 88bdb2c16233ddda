package database

import (
	"time"

	"geosolar-backoffice/internal/models"

	"gorm.io/gorm"
)

// TopSellingRow is one entry in the best-sellers breakdown.
type TopSellingRow struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// SalesReportResult summarizes sales activity over a date range.
type SalesReportResult struct {
	TotalRevenue float64         `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
	TopSelling   []TopSellingRow `json:"top_selling"`
	RecentSales  []models.Sale   `json:"recent_sales"`
}

// GetSalesReport aggregates revenue, order count, the five best sellers,
// and the latest transactions within [start, end].
func GetSalesReport(db *gorm.DB, start, end time.Time) (*SalesReportResult, error) {
	var result SalesReportResult

	// COALESCE ensures we get 0 instead of NULL if no sales exist
	err := db.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(final_amount), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Sale{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&result.TotalOrders).Error
	if err != nil {
		return nil, err
	}

	err = db.Table("sale_items").
		Select("products.name as product_name, SUM(sale_items.quantity) as sold, SUM(sale_items.quantity * sale_items.unit_price) as revenue").
		Joins("JOIN products ON sale_items.product_id = products.id").
		Joins("JOIN sales ON sale_items.sale_id = sales.id").
		Where("sales.created_at BETWEEN ? AND ?", start, end).
		Group("products.name").
		Order("sold desc").
		Limit(5).
		Scan(&result.TopSelling).Error
	if err != nil {
		return nil, err
	}

	err = db.Preload("Items.Product").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").
		Limit(10).
		Find(&result.RecentSales).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// StockValuationResult is the cost value of everything currently on hand.
type StockValuationResult struct {
	TotalValue float64 `json:"total_value"`
	TotalUnits int64   `json:"total_units"`
}

// GetStockValuation sums quantity x cost price over the whole ledger.
// Negative quantities (oversold rows) subtract, which is exactly what an
// accountant would expect.
func GetStockValuation(db *gorm.DB) (*StockValuationResult, error) {
	var result StockValuationResult

	err := db.Table("inventory_items").
		Joins("JOIN products ON inventory_items.product_id = products.id").
		Select("COALESCE(SUM(inventory_items.quantity * products.cost_price), 0)").
		Scan(&result.TotalValue).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&result.TotalUnits).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
