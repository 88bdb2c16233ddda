package database

import (
	"errors"
	"fmt"
	"time"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethods is the fixed enumeration accepted on a sale.
var PaymentMethods = []string{"cash", "card", "bank_transfer", "mobile_money"}

type SaleItemInput struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type SaleInput struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email"`
	Items         []SaleItemInput `json:"items"`
	DiscountPct   decimal.Decimal `json:"discount_percent"`
	TaxPct        decimal.Decimal `json:"tax_percent"`
	PaymentMethod string          `json:"payment_method"`
}

// SaleTotals holds the derived monetary amounts. The computation order is
// fixed: subtotal, discount, after-discount, tax, final.
type SaleTotals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	AfterDiscount  decimal.Decimal
	TaxAmount      decimal.Decimal
	FinalAmount    decimal.Decimal
}

// ComputeTotals derives the monetary amounts for a sale payload.
func ComputeTotals(in SaleInput) SaleTotals {
	hundred := decimal.NewFromInt(100)

	subtotal := decimal.Zero
	for _, item := range in.Items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	discountAmount := subtotal.Mul(in.DiscountPct).Div(hundred)
	afterDiscount := subtotal.Sub(discountAmount)
	taxAmount := afterDiscount.Mul(in.TaxPct).Div(hundred)
	finalAmount := afterDiscount.Add(taxAmount)

	return SaleTotals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		AfterDiscount:  afterDiscount,
		TaxAmount:      taxAmount,
		FinalAmount:    finalAmount,
	}
}

// ValidateSale checks the payload shape before anything touches storage.
func ValidateSale(in SaleInput) error {
	ve := apperrors.NewValidation()

	if len(in.Items) == 0 {
		ve.Add("items", "at least one line item is required")
	}
	for i, item := range in.Items {
		if item.ProductID == 0 {
			ve.Add(fmt.Sprintf("items[%d].product_id", i), "product id is required")
		}
		if item.Quantity <= 0 {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be a positive integer")
		}
		if item.UnitPrice.LessThanOrEqual(decimal.Zero) {
			ve.Add(fmt.Sprintf("items[%d].unit_price", i), "unit price must be positive")
		}
	}

	if in.DiscountPct.IsNegative() {
		ve.Add("discount_percent", "discount must not be negative")
	}
	if in.TaxPct.IsNegative() {
		ve.Add("tax_percent", "tax must not be negative")
	}

	validMethod := false
	for _, m := range PaymentMethods {
		if in.PaymentMethod == m {
			validMethod = true
			break
		}
	}
	if !validMethod {
		ve.Add("payment_method", "must be one of: cash, card, bank_transfer, mobile_money")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

// CreateSale validates the payload, then persists the sale and its line
// items together with the matching inventory decrements inside one
// transaction. Either everything commits or nothing does.
//
// Line items are processed in caller order. A product with no inventory row
// has its decrement skipped silently (untracked stock, e.g. services); the
// sale line is still recorded. Any other failure rolls the whole unit back.
func CreateSale(db *gorm.DB, userID uint, in SaleInput) (*models.Sale, error) {
	if err := ValidateSale(in); err != nil {
		return nil, err
	}

	totals := ComputeTotals(in)

	sale := models.Sale{
		SaleNumber:    generateSaleNumber(),
		UserID:        userID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		DiscountPct:   in.DiscountPct,
		TaxPct:        in.TaxPct,
		TotalAmount:   totals.Subtotal,
		FinalAmount:   totals.FinalAmount,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range in.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound(fmt.Sprintf("product %d", item.ProductID))
				}
				return err
			}

			sale.Items = append(sale.Items, models.SaleItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}

		// GORM inserts the line items with the header.
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, item := range in.Items {
			if _, err := DecrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetSale(db, sale.ID)
}

// GetSale returns a fully hydrated sale: line items with their products,
// and the user who processed it.
func GetSale(db *gorm.DB, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := db.Preload("Items.Product").Preload("User").First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("sale")
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales returns sales newest first, paged.
func ListSales(db *gorm.DB, limit, offset int) ([]models.Sale, int64, error) {
	var total int64
	if err := db.Model(&models.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []models.Sale
	err := db.Preload("Items.Product").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&sales).Error
	return sales, total, err
}

// generateSaleNumber builds a unique human-sortable receipt reference,
// e.g. "20250829143001-1f2e3d4c".
func generateSaleNumber() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}
