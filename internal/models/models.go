package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User - back-office staff. Role is one of the rbac.Role constants,
// stored canonically in UPPER_SNAKE form.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:120" json:"email"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	Role         string    `gorm:"size:32" json:"role"`
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category - product grouping, unique by name
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product - the catalog. Referenced by inventory rows and sale lines,
// never owned by them.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:150" json:"name"`
	SKU        string          `gorm:"uniqueIndex;size:64" json:"sku"`
	CategoryID uint            `json:"category_id"`
	Category   Category        `json:"category"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost_price"`
	ImageURL   string          `json:"image_url"`
	CreatedAt  time.Time       `json:"created_at"`
}

// InventoryItem - quantity on hand per (product, location). One row per
// pair, enforced by the composite unique index. Quantity is not clamped
// on decrement.
type InventoryItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_product_location" json:"product_id"`
	Location      string    `gorm:"uniqueIndex:idx_product_location;size:100" json:"location"`
	Product       Product   `json:"product"`
	Quantity      int       `json:"quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Sale - the transaction header. Immutable once created: there is no
// update or delete path for sales.
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	SaleNumber    string          `gorm:"uniqueIndex;size:64" json:"sale_number"`
	UserID        uint            `json:"user_id"` // Who processed it
	User          User            `json:"user"`
	CustomerName  string          `gorm:"size:150" json:"customer_name"`
	CustomerPhone string          `gorm:"size:50" json:"customer_phone"`
	CustomerEmail string          `gorm:"size:120" json:"customer_email"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
	DiscountPct   decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percent"`
	TaxPct        decimal.Decimal `gorm:"type:decimal(5,2)" json:"tax_percent"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"` // pre-discount/tax subtotal
	FinalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"final_amount"` // amount actually charged
	PaymentMethod string          `gorm:"size:32" json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleItem - one line of a sale. Lives and dies with its Sale.
type SaleItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uint            `json:"sale_id"`
	ProductID uint            `json:"product_id"`
	Product   Product         `json:"product"` // Preload product details
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"` // Snapshot of price at time of sale
}

// Media - metadata for a file stored on local disk under the upload dir.
type Media struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"size:200" json:"file_name"`
	OriginalName string    `gorm:"size:200" json:"original_name"`
	ContentType  string    `gorm:"size:100" json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedBy   uint      `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// Page - CMS-style content for the marketing site
type Page struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Slug      string    `gorm:"uniqueIndex;size:120" json:"slug"`
	Title     string    `gorm:"size:200" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactMessage - submission from the public contact form
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150" json:"name"`
	Email     string    `gorm:"size:120" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Subject   string    `gorm:"size:200" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteRequest - submission from the public quote form, optionally tied
// to a catalog product.
type QuoteRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150" json:"name"`
	Email     string    `gorm:"size:120" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	ProductID *uint     `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
