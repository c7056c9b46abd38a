package services

import (
	"errors"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrUnknownReference marks a token whose BRFQ or supplier row no longer
// exists; handlers answer 400.
var ErrUnknownReference = errors.New("referenced BRFQ or supplier does not exist")

type QuoteService struct {
	db *gorm.DB
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	if db == nil {
		db = config.DB
	}
	return &QuoteService{db: db}
}

type QuoteItemInput struct {
	LineItemID  *string         `json:"line_item_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UOM         string          `json:"uom"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type QuoteInput struct {
	SupplierQuoteNo string           `json:"supplierQuoteNo"`
	ValidFor        int              `json:"validFor"`
	Currency        string           `json:"currency"`
	Shipping        string           `json:"shipping"`
	Token           string           `json:"token"`
	Items           []QuoteItemInput `json:"items"`
}

// Submit verifies the invite token, checks that both referenced entities
// still exist and creates the quote with its nested items in one insert.
func (s *QuoteService) Submit(in QuoteInput) (*models.Quote, error) {
	claims, err := ParseQuoteInvite(in.Token)
	if err != nil {
		return nil, err
	}

	var brfqCount int64
	if err := s.db.Model(&models.BRFQ{}).
		Where("brfq_id = ? AND delete_at IS NULL", claims.RFQID).
		Count(&brfqCount).Error; err != nil {
		return nil, err
	}
	if brfqCount == 0 {
		return nil, ErrUnknownReference
	}

	var supplierCount int64
	if err := s.db.Model(&models.Supplier{}).
		Where("supplier_id = ? AND delete_at IS NULL", claims.SupplierID).
		Count(&supplierCount).Error; err != nil {
		return nil, err
	}
	if supplierCount == 0 {
		return nil, ErrUnknownReference
	}

	now := time.Now()
	quote := models.Quote{
		QuoteID:         uuid.NewString(),
		BRFQID:          claims.RFQID,
		SupplierID:      claims.SupplierID,
		SupplierQuoteNo: in.SupplierQuoteNo,
		ValidFor:        in.ValidFor,
		Currency:        in.Currency,
		Shipping:        in.Shipping,
		SubmittedAt:     now,
		CreateAt:        now,
	}

	total := decimal.Zero
	for _, item := range in.Items {
		lineTotal := item.Quantity.Mul(item.UnitPrice)
		total = total.Add(lineTotal)
		quote.Items = append(quote.Items, models.QuoteItem{
			QuoteItemID: uuid.NewString(),
			QuoteID:     quote.QuoteID,
			LineItemID:  item.LineItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UOM:         item.UOM,
			UnitPrice:   item.UnitPrice,
			LineTotal:   lineTotal,
		})
	}
	quote.TotalAmount = total

	if err := s.db.Create(&quote).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// ListForBRFQ returns submitted quotes for one BRFQ with their items.
func (s *QuoteService) ListForBRFQ(brfqID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.Preload("Items").
		Preload("Supplier").
		Where("brfq_id = ? AND delete_at IS NULL", brfqID).
		Order("submitted_at DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}
