package services

import (
	"errors"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AwardService struct {
	db *gorm.DB
}

func NewAwardService(db *gorm.DB) *AwardService {
	if db == nil {
		db = config.DB
	}
	return &AwardService{db: db}
}

type AwardWinnerInput struct {
	QuoteID string `json:"quote_id" binding:"required"`
}

// Create records the award result for a BRFQ. Winner rows are derived from
// the chosen quotes so supplier and amount always match a submitted quote.
func (s *AwardService) Create(brfqID, createdBy string, winners []AwardWinnerInput) (*models.Award, error) {
	var award *models.Award

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var brfq models.BRFQ
		if err := tx.Where("brfq_id = ? AND delete_at IS NULL", brfqID).First(&brfq).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if brfq.ApprovalStatus != models.BRFQStatusApproved {
			return &InvalidTransitionError{
				Entity:  "BRFQ award",
				Current: ApprovalStatus(brfq.ApprovalStatus),
				Target:  StatusApproved,
			}
		}

		now := time.Now()
		a := models.Award{
			AwardID:   uuid.NewString(),
			BRFQID:    brfqID,
			Status:    string(StatusPending),
			CreatedBy: createdBy,
			CreateAt:  now,
		}

		for _, w := range winners {
			var quote models.Quote
			if err := tx.Where("quote_id = ? AND brfq_id = ? AND delete_at IS NULL", w.QuoteID, brfqID).
				First(&quote).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownReference
				}
				return err
			}
			a.Winners = append(a.Winners, models.AwardWinner{
				WinnerID:   uuid.NewString(),
				AwardID:    a.AwardID,
				SupplierID: quote.SupplierID,
				QuoteID:    quote.QuoteID,
				Amount:     quote.TotalAmount,
			})
		}

		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		award = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

// Decide records an approval decision on a pending award.
func (s *AwardService) Decide(awardID, approver, decision, note string) (*models.Award, error) {
	var award models.Award
	if err := s.db.Where("award_id = ?", awardID).First(&award).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	target := ApprovalStatus(decision)
	if err := EnsureTransition("award", ApprovalStatus(award.Status), target); err != nil {
		return nil, err
	}

	now := time.Now()
	approval := models.AwardApproval{
		ApprovalID: uuid.NewString(),
		AwardID:    awardID,
		Approver:   approver,
		Decision:   decision,
		DecidedAt:  &now,
	}
	if note != "" {
		approval.Note = &note
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Award{}).
			Where("award_id = ?", awardID).
			Updates(map[string]interface{}{
				"status":    decision,
				"update_at": now,
			}).Error; err != nil {
			return err
		}
		return tx.Create(&approval).Error
	})
	if err != nil {
		return nil, err
	}

	award.Status = decision
	award.UpdateAt = &now
	award.Approvals = append(award.Approvals, approval)
	return &award, nil
}

// Get loads an award with winners and approvals.
func (s *AwardService) Get(awardID string) (*models.Award, error) {
	var award models.Award
	err := s.db.Preload("Winners").
		Preload("Approvals").
		Where("award_id = ?", awardID).
		First(&award).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &award, nil
}
