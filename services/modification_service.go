package services

import (
	"errors"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModificationService struct {
	db *gorm.DB
}

func NewModificationService(db *gorm.DB) *ModificationService {
	if db == nil {
		db = config.DB
	}
	return &ModificationService{db: db}
}

// ModificationDecision carries the updated request plus the history row
// appended for the decision.
type ModificationDecision struct {
	Modification models.ModificationRequest
	History      models.ModificationAction
}

// Reject transitions a pending modification request to rejected and appends
// a history record. Both writes happen in one transaction.
func (s *ModificationService) Reject(modificationID, actedBy, note string) (*ModificationDecision, error) {
	return s.decide(modificationID, actedBy, note, models.ModificationActionReject, models.ModificationStatusRejected)
}

// Approve transitions a pending modification request to approved and appends
// a history record.
func (s *ModificationService) Approve(modificationID, actedBy, note string) (*ModificationDecision, error) {
	return s.decide(modificationID, actedBy, note, models.ModificationActionApprove, models.ModificationStatusApproved)
}

func (s *ModificationService) decide(modificationID, actedBy, note, action, newStatus string) (*ModificationDecision, error) {
	var decision *ModificationDecision

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var mod models.ModificationRequest
		if err := tx.Where("modification_id = ?", modificationID).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := EnsureTransition("modification request", ApprovalStatus(mod.Status), ApprovalStatus(newStatus)); err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":       newStatus,
			"processed_by": actedBy,
			"processed_at": now,
			"update_at":    now,
		}
		if note != "" {
			updates["note"] = note
		}

		if err := tx.Model(&models.ModificationRequest{}).
			Where("modification_id = ?", modificationID).
			Updates(updates).Error; err != nil {
			return err
		}

		history := models.ModificationAction{
			ActionID:       uuid.NewString(),
			ModificationID: modificationID,
			Action:         action,
			ActedBy:        actedBy,
			CreatedAt:      now,
		}
		if note != "" {
			history.Note = &note
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		mod.Status = newStatus
		mod.ProcessedBy = &actedBy
		mod.ProcessedAt = &now
		mod.UpdateAt = &now
		if note != "" {
			mod.Note = &note
		}
		decision = &ModificationDecision{Modification: mod, History: history}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decision, nil
}

// Create registers a new modification request against a published BRFQ.
func (s *ModificationService) Create(brfqID, requestedBy, summary, details string) (*models.ModificationRequest, error) {
	var brfq models.BRFQ
	if err := s.db.Select("brfq_id", "published").
		Where("brfq_id = ? AND delete_at IS NULL", brfqID).
		First(&brfq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	mod := models.ModificationRequest{
		ModificationID: uuid.NewString(),
		BRFQID:         brfqID,
		RequestedBy:    requestedBy,
		Summary:        summary,
		Status:         models.ModificationStatusPending,
		CreateAt:       time.Now(),
	}
	if details != "" {
		mod.Details = &details
	}
	if err := s.db.Create(&mod).Error; err != nil {
		return nil, err
	}
	return &mod, nil
}

// Get loads a modification request with its history, newest action first.
func (s *ModificationService) Get(modificationID string) (*models.ModificationRequest, error) {
	var mod models.ModificationRequest
	err := s.db.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).Where("modification_id = ?", modificationID).First(&mod).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &mod, nil
}

// List returns modification requests, optionally filtered by status or BRFQ.
func (s *ModificationService) List(status, brfqID string, limit, offset int) ([]models.ModificationRequest, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	q := s.db.Model(&models.ModificationRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if brfqID != "" {
		q = q.Where("brfq_id = ?", brfqID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.ModificationRequest
	if err := q.Order("create_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
