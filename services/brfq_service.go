package services

import (
	"errors"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BRFQService struct {
	db *gorm.DB
}

func NewBRFQService(db *gorm.DB) *BRFQService {
	if db == nil {
		db = config.DB
	}
	return &BRFQService{db: db}
}

// Create stores a draft BRFQ with its scope-of-work and line items.
func (s *BRFQService) Create(in models.BRFQ) (*models.BRFQ, error) {
	in.BRFQID = uuid.NewString()
	in.Status = models.BRFQStatusDraft
	in.ApprovalStatus = models.BRFQStatusPending
	in.Published = false
	in.CreateAt = time.Now()
	for i := range in.ScopeOfWork {
		in.ScopeOfWork[i].ScopeItemID = uuid.NewString()
		in.ScopeOfWork[i].BRFQID = in.BRFQID
		in.ScopeOfWork[i].SortOrder = i + 1
	}
	for i := range in.LineItems {
		in.LineItems[i].LineItemID = uuid.NewString()
		in.LineItems[i].BRFQID = in.BRFQID
	}
	if err := s.db.Create(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

// Get loads a BRFQ with its owned collections.
func (s *BRFQService) Get(brfqID string) (*models.BRFQ, error) {
	var brfq models.BRFQ
	err := s.db.Preload("ScopeOfWork").
		Preload("LineItems").
		Preload("Suppliers").
		Where("brfq_id = ? AND delete_at IS NULL", brfqID).
		First(&brfq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &brfq, nil
}

// List returns BRFQs filtered by status and/or requester.
func (s *BRFQService) List(status, requestedBy string, limit, offset int) ([]models.BRFQ, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	q := s.db.Model(&models.BRFQ{}).Where("delete_at IS NULL")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if requestedBy != "" {
		q = q.Where("requested_by = ?", requestedBy)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.BRFQ
	if err := q.Order("create_at DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update applies field changes to a draft BRFQ. Published or decided BRFQs
// must go through a modification request instead.
func (s *BRFQService) Update(brfqID string, updates map[string]interface{}) (*models.BRFQ, error) {
	brfq, err := s.Get(brfqID)
	if err != nil {
		return nil, err
	}
	if brfq.Status != models.BRFQStatusDraft {
		return nil, &InvalidTransitionError{
			Entity:  "BRFQ",
			Current: ApprovalStatus(brfq.Status),
			Target:  ApprovalStatus(models.BRFQStatusDraft),
		}
	}

	updates["update_at"] = time.Now()
	if err := s.db.Model(&models.BRFQ{}).
		Where("brfq_id = ?", brfqID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(brfqID)
}

// Publish moves a draft BRFQ to PUBLISHED and raises the publish flag.
func (s *BRFQService) Publish(brfqID string) (*models.BRFQ, error) {
	var brfq models.BRFQ
	if err := s.db.Where("brfq_id = ? AND delete_at IS NULL", brfqID).First(&brfq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if brfq.Status != models.BRFQStatusDraft {
		return nil, &InvalidTransitionError{
			Entity:  "BRFQ",
			Current: ApprovalStatus(brfq.Status),
			Target:  ApprovalStatus(models.BRFQStatusPublished),
		}
	}

	now := time.Now()
	if err := s.db.Model(&models.BRFQ{}).
		Where("brfq_id = ?", brfqID).
		Updates(map[string]interface{}{
			"status":    models.BRFQStatusPublished,
			"published": true,
			"update_at": now,
		}).Error; err != nil {
		return nil, err
	}
	brfq.Status = models.BRFQStatusPublished
	brfq.Published = true
	brfq.UpdateAt = &now
	return &brfq, nil
}

// Reject fails a pending approval. On success the rejection actor, time and
// note are recorded and the publish flag is cleared.
func (s *BRFQService) Reject(brfqID, actor, note string) (*models.BRFQ, error) {
	return s.decide(brfqID, actor, note, models.BRFQStatusRejected)
}

// Approve marks a pending BRFQ approval as approved.
func (s *BRFQService) Approve(brfqID, actor, note string) (*models.BRFQ, error) {
	return s.decide(brfqID, actor, note, models.BRFQStatusApproved)
}

func (s *BRFQService) decide(brfqID, actor, note, newStatus string) (*models.BRFQ, error) {
	var brfq models.BRFQ
	if err := s.db.Where("brfq_id = ? AND delete_at IS NULL", brfqID).First(&brfq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := EnsureTransition("BRFQ", ApprovalStatus(brfq.ApprovalStatus), ApprovalStatus(newStatus)); err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"approval_status": newStatus,
		"status":          newStatus,
		"decided_by":      actor,
		"decided_at":      now,
		"update_at":       now,
	}
	if note != "" {
		updates["decision_note"] = note
	}
	if newStatus == models.BRFQStatusRejected {
		updates["published"] = false
	}

	if err := s.db.Model(&models.BRFQ{}).
		Where("brfq_id = ?", brfqID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	brfq.ApprovalStatus = newStatus
	brfq.Status = newStatus
	brfq.DecidedBy = &actor
	brfq.DecidedAt = &now
	brfq.UpdateAt = &now
	if note != "" {
		brfq.DecisionNote = &note
	}
	if newStatus == models.BRFQStatusRejected {
		brfq.Published = false
	}
	return &brfq, nil
}

// Delete soft-deletes a BRFQ.
func (s *BRFQService) Delete(brfqID string) error {
	res := s.db.Model(&models.BRFQ{}).
		Where("brfq_id = ? AND delete_at IS NULL", brfqID).
		Update("delete_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LinkSuppliers attaches suppliers to a BRFQ so invite tokens can be issued.
func (s *BRFQService) LinkSuppliers(brfqID string, supplierIDs []string) error {
	var brfq models.BRFQ
	if err := s.db.Select("brfq_id").
		Where("brfq_id = ? AND delete_at IS NULL", brfqID).
		First(&brfq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var suppliers []models.Supplier
	if err := s.db.Where("supplier_id IN ? AND delete_at IS NULL", supplierIDs).Find(&suppliers).Error; err != nil {
		return err
	}
	if len(suppliers) != len(supplierIDs) {
		return ErrNotFound
	}

	return s.db.Model(&brfq).Association("Suppliers").Append(&suppliers)
}
