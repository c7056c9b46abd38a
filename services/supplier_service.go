package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement-api/config"
	"procurement-api/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	if db == nil {
		db = config.DB
	}
	return &SupplierService{db: db}
}

// SupplierApproval reports the outcome of an approval. PlainPassword is set
// only when a user account was provisioned in this call; it is never stored
// and exists solely so the caller can mail the credentials.
type SupplierApproval struct {
	Supplier      models.Supplier
	User          *models.User
	UserCreated   bool
	PlainPassword string
}

// Approve activates a supplier and lazily provisions its SUPPLIER user
// account. The status write and the user creation share one transaction, so
// a failed provisioning never leaves an Active supplier without a login.
// Re-approving is a no-op overwrite of the status and never creates a second
// user for the same supplier.
func (s *SupplierService) Approve(supplierID string) (*SupplierApproval, error) {
	var result *SupplierApproval

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.Where("supplier_id = ? AND delete_at IS NULL", supplierID).First(&supplier).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.Supplier{}).
			Where("supplier_id = ?", supplierID).
			Updates(map[string]interface{}{
				"status":    models.SupplierStatusActive,
				"update_at": now,
			}).Error; err != nil {
			return err
		}
		supplier.Status = models.SupplierStatusActive
		supplier.UpdateAt = &now

		var existing models.User
		err := tx.Where("supplier_id = ? AND delete_at IS NULL", supplierID).First(&existing).Error
		if err == nil {
			result = &SupplierApproval{Supplier: supplier, User: &existing}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		plain, err := generateTempPassword()
		if err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			UserID:     uuid.NewString(),
			Username:   supplierUsername(supplier),
			Email:      supplier.Email,
			Password:   string(hashed),
			Type:       models.UserTypeSupplier,
			SupplierID: &supplier.SupplierID,
			CreateAt:   &now,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		result = &SupplierApproval{
			Supplier:      supplier,
			User:          &user,
			UserCreated:   true,
			PlainPassword: plain,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reject marks a pending supplier registration as rejected.
func (s *SupplierService) Reject(supplierID string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.Where("supplier_id = ? AND delete_at IS NULL", supplierID).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if supplier.Status != models.SupplierStatusPending {
		return nil, &InvalidTransitionError{
			Entity:  "supplier",
			Current: ApprovalStatus(supplier.Status),
			Target:  StatusRejected,
		}
	}

	now := time.Now()
	if err := s.db.Model(&models.Supplier{}).
		Where("supplier_id = ?", supplierID).
		Updates(map[string]interface{}{
			"status":    models.SupplierStatusRejected,
			"update_at": now,
		}).Error; err != nil {
		return nil, err
	}
	supplier.Status = models.SupplierStatusRejected
	supplier.UpdateAt = &now
	return &supplier, nil
}

// Register stores a new pending supplier. The registration email must be
// unique; the database constraint backs that up.
func (s *SupplierService) Register(in models.Supplier) (*models.Supplier, error) {
	var count int64
	if err := s.db.Model(&models.Supplier{}).
		Where("email = ? AND delete_at IS NULL", in.Email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("supplier with email %s already registered", in.Email)
	}

	in.SupplierID = uuid.NewString()
	in.Status = models.SupplierStatusPending
	in.CreateAt = time.Now()
	if err := s.db.Create(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

func supplierUsername(supplier models.Supplier) string {
	base := strings.ToLower(strings.Join(strings.Fields(supplier.CompanyName), "."))
	if base == "" {
		base = "supplier"
	}
	if len(base) > 24 {
		base = base[:24]
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return base + "." + suffix
}

// generateTempPassword returns a random one-time password for a freshly
// provisioned account.
func generateTempPassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
