package db

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Credential holds the session's token pair for the logged-in account.
// A single row is kept; access and refresh tokens are always written
// and removed together.
type Credential struct {
	ID           uint   `gorm:"primarykey" json:"-"`
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// GetCredential retrieves the stored credential pair.
// It returns nil (not an error) when no credential has been saved.
func GetCredential() (*Credential, error) {
	if Db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}

	var cred Credential
	if err := Db.First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No session stored
		}
		log.Error().Err(err).Msg("Failed to retrieve credential data")
		return nil, err
	}

	return &cred, nil
}

// UpsertCredential inserts or replaces the stored credential pair.
// Both members are written in a single statement.
func UpsertCredential(cred *Credential) error {
	if Db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	var existing Credential
	err := Db.First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to check existing credential")
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := Db.Create(cred).Error; err != nil {
			log.Error().Err(err).Msg("Failed to insert new credential")
			return err
		}
		log.Info().Msg("Credential saved successfully")
	} else {
		if err := Db.Model(&existing).Where("1 = 1").Updates(map[string]interface{}{
			"access_token":  cred.AccessToken,
			"refresh_token": cred.RefreshToken,
		}).Error; err != nil {
			log.Error().Err(err).Msg("Failed to update credential")
			return err
		}
		log.Info().Msg("Credential updated successfully")
	}

	return nil
}

// ClearCredential removes the stored credential pair. Removing the row
// drops both tokens at once, so no caller can observe a half-cleared
// session. Clearing an already-empty store is a no-op.
func ClearCredential() error {
	if Db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	if err := Db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&Credential{}).Error; err != nil {
		log.Error().Err(err).Msg("Failed to clear credential")
		return err
	}
	log.Info().Msg("Credential cleared")
	return nil
}
