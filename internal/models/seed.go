package models

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EnsureAdminAccount creates the administrative account if it does not
// exist yet. It is run once at startup, before the API is reachable,
// and is idempotent.
//
// Administrative accounts are reviewers, not applicants, so both leave
// balances are 0.
func EnsureAdminAccount(db *gorm.DB, username, email, password string) error {
	_, err := GetAccountByEmail(db, email)
	if err == nil {
		log.Debug().Str("email", email).Msg("admin account already exists")
		return nil
	}

	if !errors.Is(err, ErrAccountNotFound) {
		return err
	}

	admin := Account{
		Username:       username,
		Email:          email,
		Role:           RoleAdmin,
		CasualBalance:  0,
		MedicalBalance: 0,
	}

	err = admin.SetPassword(password)
	if err != nil {
		return err
	}

	err = db.Create(&admin).Error
	if err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("admin account created")
	return nil
}
