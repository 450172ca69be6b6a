package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountRole determines which operations an account is allowed to perform.
type AccountRole string

const (
	RoleApplicant AccountRole = "applicant"
	RoleAdmin     AccountRole = "admin"
)

// Default leave balances for newly registered applicant accounts.
// Administrative accounts review applications and do not apply for
// leave themselves, they get 0 days of both types.
const (
	DefaultCasualBalance  = 10
	DefaultMedicalBalance = 10
)

// Account represents a user of the backend together with the
// authoritative balances for both leave types.
type Account struct {
	DefaultModel
	Username       string      `json:"username"`
	Email          string      `json:"email" gorm:"uniqueIndex"`
	Password       string      `json:"-"` // bcrypt hash, never serialized
	Role           AccountRole `json:"role"`
	CasualBalance  int         `json:"casualBalance"`
	MedicalBalance int         `json:"medicalBalance"`
}

// Balances is the pair of remaining leave days for an account.
type Balances struct {
	Casual  int `json:"casual" example:"10"`  // Remaining casual leave days
	Medical int `json:"medical" example:"7"` // Remaining medical leave days
}

// BeforeSave trims whitespace and lowercases the email so that lookups
// are case insensitive.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Username = strings.TrimSpace(a.Username)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))

	if a.Role == "" {
		a.Role = RoleApplicant
	}

	return nil
}

// SetPassword hashes the clear text password and stores the hash on the account.
func (a *Account) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	a.Password = string(hash)
	return nil
}

// CheckPassword verifies a clear text password against the stored hash.
func (a Account) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) == nil
}

// GetAccount returns the account with the specified ID.
func GetAccount(db *gorm.DB, id uuid.UUID) (Account, error) {
	var account Account

	err := db.First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return account, nil
}

// GetAccountByEmail returns the account registered for the email address.
func GetAccountByEmail(db *gorm.DB, email string) (Account, error) {
	var account Account

	err := db.First(&account, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return account, nil
}

// Balances returns both leave balances of the account.
func (a Account) Balances() Balances {
	return Balances{
		Casual:  a.CasualBalance,
		Medical: a.MedicalBalance,
	}
}

// Balance returns the remaining days for a single leave type.
func (a Account) Balance(leaveType LeaveType) int {
	if leaveType == LeaveTypeMedical {
		return a.MedicalBalance
	}

	return a.CasualBalance
}

// HasSufficientBalance reports whether the account has at least days
// of the specified leave type left.
func (a Account) HasSufficientBalance(leaveType LeaveType, days int) bool {
	return days > 0 && a.Balance(leaveType) >= days
}

// Debit decrements the balance of the specified leave type by days.
//
// The balance check and the decrement are a single conditional UPDATE
// against the stored balance, so two concurrent debits can never drive
// a balance below zero: the one that would underflow matches no row and
// fails with InsufficientBalanceError.
func Debit(db *gorm.DB, accountID uuid.UUID, leaveType LeaveType, days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: the day count for a debit must be positive", ErrGeneral)
	}

	column := leaveType.balanceColumn()
	if column == "" {
		return ErrInvalidLeaveType
	}

	res := db.Model(&Account{}).
		Where(fmt.Sprintf("id = ? AND %s >= ?", column), accountID, days).
		Update(column, gorm.Expr(fmt.Sprintf("%s - ?", column), days))
	if res.Error != nil {
		return fmt.Errorf("%w: %s", ErrGeneral, res.Error)
	}

	// No row matched: either the account does not exist or the balance
	// is too low. Read the account to tell the two apart.
	if res.RowsAffected == 0 {
		account, err := GetAccount(db, accountID)
		if err != nil {
			return err
		}

		return InsufficientBalanceError{LeaveType: leaveType, Balance: account.Balance(leaveType)}
	}

	return nil
}
