package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveType is the set of leave categories an application can be
// charged against. Each type has its own balance on the account.
type LeaveType string

const (
	LeaveTypeCasual  LeaveType = "casual"
	LeaveTypeMedical LeaveType = "medical"
)

// Valid reports whether the leave type is one of the recognized values.
func (t LeaveType) Valid() bool {
	return t == LeaveTypeCasual || t == LeaveTypeMedical
}

// balanceColumn returns the database column holding the balance for the
// leave type. Returns the empty string for unrecognized types.
func (t LeaveType) balanceColumn() string {
	switch t {
	case LeaveTypeCasual:
		return "casual_balance"
	case LeaveTypeMedical:
		return "medical_balance"
	}

	return ""
}

// ApplicationStatus is the lifecycle state of a leave application.
// Applications start out pending and transition exactly once to either
// approved or rejected.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// LeaveApplication represents a single leave request of an account.
type LeaveApplication struct {
	DefaultModel
	Account   Account           `json:"-"`
	AccountID uuid.UUID         `json:"accountId" gorm:"index"`
	LeaveType LeaveType         `json:"leaveType" example:"casual"`
	StartDate time.Time         `json:"startDate" example:"2024-01-01T00:00:00Z"`
	EndDate   time.Time         `json:"endDate" example:"2024-01-03T00:00:00Z"`
	Reason    string            `json:"reason" example:"Family visit"`
	Status    ApplicationStatus `json:"status" example:"pending"`
}

// BeforeSave normalizes both dates to calendar-day granularity.
func (l *LeaveApplication) BeforeSave(_ *gorm.DB) error {
	l.StartDate = normalizeDate(l.StartDate)
	l.EndDate = normalizeDate(l.EndDate)
	l.Reason = strings.TrimSpace(l.Reason)

	return nil
}

// AfterFind sets the timezone for the dates to UTC.
func (l *LeaveApplication) AfterFind(tx *gorm.DB) error {
	err := l.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	l.StartDate = l.StartDate.In(time.UTC)
	l.EndDate = l.EndDate.In(time.UTC)

	return nil
}

// normalizeDate truncates a timestamp to its calendar day in UTC.
// Time-of-day components never influence the chargeable day count.
func normalizeDate(t time.Time) time.Time {
	t = t.In(time.UTC)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ChargeableDays returns the number of leave days the application
// charges: the inclusive span between start and end date. A same-day
// application charges 1 day.
func (l LeaveApplication) ChargeableDays() int {
	start := normalizeDate(l.StartDate)
	end := normalizeDate(l.EndDate)

	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days + 1
}

// CreateApplication validates and persists a new leave application in
// pending state.
//
// The balance is checked here, but only debited when the application is
// approved. Other approvals can consume the balance in between, so an
// application that was created successfully can still fail its approval
// with an insufficient balance. That is expected behavior, not a bug.
func CreateApplication(db *gorm.DB, accountID uuid.UUID, leaveType LeaveType, startDate, endDate time.Time, reason string) (LeaveApplication, error) {
	application := LeaveApplication{
		AccountID: accountID,
		LeaveType: leaveType,
		StartDate: normalizeDate(startDate),
		EndDate:   normalizeDate(endDate),
		Reason:    strings.TrimSpace(reason),
		Status:    StatusPending,
	}

	if application.EndDate.Before(application.StartDate) {
		return LeaveApplication{}, ErrInvalidDateRange
	}

	if !leaveType.Valid() {
		return LeaveApplication{}, ErrInvalidLeaveType
	}

	account, err := GetAccount(db, accountID)
	if err != nil {
		return LeaveApplication{}, err
	}

	if !account.HasSufficientBalance(leaveType, application.ChargeableDays()) {
		return LeaveApplication{}, InsufficientBalanceError{LeaveType: leaveType, Balance: account.Balance(leaveType)}
	}

	err = db.Create(&application).Error
	if err != nil {
		return LeaveApplication{}, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return application, nil
}

// GetApplication returns the leave application with the specified ID.
func GetApplication(db *gorm.DB, id uuid.UUID) (LeaveApplication, error) {
	var application LeaveApplication

	err := db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveApplication{}, ErrApplicationNotFound
		}
		return LeaveApplication{}, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return application, nil
}

// GetApplications returns all leave applications, newest first, with the
// owning accounts preloaded for the administrative overview.
func GetApplications(db *gorm.DB) ([]LeaveApplication, error) {
	var applications []LeaveApplication

	err := db.Preload("Account").Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return applications, nil
}

// GetAccountApplications returns all leave applications of a single
// account, newest first.
func GetAccountApplications(db *gorm.DB, accountID uuid.UUID) ([]LeaveApplication, error) {
	var applications []LeaveApplication

	err := db.Where(&LeaveApplication{AccountID: accountID}).Order("created_at DESC").Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneral, err)
	}

	return applications, nil
}

// Approve transitions a pending application to approved and debits the
// owning account, both in a single transaction.
//
// The status change is a conditional UPDATE on the current status.
// Of two concurrent approvals for the same application exactly one
// matches the pending row, the other fails with InvalidTransitionError.
// When the debit fails, the transaction is rolled back and the
// application stays pending.
func (l *LeaveApplication) Approve(db *gorm.DB) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		err := l.transition(tx, StatusApproved)
		if err != nil {
			return err
		}

		return Debit(tx, l.AccountID, l.LeaveType, l.ChargeableDays())
	})
	if err != nil {
		return err
	}

	l.Status = StatusApproved
	return nil
}

// Reject transitions a pending application to rejected.
//
// The balance is untouched: it is only debited on approval, so a
// rejected application has nothing to restore.
func (l *LeaveApplication) Reject(db *gorm.DB) error {
	err := l.transition(db, StatusRejected)
	if err != nil {
		return err
	}

	l.Status = StatusRejected
	return nil
}

// transition moves the application out of the pending state. The UPDATE
// only matches while the stored status is still pending, which
// serializes concurrent decisions on the same application.
func (l *LeaveApplication) transition(db *gorm.DB, status ApplicationStatus) error {
	res := db.Model(&LeaveApplication{}).
		Where("id = ? AND status = ?", l.ID, StatusPending).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("%w: %s", ErrGeneral, res.Error)
	}

	if res.RowsAffected == 0 {
		current, err := GetApplication(db, l.ID)
		if err != nil {
			return err
		}

		return InvalidTransitionError{Status: current.Status}
	}

	return nil
}
