package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/timeaway/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccountBeforeSave() {
	account := models.Account{
		Username: " jdoe ",
		Email:    " JDoe@Example.com ",
	}

	err := account.BeforeSave(models.DB)
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "jdoe", account.Username)
	assert.Equal(suite.T(), "jdoe@example.com", account.Email)
	assert.Equal(suite.T(), models.RoleApplicant, account.Role, "role does not default to applicant")
}

func (suite *TestSuiteStandard) TestAccountBalances() {
	account := models.Account{CasualBalance: 3, MedicalBalance: 7}

	assert.Equal(suite.T(), models.Balances{Casual: 3, Medical: 7}, account.Balances())
	assert.Equal(suite.T(), 3, account.Balance(models.LeaveTypeCasual))
	assert.Equal(suite.T(), 7, account.Balance(models.LeaveTypeMedical))
}

func (suite *TestSuiteStandard) TestAccountHasSufficientBalance() {
	account := models.Account{CasualBalance: 5, MedicalBalance: 0}

	tests := []struct {
		name      string
		leaveType models.LeaveType
		days      int
		want      bool
	}{
		{"enough casual days", models.LeaveTypeCasual, 3, true},
		{"exactly the balance", models.LeaveTypeCasual, 5, true},
		{"one day too many", models.LeaveTypeCasual, 6, false},
		{"empty medical balance", models.LeaveTypeMedical, 1, false},
		{"zero days is not a valid request", models.LeaveTypeCasual, 0, false},
		{"negative days is not a valid request", models.LeaveTypeCasual, -1, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, account.HasSufficientBalance(tt.leaveType, tt.days))
		})
	}
}

func (suite *TestSuiteStandard) TestAccountPassword() {
	account := models.Account{}

	err := account.SetPassword("hunter2")
	assert.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), "hunter2", account.Password, "password is stored in clear text")

	assert.True(suite.T(), account.CheckPassword("hunter2"))
	assert.False(suite.T(), account.CheckPassword("wrong"))
}

func (suite *TestSuiteStandard) TestGetAccount() {
	account := suite.createTestAccount(models.Account{CasualBalance: 10, MedicalBalance: 10})

	dbAccount, err := models.GetAccount(models.DB, account.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), account.ID, dbAccount.ID)

	_, err = models.GetAccount(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestGetAccountByEmail() {
	account := suite.createTestAccount(models.Account{Email: "casing@example.com"})

	dbAccount, err := models.GetAccountByEmail(models.DB, " Casing@Example.com ")
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), account.ID, dbAccount.ID)

	_, err = models.GetAccountByEmail(models.DB, "nobody@example.com")
	assert.ErrorIs(suite.T(), err, models.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestDebit() {
	account := suite.createTestAccount(models.Account{CasualBalance: 10, MedicalBalance: 10})

	err := models.Debit(models.DB, account.ID, models.LeaveTypeCasual, 3)
	assert.Nil(suite.T(), err)

	dbAccount, _ := models.GetAccount(models.DB, account.ID)
	assert.Equal(suite.T(), 7, dbAccount.CasualBalance)
	assert.Equal(suite.T(), 10, dbAccount.MedicalBalance, "debit changed the balance of the other leave type")
}

func (suite *TestSuiteStandard) TestDebitExactBalance() {
	account := suite.createTestAccount(models.Account{CasualBalance: 3})

	err := models.Debit(models.DB, account.ID, models.LeaveTypeCasual, 3)
	assert.Nil(suite.T(), err)

	dbAccount, _ := models.GetAccount(models.DB, account.ID)
	assert.Equal(suite.T(), 0, dbAccount.CasualBalance)

	// The balance is used up now
	err = models.Debit(models.DB, account.ID, models.LeaveTypeCasual, 1)
	assert.ErrorIs(suite.T(), err, models.ErrInsufficientBalance)
}

func (suite *TestSuiteStandard) TestDebitInsufficientBalance() {
	account := suite.createTestAccount(models.Account{MedicalBalance: 2})

	err := models.Debit(models.DB, account.ID, models.LeaveTypeMedical, 3)
	assert.ErrorIs(suite.T(), err, models.ErrInsufficientBalance)

	var balanceErr models.InsufficientBalanceError
	assert.ErrorAs(suite.T(), err, &balanceErr)
	assert.Equal(suite.T(), 2, balanceErr.Balance, "error does not carry the current balance")

	// A rejected debit must never change the balance
	dbAccount, _ := models.GetAccount(models.DB, account.ID)
	assert.Equal(suite.T(), 2, dbAccount.MedicalBalance)
}

func (suite *TestSuiteStandard) TestDebitUnknownAccount() {
	err := models.Debit(models.DB, uuid.New(), models.LeaveTypeCasual, 1)
	assert.ErrorIs(suite.T(), err, models.ErrAccountNotFound)
}

func (suite *TestSuiteStandard) TestDebitInvalidDayCount() {
	account := suite.createTestAccount(models.Account{CasualBalance: 10})

	for _, days := range []int{0, -1} {
		err := models.Debit(models.DB, account.ID, models.LeaveTypeCasual, days)
		assert.ErrorIs(suite.T(), err, models.ErrGeneral)
	}

	dbAccount, _ := models.GetAccount(models.DB, account.ID)
	assert.Equal(suite.T(), 10, dbAccount.CasualBalance)
}

func (suite *TestSuiteStandard) TestDebitInvalidLeaveType() {
	account := suite.createTestAccount(models.Account{CasualBalance: 10})

	err := models.Debit(models.DB, account.ID, models.LeaveType("sabbatical"), 1)
	assert.ErrorIs(suite.T(), err, models.ErrInvalidLeaveType)
}
