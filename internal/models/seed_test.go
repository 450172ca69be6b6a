package models_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/timeaway/backend/internal/models"
)

func (suite *TestSuiteStandard) TestEnsureAdminAccount() {
	err := models.EnsureAdminAccount(models.DB, "admin", "admin@example.com", "hunter2")
	assert.Nil(suite.T(), err)

	admin, err := models.GetAccountByEmail(models.DB, "admin@example.com")
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), models.RoleAdmin, admin.Role)
	assert.Equal(suite.T(), 0, admin.CasualBalance, "admin accounts are reviewers and have no leave balance")
	assert.Equal(suite.T(), 0, admin.MedicalBalance)
	assert.True(suite.T(), admin.CheckPassword("hunter2"))
}

func (suite *TestSuiteStandard) TestEnsureAdminAccountIdempotent() {
	err := models.EnsureAdminAccount(models.DB, "admin", "admin@example.com", "hunter2")
	assert.Nil(suite.T(), err)

	// The second run does not create another account and does not
	// overwrite the password.
	err = models.EnsureAdminAccount(models.DB, "admin", "admin@example.com", "different")
	assert.Nil(suite.T(), err)

	var count int64
	models.DB.Model(&models.Account{}).Where("email = ?", "admin@example.com").Count(&count)
	assert.Equal(suite.T(), int64(1), count)

	admin, _ := models.GetAccountByEmail(models.DB, "admin@example.com")
	assert.True(suite.T(), admin.CheckPassword("hunter2"))
}
