package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timeaway/backend/internal/models"
	"github.com/timeaway/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", map[string]string{
		"username":        "jdoe",
		"email":           "jdoe@example.com",
		"password":        "hunter2",
		"confirmPassword": "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response struct {
		Data models.Account `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "jdoe", response.Data.Username)
	assert.Equal(suite.T(), models.RoleApplicant, response.Data.Role)
	assert.Equal(suite.T(), models.DefaultCasualBalance, response.Data.CasualBalance)
	assert.Equal(suite.T(), models.DefaultMedicalBalance, response.Data.MedicalBalance)

	// The password hash must never be part of a response.
	assert.NotContains(suite.T(), recorder.Body.String(), "password")
}

func (suite *TestSuiteStandard) TestRegisterPasswordMismatch() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", map[string]string{
		"username":        "jdoe",
		"email":           "jdoe@example.com",
		"password":        "hunter2",
		"confirmPassword": "hunter3",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRegisterEmailTaken() {
	suite.createTestAccount(models.Account{Email: "jdoe@example.com"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", map[string]string{
		"username":        "jdoe",
		"email":           "jdoe@example.com",
		"password":        "hunter2",
		"confirmPassword": "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestRegisterInvalidBody() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"broken json", `{ "username": `},
		{"missing fields", map[string]string{"username": "jdoe"}},
		{"invalid email", map[string]string{
			"username": "jdoe", "email": "not-an-email",
			"password": "hunter2", "confirmPassword": "hunter2",
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	account := suite.createTestAccount(models.Account{})

	token := suite.login(account.Email)
	assert.NotEmpty(suite.T(), token)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	account := suite.createTestAccount(models.Account{})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    account.Email,
		"password": "wrong",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginUnknownEmail() {
	// An unknown email is indistinguishable from a wrong password.
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"wrong scheme", map[string]string{"Authorization": "Basic dXNlcg=="}},
		{"garbage token", map[string]string{"Authorization": "Bearer garbage"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "/v1/leaves/balance", "", tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestGetMe() {
	account := suite.createTestAccount(models.Account{Username: "jdoe", CasualBalance: 4, MedicalBalance: 2})
	token := suite.login(account.Email)

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts/me", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Data models.Account `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "jdoe", response.Data.Username)
	assert.Equal(suite.T(), 4, response.Data.CasualBalance)
	assert.Equal(suite.T(), 2, response.Data.MedicalBalance)
}
