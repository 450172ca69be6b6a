package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timeaway/backend/internal/httputil"
	"github.com/timeaway/backend/internal/models"
)

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// RegistrationData are the fields needed to register a new account.
type RegistrationData struct {
	Username        string `json:"username" binding:"required" example:"jdoe"`
	Email           string `json:"email" binding:"required,email" example:"jdoe@example.com"`
	Password        string `json:"password" binding:"required" example:"hunter2"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"hunter2"`
}

// LoginData are the credentials for a login.
type LoginData struct {
	Email    string `json:"email" binding:"required" example:"jdoe@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

type LoginResponse struct {
	Token   string          `json:"token,omitempty"` // Bearer token for subsequent requests
	Account *models.Account `json:"account"`         // The authenticated account
	Error   *string         `json:"error"`           // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register account
// @Description	Registers a new applicant account with the default leave balances
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		409		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		RegistrationData	true	"Account"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var data RegistrationData

	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	if data.Password != data.ConfirmPassword {
		e := errPasswordMismatch.Error()
		c.JSON(status(errPasswordMismatch), AccountResponse{Error: &e})
		return
	}

	_, err = models.GetAccountByEmail(models.DB, data.Email)
	if err == nil {
		e := models.ErrEmailTaken.Error()
		c.JSON(status(models.ErrEmailTaken), AccountResponse{Error: &e})
		return
	}
	if !errors.Is(err, models.ErrAccountNotFound) {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	account := models.Account{
		Username:       data.Username,
		Email:          data.Email,
		Role:           models.RoleApplicant,
		CasualBalance:  models.DefaultCasualBalance,
		MedicalBalance: models.DefaultMedicalBalance,
	}

	err = account.SetPassword(data.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	err = models.DB.Create(&account).Error
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(status(models.ErrGeneral), AccountResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, AccountResponse{Data: &account})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token for the account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginData	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var data LoginData

	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	account, err := models.GetAccountByEmail(models.DB, data.Email)
	if err != nil {
		// A missing account and a wrong password are indistinguishable
		// for the caller.
		if errors.Is(err, models.ErrAccountNotFound) {
			err = errInvalidCredentials
		}

		e := err.Error()
		c.JSON(status(err), LoginResponse{Error: &e})
		return
	}

	if !account.CheckPassword(data.Password) {
		e := errInvalidCredentials.Error()
		c.JSON(status(errInvalidCredentials), LoginResponse{Error: &e})
		return
	}

	token, err := createToken(account)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(status(models.ErrGeneral), LoginResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Account: &account})
}
