package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timeaway/backend/internal/httputil"
)

// RegisterAccountRoutes registers the routes for accounts with the
// RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", OptionsMe)
	r.GET("/me", GetMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get own account
// @Description	Returns the authenticated account with its leave balances
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		401	{object}	httpError
// @Router			/v1/accounts/me [get]
func GetMe(c *gin.Context) {
	account := currentAccount(c)
	c.JSON(http.StatusOK, AccountResponse{Data: &account})
}
