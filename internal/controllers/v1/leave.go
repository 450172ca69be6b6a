package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/timeaway/backend/internal/httputil"
	"github.com/timeaway/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterLeaveRoutes registers the routes for leave applications with
// the RouterGroup that is passed.
//
// The administrative routes check the role of the authenticated
// account, everything else applies to that account itself.
func RegisterLeaveRoutes(r *gin.RouterGroup) {
	// Applicant routes
	{
		r.OPTIONS("/apply", OptionsApply)
		r.POST("/apply", Apply)

		r.OPTIONS("/balance", OptionsBalance)
		r.GET("/balance", GetBalance)

		r.OPTIONS("/history", OptionsHistory)
		r.GET("/history", GetHistory)
	}

	// Administrative routes
	{
		r.OPTIONS("", OptionsLeaveList)
		r.GET("", RequireAdmin(), GetAllApplications)

		r.OPTIONS("/:id/approve", OptionsDecision)
		r.POST("/:id/approve", RequireAdmin(), ApproveApplication)

		r.OPTIONS("/:id/reject", OptionsDecision)
		r.POST("/:id/reject", RequireAdmin(), RejectApplication)
	}
}

// ApplicationEditable represents all user configurable parameters of a
// leave application.
type ApplicationEditable struct {
	LeaveType models.LeaveType `json:"leaveType" binding:"required" example:"casual"`              // Leave type to charge
	StartDate time.Time        `json:"startDate" binding:"required" example:"2024-01-01T00:00:00Z"` // First day of leave
	EndDate   time.Time        `json:"endDate" binding:"required" example:"2024-01-03T00:00:00Z"`   // Last day of leave, inclusive
	Reason    string           `json:"reason" example:"Family visit"`                               // Free-form reason
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leaves
// @Success		204
// @Router			/v1/leaves/apply [options]
func OptionsApply(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leaves
// @Success		204
// @Router			/v1/leaves/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leaves
// @Success		204
// @Router			/v1/leaves/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leaves
// @Success		204
// @Router			/v1/leaves [options]
func OptionsLeaveList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Leaves
// @Success		204
// @Param			id	path	string	true	"ID of the leave application"
// @Router			/v1/leaves/{id}/approve [options]
func OptionsDecision(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Apply for leave
// @Description	Creates a new pending leave application for the authenticated account. The balance is checked, but only debited when the application is approved.
// @Tags			Leaves
// @Accept			json
// @Produce		json
// @Success		201			{object}	ApplicationResponse
// @Failure		400			{object}	ApplicationResponse
// @Failure		401			{object}	httpError
// @Failure		500			{object}	ApplicationResponse
// @Param			application	body		ApplicationEditable	true	"Application"
// @Router			/v1/leaves/apply [post]
func Apply(c *gin.Context) {
	var editable ApplicationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplicationResponse{Error: &e})
		return
	}

	account := currentAccount(c)

	application, err := models.CreateApplication(models.DB, account.ID, editable.LeaveType, editable.StartDate, editable.EndDate, editable.Reason)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplicationResponse{Error: &e})
		return
	}

	data := newApplication(application)
	c.JSON(http.StatusCreated, ApplicationResponse{Data: &data})
}

// @Summary		Get leave balance
// @Description	Returns the remaining leave days of the authenticated account
// @Tags			Leaves
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		401	{object}	httpError
// @Router			/v1/leaves/balance [get]
func GetBalance(c *gin.Context) {
	balances := currentAccount(c).Balances()
	c.JSON(http.StatusOK, BalanceResponse{Data: &balances})
}

// @Summary		Get leave history
// @Description	Returns all leave applications of the authenticated account, newest first
// @Tags			Leaves
// @Produce		json
// @Success		200	{object}	ApplicationListResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	ApplicationListResponse
// @Router			/v1/leaves/history [get]
func GetHistory(c *gin.Context) {
	applications, err := models.GetAccountApplications(models.DB, currentAccount(c).ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplicationListResponse{Error: &e})
		return
	}

	data := make([]Application, 0, len(applications))
	for _, application := range applications {
		data = append(data, newApplication(application))
	}

	c.JSON(http.StatusOK, ApplicationListResponse{Data: data})
}

// @Summary		Get all leave applications
// @Description	Returns all leave applications with the applicant identity joined, newest first
// @Tags			Leaves
// @Produce		json
// @Success		200	{object}	AdminApplicationListResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	AdminApplicationListResponse
// @Router			/v1/leaves [get]
func GetAllApplications(c *gin.Context) {
	applications, err := models.GetApplications(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AdminApplicationListResponse{Error: &e})
		return
	}

	data := make([]AdminApplication, 0, len(applications))
	for _, application := range applications {
		data = append(data, newAdminApplication(application))
	}

	c.JSON(http.StatusOK, AdminApplicationListResponse{Data: data})
}

// @Summary		Approve leave application
// @Description	Approves a pending leave application and debits the applicant's balance. Fails when the balance has been consumed since the application was created.
// @Tags			Leaves
// @Produce		json
// @Success		200	{object}	ApplicationResponse
// @Failure		400	{object}	ApplicationResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	ApplicationResponse
// @Failure		500	{object}	ApplicationResponse
// @Param			id	path		string	true	"ID of the leave application"
// @Router			/v1/leaves/{id}/approve [post]
func ApproveApplication(c *gin.Context) {
	decideApplication(c, (*models.LeaveApplication).Approve)
}

// @Summary		Reject leave application
// @Description	Rejects a pending leave application. The balance is not touched.
// @Tags			Leaves
// @Produce		json
// @Success		200	{object}	ApplicationResponse
// @Failure		400	{object}	ApplicationResponse
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	ApplicationResponse
// @Failure		500	{object}	ApplicationResponse
// @Param			id	path		string	true	"ID of the leave application"
// @Router			/v1/leaves/{id}/reject [post]
func RejectApplication(c *gin.Context) {
	decideApplication(c, (*models.LeaveApplication).Reject)
}

// decideApplication looks up the application from the URI and applies
// the decision to it. Approve and Reject share all guards.
func decideApplication(c *gin.Context, decide func(*models.LeaveApplication, *gorm.DB) error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ApplicationResponse{Error: &e})
		return
	}

	application, err := models.GetApplication(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplicationResponse{Error: &e})
		return
	}

	err = decide(&application, models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApplicationResponse{Error: &e})
		return
	}

	data := newApplication(application)
	c.JSON(http.StatusOK, ApplicationResponse{Data: &data})
}
