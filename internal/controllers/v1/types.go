package v1

import (
	"github.com/timeaway/backend/internal/models"
	tw_uuid "github.com/timeaway/backend/internal/uuid"
)

type URIID struct {
	ID tw_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

// Application is the API representation of a leave application. On top
// of the model it carries the computed chargeable day count.
type Application struct {
	models.LeaveApplication
	Days int `json:"days" example:"3"` // Chargeable days for this application
}

func newApplication(model models.LeaveApplication) Application {
	return Application{
		LeaveApplication: model,
		Days:             model.ChargeableDays(),
	}
}

// AdminApplication is the administrative view of a leave application,
// joined with the identity of the owning account.
type AdminApplication struct {
	Application
	Username string `json:"username" example:"jdoe"`             // Username of the applicant
	Email    string `json:"email" example:"jdoe@example.com"` // Email of the applicant
}

func newAdminApplication(model models.LeaveApplication) AdminApplication {
	return AdminApplication{
		Application: newApplication(model),
		Username:    model.Account.Username,
		Email:       model.Account.Email,
	}
}

type ApplicationResponse struct {
	Data  *Application `json:"data"`  // Data for the leave application
	Error *string      `json:"error"` // The error, if any occurred
}

type ApplicationListResponse struct {
	Data  []Application `json:"data"`  // List of leave applications
	Error *string       `json:"error"` // The error, if any occurred
}

type AdminApplicationListResponse struct {
	Data  []AdminApplication `json:"data"`  // List of leave applications with applicant identity
	Error *string            `json:"error"` // The error, if any occurred
}

type BalanceResponse struct {
	Data  *models.Balances `json:"data"`  // Remaining leave days per type
	Error *string          `json:"error"` // The error, if any occurred
}

type AccountResponse struct {
	Data  *models.Account `json:"data"`  // Data for the account
	Error *string         `json:"error"` // The error, if any occurred
}
