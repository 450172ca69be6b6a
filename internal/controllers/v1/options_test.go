package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timeaway/backend/test"
)

func (suite *TestSuiteStandard) TestOptions() {
	token := suite.tokenFor("applicant")

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/auth/register", "POST"},
		{"/v1/auth/login", "POST"},
		{"/v1/accounts/me", "GET"},
		{"/v1/leaves", "GET"},
		{"/v1/leaves/apply", "POST"},
		{"/v1/leaves/balance", "GET"},
		{"/v1/leaves/history", "GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", test.BearerHeader(token))
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, tt.allow, recorder.Header().Get("allow"))
		})
	}
}
