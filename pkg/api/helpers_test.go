package api

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// perform invokes one handler directly with a synthetic request, bypassing
// routing. Validation-only tests use it with a bare Server so requests are
// rejected before any component is touched; happy paths go through Router
// with real components in server_test.go.
func perform(t *testing.T, handler gin.HandlerFunc, method, target, body string, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Params = append(c.Params, params...)

	handler(c)
	return w
}

func sessionParam(code string) gin.Param {
	return gin.Param{Key: "code", Value: code}
}

func participantParam(code string) gin.Param {
	return gin.Param{Key: "participant", Value: code}
}
