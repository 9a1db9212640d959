package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		expect  string
	}{
		{
			name: "oauth2-proxy user has top priority",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
				"X-Remote-User":     "bob",
			},
			expect: "alice",
		},
		{
			name: "falls back to forwarded email",
			headers: map[string]string{
				"X-Forwarded-Email": "alice@example.com",
				"X-Remote-User":     "bob",
			},
			expect: "alice@example.com",
		},
		{
			name:    "falls back to remote user",
			headers: map[string]string{"X-Remote-User": "bob"},
			expect:  "bob",
		},
		{
			name:   "defaults to api-client",
			expect: "api-client",
		},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.expect, extractAuthor(c))
		})
	}
}
