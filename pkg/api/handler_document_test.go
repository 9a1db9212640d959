package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPublicInfoHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"content"`,
			wantErr: "invalid request body",
		},
		{
			name:    "missing content",
			body:    `{"title":"Public brief"}`,
			wantErr: "content is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, s.setPublicInfoHandler, http.MethodPut,
				"/api/v1/sessions/ROOM42/documents/public", tt.body, sessionParam("ROOM42"))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantErr)
		})
	}
}

func TestBindUpload_MultipartRequiresFile(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Candidate brief"))
	require.NoError(t, mw.Close())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/v1/sessions/ROOM42/documents/public", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Params = append(c.Params, sessionParam("ROOM42"))

	s := &Server{}
	s.setPublicInfoHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "multipart upload requires a file field")
}

func TestAssignEssayHandler_Validation(t *testing.T) {
	s := &Server{}

	w := perform(t, s.assignEssayHandler, http.MethodPost,
		"/api/v1/sessions/ROOM42/participants/all/essays",
		`{"content":"An essay without a title."}`,
		sessionParam("ROOM42"), participantParam("all"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title is required")
}
