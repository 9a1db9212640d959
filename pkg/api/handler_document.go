package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/pdfutil"
)

// upload is the resolved content of a document endpoint request: either the
// text of a PDF carried in a multipart form under "file", or the inline
// content of a JSON body.
type upload struct {
	text       string
	title      string
	sourceFile string
}

// bindUpload resolves the request into an upload. On failure it writes the
// 400 response itself and returns ok=false.
func bindUpload(c *gin.Context) (upload, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "multipart upload requires a file field"})
			return upload{}, false
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "opening upload: " + err.Error()})
			return upload{}, false
		}
		defer f.Close()

		text, err := pdfutil.Extract(f, fh.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "extracting pdf text: " + err.Error()})
			return upload{}, false
		}
		title := c.PostForm("title")
		if title == "" {
			title = strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
		}
		return upload{text: text, title: title, sourceFile: fh.Filename}, true
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return upload{}, false
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return upload{}, false
	}
	return upload{text: req.Content, title: req.Title}, true
}

// setPublicInfoHandler handles PUT /api/v1/sessions/:code/documents/public:
// the shared brief every hidden-profiles participant reads before discussion.
func (s *Server) setPublicInfoHandler(c *gin.Context) {
	code := c.Param("code")
	up, ok := bindUpload(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := s.store.Sessions.SetPublicInfo(ctx, code, up.text); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.documentSaved(c, code, "", len(up.text)))
}

// assignDocumentHandler handles PUT .../participants/:participant/document:
// the private candidate document one participant reads.
func (s *Server) assignDocumentHandler(c *gin.Context) {
	code, pcode := c.Param("code"), c.Param("participant")
	up, ok := bindUpload(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := s.store.Participants.Get(ctx, code, pcode); err != nil {
		respondError(c, err)
		return
	}
	if err := s.store.Sessions.AssignDoc(ctx, code, pcode, up.text); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.documentSaved(c, code, pcode, len(up.text)))
}

// documentSaved builds the upload response and, when the last missing
// document just arrived, wakes the session's agents out of the reading
// phase.
func (s *Server) documentSaved(c *gin.Context, code, pcode string, chars int) DocumentResponse {
	ctx := c.Request.Context()
	complete, err := s.store.Sessions.ReadingPhaseComplete(ctx, code)
	if err != nil {
		complete = false
	}
	if s.agents != nil {
		s.agents.NotifyReadingPhase(ctx, code)
	}
	return DocumentResponse{
		SessionCode:     code,
		ParticipantCode: pcode,
		Characters:      chars,
		ReadingComplete: complete,
	}
}

// assignEssayHandler handles POST .../participants/:participant/essays. An
// empty participant segment is not routable, so essays for the whole session
// go through the reserved participant code "all".
func (s *Server) assignEssayHandler(c *gin.Context) {
	code, pcode := c.Param("code"), c.Param("participant")
	if pcode == "all" {
		pcode = ""
	}
	up, ok := bindUpload(c)
	if !ok {
		return
	}
	if up.title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	essay, err := s.store.Rankings.AssignEssay(c.Request.Context(), code, pcode, up.title, up.text, up.sourceFile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, EssayResponse{
		EssayID:         essay.ID,
		ParticipantCode: essay.ParticipantCode,
		Title:           essay.Title,
		Characters:      len(essay.Content),
	})
}
