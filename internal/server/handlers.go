package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperifyio/styleguard/internal/aggregate"
	"github.com/hyperifyio/styleguard/internal/document"
)

// checkRequest is the body of every POST endpoint. Content may be empty;
// an empty draft is scored like any other.
type checkRequest struct {
	Content     *string `json:"content" binding:"required"`
	Path        string  `json:"path"`
	ContentType string  `json:"contentType"`
	Format      string  `json:"format" binding:"omitempty,oneof=markdown html"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": s.cfg.Version,
	})
}

func (s *Server) handleRules(c *gin.Context) {
	c.JSON(http.StatusOK, s.rules)
}

func (s *Server) handleCheck(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("check", an.Overall.Valid)
	c.JSON(http.StatusOK, an)
}

func (s *Server) handleWordCount(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("word-count", an.WordCount.WithinRange)
	c.JSON(http.StatusOK, an.WordCount)
}

func (s *Server) handleStructure(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("structure", an.Structure.Valid)
	c.JSON(http.StatusOK, an.Structure)
}

func (s *Server) handleBrandVoice(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("brand-voice", an.BrandVoice.Valid)
	c.JSON(http.StatusOK, an.BrandVoice)
}

func (s *Server) handleReadability(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("readability", an.Readability.Valid)
	c.JSON(http.StatusOK, an.Readability)
}

func (s *Server) handleSuggestions(c *gin.Context) {
	an, ok := s.analyze(c)
	if !ok {
		return
	}
	s.metrics.observe("suggestions", true)
	c.JSON(http.StatusOK, gin.H{"suggestions": an.Overall.Suggestions})
}

// analyze binds the request and runs every scorer. On a bad request it
// writes the error response and returns ok=false.
func (s *Server) analyze(c *gin.Context) (aggregate.Analysis, bool) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return aggregate.Analysis{}, false
		}
		abortWithError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return aggregate.Analysis{}, false
	}

	ct := s.cfg.ContentType
	if req.ContentType != "" {
		parsed, ok := document.ParseContentType(req.ContentType)
		if !ok {
			abortWithError(c, http.StatusBadRequest, "unknown content type: "+req.ContentType)
			return aggregate.Analysis{}, false
		}
		ct = parsed
	}

	text, err := document.Decode([]byte(*req.Content))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return aggregate.Analysis{}, false
	}
	if req.Format == "html" || (req.Format == "" && document.IsHTMLPath(req.Path)) {
		text, err = document.FromHTML(text)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "convert html: "+err.Error())
			return aggregate.Analysis{}, false
		}
	}

	an := aggregate.Analyze(document.New(req.Path, text, ct, s.rules.Classifier), s.rules)
	s.metrics.scores.Observe(float64(an.Overall.Score))
	return an, true
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":     msg,
		"requestId": c.GetString(ctxRequestID),
	})
}
