package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/internal/domain/portfolio"
	"devfolio/internal/shared/logger"
	"devfolio/internal/shared/services/markdown"
)

// PortfolioHandler serves the static content document. The document is
// immutable after startup, so the bio HTML is rendered once in the
// constructor rather than per request.
type PortfolioHandler struct {
	content *portfolio.Portfolio
	bioHTML string
	logger  logger.Interface
}

type PortfolioResponse struct {
	*portfolio.Portfolio
	BioHTML string `json:"bio_html"`
}

func NewPortfolioHandler(content *portfolio.Portfolio, renderer markdown.MarkdownService) *PortfolioHandler {
	log := logger.NewLogger()

	bioHTML, err := renderer.ToHTMLSanitized(content.PersonalInfo.Bio)
	if err != nil {
		// The raw markdown is still served; rendering is a progressive
		// enhancement.
		log.Warnw("failed to render bio markdown", "error", err)
		bioHTML = ""
	}

	return &PortfolioHandler{
		content: content,
		bioHTML: bioHTML,
		logger:  log,
	}
}

// Get serves GET /api/portfolio.
func (h *PortfolioHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, PortfolioResponse{
		Portfolio: h.content,
		BioHTML:   h.bioHTML,
	})
}
