package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/domain/portfolio"
	"devfolio/internal/interfaces/http/handlers/testutil"
	"devfolio/internal/shared/services/markdown"
)

func testPortfolio() *portfolio.Portfolio {
	return &portfolio.Portfolio{
		PersonalInfo: portfolio.PersonalInfo{
			Name:  "Jane Dev",
			Title: "Software Engineer",
			Bio:   "I build **backend systems** and the occasional CLI.",
		},
		Skills: []portfolio.Skill{{Name: "Go"}, {Name: "MySQL"}},
		SocialLinks: []portfolio.SocialLink{
			{Platform: "github", URL: "https://github.com/janedev"},
		},
		Contact: portfolio.Contact{Email: "jane@example.com", IntroText: "Say hi."},
	}
}

func TestPortfolioHandler_Get(t *testing.T) {
	handler := NewPortfolioHandler(testPortfolio(), markdown.NewMarkdownService())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/portfolio", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PersonalInfo portfolio.PersonalInfo `json:"personal_info"`
		Skills       []portfolio.Skill      `json:"skills"`
		BioHTML      string                 `json:"bio_html"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Jane Dev", resp.PersonalInfo.Name)
	assert.Len(t, resp.Skills, 2)
	assert.Contains(t, resp.BioHTML, "<strong>backend systems</strong>")
}

func TestPortfolioHandler_Get_SanitizesBio(t *testing.T) {
	content := testPortfolio()
	content.PersonalInfo.Bio = "hello <script>alert(1)</script> world"

	handler := NewPortfolioHandler(content, markdown.NewMarkdownService())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/portfolio", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BioHTML string `json:"bio_html"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.NotContains(t, resp.BioHTML, "<script>")
}
