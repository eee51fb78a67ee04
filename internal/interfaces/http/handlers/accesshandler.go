package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"devfolio/internal/application/access/usecases"
	"devfolio/internal/shared/errors"
	"devfolio/internal/shared/logger"
	"devfolio/internal/shared/utils"
)

// AccessHandler serves the guest access workflow: visitors request access,
// the admin approves or denies via emailed links, and the site polls the
// check endpoint to decide what to render.
type AccessHandler struct {
	requestAccessUC usecases.RequestAccessExecutor
	approveAccessUC usecases.ApproveAccessExecutor
	denyAccessUC    usecases.DenyAccessExecutor
	checkAccessUC   usecases.CheckAccessExecutor
	listRequestsUC  usecases.ListAccessRequestsExecutor
	baseURL         string
	logger          logger.Interface
}

func NewAccessHandler(
	requestAccessUC usecases.RequestAccessExecutor,
	approveAccessUC usecases.ApproveAccessExecutor,
	denyAccessUC usecases.DenyAccessExecutor,
	checkAccessUC usecases.CheckAccessExecutor,
	listRequestsUC usecases.ListAccessRequestsExecutor,
	baseURL string,
) *AccessHandler {
	return &AccessHandler{
		requestAccessUC: requestAccessUC,
		approveAccessUC: approveAccessUC,
		denyAccessUC:    denyAccessUC,
		checkAccessUC:   checkAccessUC,
		listRequestsUC:  listRequestsUC,
		baseURL:         baseURL,
		logger:          logger.NewLogger(),
	}
}

type AccessActionRequest struct {
	Action string `json:"action" binding:"required,oneof=request"`
	Name   string `json:"name"`
}

type RequestAccessResponse struct {
	GuestID string `json:"guest_id"`
	Message string `json:"message"`
}

type CheckAccessResponse struct {
	Access  bool   `json:"access"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// HandleAction dispatches POST /api/access on the action field. Only
// "request" is accepted today; the field keeps the endpoint open for
// future visitor-initiated actions without another route.
func (h *AccessHandler) HandleAction(c *gin.Context) {
	var req AccessActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid access action payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid action is required.")
		return
	}

	cmd := usecases.RequestAccessCommand{
		Name:    req.Name,
		BaseURL: h.externalBaseURL(c),
	}

	result, err := h.requestAccessUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, RequestAccessResponse{
		GuestID: result.GuestID,
		Message: result.Message,
	})
}

// Check serves GET /api/access?action=check&guestId=. Unknown guest ids
// are a negative check result, not an error.
func (h *AccessHandler) Check(c *gin.Context) {
	if action := c.Query("action"); action != "check" {
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid action is required.")
		return
	}

	result, err := h.checkAccessUC.Execute(c.Request.Context(), usecases.CheckAccessQuery{
		GuestID: c.Query("guestId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckAccessResponse{
		Access:  result.Access,
		Reason:  result.Reason,
		Message: result.Message,
	})
}

// Approve serves the emailed approval link. Errors keep the flat {"error"}
// shape the admin-facing links have always returned; success renders a
// small HTML confirmation page since the admin opens the link in a browser.
func (h *AccessHandler) Approve(c *gin.Context) {
	result, err := h.approveAccessUC.Execute(c.Request.Context(), usecases.ApproveAccessCommand{
		GuestID: c.Query("guestId"),
		Secret:  c.Query("secret"),
	})
	if err != nil {
		h.adminLinkError(c, err)
		return
	}

	title := "Access Approved"
	detail := fmt.Sprintf("%s now has access until %s.",
		result.Name, result.ExpiresAt.UTC().Format(time.RFC1123))
	if result.AlreadyApproved {
		title = "Already Approved"
		detail = fmt.Sprintf("%s (guest %s) was already approved. Access remains valid until %s.",
			result.Name, result.GuestID, result.ExpiresAt.UTC().Format(time.RFC1123))
	}

	h.renderAdminPage(c, title, detail)
}

// Deny serves the administrative denial link.
func (h *AccessHandler) Deny(c *gin.Context) {
	result, err := h.denyAccessUC.Execute(c.Request.Context(), usecases.DenyAccessCommand{
		GuestID: c.Query("guestId"),
		Secret:  c.Query("secret"),
	})
	if err != nil {
		h.adminLinkError(c, err)
		return
	}

	title := "Access Denied"
	detail := fmt.Sprintf("The request from %s has been denied.", result.Name)
	if result.AlreadyDenied {
		title = "Already Denied"
		detail = fmt.Sprintf("The request from %s was already denied.", result.Name)
	}

	h.renderAdminPage(c, title, detail)
}

type AccessRequestItemResponse struct {
	GuestID     string     `json:"guest_id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ListRequests serves GET /api/access/requests for the administrator.
func (h *AccessHandler) ListRequests(c *gin.Context) {
	// Non-numeric values parse to zero and fall back to the usecase's
	// defaults via its clamping.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listRequestsUC.Execute(c.Request.Context(), usecases.ListAccessRequestsQuery{
		Secret:   c.Query("secret"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]AccessRequestItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, AccessRequestItemResponse{
			GuestID:     item.GuestID,
			Name:        item.Name,
			Status:      item.Status,
			RequestedAt: item.RequestedAt,
			ApprovedAt:  item.ApprovedAt,
			ExpiresAt:   item.ExpiresAt,
		})
	}

	utils.ListSuccessResponse(c, items, result.Total, result.Page, result.PageSize)
}

// externalBaseURL reconstructs the origin the visitor reached us through,
// preferring proxy headers so approval links work behind a reverse proxy.
func (h *AccessHandler) externalBaseURL(c *gin.Context) string {
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	if host == "" {
		return h.baseURL
	}

	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if c.Request.TLS != nil {
			proto = "https"
		}
	}

	return fmt.Sprintf("%s://%s", proto, host)
}

// adminLinkError writes the flat {"error": ...} body used by the emailed
// admin links.
func (h *AccessHandler) adminLinkError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func (h *AccessHandler) renderAdminPage(c *gin.Context, title, detail string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #f5f5f5; }
        .card { background: white; border-radius: 8px; padding: 2rem 3rem; box-shadow: 0 2px 8px rgba(0,0,0,0.1); text-align: center; max-width: 28rem; }
        h1 { font-size: 1.25rem; margin-bottom: 0.75rem; }
        p { color: #555; line-height: 1.5; }
    </style>
</head>
<body>
    <div class="card">
        <h1>%s</h1>
        <p>%s</p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), html.EscapeString(detail))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
