// Package api binds the account, auth and dashboard components to the
// HTTP/JSON routes consumed by the dashboard UI.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard-dev/pulseboard/internal/account"
	"github.com/pulseboard-dev/pulseboard/internal/auth"
	"github.com/pulseboard-dev/pulseboard/internal/dashboard"
	"github.com/pulseboard-dev/pulseboard/internal/store"
)

// Handler holds the components the routes are served from.
type Handler struct {
	Accounts  *account.Manager
	Auth      *auth.Authenticator
	Dashboard *dashboard.Aggregator
	Store     *store.Store
}

// NewHandler wires a handler from a single store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{
		Accounts:  account.NewManager(s),
		Auth:      auth.NewAuthenticator(s),
		Dashboard: dashboard.NewAggregator(s),
		Store:     s,
	}
}

// writeError maps the store error taxonomy onto HTTP status codes. Anything
// unrecognized, including storage failures, is a 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Accounts.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	user, err := h.Accounts.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Accounts.Create(input.Username, input.Email, input.Password, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var patch account.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Accounts.Update(id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := h.Accounts.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(creds.Username, creds.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.Dashboard.Summary()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) GetUsage(c *gin.Context) {
	series, err := h.Dashboard.Usage(c.DefaultQuery("timeframe", "daily"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *Handler) GetUserActivity(c *gin.Context) {
	records, err := h.Dashboard.Activity()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) GetAnomalies(c *gin.Context) {
	anomalies, err := h.Dashboard.Anomalies()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, anomalies)
}

func (h *Handler) GetTopPages(c *gin.Context) {
	pages, err := h.Dashboard.TopPages()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *Handler) GetSystemStatus(c *gin.Context) {
	status, err := h.Dashboard.SystemStatus()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ResetLogins clears the login event log. Only routed when the server runs
// with debug enabled.
func (h *Handler) ResetLogins(c *gin.Context) {
	if err := h.Store.ClearLoginEvents(); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
