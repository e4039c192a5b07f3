package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leadmatch/internal/client"
	"leadmatch/internal/config"
	"leadmatch/internal/matcher"
	"leadmatch/internal/middleware"
	"leadmatch/internal/models"
	"leadmatch/internal/phone"
	"leadmatch/internal/report"
	"leadmatch/internal/spreadsheet"
)

// Session cookie lifetime: one day.
const authCookieMaxAge = 24 * 60 * 60

type Handler struct {
	config  *config.Config
	leads   *client.LeadsClient
	phones  *phone.Normalizer
	matcher *matcher.Matcher
	reports *report.Builder
	logger  *logrus.Logger
}

func New(cfg *config.Config, leads *client.LeadsClient, phones *phone.Normalizer,
	m *matcher.Matcher, reports *report.Builder, logger *logrus.Logger) *Handler {
	return &Handler{
		config:  cfg,
		leads:   leads,
		phones:  phones,
		matcher: m,
		reports: reports,
		logger:  logger,
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "leadmatch",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.LoginResponse{Success: false, Error: "password is required"})
		return
	}

	if h.config.AppPassword == "" || req.Password != h.config.AppPassword {
		c.JSON(http.StatusUnauthorized, models.LoginResponse{Success: false, Error: "invalid password"})
		return
	}

	c.SetCookie(middleware.AuthCookieName, "authenticated", authCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, models.LoginResponse{Success: true})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.LoginResponse{Success: true})
}

// MatchLeads runs the full pipeline for one upload: parse and validate the
// request, resolve columns, extract contacts, fetch leads, match, and
// return the report workbook. Every stage short-circuits to a tagged error.
func (h *Handler) MatchLeads(c *gin.Context) {
	startTime := time.Now()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		respondError(c, badRequest("file and start date are required"))
		return
	}

	filter, perr := h.parseFilter(c)
	if perr != nil {
		respondError(c, perr)
		return
	}

	contacts, perr := h.readContacts(body, filter)
	if perr != nil {
		respondError(c, perr)
		return
	}

	leads, err := h.leads.FetchLeads(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to fetch leads")
		if errors.Is(err, client.ErrUpstreamShape) {
			respondError(c, upstream("leads API returned an unexpected response", err))
		} else {
			respondError(c, upstream("failed to fetch leads", err))
		}
		return
	}

	matches := h.matcher.Match(contacts, leads, filter.UsePhone, filter.UseEmail)

	data, err := h.reports.Build(matches, filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build report")
		respondError(c, upstream("failed to build report", err))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"contacts":    len(contacts),
		"leads":       len(leads),
		"matches":     matches.Len(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Lead matching completed")

	c.Header("Content-Disposition", "attachment; filename="+report.Filename(filter))
	c.Data(http.StatusOK, report.ContentType, data)
}

// readContacts parses the uploaded workbook, resolves the phone/email
// columns for the requested match modes, and extracts the contact list.
func (h *Handler) readContacts(body []byte, filter models.QueryFilter) ([]models.Contact, *pipelineError) {
	rows, err := spreadsheet.ReadRows(body)
	if err != nil {
		return nil, badRequestDetails("unreadable spreadsheet", err)
	}
	if len(rows) == 0 {
		return nil, badRequest("spreadsheet is empty")
	}

	cols := spreadsheet.ResolveColumns(rows[0])
	phoneMissing := filter.UsePhone && cols.Phone == -1
	emailMissing := filter.UseEmail && cols.Email == -1
	resolvable := (filter.UsePhone && !phoneMissing) || (filter.UseEmail && !emailMissing)
	if !resolvable {
		return nil, badRequest("no phone or email column found for the requested match mode")
	}

	return spreadsheet.ExtractContacts(rows, cols, h.phones), nil
}
