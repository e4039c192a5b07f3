package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"leadmatch/internal/models"
)

const dateLayout = "2006-01-02"

// Legacy clients still send the numeric status codes of the first API
// generation.
var legacyStatuses = map[string]string{
	"1": "open",
	"2": "confirmed",
	"3": "cancelled",
}

var validStatuses = map[string]struct{}{
	"open":      {},
	"confirmed": {},
	"cancelled": {},
	"all":       {},
}

var validDateTypes = map[string]struct{}{
	"created_at":   {},
	"processed_at": {},
}

// parseFilter validates the query parameters into a QueryFilter. Defaults:
// date_to is today, date_type is processed_at, status comes from config.
func (h *Handler) parseFilter(c *gin.Context) (models.QueryFilter, *pipelineError) {
	var filter models.QueryFilter

	filter.DateFrom = c.Query("date_from")
	if filter.DateFrom == "" {
		return filter, badRequest("file and start date are required")
	}
	if _, err := time.Parse(dateLayout, filter.DateFrom); err != nil {
		return filter, badRequest("invalid date_from, use YYYY-MM-DD")
	}

	filter.DateTo = c.DefaultQuery("date_to", time.Now().Format(dateLayout))
	if _, err := time.Parse(dateLayout, filter.DateTo); err != nil {
		return filter, badRequest("invalid date_to, use YYYY-MM-DD")
	}

	filter.DateType = c.DefaultQuery("date_type", "processed_at")
	if _, ok := validDateTypes[filter.DateType]; !ok {
		return filter, badRequest("invalid date_type, use created_at or processed_at")
	}

	filter.Status = c.DefaultQuery("status", h.config.DefaultLeadStatus)
	if mapped, ok := legacyStatuses[filter.Status]; ok {
		filter.Status = mapped
	}
	if _, ok := validStatuses[filter.Status]; !ok {
		return filter, badRequest("invalid status, use open, confirmed, cancelled or all")
	}

	filter.AdvertisingMaterialID = c.Query("advertising_material_id")

	var err error
	filter.UsePhone, err = strconv.ParseBool(c.DefaultQuery("use_phone", "false"))
	if err != nil {
		return filter, badRequest("invalid use_phone, use true or false")
	}
	filter.UseEmail, err = strconv.ParseBool(c.DefaultQuery("use_email", "false"))
	if err != nil {
		return filter, badRequest("invalid use_email, use true or false")
	}
	if !filter.UsePhone && !filter.UseEmail {
		return filter, badRequest("at least one of use_phone or use_email must be true")
	}

	return filter, nil
}
