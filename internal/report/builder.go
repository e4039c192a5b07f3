package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx/v2"

	"leadmatch/internal/matcher"
	"leadmatch/internal/models"
)

const sheetName = "Matched Leads"

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Columns is the fixed output schema, in order.
var Columns = []string{
	"customer_phone_number",
	"customer_email_address",
	"created_at",
	"processed_at",
	"clicked_at",
	"customer_browser",
	"order_id",
	"order_value",
	"affiliate_id",
	"affiliate_company",
	"sub_id",
	"adspace_id",
	"adspace_name",
	"advertising_material_id",
	"advertising_material_type",
	"added_later",
	"commission_value",
	"commission_currency",
	"commission_type",
	"status",
}

type Builder struct {
	logger *logrus.Logger
}

func NewBuilder(logger *logrus.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build projects the matched leads into the output schema and serializes
// them as a workbook. An empty match set yields a single placeholder row so
// the result is always a valid, openable file.
func (b *Builder) Build(matches *matcher.MatchSet, filter models.QueryFilter) ([]byte, error) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create report sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, column := range Columns {
		headerRow.AddCell().SetString(column)
	}

	if matches.Len() == 0 {
		row := sheet.AddRow()
		row.AddCell().SetString(fmt.Sprintf("no matching leads between %s and %s", filter.DateFrom, filter.DateTo))
	}

	for _, lead := range matches.Leads() {
		writeRecord(sheet.AddRow(), Project(lead))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	b.logger.WithFields(logrus.Fields{
		"rows":      matches.Len(),
		"date_from": filter.DateFrom,
		"date_to":   filter.DateTo,
	}).Info("Built matched leads report")

	return buf.Bytes(), nil
}

// Project flattens a lead into the report schema. Missing nested objects
// project to zero values rather than failing the row.
func Project(lead models.Lead) models.MatchedLeadRecord {
	record := models.MatchedLeadRecord{
		CreatedAt:   lead.CreatedAt,
		ProcessedAt: lead.ProcessedAt,
		ClickedAt:   lead.ClickedAt,
		AddedLater:  lead.AddedLater,
		Status:      lead.Status,
	}
	if lead.Customer != nil {
		record.CustomerPhoneNumber = lead.Customer.PhoneNumber
		record.CustomerEmailAddress = lead.Customer.EmailAddress
		record.CustomerBrowser = lead.Customer.Browser
	}
	if lead.Order != nil {
		record.OrderID = lead.Order.ID
		record.OrderValue = lead.Order.Value
	}
	if lead.Affiliate != nil {
		record.AffiliateID = lead.Affiliate.ID
		record.AffiliateCompany = lead.Affiliate.CompanyName
		record.SubID = lead.Affiliate.SubID
	}
	if lead.Adspace != nil {
		record.AdspaceID = lead.Adspace.ID
		record.AdspaceName = lead.Adspace.Name
	}
	if lead.AdvertisingMaterial != nil {
		record.AdvertisingMaterialID = lead.AdvertisingMaterial.ID
		record.AdvertisingMaterialType = lead.AdvertisingMaterial.Type
	}
	if lead.Commission != nil {
		record.CommissionValue = lead.Commission.Value
		record.CommissionCurrency = lead.Commission.Currency
		record.CommissionType = lead.Commission.Type
	}
	return record
}

func writeRecord(row *xlsx.Row, r models.MatchedLeadRecord) {
	row.AddCell().SetString(r.CustomerPhoneNumber)
	row.AddCell().SetString(r.CustomerEmailAddress)
	row.AddCell().SetString(r.CreatedAt)
	row.AddCell().SetString(r.ProcessedAt)
	row.AddCell().SetString(r.ClickedAt)
	row.AddCell().SetString(r.CustomerBrowser)
	row.AddCell().SetString(r.OrderID)
	row.AddCell().SetFloat(r.OrderValue)
	row.AddCell().SetInt64(r.AffiliateID)
	row.AddCell().SetString(r.AffiliateCompany)
	row.AddCell().SetString(r.SubID)
	row.AddCell().SetInt64(r.AdspaceID)
	row.AddCell().SetString(r.AdspaceName)
	row.AddCell().SetInt64(r.AdvertisingMaterialID)
	row.AddCell().SetString(r.AdvertisingMaterialType)
	row.AddCell().SetBool(r.AddedLater)
	row.AddCell().SetFloat(r.CommissionValue)
	row.AddCell().SetString(r.CommissionCurrency)
	row.AddCell().SetString(r.CommissionType)
	row.AddCell().SetString(r.Status)
}

// Filename derives the attachment name from the filtered date range, e.g.
// matched_leads_20240101_to_20240131.xlsx.
func Filename(filter models.QueryFilter) string {
	from := strings.ReplaceAll(filter.DateFrom, "-", "")
	to := strings.ReplaceAll(filter.DateTo, "-", "")
	return fmt.Sprintf("matched_leads_%s_to_%s.xlsx", from, to)
}
