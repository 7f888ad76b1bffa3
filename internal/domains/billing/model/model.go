package model

import "hallbook/shared/model"

const (
	TableName  = "billing_settings"
	EntityName = "billing settings"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldCompanyName    = "company_name"
	FieldAddress        = "address"
	FieldGSTNumber      = "gst_number"
	FieldTaxPercentage  = "tax_percentage"
	FieldBankDetails    = "bank_details"
	FieldHSNCode        = "hsn_code"
)

// Settings is the per-organization billing head. One row per
// organization; the invoice composer and the charge summary read the
// tax percentage from here.
type Settings struct {
	ID             string  `db:"id"`
	OrganizationID string  `db:"organization_id"`
	CompanyName    string  `db:"company_name"`
	Address        string  `db:"address"`
	GSTNumber      string  `db:"gst_number"`
	TaxPercentage  float64 `db:"tax_percentage"`
	BankDetails    string  `db:"bank_details"`
	HSNCode        string  `db:"hsn_code"`
	model.Metadata
}
