package registries

// Generic TLD registries. .com and .net use the default field set with
// their own not-found rule; .co shares the .biz registry and .info shares
// .org (same operator formats), expressed by referencing one value from
// several suffix entries rather than by a type hierarchy.

var com = New(".com", defaultPatterns, Contains(`No match for "`))

var net = New(".net", defaultPatterns, Contains(`No match for "`))

var org = New(".org", map[string]string{
	"domain_name":                `Domain Name:\s*(.+)`,
	"creation_date":              `Created On:\s*(.+)`,
	"expiration_date":            `Expiration Date:\s*(.+)`,
	"updated_date":               `Last Updated On:\s*(.+)`,
	"domain_id":                  `Domain ID:\s*(.+)`,
	"registrar":                  `Sponsoring Registrar:\s*(.+)`,
	"status":                     `Status:\s*(.+)`,
	"registrant_id":              `Registrant ID:\s*(.+)`,
	"registrant_organization":    `Registrant Organization:\s*(.+)`,
	"registrant_name":            `Registrant Name:\s*(.+)`,
	"registrant_address1":        `Registrant Street1:\s*(.+)`,
	"registrant_address2":        `Registrant Street2:\s*(.+)`,
	"registrant_city":            `Registrant City:\s*(.+)`,
	"registrant_state_province":  `Registrant State/Province:\s*(.+)`,
	"registrant_postal_code":     `Registrant Postal Code:\s*(.+)`,
	"registrant_country":         `Registrant Country:\s*(.+)`,
	"registrant_phone_number":    `Registrant Phone:\s*(.+)`,
	"registrant_email":           `Registrant Email:\s*(.+)`,
	"admin_id":                   `Admin ID:\s*(.+)`,
	"admin_name":                 `Admin Name:\s*(.+)`,
	"admin_organization":         `Admin Organization:\s*(.+)`,
	"admin_address1":             `Admin Street1:\s*(.+)`,
	"admin_address2":             `Admin Street2:\s*(.+)`,
	"admin_city":                 `Admin City:\s*(.+)`,
	"admin_state_province":       `Admin State/Province:\s*(.+)`,
	"admin_postal_code":          `Admin Postal Code:\s*(.+)`,
	"admin_country":              `Admin Country:\s*(.+)`,
	"admin_phone_number":         `Admin Phone:\s*(.+)`,
	"admin_email":                `Admin Email:\s*(.+)`,
	"tech_id":                    `Tech ID:\s*(.+)`,
	"tech_name":                  `Tech Name:\s*(.+)`,
	"tech_organization":          `Tech Organization:\s*(.+)`,
	"tech_address1":              `Tech Street1:\s*(.+)`,
	"tech_address2":              `Tech Street2:\s*(.+)`,
	"tech_city":                  `Tech City:\s*(.+)`,
	"tech_state_province":        `Tech State/Province:\s*(.+)`,
	"tech_postal_code":           `Tech Postal Code:\s*(.+)`,
	"tech_country":               `Tech Country:\s*(.+)`,
	"tech_country_code":          `Tech Country Code:\s*(.+)`,
	"tech_phone_number":          `Tech Phone Number:\s*(.+)`,
	"tech_email":                 `Tech Email:\s*(.+)`,
	"name_servers":               `Name Server:\s*(.+)`,
}, ExactMatch("NOT FOUND"))

// info shares the .org formats (same operator).
var info = org

var biz = New(".biz", map[string]string{
	"domain_name":               `Domain Name:\s*(.+)`,
	"creation_date":             `Domain Registration Date:\s*(.+)`,
	"expiration_date":           `Domain Expiration Date:\s*(.+)`,
	"updated_date":              `Domain Last Updated Date:\s*(.+)`,
	"domain_id":                 `Domain ID:\s*(.+)`,
	"registrar":                 `Sponsoring Registrar:\s*(.+)`,
	"status":                    `Domain Status:\s*(.+)`,
	"registrant_id":             `Registrant ID:\s*(.+)`,
	"registrant_name":           `Registrant Name:\s*(.+)`,
	"registrant_address1":       `Registrant Address1:\s*(.+)`,
	"registrant_city":           `Registrant City:\s*(.+)`,
	"registrant_state_province": `Registrant State/Province:\s*(.+)`,
	"registrant_postal_code":    `Registrant Postal Code:\s*(.+)`,
	"registrant_country":        `Registrant Country:\s*(.+)`,
	"registrant_country_code":   `Registrant Country Code:\s*(.+)`,
	"registrant_phone_number":   `Registrant Phone:\s*(.+)`,
	"registrant_email":          `Registrant Email:\s*(.+)`,
	"admin_id":                  `Administrative Contact ID:\s*(.+)`,
	"admin_name":                `Administrative Contact Name:\s*(.+)`,
	"admin_address1":            `Administrative Contact Address1:\s*(.+)`,
	"admin_city":                `Administrative Contact City:\s*(.+)`,
	"admin_state_province":      `Administrative Contact State/Province:\s*(.+)`,
	"admin_postal_code":         `Administrative Contact Postal Code:\s*(.+)`,
	"admin_country":             `Administrative Contact Country:\s*(.+)`,
	"admin_country_code":        `Administrative Contact Country Code:\s*(.+)`,
	"admin_phone_number":        `Administrative Contact Phone:\s*(.+)`,
	"admin_email":               `Administrative Contact Email:\s*(.+)`,
	"billing_id":                `Billing Contact ID:\s*(.+)`,
	"billing_name":              `Billing Contact Name:\s*(.+)`,
	"billing_address1":          `Billing Contact Address1:\s*(.+)`,
	"billing_city":              `Billing Contact City:\s*(.+)`,
	"billing_state_province":    `Billing Contact State/Province:\s*(.+)`,
	"billing_postal_code":       `Billing Contact Postal Code:\s*(.+)`,
	"billing_country":           `Billing Contact Country:\s*(.+)`,
	"billing_country_code":      `Billing Contact Country Code:\s*(.+)`,
	"billing_phone_number":      `Billing Contact Phone:\s*(.+)`,
	"billing_email":             `Billing Contact Email:\s*(.+)`,
	"tech_id":                   `Technical Contact ID:\s*(.+)`,
	"tech_name":                 `Technical Contact Name:\s*(.+)`,
	"tech_address1":             `Technical Contact Address1:\s*(.+)`,
	"tech_city":                 `Technical Contact City:\s*(.+)`,
	"tech_state_province":       `Technical Contact State/Province:\s*(.+)`,
	"tech_postal_code":          `Technical Contact Postal Code:\s*(.+)`,
	"tech_country":              `Technical Contact Country:\s*(.+)`,
	"tech_country_code":         `Technical Contact Country Code:\s*(.+)`,
	"tech_phone_number":         `Technical Contact Phone:\s*(.+)`,
	"tech_email":                `Technical Contact Email:\s*(.+)`,
	"name_servers":              `Name Server:\s*(.+)`,
}, Contains("Not found:"))

// co shares the .biz formats.
var co = biz

var nameTLD = New(".name", map[string]string{
	"domain_name_id":  `Domain Name ID:\s*(.+)`,
	"domain_name":     `Domain Name:\s*(.+)`,
	"registrar_id":    `Sponsoring Registrar ID:\s*(.+)`,
	"registrar":       `Sponsoring Registrar:\s*(.+)`,
	"registrant_id":   `Registrant ID:\s*(.+)`,
	"admin_id":        `Admin ID:\s*(.+)`,
	"technical_id":    `Tech ID:\s*(.+)`,
	"billing_id":      `Billing ID:\s*(.+)`,
	"creation_date":   `Created On:\s*(.+)`,
	"expiration_date": `Expires On:\s*(.+)`,
	"updated_date":    `Updated On:\s*(.+)`,
	"name_server_ids": `Name Server ID:\s*(.+)`,
	"name_servers":    `Name Server:\s*(.+)`,
	"status":          `Domain Status:\s*(.+)`,
}, Contains("No match."))

var me = New(".me", map[string]string{
	"domain_id":                    `Domain ID:(.+)`,
	"domain_name":                  `Domain Name:(.+)`,
	"creation_date":                `Domain Create Date:(.+)`,
	"updated_date":                 `Domain Last Updated Date:(.+)`,
	"expiration_date":              `Domain Expiration Date:(.+)`,
	"transfer_date":                `Last Transferred Date:(.+)`,
	"trademark_name":               `Trademark Name:(.+)`,
	"trademark_country":            `Trademark Country:(.+)`,
	"trademark_number":             `Trademark Number:(.+)`,
	"trademark_application_date":   `Date Trademark Applied For:(.+)`,
	"trademark_registration_date":  `Date Trademark Registered:(.+)`,
	"registrar":                    `Sponsoring Registrar:(.+)`,
	"created_by":                   `Created by:(.+)`,
	"updated_by":                   `Last Updated by Registrar:(.+)`,
	"status":                       `Domain Status:(.+)`,
	"registrant_id":                `Registrant ID:(.+)`,
	"registrant_name":              `Registrant Name:(.+)`,
	"registrant_org":               `Registrant Organization:(.+)`,
	"registrant_address":           `Registrant Address:(.+)`,
	"registrant_address2":          `Registrant Address2:(.+)`,
	"registrant_address3":          `Registrant Address3:(.+)`,
	"registrant_city":              `Registrant City:(.+)`,
	"registrant_state_province":    `Registrant State/Province:(.+)`,
	"registrant_country":           `Registrant Country/Economy:(.+)`,
	"registrant_postal_code":       `Registrant Postal Code:(.+)`,
	"registrant_phone":             `Registrant Phone:(.+)`,
	"registrant_phone_ext":         `Registrant Phone Ext\.:(.+)`,
	"registrant_fax":               `Registrant FAX:(.+)`,
	"registrant_fax_ext":           `Registrant FAX Ext\.:(.+)`,
	"registrant_email":             `Registrant E-mail:(.+)`,
	"admin_id":                     `Admin ID:(.+)`,
	"admin_name":                   `Admin Name:(.+)`,
	"admin_org":                    `Admin Organization:(.+)`,
	"admin_address":                `Admin Address:(.+)`,
	"admin_address2":               `Admin Address2:(.+)`,
	"admin_address3":               `Admin Address3:(.+)`,
	"admin_city":                   `Admin City:(.+)`,
	"admin_state_province":         `Admin State/Province:(.+)`,
	"admin_country":                `Admin Country/Economy:(.+)`,
	"admin_postal_code":            `Admin Postal Code:(.+)`,
	"admin_phone":                  `Admin Phone:(.+)`,
	"admin_phone_ext":              `Admin Phone Ext\.:(.+)`,
	"admin_fax":                    `Admin FAX:(.+)`,
	"admin_fax_ext":                `Admin FAX Ext\.:(.+)`,
	"admin_email":                  `Admin E-mail:(.+)`,
	"tech_id":                      `Tech ID:(.+)`,
	"tech_name":                    `Tech Name:(.+)`,
	"tech_org":                     `Tech Organization:(.+)`,
	"tech_address":                 `Tech Address:(.+)`,
	"tech_address2":                `Tech Address2:(.+)`,
	"tech_address3":                `Tech Address3:(.+)`,
	"tech_city":                    `Tech City:(.+)`,
	"tech_state_province":          `Tech State/Province:(.+)`,
	"tech_country":                 `Tech Country/Economy:(.+)`,
	"tech_postal_code":             `Tech Postal Code:(.+)`,
	"tech_phone":                   `Tech Phone:(.+)`,
	"tech_phone_ext":               `Tech Phone Ext\.:(.+)`,
	"tech_fax":                     `Tech FAX:(.+)`,
	"tech_fax_ext":                 `Tech FAX Ext\.:(.+)`,
	"tech_email":                   `Tech E-mail:(.+)`,
	"name_servers":                 `Nameservers:(.+)`,
}, Contains("NOT FOUND"))

var us = New(".us", map[string]string{
	"domain_name":                    `Domain Name:\s*(.+)`,
	"domain_id":                      `Domain ID:\s*(.+)`,
	"registrar":                      `Sponsoring Registrar:\s*(.+)`,
	"registrar_id":                   `Sponsoring Registrar IANA ID:\s*(.+)`,
	"registrar_url":                  `Registrar URL \(registration services\):\s*(.+)`,
	"status":                         `Domain Status:\s*(.+)`,
	"registrant_id":                  `Registrant ID:\s*(.+)`,
	"registrant_name":                `Registrant Name:\s*(.+)`,
	"registrant_address1":            `Registrant Address1:\s*(.+)`,
	"registrant_address2":            `Registrant Address2:\s*(.+)`,
	"registrant_city":                `Registrant City:\s*(.+)`,
	"registrant_state_province":      `Registrant State/Province:\s*(.+)`,
	"registrant_postal_code":         `Registrant Postal Code:\s*(.+)`,
	"registrant_country":             `Registrant Country:\s*(.+)`,
	"registrant_country_code":        `Registrant Country Code:\s*(.+)`,
	"registrant_phone_number":        `Registrant Phone Number:\s*(.+)`,
	"registrant_email":               `Registrant Email:\s*(.+)`,
	"registrant_application_purpose": `Registrant Application Purpose:\s*(.+)`,
	"registrant_nexus_category":      `Registrant Nexus Category:\s*(.+)`,
	"admin_id":                       `Administrative Contact ID:\s*(.+)`,
	"admin_name":                     `Administrative Contact Name:\s*(.+)`,
	"admin_address1":                 `Administrative Contact Address1:\s*(.+)`,
	"admin_address2":                 `Administrative Contact Address2:\s*(.+)`,
	"admin_city":                     `Administrative Contact City:\s*(.+)`,
	"admin_state_province":           `Administrative Contact State/Province:\s*(.+)`,
	"admin_postal_code":              `Administrative Contact Postal Code:\s*(.+)`,
	"admin_country":                  `Administrative Contact Country:\s*(.+)`,
	"admin_country_code":             `Administrative Contact Country Code:\s*(.+)`,
	"admin_phone_number":             `Administrative Contact Phone Number:\s*(.+)`,
	"admin_email":                    `Administrative Contact Email:\s*(.+)`,
	"admin_application_purpose":      `Administrative Application Purpose:\s*(.+)`,
	"admin_nexus_category":           `Administrative Nexus Category:\s*(.+)`,
	"billing_id":                     `Billing Contact ID:\s*(.+)`,
	"billing_name":                   `Billing Contact Name:\s*(.+)`,
	"billing_address1":               `Billing Contact Address1:\s*(.+)`,
	"billing_address2":               `Billing Contact Address2:\s*(.+)`,
	"billing_city":                   `Billing Contact City:\s*(.+)`,
	"billing_state_province":         `Billing Contact State/Province:\s*(.+)`,
	"billing_postal_code":            `Billing Contact Postal Code:\s*(.+)`,
	"billing_country":                `Billing Contact Country:\s*(.+)`,
	"billing_country_code":           `Billing Contact Country Code:\s*(.+)`,
	"billing_phone_number":           `Billing Contact Phone Number:\s*(.+)`,
	"billing_email":                  `Billing Contact Email:\s*(.+)`,
	"billing_application_purpose":    `Billing Application Purpose:\s*(.+)`,
	"billing_nexus_category":         `Billing Nexus Category:\s*(.+)`,
	"tech_id":                        `Technical Contact ID:\s*(.+)`,
	"tech_name":                      `Technical Contact Name:\s*(.+)`,
	"tech_address1":                  `Technical Contact Address1:\s*(.+)`,
	"tech_address2":                  `Technical Contact Address2:\s*(.+)`,
	"tech_city":                      `Technical Contact City:\s*(.+)`,
	"tech_state_province":            `Technical Contact State/Province:\s*(.+)`,
	"tech_postal_code":               `Technical Contact Postal Code:\s*(.+)`,
	"tech_country":                   `Technical Contact Country:\s*(.+)`,
	"tech_country_code":              `Technical Contact Country Code:\s*(.+)`,
	"tech_phone_number":              `Technical Contact Phone Number:\s*(.+)`,
	"tech_email":                     `Technical Contact Email:\s*(.+)`,
	"tech_application_purpose":       `Technical Application Purpose:\s*(.+)`,
	"tech_nexus_category":            `Technical Nexus Category:\s*(.+)`,
	"name_servers":                   `Name Server:\s*(.+)`,
	"created_by_registrar":           `Created by Registrar:\s*(.+)`,
	"last_updated_by_registrar":      `Last Updated by Registrar:\s*(.+)`,
	"creation_date":                  `Domain Registration Date:\s*(.+)`,
	"expiration_date":                `Domain Expiration Date:\s*(.+)`,
	"updated_date":                   `Domain Last Updated Date:\s*(.+)`,
}, Contains("Not found:"))
