package registries

// Country-code TLD registries. Label vocabularies, field coverage and
// not-found policies vary widely; each table transcribes what the
// registry actually emits. .su shares the .ru registry (same operator).

var au = New(".au", map[string]string{
	"domain_name":     `Domain Name:\s*(.+)`,
	"registrar":       `Registrar Name:\s*(.+)`,
	"registrar_id":    `Registrar ID:\s*(.+)`,
	"registrant_name": `Registrant Name:\s*(.+)`,
	"registrant_id":   `Registrant ID:\s*(.+)`,
	"updated_date":    `Last Modified:\s*(.+)`,
	"name_servers":    `Name Server:\s*(.+)`,
	"status":          `Status:\s*(.+)`,
}, ExactMatch("No Data Found"))

// ca performs no not-found check: its registry answers every query with
// a parseable body.
var ca = New(".ca", map[string]string{
	"domain_name":     `Domain name:\s*(.+)`,
	"creation_date":   `Creation date:\s*(.+)`,
	"updated_date":    `Updated date:\s*(.+)`,
	"expiration_date": `Expiry Date:\s*(.+)`,
	"name_servers":    `Name servers:\r?\n\s*(.+)`,
	"status":          `Domain status:\s*(.+)`,
	"emails":          emailPattern,
}, nil)

var cn = New(".cn", map[string]string{
	"domain_name":             `Domain Name:\s*(.+)`,
	"registrar":               `Sponsoring Registrar:\s*(.+)`,
	"registrant_organization": `Registrant Organization:\s*(.+)`,
	"registrant_name":         `Registrant Name:\s*(.+)`,
	"creation_date":           `Registration Date:\s*(.+)`,
	"expiration_date":         `Expiration Date:\s*(.+)`,
	"name_servers":            `Name Server:\s*(.+)`,
	"status":                  `Domain Status:\s*(.+)`,
	"emails":                  emailPattern,
}, Contains("no matching record"))

var cz = New(".cz", map[string]string{
	"domain_name":     `domain:\s*(.+)`,
	"creation_date":   `registered:\s*(.+)`,
	"updated_date":    `changed:\s*(.+)`,
	"expiration_date": `expire:\s*(.+)`,
	"name_servers":    `nserver:\s*(.+)`,
}, Contains("No entries found"))

var de = New(".de", map[string]string{
	"domain_name":  `Domain:\s*(.+)`,
	"updated_date": `Changed:\s*(.+)`,
	"name_servers": `Nserver:\s*(.+)`,
	"status":       `Status:\s*(.+)`,
	"emails":       emailPattern,
}, Contains("Status: free"))

var dk = New(".dk", map[string]string{
	"domain_name":     `Domain:\s*(.+)`,
	"creation_date":   `Registered:\s*(.+)`,
	"expiration_date": `Expires:\s*(.+)`,
	"name_servers":    `Hostname:\s*(.+)`,
	"status":          `Status:\s*(.+)`,
}, Contains("No entries found"))

var fi = New(".fi", map[string]string{
	"domain_name":     `domain:\s*(.+)`,
	"creation_date":   `created:\s*(.+)`,
	"expiration_date": `expires:\s*(.+)`,
	"name_servers":    `nserver:\s*(.+) `,
	"status":          `status:\s*(.+)`,
}, Contains("Domain not found"))

// fm performs no not-found check.
var fm = New(".fm", map[string]string{
	"domain_name":     `Query:\s*(.+)`,
	"registrar":       `Registrar Name:\s*(.+)`,
	"creation_date":   `Created:\s*(.+)`,
	"updated_date":    `Modified::\s*(.+)`,
	"expiration_date": `Expires:\s*(.+)`,
	"name_servers":    `Name Servers:\r?\n\s*(.+) `,
	"status":          `Status:\s*(.+)`,
	"emails":          emailPattern,
}, nil)

var fr = New(".fr", map[string]string{
	"domain_name":   `domain:\s*(.+)`,
	"registrar_id":  `source:\s*(.+)`,
	"registrar":     `registrar:\s*(.+)`,
	"admin_id":      `admin-c:\s*(.+)`,
	"technical_id":  `tech-c:\s*(.+)`,
	"creation_date": `created:\s*(.+)`,
	"updated_date":  `last-update:\s*(.+)`,
	"name_servers":  `nserver:\s*(.+)`,
	"status":        `status:\s*(.+)`,
	"emails":        emailPattern,
}, Contains("No entries found"))

// il obscures addresses as "user AT host", hence the dedicated email scan.
var il = New(".il", map[string]string{
	"creation_date":   `changed:.*\.il (.+) \(Assigned\)`,
	"domain_name":     `domain:\s*(.+)`,
	"registrar":       `registrar name:\s*(.+)`,
	"expiration_date": `validity:\s*(.+)`,
	"name_servers":    `nserver:\s*(.+)`,
	"status":          `status:\s*(.+)`,
	"emails":          `[\w.-]+ AT [\w.-]+\.[\w]{2,4}`,
}, ExactMatch("No entries found"))

var jp = New(".jp", map[string]string{
	"domain_name":     `\[Domain Name\]\s+(.+)`,
	"registrar":       `\[Registrant\]\s+(.+)`,
	"creation_date":   `\[(?:Created on|Registered Date)\]\s+(.+)`,
	"updated_date":    `\[Last Updated?\]\s+(.+)`,
	"expiration_date": `\[Expires on\]\s+(.+)`,
	"name_servers":    `\[Name Server\]\s+(.+)`,
	"status":          `\[(?:Status|State)\]\s+(.+)`,
	"emails":          emailPattern,
}, ExactMatch("No match"))

var kr = New(".kr", map[string]string{
	"domain_name":     `Domain Name\s*:\s*(.+)`,
	"creation_date":   `Registered Date\s*:\s*(.+)`,
	"updated_date":    `Last updated Date\s*:\s*(.+)`,
	"expiration_date": `Expiration Date\s*:\s*(.+)`,
	"registrant":      `Authorized Agency\s*:\s*(.+)`,
	"name_servers":    `Name Server\r?\n\s*Host Name\s*:\s*(.+)`,
	"status":          `Publishes\s*:\s*(.+)`,
	"admin_name":      `Administrative Contact\(AC\):(.+)`,
	"emails":          emailPattern,
}, ExactMatch("No match"))

var no = New(".no", map[string]string{
	"domain_name":   `Domain Name\.+:\s*(.+)`,
	"creation_date": `Created:\s*(.+)`,
	"updated_date":  `Last updated:\s*(.+)`,
	"emails":        emailPattern,
}, ExactMatch("No match"))

var nu = New(".nu", map[string]string{
	"domain_name":     `Domain Name.*:\s*(.+)`,
	"creation_date":   `Record created on (.+)\.`,
	"updated_date":    `Record last updated on (.+)\.`,
	"expiration_date": `Record expires on (.+)\.`,
	"status":          `Record status:\s*(.+)`,
	"name_servers":    `Domain servers in listed order:\r?\n\s*(.+)`,
	"emails":          emailPattern,
}, Contains("NO MATCH"))

var pl = New(".pl", map[string]string{
	"domain_name":   `DOMAIN NAME:\s*(.+)`,
	"creation_date": `created:\s*(.+)`,
	"updated_date":  `last modified:\s*(.+)`,
	"name_servers":  `nameservers:\s*(.+)`,
	"emails":        emailPattern,
}, ExactMatch("No information available"))

var ru = New(".ru", map[string]string{
	"domain_name":     `domain:\s*(.+)`,
	"registrar":       `registrar:\s*(.+)`,
	"creation_date":   `created:\s*(.+)`,
	"expiration_date": `paid-till:\s*(.+)`,
	"name_servers":    `nserver:\s*(.+)`,
	"status":          `state:\s*(.+)`,
	"emails":          emailPattern,
}, ExactMatch("No entries found"))

// su shares the .ru registry (same operator).
var su = ru

var sk = New(".sk", map[string]string{
	"domain_name":     `Domain-name\s*(.+)`,
	"expiration_date": `Valid-date\s*(.+)`,
	"updated_date":    `Last-update\s*(.+)`,
	"name_servers":    `dns_name\s*(.+)`,
	"status":          `Domain-status\s*(.+)`,
	"emails":          emailPattern,
}, Contains("Not found"))

var tk = New(".tk", map[string]string{
	"domain_name":     `Domain name:\r?\n\s*(.+)`,
	"registrant_name": `Organisation:\r?\n\s*(.+)`,
	"registrar":       `Record maintained by:\s*(.+)`,
	"creation_date":   `Domain registered:\s*(.+)`,
	"expiration_date": `Record will expire on (.+)`,
	"name_servers":    `Domain Nameservers:\r?\n\s*(.+)`,
	"status":          `(Your selected domain name [\r\n\w\s\d]+)`,
	"emails":          emailPattern,
}, ExactMatch("Invalid query or domain name not known in Dot TK Domain Registry"))

var tw = New(".tw", map[string]string{
	"domain_name":     `Domain Name:\s*(.+)`,
	"registrar":       `Registration Service Provider:\s*(.+)`,
	"creation_date":   `\s*Record created on (.+) \(`,
	"expiration_date": `\s*Record expires on (.+) \(`,
	"name_servers":    `\s+([\w\d.-_]+)\s+[\d.]+`,
	"emails":          emailPattern,
}, ExactMatch("No found"))

var ua = New(".ua", map[string]string{
	"domain_name":     `domain:\s*(.+)`,
	"registrar_id":    `source:\s*(.+)`,
	"admin_id":        `admin-c:\s*(.+)`,
	"technical_id":    `tech-c:\s*(.+)`,
	"creation_date":   `created:\s*.+ (.+)`,
	"expiration_date": `status:\s*OK-UNTIL (.+)`,
	"updated_date":    `changed:\s*.+ (.+)`,
	"name_servers":    `nserver:\s*(.+)`,
	"status":          `status:\s*(.+)`,
	"emails":          emailPattern,
}, Contains("No entries found for"))

var uk = New(".uk", map[string]string{
	"domain_name":     `Domain name:\r?\n\s*(.+)`,
	"registrar":       `Registrar:\r?\n\s*(.+)`,
	"registrar_url":   `URL:\s*(.+)`,
	"status":          `Registration status:\r?\n\s*(.+)`,
	"registrant_name": `Registrant:\r?\n\s*(.+)`,
	"creation_date":   `Registered on:\s*(.+)`,
	"expiration_date": `Renewal date:\s*(.+)`,
	"updated_date":    `Last updated:\s*(.+)`,
	"name_servers":    `Name servers:\r?\n\s*(.+)`,
}, Contains("Not found:"))
