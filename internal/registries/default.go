package registries

// emailPattern scans for addresses anywhere in the response; it has no
// capture group, so the whole match is the value.
const emailPattern = `[\w.-]+@[\w.-]+\.[\w]{2,4}`

// defaultPatterns is the generic field set used when no TLD-specific
// registry matches, and the base the .com/.net registries are composed
// from. name_servers, status and emails typically repeat; the rest are
// single-valued by convention.
var defaultPatterns = map[string]string{
	"domain_name":     `Domain Name:\s?(.+)`,
	"registrar":       `Registrar:\s?(.+)`,
	"whois_server":    `Whois Server:\s?(.+)`,
	"referral_url":    `Referral URL:\s?(.+)`, // http url of whois_server
	"updated_date":    `Updated Date:\s?(.+)`,
	"creation_date":   `Creation Date:\s?(.+)`,
	"expiration_date": `Expiration Date:\s?(.+)`,
	"name_servers":    `Name Server:\s?(.+)`,
	"status":          `Status:\s?(.+)`,
	"emails":          emailPattern,
}

// Default is the fallback registry for domains whose suffix has no
// dedicated entry. It has no not-found rule: an unrecognised registry's
// response is always treated as found.
var Default = New("default", defaultPatterns, nil)
