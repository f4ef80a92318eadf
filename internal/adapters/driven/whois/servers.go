package whois

// tldServers lists the authoritative server (plus fallbacks) for each TLD
// the parser has a registry for. Unknown TLDs fall through to
// defaultServers; IANA answers for every object and names the referral
// in its reply.
var tldServers = map[string][]string{
	"com":  {"whois.verisign-grs.com", "whois.markmonitor.com"},
	"net":  {"whois.verisign-grs.com"},
	"org":  {"whois.pir.org"},
	"info": {"whois.afilias.net"},
	"biz":  {"whois.neulevel.biz"},
	"name": {"whois.nic.name"},
	"me":   {"whois.nic.me"},
	"us":   {"whois.nic.us"},
	"co":   {"whois.nic.co"},
	"au":   {"whois.auda.org.au"},
	"ca":   {"whois.cira.ca"},
	"cn":   {"whois.cnnic.cn"},
	"cz":   {"whois.nic.cz"},
	"de":   {"whois.denic.de"},
	"dk":   {"whois.dk-hostmaster.dk"},
	"fi":   {"whois.fi"},
	"fm":   {"whois.nic.fm"},
	"fr":   {"whois.nic.fr"},
	"il":   {"whois.isoc.org.il"},
	"jp":   {"whois.jprs.jp"},
	"kr":   {"whois.kr"},
	"no":   {"whois.norid.no"},
	"nu":   {"whois.iis.nu"},
	"pl":   {"whois.dns.pl"},
	"ru":   {"whois.tcinet.ru"},
	"sk":   {"whois.sk-nic.sk"},
	"su":   {"whois.tcinet.ru"},
	"tk":   {"whois.dot.tk"},
	"tw":   {"whois.twnic.net.tw"},
	"ua":   {"whois.ua"},
	"uk":   {"whois.nic.uk"},
}

// defaultServers handle TLDs without a dedicated entry.
var defaultServers = []string{"whois.iana.org", "whois.internic.net"}
