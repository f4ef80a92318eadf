package domain

import (
	"strings"
	"time"
)

// dateLayouts is the ordered list of layouts tried by CastDate. Several
// registries emit the same digits with different meanings (05/14/2002 vs
// 13/09/2004 vs 2004/10/14), so list position is the tie-break: do not
// reorder entries. Each layout notes a sample and the registry that
// motivated it.
var dateLayouts = []string{
	"2-Jan-2006",                  // 02-jan-2000
	"2006-1-2",                    // 2000-01-02
	"2006.1.2 15:04:05",           // 2006.06.12 15:53:14 (.pl)
	"2006.1.2",                    // 2002.12.25 (.ru)
	"2006-Jan-2",                  // 2008-Feb-5 (.nu)
	"2.1.2006 15:04:05",           // 18.05.2004 18:15:00 (.cz)
	"2.1.2006",                    // 21.5.1998 (.fi)
	"2-Jan-2006 15:04:05 MST",     // 24-Jul-2009 13:20:03 UTC
	"2006-1-2 15:04",              // 2000-03-07 00:00 (.cn)
	"Mon Jan 2 15:04:05 MST 2006", // Tue Jun 21 23:59:59 GMT 2011
	"2 Jan 2006 15:04 MST",        // 31 Dec 1999 05:00 PST (.fm)
	"2006-01-02T15:04:05",         // 2007-01-26T19:10:31
	"20060102150405",              // 20110209194637 (.ua)
	"20060102",                    // 20020702 (isoc.org.il)
	"1/2/2006",                    // 05/14/2002
	"2/1/2006",                    // 13/09/2004 (.fr)
	"2006/1/2",                    // 2004/10/14 (.jp)
	"2006. 1. 2.",                 // 2007. 04. 23. (.kr)
}

// CastDate converts a date string found in WHOIS text to a point in time.
// The input is trimmed and each known layout is tried in order; the first
// full parse wins. An unrecognised or malformed string returns false,
// never an error: missing or odd dates are routine in WHOIS data and the
// caller decides whether absence matters.
func CastDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
