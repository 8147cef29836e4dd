// Package report renders organization analytics as executive documents:
// Markdown, standalone HTML and an XLSX workbook.
package report

import (
	"math"
	"regexp"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/analytics"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Number groups thousands: 17200 -> "17,200".
func Number(v int) string {
	return printer.Sprintf("%d", v)
}

// Currency formats whole US dollars: -1250.4 -> "-$1,250".
func Currency(v float64) string {
	n := analytics.RoundInt(v)
	if n < 0 {
		return "-$" + Number(-n)
	}
	return "$" + Number(n)
}

// Percent formats a one-decimal percentage without trailing ".0".
func Percent(v float64) string {
	return Decimal(v) + "%"
}

// Decimal prints v with at most one decimal: 66.7 -> "66.7", 25 -> "25".
func Decimal(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.1f", v)
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename builds "<Org_Name>_Wellness_Report_<YYYY-MM-DD>.<ext>".
func Filename(a *domain.OrganizationAnalytics, ext string, now time.Time) string {
	return whitespace.ReplaceAllString(a.Organization.Name, "_") + "_Wellness_Report_" + now.UTC().Format("2006-01-02") + "." + ext
}
