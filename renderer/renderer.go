// Package renderer formats analytics results as markdown reports and
// spreadsheet workbooks.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/yield"
	"github.com/etnz/yield/date"
	"github.com/etnz/yield/rank"
	"github.com/etnz/yield/trend"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// NA is displayed in place of values that cannot be computed.
const NA = "N/A"

// VolatilityRow is the dividend volatility of a ticker, Index is nil when
// no Regular dividend falls in the window.
type VolatilityRow struct {
	Ticker string                 `json:"ticker"`
	Index  *yield.VolatilityIndex `json:"volatility"`
}

// TrendRow holds the trends of a ticker, one per window.
type TrendRow struct {
	Ticker  string         `json:"ticker"`
	Results []trend.Result `json:"trends"`
}

// AsOf returns the date of the latest price of the row.
func (r TrendRow) AsOf() date.Date {
	if len(r.Results) == 0 {
		return date.Date{}
	}
	return r.Results[0].AsOf
}

// TrendTable is a set of trends over the same windows.
type TrendTable struct {
	Windows []trend.Window
	Rows    []TrendRow
}

// SignalReport is the premium/discount analysis of a fund.
type SignalReport struct {
	Ticker string        `json:"ticker"`
	Signal trend.Signal  `json:"signal"`
	ZScore *trend.ZScore `json:"premium_discount"`
	Rating *int          `json:"rating"`
}

// Ranking is the output of a ranking strategy.
type Ranking struct {
	Strategy string        `json:"strategy"`
	Metrics  []string      `json:"metrics"`
	Results  []rank.Result `json:"results"`
	Excluded []string      `json:"excluded,omitempty"`
}

// RenderDividends renders the classified dividends of every ticker.
func RenderDividends(batches []yield.Batch) string {
	return renderTemplate("dividends.md", batches)
}

// RenderVolatility renders a table of dividend volatilities.
func RenderVolatility(rows []VolatilityRow) string {
	return renderTemplate("volatility.md", rows)
}

// RenderTrends renders a table of trends, one column per window.
func RenderTrends(t TrendTable) string {
	return renderTemplate("trends.md", t)
}

// RenderSignal renders the Z-score and signal rating of a fund.
func RenderSignal(s SignalReport) string {
	return renderTemplate("signal.md", s)
}

// RenderRanking renders a ranking table.
func RenderRanking(r Ranking) string {
	return renderTemplate("ranking.md", r)
}

var funcs = template.FuncMap{
	"amount": func(d decimal.Decimal) string { return d.String() },
	"dec":    nullDecimal,
	"days":   days,
	"pct":    percent,
	"cv":     cv,
	"ratio":  ratio,
	"rating": rating,
	"metric": metric,
	"join":   strings.Join,
}

// renderTemplate renders a template file of the embedded templates.
func renderTemplate(file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}

func nullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(4)
}

func days(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(*n)
}

// percent formats a signed percent value.
func percent(p *float64) string {
	if p == nil {
		return NA
	}
	return fmt.Sprintf("%+.2f%%", *p)
}

func cv(p *yield.Percent) string {
	if p == nil {
		return NA
	}
	return p.String()
}

// ratio formats a fraction as a signed percent.
func ratio(x float64) string { return fmt.Sprintf("%+.2f%%", x*100) }

func rating(r *int) string {
	if r == nil {
		return NA
	}
	return fmt.Sprintf("%+d", *r)
}

// metric formats the raw value of m with its normalized score or its rank.
func metric(r rank.Result, m string) string {
	v := fmt.Sprintf("%.2f", r.RawMetrics[m])
	if n, ok := r.NormalizedScores[m]; ok {
		return fmt.Sprintf("%s (%.2f)", v, n)
	}
	if n, ok := r.MetricRanks[m]; ok {
		return fmt.Sprintf("%s (#%d)", v, n)
	}
	return v
}
