package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/yield"
	"github.com/etnz/yield/date"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet is a named table of a workbook.
type Sheet struct {
	Name   string
	Header []any
	Rows   [][]any
}

// WriteWorkbook writes sheets as an XLSX workbook, in order.
func WriteWorkbook(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return fmt.Errorf("cannot name sheet %q: %w", s.Name, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", s.Name, err)
		}
		if err := f.SetSheetRow(s.Name, "A1", &s.Header); err != nil {
			return fmt.Errorf("cannot write %q header: %w", s.Name, err)
		}
		for j, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.Name, cell, &row); err != nil {
				return fmt.Errorf("cannot write %q row %d: %w", s.Name, j+1, err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// DividendSheet lays out classified dividends in a sheet, one row per dividend.
func DividendSheet(batches []yield.Batch) Sheet {
	s := Sheet{
		Name:   "Dividends",
		Header: []any{"ID", "Ticker", "Ex-Date", "Raw Amount", "Split Adjusted", "Days Since Prev", "Type", "Frequency", "Annualized", "Normalized Weekly"},
	}
	for _, b := range batches {
		for _, d := range b.Dividends {
			s.Rows = append(s.Rows, []any{
				d.ID,
				d.Ticker,
				d.ExDate.String(),
				d.RawAmount.InexactFloat64(),
				d.Amount().InexactFloat64(),
				optionalInt(d.DaysSincePrev),
				string(d.Type),
				optionalFrequency(d.Frequency),
				optionalDecimal(d.Annualized),
				optionalDecimal(d.NormalizedWeekly),
			})
		}
	}
	return s
}

// VolatilitySheet lays out volatility indices, one row per ticker.
func VolatilitySheet(rows []VolatilityRow) Sheet {
	s := Sheet{
		Name:   "Volatility",
		Header: []any{"Ticker", "From", "To", "Payments", "Mean", "Std Dev", "CV %"},
	}
	for _, r := range rows {
		if r.Index == nil {
			s.Rows = append(s.Rows, []any{r.Ticker, nil, nil, 0, nil, nil, nil})
			continue
		}
		var cv any
		if r.Index.CV != nil {
			cv = float64(*r.Index.CV)
		}
		s.Rows = append(s.Rows, []any{
			r.Ticker,
			r.Index.Window.From.String(),
			r.Index.Window.To.String(),
			r.Index.Payments,
			r.Index.Mean,
			r.Index.StdDev,
			cv,
		})
	}
	return s
}

// TrendSheet lays out trends, one row per ticker and one column per window.
func TrendSheet(t TrendTable) Sheet {
	s := Sheet{Name: "Trends", Header: []any{"Ticker", "As Of"}}
	for _, w := range t.Windows {
		s.Header = append(s.Header, w.String())
	}
	for _, r := range t.Rows {
		row := []any{r.Ticker, optionalDate(r.AsOf())}
		for _, res := range r.Results {
			row = append(row, optionalFloat(res.PercentChange))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// SignalSheet lays out premium/discount analyses, one row per fund.
func SignalSheet(reports []SignalReport) Sheet {
	s := Sheet{
		Name:   "Signals",
		Header: []any{"Ticker", "Z-Score", "Current", "Mean", "Std Dev", "Points", "6M Trend", "12M Trend", "History Years", "Rating"},
	}
	for _, r := range reports {
		row := []any{r.Ticker, nil, nil, nil, nil, 0}
		if z := r.ZScore; z != nil {
			row = []any{r.Ticker, z.Value, z.Current, z.Mean, z.StdDev, z.Points}
		}
		var rating any
		if r.Rating != nil {
			rating = *r.Rating
		}
		row = append(row, optionalFloat(r.Signal.Trend6M), optionalFloat(r.Signal.Trend12M), r.Signal.HistoryYears, rating)
		s.Rows = append(s.Rows, row)
	}
	return s
}

// RankingSheet lays out a ranking, with the raw value of every metric.
func RankingSheet(r Ranking) Sheet {
	s := Sheet{Name: "Ranking", Header: []any{"Rank", "Entity", "Score"}}
	for _, m := range r.Metrics {
		s.Header = append(s.Header, m)
	}
	for _, res := range r.Results {
		row := []any{res.Rank, res.EntityID, res.Score}
		for _, m := range r.Metrics {
			row = append(row, res.RawMetrics[m])
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// nil values are written as empty cells.

func optionalInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func optionalDate(d date.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

func optionalFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optionalFrequency(f yield.Frequency) any {
	if f == yield.Unknown {
		return nil
	}
	return int(f)
}

func optionalDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}
