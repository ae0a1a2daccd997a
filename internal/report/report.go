// Package report renders wealth snapshots as a markdown or HTML document.
// Amounts are formatted in a currency with go-money and percentages are
// rounded to two decimals only here, at presentation time.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

// DefaultTitle is used when no title is given.
const DefaultTitle = "Mon patrimoine"

//go:embed report.md.tmpl
var markdownTemplate string

var tmpl = template.Must(template.New("report").Parse(markdownTemplate))

// Report is the presentation form of a list of snapshots.
type Report struct {
	Title      string
	Current    Row
	Categories []CategoryRow
	History    []Row
}

// Row is one formatted snapshot.
type Row struct {
	Date        string
	Net         string
	Gross       string
	Liabilities string
	DebtRatio   string
}

// CategoryRow is the formatted amount and share of one category.
type CategoryRow struct {
	Icon       string
	Name       string
	Amount     string
	Percentage string
}

// Options configures rendering.
type Options struct {
	Title    string
	Currency string
}

// Build formats snapshots, as returned by bilan.Compute, for presentation.
// The first snapshot is the current one.
func Build(snapshots []bilan.Snapshot, opts Options) (*Report, error) {
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("no snapshot to report")
	}
	if money.GetCurrency(opts.Currency) == nil {
		return nil, fmt.Errorf("unknown currency %q", opts.Currency)
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	current := snapshots[0]
	r := &Report{
		Title:   opts.Title,
		Current: row(current, opts.Currency),
		History: make([]Row, 0, len(snapshots)-1),
	}
	for _, c := range models.Categories() {
		r.Categories = append(r.Categories, CategoryRow{
			Icon:       c.Icon(),
			Name:       c.String(),
			Amount:     Amount(current.Amounts.Get(c), opts.Currency),
			Percentage: Percent(current.Percentages.Get(c)),
		})
	}
	for _, s := range snapshots[1:] {
		r.History = append(r.History, row(s, opts.Currency))
	}
	return r, nil
}

// Markdown renders snapshots as a markdown document.
func Markdown(snapshots []bilan.Snapshot, opts Options) (string, error) {
	r, err := Build(snapshots, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, r); err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}

// HTML renders snapshots as a standalone HTML page.
func HTML(snapshots []bilan.Snapshot, opts Options) (string, error) {
	md, err := Markdown(snapshots, opts)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("converting report to HTML: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(title), body.String()), nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Amount formats minor units with the symbol and separators of currency.
func Amount(minor int64, currency string) string {
	return money.New(minor, currency).Display()
}

// Percent rounds p to two decimals, e.g. 12.345 as "12.35%".
func Percent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(2) + "%"
}

// DisplayDate shows the calendar day of a stored date, or the stored string
// itself when it cannot be parsed.
func DisplayDate(date string) string {
	t, err := bilan.ParseDate(date)
	if err != nil {
		return date
	}
	return t.UTC().Format("2006-01-02")
}

func row(s bilan.Snapshot, currency string) Row {
	return Row{
		Date:        DisplayDate(s.Date),
		Net:         Amount(s.Wealth.Net, currency),
		Gross:       Amount(s.Wealth.Gross, currency),
		Liabilities: Amount(s.Wealth.Liabilities, currency),
		DebtRatio:   Percent(s.Wealth.DebtRatio),
	}
}
