package printing

import (
	"bytes"
	"embed"
	"html/template"
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/stonetrade/backend/internal/infrastructure/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	TemplateIntakeStatement = "intake_statement"
	TemplateBlockStatement  = "block_statement"
)

// TemplateEngine renders the statement templates with locale-aware number formatting.
type TemplateEngine struct {
	tmpl           *template.Template
	funcMap        template.FuncMap
	tag            language.Tag
	currencySymbol string
	company        string
	now            func() time.Time
}

// NewTemplateEngine parses the embedded templates
func NewTemplateEngine(cfg *config.PrintingConfig) (*TemplateEngine, error) {
	e := &TemplateEngine{
		tag:            language.Make(cfg.Locale),
		currencySymbol: cfg.CurrencySymbol,
		company:        cfg.CompanyName,
		now:            time.Now,
	}
	if e.tag == language.Und {
		e.tag = language.English
	}

	e.funcMap = template.FuncMap{
		"money":   e.formatMoney,
		"decimal": e.formatDecimal,
		"area":    func(d decimal.Decimal) string { return e.formatDecimal(d, 3) },
		"date":    formatDate,
		"title":   titleCase,
		"inc":     func(i int) int { return i + 1 },
		"upper":   strings.ToUpper,
	}

	tmpl, err := template.New("statements").Funcs(e.funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, NewRenderError(ErrCodeTemplateFailed, "failed to parse statement templates", err)
	}
	e.tmpl = tmpl
	return e, nil
}

// Company is the name printed in statement headers
func (e *TemplateEngine) Company() string {
	return e.company
}

// Render executes the named template
func (e *TemplateEngine) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to execute template "+name, err)
	}
	return buf.String(), nil
}

// GetFuncMap returns a copy of the template function map
func (e *TemplateEngine) GetFuncMap() template.FuncMap {
	funcMap := make(template.FuncMap, len(e.funcMap))
	maps.Copy(funcMap, e.funcMap)
	return funcMap
}

// formatMoney prints d with the currency symbol and two decimals, grouped for the locale.
func (e *TemplateEngine) formatMoney(d decimal.Decimal) string {
	s := e.formatDecimal(d.Abs(), 2)
	if d.IsNegative() {
		return "-" + e.currencySymbol + s
	}
	return e.currencySymbol + s
}

// formatDecimal prints d with exactly scale decimals.
// A message.Printer is not shared across goroutines, so one is made per call.
func (e *TemplateEngine) formatDecimal(d decimal.Decimal, scale int) string {
	p := message.NewPrinter(e.tag)
	return p.Sprint(number.Decimal(d.Round(int32(scale)).InexactFloat64(), number.Scale(scale)))
}

func formatDate(t any) string {
	switch v := t.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("02 Jan 2006")
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format("02 Jan 2006")
	default:
		return ""
	}
}

// titleCase turns "todi_raskat" into "Todi Raskat"
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
