package main

import (
	"fmt"
	"strings"
	"text/template"
	"time"
	"wealthtrack/internal/domain"
)

const analysisMarkdownTemplate = `# Portfolio Analysis {{ .Range }}

{{ date .StartDate }} to {{ date .EndDate }}

| Metric | Value |
|:---|---:|
| Total Return | {{ usd .TotalReturn.Value }} ({{ pct .TotalReturn.Percent }}) |
| Period Return | {{ usd .PeriodReturn.Value }} ({{ pct .PeriodReturn.Percent }}) |
| Max Drawdown | {{ pct .MaxDrawdown.Percent }}{{ if .MaxDrawdown.Date }} on {{ date .MaxDrawdown.Date }}{{ end }} |
| Sharpe Ratio | {{ printf "%.2f" .SharpeRatio }} |
| Volatility | {{ pct .Volatility }} |
{{- if .BestDay }}
| Best Day | {{ date .BestDay.Date }} ({{ pct .BestDay.Percent }}) |
{{- end }}
{{- if .WorstDay }}
| Worst Day | {{ date .WorstDay.Date }} ({{ pct .WorstDay.Percent }}) |
{{- end }}
| Longest Win Streak | {{ .LongestWinStreak }} days |
| Longest Loss Streak | {{ .LongestLossStreak }} days |

{{- if .AssetPerformance }}

## Assets

| Symbol | Name | Start | End | Change |
|:---|:---|---:|---:|---:|
{{- range .AssetPerformance }}
| {{ .Symbol }} | {{ .Name }} | {{ .StartPrice.String }} | {{ .EndPrice.String }} | {{ pct .Percent }} |
{{- end }}
{{- end -}}

{{- if .MonthlyPnL }}

## Monthly P&L

| Month | P&L |
|:---|---:|
{{- range .MonthlyPnL }}
| {{ .Month }} | {{ usd .Value }} |
{{- end }}
{{- end }}
`

var analysisTemplate = template.Must(template.New("analysis").Funcs(template.FuncMap{
	"usd": func(v float64) string {
		return domain.NewMoneyFromFloat(v, domain.USD).String()
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.2f%%", v)
	},
	"date": func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return t.Format(time.DateOnly)
		case *time.Time:
			if t == nil {
				return ""
			}
			return t.Format(time.DateOnly)
		}
		return fmt.Sprint(v)
	},
}).Parse(analysisMarkdownTemplate))

// RenderAnalysis formats the analysis as a markdown report.
func RenderAnalysis(a *domain.PortfolioAnalysis) (string, error) {
	var b strings.Builder
	if err := analysisTemplate.Execute(&b, a); err != nil {
		return "", fmt.Errorf("failed to render analysis: %w", err)
	}
	return b.String(), nil
}
