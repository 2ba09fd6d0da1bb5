package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/vfg2006/business-copilot-api/internal/domain"
)

// MonthLabel formata o mês como "mars 2024"
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", domain.FrenchMonth(date.Month()), date.Year())
}

const reportTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #1f2937;">Rapport mensuel - {{.MonthLabel}}</h1>
  <h2 style="color: #4b5563;">Résumé</h2>
  <p style="color: #6b7280; line-height: 1.6;">{{.Summary}}</p>
  <h2 style="color: #4b5563;">Métriques clés</h2>
  <ul style="color: #6b7280;">
    <li>Vues : {{.Metrics.Views}}</li>
    <li>Avis reçus : {{.Metrics.ReviewsReceived}}</li>
    <li>Avis répondus : {{.Metrics.ReviewsAnswered}}</li>
    <li>Posts publiés : {{.Metrics.PostsPublished}}</li>
    <li>Note moyenne : {{printf "%.1f" .Metrics.AvgRating}}/5</li>
    <li>Nouveaux clients : {{.Metrics.ClientsAdded}}</li>
  </ul>
  <h2 style="color: #4b5563;">Recommandations</h2>
  <ul style="color: #6b7280;">
    {{- range .Recommendations}}
    <li>{{.}}</li>
    {{- end}}
  </ul>
</div>
`

var reportHTML = template.Must(template.New("monthly_report").Parse(reportTemplate))

type reportData struct {
	MonthLabel      string
	Summary         string
	Metrics         domain.ReportMetrics
	Recommendations []string
}

// renderReport escapa o texto do usuário (nome do negócio no resumo)
func renderReport(month time.Time, metrics domain.ReportMetrics, content domain.ReportContent) (string, error) {
	var buf bytes.Buffer
	err := reportHTML.Execute(&buf, reportData{
		MonthLabel:      MonthLabel(month),
		Summary:         content.Summary,
		Metrics:         metrics,
		Recommendations: content.Recommendations,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderReport, err)
	}

	return buf.String(), nil
}
