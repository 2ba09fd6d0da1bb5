package domain

import "time"

// ReportMetrics são as métricas agregadas de um mês
type ReportMetrics struct {
	Views           int     `json:"views"`
	ReviewsReceived int     `json:"reviews_received"`
	ReviewsAnswered int     `json:"reviews_answered"`
	PostsPublished  int     `json:"posts_published"`
	AvgRating       float64 `json:"avg_rating"`
	ClientsAdded    int     `json:"clients_added"`
}

// ReportContent é o texto gerado para o relatório
type ReportContent struct {
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

type MonthlyReport struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Month           string        `json:"month"` // Formato yyyy-mm
	Metrics         ReportMetrics `json:"metrics"`
	Summary         string        `json:"summary"`
	Recommendations []string      `json:"recommendations"`
	HTMLContent     string        `json:"html_content,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FrenchMonth devolve o nome do mês em francês, em minúsculas
func FrenchMonth(month time.Month) string {
	return frenchMonths[month-1]
}

// ReportMonth formata a data no padrão yyyy-mm usado pelos relatórios
func ReportMonth(date time.Time) string {
	return date.Format("2006-01")
}

// MonthBounds devolve o primeiro instante do mês e o primeiro instante do mês seguinte
func MonthBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 1, 0)
}
