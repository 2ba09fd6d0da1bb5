// Package generating produz os textos de marketing a partir do perfil do negócio.
// Todas as operações são determinísticas e nunca falham: setor ou tom
// desconhecidos caem nos templates padrão.
package generating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

const (
	excellentRatingThreshold = 4.5
	goodRatingThreshold      = 4.0
	veryActivePostsThreshold = 8
	regularPostsThreshold    = 4
	lowViewsThreshold        = 300
)

type Generator interface {
	GeneratePost(profile domain.Profile, theme *string) domain.PostDraft
	GenerateReviewResponse(review *domain.Review, profile domain.Profile) string
	GeneratePromotion(profile domain.Profile, request domain.PromotionRequest) domain.PromotionDraft
	GenerateMonthlyReport(profile domain.Profile, metrics domain.ReportMetrics) domain.ReportContent
	GenerateCampaign(profile domain.Profile, announcement string) domain.CampaignDraft
	GenerateNewsletter(profile domain.Profile, clientCount int) domain.Newsletter
}

type Service struct {
	clock utils.Clock
}

func NewService(clock utils.Clock) Generator {
	if clock == nil {
		clock = utils.SystemClock
	}

	return &Service{
		clock: clock,
	}
}

// GeneratePost monta o post a partir da estação corrente, do setor e do tom.
// Um tema não vazio substitui o título sugerido.
func (s *Service) GeneratePost(profile domain.Profile, theme *string) domain.PostDraft {
	sector := sectorTemplateFor(profile.Sector)
	tone := toneTemplateFor(profile.Tone)
	season := domain.SeasonOf(int(s.clock().Month()))

	title := sector.title(season)
	if theme != nil && strings.TrimSpace(*theme) != "" {
		title = strings.TrimSpace(*theme)
	}

	return domain.PostDraft{
		Title:            title,
		Content:          tone.opening + " " + sector.body,
		VisualSuggestion: sector.visual,
		Channel:          domain.ChannelBoth,
	}
}

// GenerateReviewResponse considera positiva toda avaliação com nota >= 4
func (s *Service) GenerateReviewResponse(review *domain.Review, profile domain.Profile) string {
	tone := toneTemplateFor(profile.Tone)

	if review != nil && review.IsPositive() {
		return fmt.Sprintf(tone.positiveReview, profile.BusinessName)
	}

	return tone.negativeReview
}

func (s *Service) GeneratePromotion(profile domain.Profile, request domain.PromotionRequest) domain.PromotionDraft {
	tone := toneTemplateFor(profile.Tone)
	discount := strings.TrimSpace(request.Discount)
	description := strings.TrimSpace(request.Description)

	google := fmt.Sprintf("%s %s %s. %s", tone.promoPrefix, discount, description, tone.promoSuffix)
	facebook := fmt.Sprintf("%s %s", google, promotionHashtags(profile.Sector))

	return domain.PromotionDraft{
		Title:       promotionTitle(profile.BusinessName, discount),
		Description: description,
		Discount:    discount,
		Posts: domain.ChannelPosts{
			Google:   google,
			Facebook: facebook,
		},
		VisualSuggestion: promotionVisual,
		Status:           domain.PromotionStatusDraft,
	}
}

func promotionTitle(businessName, discount string) string {
	if businessName == "" {
		return "Promo " + discount
	}
	return fmt.Sprintf("Promo %s chez %s", discount, businessName)
}

// promotionHashtags usa o setor informado em minúsculas e sem espaços
func promotionHashtags(sector domain.Sector) string {
	tag := strings.ToLower(strings.Join(strings.Fields(string(sector)), ""))
	if tag == "" {
		tag = string(sector.Normalize())
	}
	return "#promo #" + tag
}

// GenerateMonthlyReport classifica o desempenho e o ritmo de publicação e
// monta as recomendações na ordem fixa das verificações. A lista nunca é vazia.
func (s *Service) GenerateMonthlyReport(profile domain.Profile, metrics domain.ReportMetrics) domain.ReportContent {
	tone := toneTemplateFor(profile.Tone)

	summary := fmt.Sprintf(
		"%s Votre performance est %s avec une note moyenne de %.1f/5 sur %d avis reçus (%d répondus). "+
			"Votre rythme de publication est %s avec %d posts publiés. "+
			"Vous avez totalisé %d vues et accueilli %d nouveaux clients.",
		fmt.Sprintf(tone.reportGreeting, profile.BusinessName),
		performanceOf(metrics.AvgRating),
		metrics.AvgRating,
		metrics.ReviewsReceived,
		metrics.ReviewsAnswered,
		cadenceOf(metrics.PostsPublished),
		metrics.PostsPublished,
		metrics.Views,
		metrics.ClientsAdded,
	)

	return domain.ReportContent{
		Summary:         summary,
		Recommendations: recommendationsFor(metrics),
	}
}

func performanceOf(avgRating float64) string {
	switch {
	case avgRating >= excellentRatingThreshold:
		return performanceExcellent
	case avgRating >= goodRatingThreshold:
		return performanceGood
	default:
		return performanceLow
	}
}

func cadenceOf(postsPublished int) string {
	switch {
	case postsPublished >= veryActivePostsThreshold:
		return cadenceVeryActive
	case postsPublished >= regularPostsThreshold:
		return cadenceRegular
	default:
		return cadenceInsufficient
	}
}

func recommendationsFor(metrics domain.ReportMetrics) []string {
	recommendations := make([]string, 0, 4)

	if metrics.PostsPublished < regularPostsThreshold {
		recommendations = append(recommendations, RecommendationPostMore)
	}
	if metrics.ReviewsAnswered < metrics.ReviewsReceived {
		recommendations = append(recommendations, RecommendationAnswerReviews)
	}
	if metrics.AvgRating < excellentRatingThreshold {
		recommendations = append(recommendations, RecommendationAskReviews)
	}
	if metrics.Views < lowViewsThreshold {
		recommendations = append(recommendations, RecommendationBoostVisits)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, RecommendationKeepItUp)
	}

	return recommendations
}

// GenerateCampaign declina o anúncio em quatro formatos: Google, Facebook, story e banner
func (s *Service) GenerateCampaign(profile domain.Profile, announcement string) domain.CampaignDraft {
	tone := toneTemplateFor(profile.Tone)
	sector := sectorTemplateFor(profile.Sector)
	announcement = strings.TrimSpace(announcement)

	return domain.CampaignDraft{
		Title:       campaignTitle(announcement),
		Description: fmt.Sprintf("Campagne multicanal de %s : %s", profile.BusinessName, announcement),
		Posts: domain.CampaignPosts{
			Google: &domain.PostDraft{
				Title:            fmt.Sprintf("Actualité chez %s", profile.BusinessName),
				Content:          fmt.Sprintf("%s %s Rendez-vous chez %s !", tone.campaignIntro, announcement, profile.BusinessName),
				VisualSuggestion: sector.campaignVisual,
				Channel:          domain.ChannelGoogle,
			},
			Facebook: &domain.PostDraft{
				Title:            campaignTitle(announcement),
				Content:          fmt.Sprintf("%s %s %s", tone.campaignIntro, announcement, tone.facebookSignOff),
				VisualSuggestion: sector.campaignVisual,
				Channel:          domain.ChannelFacebook,
			},
			Story: &domain.StoryDraft{
				Content:          fmt.Sprintf("%s\n%s\n%s", tone.bannerHeadline, announcement, tone.storyCallToAct),
				VisualSuggestion: "Format vertical 9:16 avec le logo en haut",
			},
			Banner: &domain.BannerDraft{
				Title:   tone.bannerHeadline,
				Content: fmt.Sprintf("%s | %s", announcement, profile.BusinessName),
			},
		},
		Status: domain.CampaignStatusDraft,
	}
}

const maxCampaignTitleRunes = 60

func campaignTitle(announcement string) string {
	runes := []rune(announcement)
	if len(runes) <= maxCampaignTitleRunes {
		return announcement
	}
	return strings.TrimSpace(string(runes[:maxCampaignTitleRunes])) + "..."
}

// GenerateNewsletter monta a newsletter do mês corrente. O texto é o mesmo
// para todos os destinatários; clientCount só informa o alcance do envio.
func (s *Service) GenerateNewsletter(profile domain.Profile, clientCount int) domain.Newsletter {
	if clientCount < 0 {
		clientCount = 0
	}

	return domain.Newsletter{
		Subject:    fmt.Sprintf("Les nouvelles de %s - %s", profile.BusinessName, domain.FrenchMonth(s.clock().Month())),
		Content:    fmt.Sprintf(newsletterContent, profile.BusinessName, profile.BusinessName),
		Recipients: clientCount,
	}
}
