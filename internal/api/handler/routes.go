package handler

import (
	"net/http"

	"github.com/vfg2006/business-copilot-api/internal/api/handler/router"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/badging"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reporting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics publica o handler do Prometheus em /metrics
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodPut,
			Handler: UpdateMe(service),
		},
	}
}

func Dashboard(service insighting.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Posts(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts",
			Method:  http.MethodGet,
			Handler: ListPosts(service),
		},
		{
			Path:    "/v1/posts/generate",
			Method:  http.MethodPost,
			Handler: GeneratePost(service),
		},
		{
			Path:    "/v1/posts/:id",
			Method:  http.MethodPut,
			Handler: UpdatePost(service),
		},
		{
			Path:    "/v1/posts/:id/status",
			Method:  http.MethodPut,
			Handler: UpdatePostStatus(service),
		},
	}
}

func Promotions(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/promotions",
			Method:  http.MethodGet,
			Handler: ListPromotions(service),
		},
		{
			Path:    "/v1/promotions",
			Method:  http.MethodPost,
			Handler: CreatePromotion(service),
		},
		{
			Path:    "/v1/promotions/:id/activate",
			Method:  http.MethodPut,
			Handler: ActivatePromotion(service),
		},
	}
}

func Campaigns(service publishing.Publisher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/activate",
			Method:  http.MethodPut,
			Handler: ActivateCampaign(service),
		},
	}
}

func Reviews(service reviewing.ReviewService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reviews",
			Method:  http.MethodGet,
			Handler: ListReviews(service),
		},
		{
			Path:    "/v1/reviews",
			Method:  http.MethodPost,
			Handler: CreateReview(service),
		},
		{
			Path:    "/v1/reviews/:id/response",
			Method:  http.MethodPost,
			Handler: GenerateReviewResponse(service),
		},
		{
			Path:    "/v1/reviews/:id/response",
			Method:  http.MethodPut,
			Handler: ApproveReviewResponse(service),
		},
		{
			Path:    "/v1/reviews/:id/response/send",
			Method:  http.MethodPost,
			Handler: SendReviewResponse(service),
		},
	}
}

func Clients(service clienting.ClientService, clock utils.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/v1/clients/export",
			Method:  http.MethodGet,
			Handler: ExportClients(service, clock),
		},
		{
			Path:    "/v1/clients/newsletter",
			Method:  http.MethodGet,
			Handler: PreviewNewsletter(service),
		},
	}
}

func Reports(service reporting.ReportService, clock utils.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListReports(service),
		},
		{
			Path:    "/v1/reports/generate",
			Method:  http.MethodPost,
			Handler: GenerateReport(service, clock),
		},
	}
}

func Badges(service badging.BadgeService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/badges",
			Method:  http.MethodGet,
			Handler: ListBadges(service),
		},
		{
			Path:    "/v1/badges/evaluate",
			Method:  http.MethodPost,
			Handler: EvaluateBadges(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
