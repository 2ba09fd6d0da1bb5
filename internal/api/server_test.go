package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/business-copilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/business-copilot-api/internal/config"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/internal/usecases/generating"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/business-copilot-api/pkg/log"
	"github.com/vfg2006/business-copilot-api/pkg/metrics"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type testServer struct {
	handler http.Handler
	users   *mocks.MockUserRepository
	clients *mocks.MockClientRepository
	posts   *mocks.MockPostRepository
}

func newTestServer(t *testing.T) testServer {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	ts := testServer{
		users:   mocks.NewMockUserRepository(ctrl),
		clients: mocks.NewMockClientRepository(ctrl),
		posts:   mocks.NewMockPostRepository(ctrl),
	}

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:   config.Auth{SecretKey: "segredo", TokenTTL: time.Hour},
	}
	clock := utils.FixedClock(testNow)

	services := Services{
		Authenticator: authenticating.NewService(ts.users, cfg, clock),
		Clients:       clienting.NewService(ts.clients, ts.users, nil, clock),
		Publisher: publishing.NewService(ts.users, ts.posts, nil, nil,
			generating.NewService(clock), nil, clock, nil),
		Clock: clock,
	}

	ts.handler = NewHandler(cfg, services, metrics.NewCollector("copilot_test"))
	return ts
}

func (ts testServer) login(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	ts.users.EXPECT().GetByEmail(gomock.Any(), "contact@bistro.fr").Return(&domain.User{
		ID:           "user-1",
		Email:        "contact@bistro.fr",
		PasswordHash: string(hash),
		BusinessName: "Le Petit Bistro",
	}, nil)

	rec := ts.do(http.MethodPost, "/v1/login", "", `{"email":"contact@bistro.fr","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func (ts testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestServer_RotasPublicas(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)

	rec = ts.do(http.MethodGet, "/v1/posts", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
}

func TestServer_LoginComSenhaErrada(t *testing.T) {
	ts := newTestServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	ts.users.EXPECT().GetByEmail(gomock.Any(), "contact@bistro.fr").
		Return(&domain.User{ID: "user-1", PasswordHash: string(hash)}, nil)

	rec := ts.do(http.MethodPost, "/v1/login", "", `{"email":"contact@bistro.fr","password":"errada"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
}

func TestServer_ExportaClientesEmCSV(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	ts.clients.EXPECT().ListByUser(gomock.Any(), "user-1").Return([]*domain.Client{
		{Name: "Marie Dupont", Email: "marie@exemple.fr", CreatedAt: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
	}, nil)

	rec := ts.do(http.MethodGet, "/v1/clients/export", token, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="clients_2024-06-01.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Nom,Email,Date d'ajout\nMarie Dupont,marie@exemple.fr,20/05/2024\n", rec.Body.String())
}

func TestServer_PreviaDaNewsletter(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	ts.users.EXPECT().GetByID(gomock.Any(), "user-1").Return(&domain.User{
		ID:           "user-1",
		BusinessName: "Le Petit Bistro",
		Sector:       domain.SectorRestaurant,
		Tone:         domain.ToneFriendly,
	}, nil)
	ts.clients.EXPECT().CountByUser(gomock.Any(), "user-1").Return(2, nil)

	rec := ts.do(http.MethodGet, "/v1/clients/newsletter", token, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var newsletter domain.Newsletter
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &newsletter))
	assert.Equal(t, "Les nouvelles de Le Petit Bistro - juin", newsletter.Subject)
	assert.Equal(t, 2, newsletter.Recipients)
	assert.True(t, newsletter.NextSendDate.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
}

func TestServer_ErrosDeValidacao(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Status de post desconhecido",
			method:         http.MethodPut,
			path:           "/v1/posts/p1/status",
			body:           `{"status":"archived"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Corpo inválido",
			method:         http.MethodPost,
			path:           "/v1/clients",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "Cliente sem nome",
			method:         http.MethodPost,
			path:           "/v1/clients",
			body:           `{"email":"a@b.fr"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Cron desconhecida",
			method:         http.MethodPost,
			path:           "/v1/cron/meta/run",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(tt.method, tt.path, token, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestServer_Metricas(t *testing.T) {
	ts := newTestServer(t)

	ts.do(http.MethodGet, "/healthcheck", "", "")
	rec := ts.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `copilot_test_http_requests_total{endpoint="/healthcheck",method="GET",status="200"} 1`)
}

func TestServer_Preflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/posts", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
