package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Credenciais inválidas", code: ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{name: "Recurso não encontrado", code: ErrResourceNotFound, expectedStatus: http.StatusNotFound},
		{name: "Email já cadastrado", code: ErrUserAlreadyExists, expectedStatus: http.StatusBadRequest},
		{name: "Status inválido", code: ErrInvalidStatus, expectedStatus: http.StatusUnprocessableEntity},
		{name: "Código desconhecido vira erro interno", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

// Todo código declarado precisa de um status próprio; nenhum deve cair no 500 padrão por esquecimento
func TestHTTPStatus_TodosOsCodigosMapeados(t *testing.T) {
	declared := []string{
		ErrInvalidCredentials, ErrUserNotFound, ErrInvalidToken, ErrExpiredToken, ErrUserAlreadyExists,
		ErrInvalidRequest, ErrMissingRequiredData, ErrInvalidFormat, ErrInvalidStatus,
		ErrResourceNotFound, ErrInternalServer, ErrDatabaseOperation,
	}

	assert.Len(t, httpStatusByCode, len(declared))
	for _, code := range declared {
		_, ok := httpStatusByCode[code]
		assert.True(t, ok, code)
	}
}
