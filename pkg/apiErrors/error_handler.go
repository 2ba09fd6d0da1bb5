package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos devolvidos no campo "code" das respostas de erro. Os valores fazem
// parte do contrato com o front-end e não mudam quando um código deixa de ser usado.
const (
	ErrInvalidCredentials = "AUTH_001" // Email ou senha incorretos
	ErrUserNotFound       = "AUTH_003" // Usuário do token ou do login não existe
	ErrInvalidToken       = "AUTH_006" // Token ausente, malformado ou com assinatura inválida
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrUserAlreadyExists  = "AUTH_009" // Email já cadastrado

	ErrInvalidRequest      = "VAL_001" // Corpo ilegível ou parâmetro fora do permitido
	ErrMissingRequiredData = "VAL_002" // Campo obrigatório vazio
	ErrInvalidFormat       = "VAL_003" // Valor fora do domínio aceito (nota, canal, status, email)
	ErrInvalidStatus       = "VAL_004" // Transição de status proibida, como reenviar uma resposta

	ErrResourceNotFound = "RES_001" // Post, promoção, campanha, avaliação ou resposta de outro usuário ou inexistente

	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
)

var httpStatusByCode = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrUserNotFound:        http.StatusNotFound,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidStatus:       http.StatusUnprocessableEntity,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError é o corpo JSON de toda resposta de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// HTTPStatus devolve o status associado ao código; códigos desconhecidos são 500
func HTTPStatus(code string) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(code))
	json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
