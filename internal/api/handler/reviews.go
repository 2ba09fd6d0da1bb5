package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/reviewing"
)

// ListReviews grava as avaliações de exemplo no primeiro acesso
func ListReviews(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		reviews, err := service.ListReviews(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar avaliações")
			return
		}

		writeJSON(w, r, http.StatusOK, reviews)
	}
}

func CreateReview(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreateReviewRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		review, err := service.CreateReview(r.Context(), uid, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar avaliação")
			return
		}

		writeJSON(w, r, http.StatusCreated, review)
	}
}

func GenerateReviewResponse(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateReviewResponse")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		response, err := service.GenerateResponse(r.Context(), uid, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar resposta")
			return
		}

		writeJSON(w, r, http.StatusCreated, response)
	}
}

func ApproveReviewResponse(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.UpdateResponseRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		response, err := service.ApproveResponse(r.Context(), uid, pathParam(r, "id"), req.Response)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao aprovar resposta")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func SendReviewResponse(service reviewing.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		response, err := service.SendResponse(r.Context(), uid, pathParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao enviar resposta")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}
