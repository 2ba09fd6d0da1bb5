package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/publishing"
	"github.com/vfg2006/business-copilot-api/pkg/apiErrors"
)

func ListPosts(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		posts, err := service.ListPosts(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar posts")
			return
		}

		writeJSON(w, r, http.StatusOK, posts)
	}
}

// GeneratePost aceita corpo vazio; sem tema o título segue a estação
func GeneratePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePost")

		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.GeneratePostRequest
		if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
			return
		}
		if req.Theme != nil && strings.TrimSpace(*req.Theme) == "" {
			req.Theme = nil
		}

		post, err := service.GeneratePost(r.Context(), uid, req.Theme)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar post")
			return
		}

		writeJSON(w, r, http.StatusCreated, post)
	}
}

func UpdatePost(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.UpdatePostRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		post, err := service.UpdatePostContent(r.Context(), uid, pathParam(r, "id"), req.Content)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar post")
			return
		}

		writeJSON(w, r, http.StatusOK, post)
	}
}

func UpdatePostStatus(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.UpdatePostStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if req.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Status é obrigatório", nil)
			return
		}

		post, err := service.UpdatePostStatus(r.Context(), uid, pathParam(r, "id"), req.Status)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar status do post")
			return
		}

		writeJSON(w, r, http.StatusOK, post)
	}
}
