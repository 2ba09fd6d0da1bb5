package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/vfg2006/business-copilot-api/internal/domain"
	"github.com/vfg2006/business-copilot-api/internal/usecases/clienting"
	"github.com/vfg2006/business-copilot-api/pkg/log"
	"github.com/vfg2006/business-copilot-api/pkg/utils"
)

func ListClients(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		clients, err := service.ListClients(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, clients)
	}
}

func CreateClient(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req domain.CreateClientRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		client, err := service.AddClient(r.Context(), uid, req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao adicionar cliente")
			return
		}

		writeJSON(w, r, http.StatusCreated, client)
	}
}

func PreviewNewsletter(service clienting.ClientService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		newsletter, err := service.PreviewNewsletter(r.Context(), uid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar newsletter")
			return
		}

		writeJSON(w, r, http.StatusOK, newsletter)
	}
}

// ExportClients gera o CSV inteiro antes de responder para que um erro ainda vire JSON
func ExportClients(service clienting.ClientService, clock utils.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := service.ExportCSV(r.Context(), uid, &buf); err != nil {
			writeServiceError(w, r, err, "Erro ao exportar clientes")
			return
		}

		filename := fmt.Sprintf("clients_%s.csv", clock().Format("2006-01-02"))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar CSV de clientes")
		}
	}
}
