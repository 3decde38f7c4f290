// Package handlers contém os handlers HTTP da aplicação
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/magnani/brtools/internal/domain"
	"github.com/magnani/brtools/internal/tools"
)

// maxBodySize limita o corpo aceito em POST /api/tools/{name}
const maxBodySize = 1 << 20

// Dispatcher é o que os handlers precisam da camada de ferramentas
type Dispatcher interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) tools.Response
}

// ToolsHandler expõe as ferramentas via HTTP
type ToolsHandler struct {
	dispatcher Dispatcher
	log        *zap.Logger
}

// NewToolsHandler cria um novo handler de ferramentas
func NewToolsHandler(dispatcher Dispatcher, log *zap.Logger) *ToolsHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ToolsHandler{dispatcher: dispatcher, log: log}
}

// Register registra as rotas no mux
func (h *ToolsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", HealthCheck)
	mux.HandleFunc("GET /api/health", HealthCheck)
	mux.HandleFunc("GET /api/tools", h.ListTools)
	mux.HandleFunc("POST /api/tools/{name}", h.CallTool)
}

// ListTools lista as ferramentas e seus schemas
// Endpoint: GET /api/tools
func (h *ToolsHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools": h.dispatcher.Definitions(),
	})
}

// CallTool executa uma ferramenta. O corpo é o objeto de argumentos.
// Endpoint: POST /api/tools/{name}
func (h *ToolsHandler) CallTool(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := r.PathValue("name")

	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)
	log := h.log.With(zap.String("request_id", requestID), zap.String("tool", name))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		log.Warn("erro ao ler corpo da requisição", zap.Error(err))
		writeJSON(w, http.StatusRequestEntityTooLarge, &tools.Failure{
			Error:   true,
			Kind:    domain.KindInvalidFormat,
			Message: "corpo da requisição inválido ou grande demais",
		})
		return
	}
	defer r.Body.Close()

	resp := h.dispatcher.Call(r.Context(), name, body)
	status := StatusFor(resp)

	log.Info("chamada de ferramenta",
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)
	writeJSON(w, status, resp)
}

// StatusFor traduz a resposta da ferramenta em status HTTP
func StatusFor(resp tools.Response) int {
	if !resp.IsError() {
		return http.StatusOK
	}

	switch resp.Failure.Kind {
	case domain.KindUnknownTool, domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindLookupFailed:
		return http.StatusBadGateway
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// HealthCheck endpoint para verificar se o servidor está funcionando
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "brtools-api",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
