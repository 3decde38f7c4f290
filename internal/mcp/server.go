// Package mcp implementa um servidor MCP (Model Context Protocol) sobre stdio.
// Cada linha da entrada é uma mensagem JSON-RPC 2.0 e cada resposta é escrita
// em uma linha da saída.
package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/magnani/brtools/internal/tools"
)

const (
	serverName    = "brtools"
	serverVersion = "1.0.0"

	// maxMessageSize limita uma mensagem recebida
	maxMessageSize = 1 << 20
)

// Dispatcher é o que o servidor precisa da camada de ferramentas
type Dispatcher interface {
	Definitions() []tools.Definition
	Call(ctx context.Context, name string, args json.RawMessage) tools.Response
}

// Server atende o protocolo MCP para um único cliente
type Server struct {
	dispatcher Dispatcher
	log        *zap.Logger

	mu sync.Mutex // serializa escritas na saída
}

// NewServer cria um novo servidor MCP
func NewServer(dispatcher Dispatcher, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	sessionID := uuid.NewString()
	return &Server{
		dispatcher: dispatcher,
		log:        log.With(zap.String("session_id", sessionID)),
	}
}

// Run lê mensagens de in até EOF ou cancelamento do contexto
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	s.log.Info("servidor MCP iniciado")

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.HandleMessage(ctx, line)
		if resp == nil {
			continue
		}
		if err := s.send(out, resp); err != nil {
			return fmt.Errorf("erro ao escrever resposta: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("erro ao ler entrada: %w", err)
	}

	s.log.Info("servidor MCP encerrado")
	return nil
}

// HandleMessage processa uma mensagem e devolve a resposta, ou nil para notificações
func (s *Server) HandleMessage(ctx context.Context, message []byte) *Response {
	var req Request
	if err := json.Unmarshal(message, &req); err != nil {
		s.log.Warn("mensagem JSON-RPC inválida", zap.Error(err))
		return errorResponse(nil, CodeParseError, "Parse error")
	}
	if req.Method == "" {
		return errorResponse(req.ID, CodeInvalidRequest, "Invalid Request")
	}

	s.log.Debug("mensagem recebida", zap.String("method", req.Method))

	switch req.Method {
	case "initialize":
		return result(req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			ServerInfo:      ServerInfo{Name: serverName, Version: serverVersion},
			Capabilities:    ServerCapabilities{Tools: &ToolsCapability{}},
		})
	case "notifications/initialized", "notifications/cancelled":
		return nil
	case "ping":
		return result(req.ID, struct{}{})
	case "tools/list":
		return result(req.ID, ListToolsResult{Tools: s.dispatcher.Definitions()})
	case "tools/call":
		return s.handleCallTool(ctx, &req)
	}

	if req.IsNotification() {
		return nil
	}
	return errorResponse(req.ID, CodeMethodNotFound, "Method not found")
}

func (s *Server) handleCallTool(ctx context.Context, req *Request) *Response {
	var params CallToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return errorResponse(req.ID, CodeInvalidParams, "Invalid params")
	}

	resp := s.dispatcher.Call(ctx, params.Name, params.Arguments)

	text, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("erro ao serializar resultado", zap.String("tool", params.Name), zap.Error(err))
		text = []byte(fmt.Sprintf(`{"error":true,"kind":"Internal","message":%q}`, err.Error()))
		return result(req.ID, CallToolResult{Content: []ToolContent{{Type: "text", Text: string(text)}}, IsError: true})
	}

	return result(req.ID, CallToolResult{
		Content: []ToolContent{{Type: "text", Text: string(text)}},
		IsError: resp.IsError(),
	})
}

func (s *Server) send(w io.Writer, resp *Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func result(id json.RawMessage, value interface{}) *Response {
	return &Response{JSONRPC: "2.0", ID: nullID(id), Result: value}
}

func errorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{JSONRPC: "2.0", ID: nullID(id), Error: &RPCError{Code: code, Message: message}}
}

// nullID garante que o campo id seja emitido como null quando ausente
func nullID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
