package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/conduit-lang/tsjslex/internal/diag"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run lexdiag as a minimal Language Server Protocol diagnostics server",
	Long: `serve speaks just enough LSP to re-lex an open document on every change
and publish its lexical diagnostics back to the client. It implements no
completion, hover, or go-to-definition: those belong to a real parser/
type checker this core does not include.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			logger = zap.NewNop()
		}
		defer logger.Sync()

		srv := newServer(logger)
		return srv.run(cmd.Context())
	},
}

type server struct {
	logger *zap.Logger
	conn   jsonrpc2.Conn
	client protocol.Client

	mu        sync.Mutex
	documents map[string][]byte
}

func newServer(logger *zap.Logger) *server {
	return &server{logger: logger, documents: make(map[string][]byte)}
}

func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := jsonrpc2.NewStream(stdrwc{})
	conn := jsonrpc2.NewConn(stream)
	s.conn = conn
	s.client = protocol.ClientDispatcher(conn, s.logger)

	conn.Go(ctx, s.handler(cancel))
	<-ctx.Done()
	return conn.Close()
}

func (s *server) handler(shutdown context.CancelFunc) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		s.logger.Debug("request", zap.String("method", req.Method()))

		switch req.Method() {
		case protocol.MethodInitialize:
			return reply(ctx, protocol.InitializeResult{
				Capabilities: protocol.ServerCapabilities{
					TextDocumentSync: protocol.TextDocumentSyncOptions{
						OpenClose: true,
						Change:    protocol.TextDocumentSyncKindFull,
					},
				},
				ServerInfo: &protocol.ServerInfo{Name: "lexdiag", Version: Version},
			}, nil)

		case protocol.MethodInitialized:
			return reply(ctx, nil, nil)

		case protocol.MethodShutdown:
			return reply(ctx, nil, nil)

		case protocol.MethodExit:
			err := reply(ctx, nil, nil)
			shutdown()
			return err

		case protocol.MethodTextDocumentDidOpen:
			var params protocol.DidOpenTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
			}
			s.setDocument(string(params.TextDocument.URI), []byte(params.TextDocument.Text))
			s.publishDiagnostics(ctx, string(params.TextDocument.URI))
			return reply(ctx, nil, nil)

		case protocol.MethodTextDocumentDidChange:
			var params protocol.DidChangeTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
			}
			if len(params.ContentChanges) == 0 {
				return reply(ctx, nil, nil)
			}
			text := params.ContentChanges[len(params.ContentChanges)-1].Text
			s.setDocument(string(params.TextDocument.URI), []byte(text))
			s.publishDiagnostics(ctx, string(params.TextDocument.URI))
			return reply(ctx, nil, nil)

		case protocol.MethodTextDocumentDidClose:
			var params protocol.DidCloseTextDocumentParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.InvalidParams, Message: err.Error()})
			}
			s.dropDocument(string(params.TextDocument.URI))
			return reply(ctx, nil, nil)

		default:
			return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
		}
	}
}

func (s *server) setDocument(docURI string, text []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[docURI] = text
}

func (s *server) dropDocument(docURI string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, docURI)
}

// publishDiagnostics re-lexes the document and publishes its diagnostics.
// Each publish batch is tagged with a UUID purely for log correlation: an
// LSP client may interleave open/change notifications faster than this
// server can re-lex, and the batch ID lets an operator match a logged
// publish to the specific document snapshot that produced it.
func (s *server) publishDiagnostics(ctx context.Context, docURI string) {
	s.mu.Lock()
	text := s.documents[docURI]
	s.mu.Unlock()

	batchID := uuid.New()
	result := tokenizeFile(text)

	s.logger.Info("publishing diagnostics",
		zap.String("uri", docURI),
		zap.String("batch", batchID.String()),
		zap.Int("count", len(result.Diagnostics)))

	lspDiagnostics := make([]protocol.Diagnostic, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		lspDiagnostics = append(lspDiagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(d.Line - 1), Character: uint32(d.Column - 1)},
				End:   protocol.Position{Line: uint32(d.Line - 1), Character: uint32(d.Column)},
			},
			Severity: convertSeverity(d.Severity),
			Code:     string(d.Code),
			Source:   "lexdiag",
			Message:  d.Message,
		})
	}

	params := &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Diagnostics: lspDiagnostics,
	}
	if err := s.client.PublishDiagnostics(ctx, params); err != nil {
		s.logger.Warn("failed to publish diagnostics", zap.Error(err))
	}
}

func convertSeverity(sev diag.Severity) protocol.DiagnosticSeverity {
	if sev == diag.SeverityWarning {
		return protocol.DiagnosticSeverityWarning
	}
	return protocol.DiagnosticSeverityError
}

// stdrwc adapts stdin/stdout to io.ReadWriteCloser for the JSON-RPC
// transport, the way an LSP server run as a subprocess always does.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

var _ io.ReadWriteCloser = stdrwc{}
