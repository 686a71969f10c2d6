// Package http exposes the conversation core as a JSON API. It is one of
// the interchangeable transport collaborators: it translates request bodies
// into events, resolves templates through the catalog before dispatch, and
// renders records back as JSON.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/macizomedia/editorBot/internal/chat"
	"github.com/macizomedia/editorBot/internal/renderplan"
	"github.com/macizomedia/editorBot/pkg/domain"
	"github.com/macizomedia/editorBot/pkg/ports"
	"github.com/macizomedia/editorBot/pkg/session"
)

// Server handles the JSON API routes.
type Server struct {
	sessions *session.Manager
	bot      *chat.Bot
	catalog  ports.TemplateCatalog
}

// NewHandler builds the router. The prometheus gatherer backs /metrics; pass
// prometheus.DefaultGatherer in production.
func NewHandler(sessions *session.Manager, bot *chat.Bot, catalog ports.TemplateCatalog, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{sessions: sessions, bot: bot, catalog: catalog}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/templates", s.ListTemplates)
	r.Get("/templates/{id}", s.GetTemplate)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", s.GetSession)
		r.Delete("/", s.DeleteSession)
		r.Post("/events", s.PostEvent)
		r.Get("/plan", s.GetPlan)
	})

	return r
}

// eventRequest is the loose inbound event shape. Payload fields are decoded
// per event type.
type eventRequest struct {
	Type   string         `json:"type"`
	Text   string         `json:"text,omitempty"`
	ID     string         `json:"id,omitempty"`
	Source string         `json:"source,omitempty"`
	Config map[string]any `json:"config,omitempty"`
}

// PostEvent handles POST /sessions/{id}/events.
func (s *Server) PostEvent(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var body eventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Voice input runs the transcription/mediation chain inside the bot.
	if domain.EventKind(body.Type) == domain.KindVoiceReceived {
		reply, err := s.bot.HandleVoice(r.Context(), sessionID, body.Source)
		s.writeReply(w, reply, err)
		return
	}

	ev, err := s.decodeEvent(r, body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	reply, err := s.bot.Dispatch(r.Context(), sessionID, ev)
	s.writeReply(w, reply, err)
}

// decodeEvent maps the request onto the closed event union. Template
// selection resolves the template spec through the catalog here, so the
// machine only ever sees complete events.
func (s *Server) decodeEvent(r *http.Request, body eventRequest) (domain.Event, error) {
	switch domain.EventKind(body.Type) {
	case domain.KindTranscriptionComplete:
		return domain.TranscriptionComplete{Text: body.Text}, nil
	case domain.KindTextReceived:
		return domain.TextReceived{Text: body.Text}, nil
	case domain.KindCommandOk:
		return domain.CommandOk{}, nil
	case domain.KindCommandEditar:
		return domain.CommandEditar{}, nil
	case domain.KindCommandCancelar:
		return domain.CommandCancelar{}, nil
	case domain.KindCommandNext:
		return domain.CommandNext{}, nil
	case domain.KindTemplateSelected:
		spec, err := s.catalog.GetTemplate(r.Context(), body.ID)
		if err != nil {
			return nil, err
		}
		return domain.TemplateSelected{ID: body.ID, Spec: spec}, nil
	case domain.KindSoundtrackSelected:
		return domain.SoundtrackSelected{ID: body.ID, Source: body.Source}, nil
	case domain.KindAssetsConfigured:
		var cfg domain.AssetConfig
		if err := mapstructure.Decode(body.Config, &cfg); err != nil {
			return nil, fmt.Errorf("invalid asset config: %w", err)
		}
		return domain.AssetsConfigured{Config: cfg}, nil
	case domain.KindRenderApproved:
		return domain.RenderApproved{}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", body.Type)
	}
}

type replyResponse struct {
	Message string                     `json:"message,omitempty"`
	Record  *domain.ConversationRecord `json:"record,omitempty"`
}

func (s *Server) writeReply(w http.ResponseWriter, reply *chat.Reply, err error) {
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, replyResponse{Message: reply.Text, Record: reply.Record})
}

// writeError maps the core error taxonomy to status codes: invalid
// transitions are a client problem (409), collaborator failures are
// upstream problems (502), everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var invalidErr *domain.InvalidTransitionError
	var svcErr *domain.ExternalServiceError

	switch {
	case errors.As(err, &invalidErr):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "invalid_transition",
			"state": string(invalidErr.State),
			"event": string(invalidErr.Event),
		})
	case errors.As(err, &svcErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "external_service_error",
			"service": svcErr.Service,
			"detail":  svcErr.Error(),
		})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	rec, err := s.sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPlan handles GET /sessions/{id}/plan: the serialized document for the
// render engine. Refuses anything that has not reached a validated plan.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	rec, err := s.sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rec.RenderPlan == nil {
		http.Error(w, "no render plan generated for this session", http.StatusNotFound)
		return
	}

	doc, err := renderplan.Export(rec.RenderPlan)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

// ListTemplates handles GET /templates.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.catalog.ListTemplates(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": summaries})
}

// GetTemplate handles GET /templates/{id}.
func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	spec, err := s.catalog.GetTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("response encode error: %v\n", err)
	}
}
