// Command formflow-server is a demo server that renders a schema-driven form,
// accepts submissions through the controller's submit cycle, and shows the
// active-link navigation bar. It exists to exercise the library end to end;
// submissions are logged, not persisted.
package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	sloghttp "github.com/samber/slog-http"

	"github.com/goliatone/go-formflow/pkg/form"
	"github.com/goliatone/go-formflow/pkg/nav"
	"github.com/goliatone/go-formflow/pkg/render"
	"github.com/goliatone/go-formflow/pkg/renderers/vanilla"
	"github.com/goliatone/go-formflow/pkg/schema"
)

type config struct {
	Addr          string `env:"FORMFLOW_ADDR" envDefault:":8080"`
	SchemaPath    string `env:"FORMFLOW_SCHEMA"`
	SessionSecret string `env:"FORMFLOW_SESSION_SECRET" envDefault:"formflow-dev-secret"`
}

var submissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "formflow_submissions_total",
	Help: "Number of form submissions accepted by the demo server.",
})

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}

	doc, err := loadDocument(cfg.SchemaPath)
	if err != nil {
		logger.Error("load schema", "error", err)
		os.Exit(1)
	}

	renderer, err := vanilla.New()
	if err != nil {
		logger.Error("configure renderer", "error", err)
		os.Exit(1)
	}

	srv := &server{
		logger:   logger,
		doc:      doc,
		renderer: renderer,
		store:    sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		navbar: nav.NewBar([]nav.Link{
			{Label: "Home", Href: "/", Exact: true},
			{Label: "Form", Href: "/form"},
			{Label: "Metrics", Href: "/metrics"},
		}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleHome)
	mux.HandleFunc("/form", srv.handleForm)
	mux.Handle("/metrics", promhttp.Handler())

	handler := sloghttp.New(logger)(mux)

	logger.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

type server struct {
	logger   *slog.Logger
	doc      schema.Document
	renderer *vanilla.Renderer
	store    *sessions.CookieStore
	navbar   *nav.Bar
}

func (s *server) newController() *form.Controller {
	return form.New(s.doc.Fields,
		form.WithValidator(form.Required(s.doc.Fields)),
		form.WithResetOnSubmit(true),
	)
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	content := `<p>Schema-driven form demo. Head over to the form page to try it.</p>`
	s.writePage(w, r, "", content)
}

func (s *server) handleForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderForm(w, r, s.newController(), http.StatusOK)

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form payload", http.StatusBadRequest)
			return
		}

		controller := s.newController()
		controller.ApplyForm(r.PostForm)

		err := controller.Submit(r.Context(), func(_ context.Context, values form.Values) error {
			id := xid.New()
			s.logger.Info("submission accepted", "id", id.String(), "values", values)
			submissionsTotal.Inc()
			return nil
		})
		switch {
		case errors.Is(err, form.ErrValidationFailed):
			s.renderForm(w, r, controller, http.StatusUnprocessableEntity)
		case err != nil:
			s.logger.Error("submission failed", "error", err)
			http.Error(w, "submission failed", http.StatusInternalServerError)
		default:
			session, _ := s.store.Get(r, "formflow")
			session.AddFlash("Submission received, thank you.")
			_ = session.Save(r, w)
			http.Redirect(w, r, "/form", http.StatusSeeOther)
		}

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *server) renderForm(w http.ResponseWriter, r *http.Request, controller *form.Controller, status int) {
	markup, err := s.renderer.Render(r.Context(), controller, render.Options{
		Action:      "/form",
		Method:      "POST",
		Title:       s.doc.Title,
		Description: s.doc.Description,
	})
	if err != nil {
		s.logger.Error("render form", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	flash := s.takeFlash(w, r)
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.WriteHeader(status)
	s.writeShell(w, r.URL.Path, flash, string(markup))
}

func (s *server) writePage(w http.ResponseWriter, r *http.Request, flash, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.writeShell(w, r.URL.Path, flash, content)
}

func (s *server) writeShell(w http.ResponseWriter, currentPath, flash, content string) {
	var page strings.Builder
	page.WriteString("<!doctype html>\n<html>\n<head><title>formflow demo</title></head>\n<body>\n")
	page.WriteString(s.navbar.Render(currentPath))
	if flash != "" {
		page.WriteString(`<p class="formflow-flash">`)
		page.WriteString(html.EscapeString(flash))
		page.WriteString("</p>\n")
	}
	page.WriteString(content)
	page.WriteString("\n</body>\n</html>\n")
	_, _ = fmt.Fprint(w, page.String())
}

func (s *server) takeFlash(w http.ResponseWriter, r *http.Request) string {
	session, err := s.store.Get(r, "formflow")
	if err != nil {
		return ""
	}
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	_ = session.Save(r, w)
	if msg, ok := flashes[0].(string); ok {
		return msg
	}
	return ""
}

func loadDocument(path string) (schema.Document, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return schema.Document{}, err
		}
		return schema.Parse(data)
	}
	return demoDocument(), nil
}

func demoDocument() schema.Document {
	seatsMin := float64(1)
	seatsMax := float64(50)
	return schema.Document{
		Title:       "Newsletter signup",
		Description: "A small form exercising every field variant.",
		Fields: schema.Schema{
			{Type: schema.FieldTypeText, Name: "name", Label: "Name", Required: true, MaxLength: 80},
			{Type: schema.FieldTypeEmail, Name: "email", Label: "Email", Required: true},
			{Type: schema.FieldTypeCheckbox, Name: "subscribe", Label: "Subscribe to the newsletter"},
			{
				Type: schema.FieldTypeSelect, Name: "plan", Label: "Plan",
				OptionPlaceholder: "Pick a plan",
				Options: []schema.Option{
					{Value: "free", Label: "Free"},
					{Value: "pro", Label: "Pro"},
				},
				VisibleWhen: func(values map[string]any) bool {
					subscribed, _ := values["subscribe"].(bool)
					return subscribed
				},
			},
			{
				Type: schema.FieldTypeMultiSelect, Name: "topics", Label: "Topics",
				Options: []schema.Option{
					{Value: "go", Label: "Go"},
					{Value: "web", Label: "Web"},
					{Value: "infra", Label: "Infra"},
				},
			},
			{Type: schema.FieldTypeNumber, Name: "seats", Label: "Seats", Min: &seatsMin, Max: &seatsMax},
			{Type: schema.FieldTypeTextarea, Name: "notes", Label: "Notes", HelpText: "Anything else we should know."},
		},
	}
}
