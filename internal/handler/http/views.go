package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"runtime/debug"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed public
var publicFS embed.FS

// Page names.
const (
	pageHome          = "home"
	pagePrivacyPolicy = "privacy-policy"
	pageSignIn        = "signin"
	pageSignUp        = "signup"
	pageActivation    = "activation"
	pageCalendar      = "calendar"
	pageNotFound      = "404"
	pageError         = "error"
)

var pageNames = []string{
	pageHome, pagePrivacyPolicy, pageSignIn, pageSignUp,
	pageActivation, pageCalendar, pageNotFound, pageError,
}

// views holds one template set per page, each combining the layout with the
// page's "title" and "content" blocks.
type views struct {
	pages map[string]*template.Template
}

func parseViews() (*views, error) {
	funcs := template.FuncMap{
		"fieldErrors": func(flash *models.Flash, field string) []string {
			if flash == nil {
				return nil
			}
			return flash.FieldErrors[field]
		},
	}

	v := &views{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

func mustParseViews() *views {
	v, err := parseViews()
	if err != nil {
		panic(err)
	}
	return v
}

func publicFiles() http.FileSystem {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// pageData is the root value of every template. Data holds the page
// specific values.
type pageData struct {
	User            *models.Principal
	TodaysDate      int
	EnableAnalytics bool
	CSRFToken       string
	Flash           *models.Flash
	Data            any
}

// render executes page with the template globals of the request. The flash
// of the session is consumed here, so it is shown exactly once.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	log := logger.FromRequest(r)

	pd := pageData{
		TodaysDate:      h.now().Day(),
		EnableAnalytics: !h.dev,
		Data:            data,
	}
	if s := session.FromContext(r.Context()); s != nil {
		if principal, ok := s.Principal(); ok {
			pd.User = &principal
		}
		if flash, ok := s.PopFlash(); ok {
			pd.Flash = &flash
		}
		_, pd.CSRFToken = s.CSRF()
	}

	t, ok := h.views.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", pd); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// errorPage is the data of the 500 page. Error and Stack are only set in
// development.
type errorPage struct {
	TraceID string
	Error   string
	Stack   string
}

// serverError reports err and answers with the generic error page.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	h.reporter.Report(ctx, err, "request failed")

	data := errorPage{TraceID: utils.GetTraceIDFromContext(ctx)}
	if h.dev {
		data.Error = err.Error()
		data.Stack = string(debug.Stack())
	}

	h.render(w, r, http.StatusInternalServerError, pageError, data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, pageNotFound, nil)
}
