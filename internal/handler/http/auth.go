package http

import (
	"errors"
	"net/http"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/service"
	"github.com/dailydoit/dailydoit/internal/session"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/dailydoit/dailydoit/models"
	"github.com/go-chi/chi/v5"
)

// Messages shown to users. They never reveal whether an account exists.
const (
	msgIncorrectCredentials = "Incorrect email or password."
	msgActivationEmailed    = "A link to activate your account has been emailed to the address provided."
	msgGoogleFailed         = "Unable to sign in with Google."
	msgActivationExpired    = "This activation token has expired. A new activation link has been emailed to you."
)

// authPage is the data of the sign-in and sign-up pages.
type authPage struct {
	GoogleEnabled bool
}

// activationPage is the data of the activation result page.
type activationPage struct {
	Success bool
	Message string
}

func (h *Handler) authPage() authPage {
	return authPage{GoogleEnabled: h.services.FederatedAuthService.Enabled()}
}

func (h *Handler) signInPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.PrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, pageSignIn, h.authPage())
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	s := session.FromContext(ctx)

	creds := models.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	principal, err := h.services.AuthService.Authenticate(ctx, service.StrategyLocal, creds)
	if err != nil {
		if vErr, ok := validators.AsValidationError(err); ok {
			log.Debug().Err(err).Msg("invalid sign in input")
			s.SetFlash(models.Flash{Messages: vErr.Messages()})
			http.Redirect(w, r, "/signin", http.StatusFound)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info().Err(err).Msg("sign in failed")
			s.SetFlash(models.Flash{Messages: []string{msgIncorrectCredentials}})
			http.Redirect(w, r, "/signin", http.StatusFound)
			return
		}

		h.serverError(w, r, err)
		return
	}

	if err = h.bindPrincipal(s, &principal); err != nil {
		h.serverError(w, r, err)
		return
	}

	log.Info().Int64("user_id", principal.ID).Msg("user signed in")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) signUpPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageSignUp, h.authPage())
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	s := session.FromContext(ctx)

	creds := models.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	principal, err := h.services.AuthService.SignUp(ctx, creds)
	if err != nil {
		if vErr, ok := validators.AsValidationError(err); ok {
			log.Debug().Err(err).Msg("invalid sign up input")
			s.SetFlash(models.Flash{FieldErrors: vErr.Fields})
			http.Redirect(w, r, "/signup", http.StatusFound)
			return
		}
		if errors.Is(err, service.ErrSignUpConflict) {
			log.Info().Msg("sign up with registered email")
			s.SetFlash(models.Flash{FieldErrors: map[string][]string{
				validators.FieldEmail: {msgActivationEmailed},
			}})
			http.Redirect(w, r, "/signup", http.StatusFound)
			return
		}

		h.serverError(w, r, err)
		return
	}

	if err = h.bindPrincipal(s, &principal); err != nil {
		h.serverError(w, r, err)
		return
	}

	log.Info().Int64("user_id", principal.ID).Msg("user signed up")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.bindPrincipal(session.FromContext(r.Context()), nil); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	err := h.services.AuthService.Activate(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		_, invalidInput := validators.AsValidationError(err)
		switch {
		case invalidInput, errors.Is(err, service.ErrInvalidActivationToken):
			log.Info().Err(err).Msg("invalid activation token")
			h.render(w, r, http.StatusBadRequest, pageActivation, activationPage{Message: validators.MsgMissingToken})
		case errors.Is(err, service.ErrActivationTokenExpired):
			log.Info().Err(err).Msg("expired activation token")
			h.render(w, r, http.StatusGone, pageActivation, activationPage{Message: msgActivationExpired})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.render(w, r, http.StatusOK, pageActivation, activationPage{Success: true})
}

func (h *Handler) googleSignIn(w http.ResponseWriter, r *http.Request) {
	federated := h.services.FederatedAuthService
	if !federated.Enabled() {
		h.notFound(w, r)
		return
	}

	redirect, err := federated.Begin(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	session.FromContext(r.Context()).SetOAuthNonce(redirect.Nonce)
	http.Redirect(w, r, redirect.URL, http.StatusFound)
}

func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	federated := h.services.FederatedAuthService
	if !federated.Enabled() {
		h.notFound(w, r)
		return
	}

	s := session.FromContext(ctx)
	nonce := s.PopOAuthNonce()
	query := r.URL.Query()

	fail := func(err error) {
		if isAuthenticationFailure(err) {
			log.Info().Err(err).Msg("google sign in rejected")
		} else {
			h.reporter.Report(ctx, err, "google sign in failed")
		}
		s.SetFlash(models.Flash{Messages: []string{msgGoogleFailed}})
		http.Redirect(w, r, "/signin", http.StatusFound)
	}

	if providerErr := query.Get("error"); providerErr != "" {
		fail(errors.Join(service.ErrInvalidCredentials, errors.New(providerErr)))
		return
	}

	principal, err := federated.Complete(ctx, query.Get("state"), nonce, query.Get("code"))
	if err != nil {
		fail(err)
		return
	}

	if err = h.bindPrincipal(s, &principal); err != nil {
		h.serverError(w, r, err)
		return
	}

	log.Info().Int64("user_id", principal.ID).Msg("user signed in with google")
	http.Redirect(w, r, "/calendar", http.StatusFound)
}

// bindPrincipal renews the session id and binds principal to the session.
// A nil principal signs the session out.
func (h *Handler) bindPrincipal(s *session.Session, principal *models.Principal) error {
	id, err := h.sessions.NewID()
	if err != nil {
		return err
	}

	s.Renew(id, principal)
	return nil
}

func isAuthenticationFailure(err error) bool {
	return errors.Is(err, service.ErrInvalidCredentials) ||
		errors.Is(err, service.ErrInvalidOAuthState) ||
		errors.Is(err, service.ErrFederatedProfileIncomplete)
}
