package middlewares

import (
	"context"
	"net/http"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
)

// AuthenticatePatient validates the patient bearer token from the
// "token" header and loads the redis session into request context. The
// caller's identity is always read from context afterwards, never from
// the request body.
func (m *Middlewares) AuthenticatePatient(next http.Handler) http.Handler {
	return m.authenticateSession(constvars.HeaderPatientToken, constvars.RoleTypePatient, next)
}

// AuthenticateDoctor does the same for the "dtoken" header.
func (m *Middlewares) AuthenticateDoctor(next http.Handler) http.Handler {
	return m.authenticateSession(constvars.HeaderDoctorToken, constvars.RoleTypeDoctor, next)
}

func (m *Middlewares) authenticateSession(header, role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(header)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session.Role != role {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthenticateAdmin validates the "atoken" header against the configured
// console identity. There is no session behind admin tokens.
func (m *Middlewares) AuthenticateAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(constvars.HeaderAdminToken)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		email, err := utils.ParseAdminJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if email != m.InternalConfig.Admin.Email {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAdminClaimMismatch(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ADMIN_IDENTITY_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
