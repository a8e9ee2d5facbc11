package accounts

import (
	"errors"
	"net/http"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/respond"
	"pet-registry/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/api/key", issueKeyHandler(svc, log))
}

// keyRequest junta los headers requeridos para validarlos de una vez.
type keyRequest struct {
	Email    string `loc:"header,email" validate:"required"`
	Password string `loc:"header,password" validate:"required"`
}

// keyResponse contiene la API key del usuario.
type keyResponse struct {
	Key string `json:"key"`
}

// issueKeyHandler godoc
// @Summary Obtener API key
// @Description Canjea email y password (enviados como headers) por la API key estática del usuario.
// @Tags auth
// @Produce json
// @Param email header string true "Email del usuario"
// @Param password header string true "Password del usuario"
// @Success 200 {object} keyResponse
// @Failure 403 {string} string "Invalid email or password"
// @Failure 422 {object} respond.ValidationItem "headers faltantes"
// @Router /api/key [get]
func issueKeyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := keyRequest{
			Email:    r.Header.Get("email"),
			Password: r.Header.Get("password"),
		}
		if problems := validate.Struct(req); !problems.Empty() {
			respond.Validation(w, problems)
			return
		}

		key, err := svc.IssueKey(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				log.Warn("key exchange rejected", map[string]any{"email": req.Email})
				respond.Detail(w, http.StatusForbidden, "Invalid email or password")
				return
			}
			log.Error("key exchange failed", map[string]any{"error": err.Error()})
			respond.Detail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respond.JSON(w, http.StatusOK, keyResponse{Key: key})
	}
}
