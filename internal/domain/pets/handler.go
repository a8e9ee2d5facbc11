package pets

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/respond"
	"pet-registry/internal/platform/validate"
	"pet-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidKey     = "Invalid auth_key"
	msgUpdateNotFound = "Pet not found or you do not have permission to update this pet"
	msgDeleteNotFound = "Pet not found or you do not have permission to delete this pet"
	msgDeleted        = "Pet deleted successfully"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	h := &handlers{svc: svc, log: log}

	r.Route("/api/pets", func(pr chi.Router) {
		pr.Post("/", h.create)
		pr.Get("/", h.list)

		// Solo el dueño puede modificar o borrar
		pr.Put("/{petID}", h.update)
		pr.Delete("/{petID}", h.delete)
	})
}

type handlers struct {
	svc *Service
	log logger.Logger
}

// createPetForm reúne header + campos de form para validarlos juntos.
type createPetForm struct {
	AuthKey    string `loc:"header,auth-key" validate:"required"`
	Name       string `loc:"body,name" validate:"required"`
	AnimalType string `loc:"body,animal_type" validate:"required"`
	Age        string `loc:"body,age" validate:"required"`
}

// authOnlyForm se usa en los endpoints sin campos obligatorios propios.
type authOnlyForm struct {
	AuthKey string `loc:"header,auth-key" validate:"required"`
}

// petResponse es la representación pública de una mascota.
// created_at es un timestamp Unix en segundos (con decimales).
type petResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AnimalType string  `json:"animal_type"`
	Age        int     `json:"age"`
	CreatedAt  float64 `json:"created_at"`
	UserID     string  `json:"user_id"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// create godoc
// @Summary Registrar mascota
// @Description Crea una mascota a nombre del dueño de la API key.
// @Tags pets
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param auth-key header string true "API key"
// @Param name formData string true "Nombre"
// @Param animal_type formData string true "Tipo de animal"
// @Param age formData int true "Edad"
// @Success 200 {object} petResponse
// @Failure 403 {object} detailResponse "Invalid auth_key"
// @Failure 422 {object} respond.ValidationItem "inputs faltantes o inválidos"
// @Router /api/pets [post]
func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	if err := validate.ParseForm(r); err != nil {
		respond.Validation(w, invalidBody(err))
		return
	}

	form := createPetForm{
		AuthKey:    r.Header.Get(middleware.AuthKeyHeader),
		Name:       r.PostForm.Get("name"),
		AnimalType: r.PostForm.Get("animal_type"),
		Age:        r.PostForm.Get("age"),
	}

	problems := validate.Struct(form)
	var age int
	if form.Age != "" {
		n, p := validate.Int(validate.Loc("body", "age"), form.Age)
		if p != nil {
			problems.Add(*p)
		}
		age = n
	}
	if !problems.Empty() {
		respond.Validation(w, problems)
		return
	}

	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Create(r.Context(), claims.UserID, CreateInput{
		Name:       form.Name,
		AnimalType: form.AnimalType,
		Age:        age,
	})
	if err != nil {
		h.internalError(w, "create pet", err)
		return
	}

	h.log.Info("pet created", map[string]any{"pet_id": p.ID, "user_id": p.UserID})
	respond.JSON(w, http.StatusOK, toPetResponse(p))
}

// list godoc
// @Summary Listar mascotas
// @Description Con filter=my_pets devuelve solo las mascotas del llamador. Sin filtro, o con cualquier otro valor, devuelve todas.
// @Tags pets
// @Produce json
// @Param auth-key header string true "API key"
// @Param filter query string false "my_pets"
// @Success 200 {array} petResponse
// @Failure 403 {object} detailResponse "Invalid auth_key"
// @Failure 422 {object} respond.ValidationItem "header faltante"
// @Router /api/pets [get]
func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	if problems := validate.Struct(authOnlyForm{AuthKey: r.Header.Get(middleware.AuthKeyHeader)}); !problems.Empty() {
		respond.Validation(w, problems)
		return
	}

	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	items, err := h.svc.List(r.Context(), claims.UserID, r.URL.Query().Get("filter"))
	if err != nil {
		h.internalError(w, "list pets", err)
		return
	}

	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	respond.JSON(w, http.StatusOK, out)
}

// update godoc
// @Summary Actualizar mascota
// @Description Actualiza solo los campos enviados. Una mascota ajena responde igual que una inexistente (404).
// @Tags pets
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param auth-key header string true "API key"
// @Param petID path string true "ID de la mascota"
// @Param name formData string false "Nombre"
// @Param animal_type formData string false "Tipo de animal"
// @Param age formData int false "Edad"
// @Success 200 {object} petResponse
// @Failure 403 {object} detailResponse "Invalid auth_key"
// @Failure 404 {object} detailResponse "Pet not found or you do not have permission to update this pet"
// @Failure 422 {object} respond.ValidationItem "age no entero / header faltante"
// @Router /api/pets/{petID} [put]
func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	if err := validate.ParseForm(r); err != nil {
		respond.Validation(w, invalidBody(err))
		return
	}

	problems := validate.Struct(authOnlyForm{AuthKey: r.Header.Get(middleware.AuthKeyHeader)})

	in := UpdateInput{
		Name:       optionalString(r.PostForm, "name"),
		AnimalType: optionalString(r.PostForm, "animal_type"),
	}
	if raw := optionalString(r.PostForm, "age"); raw != nil {
		n, p := validate.Int(validate.Loc("body", "age"), *raw)
		if p != nil {
			problems.Add(*p)
		} else {
			in.Age = &n
		}
	}
	if !problems.Empty() {
		respond.Validation(w, problems)
		return
	}

	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "petID"), claims.UserID, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Detail(w, http.StatusNotFound, msgUpdateNotFound)
			return
		}
		h.internalError(w, "update pet", err)
		return
	}

	respond.JSON(w, http.StatusOK, toPetResponse(updated))
}

// delete godoc
// @Summary Borrar mascota
// @Description Borra una mascota del llamador. Una mascota ajena responde igual que una inexistente (404).
// @Tags pets
// @Produce json
// @Param auth-key header string true "API key"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} detailResponse "Pet deleted successfully"
// @Failure 403 {object} detailResponse "Invalid auth_key"
// @Failure 404 {object} detailResponse "Pet not found or you do not have permission to delete this pet"
// @Failure 422 {object} respond.ValidationItem "header faltante"
// @Router /api/pets/{petID} [delete]
func (h *handlers) delete(w http.ResponseWriter, r *http.Request) {
	if problems := validate.Struct(authOnlyForm{AuthKey: r.Header.Get(middleware.AuthKeyHeader)}); !problems.Empty() {
		respond.Validation(w, problems)
		return
	}

	claims, ok := h.authorize(w, r)
	if !ok {
		return
	}

	petID := chi.URLParam(r, "petID")
	if err := h.svc.Delete(r.Context(), petID, claims.UserID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Detail(w, http.StatusNotFound, msgDeleteNotFound)
			return
		}
		h.internalError(w, "delete pet", err)
		return
	}

	h.log.Info("pet deleted", map[string]any{"pet_id": petID, "user_id": claims.UserID})
	respond.JSON(w, http.StatusOK, detailResponse{Detail: msgDeleted})
}

// authorize devuelve los claims puestos por middleware.AuthContext.
// Si no hay, la key vino pero no corresponde a ningún usuario: 403.
func (h *handlers) authorize(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || claims.UserID == "" {
		respond.Detail(w, http.StatusForbidden, msgInvalidKey)
		return auth.Claims{}, false
	}
	return claims, true
}

func (h *handlers) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", map[string]any{"error": err.Error()})
	respond.Detail(w, http.StatusInternalServerError, "Internal Server Error")
}

// optionalString: campo ausente o vacío = no enviado.
func optionalString(form url.Values, name string) *string {
	v := form.Get(name)
	if v == "" {
		return nil
	}
	return &v
}

func invalidBody(err error) []respond.ValidationItem {
	return []respond.ValidationItem{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error.form",
	}}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:         p.ID,
		Name:       p.Name,
		AnimalType: p.AnimalType,
		Age:        p.Age,
		CreatedAt:  unixSeconds(p.CreatedAt),
		UserID:     p.UserID,
	}
}

// unixSeconds con precisión de microsegundos.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixMicro()) / 1e6
}
