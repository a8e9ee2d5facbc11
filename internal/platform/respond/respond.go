// Package respond centraliza el formato de las respuestas HTTP.
//
// Los cuerpos de error siguen el formato {"detail": ...} que ya consumen los
// clientes existentes: un string para 403/404/500 y una lista de items
// {loc, msg, type} para 422.
package respond

import (
	"encoding/json"
	"net/http"
)

// ValidationItem describe un problema de validación de un input concreto.
type ValidationItem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type detailResponse struct {
	Detail any `json:"detail"`
}

// JSON escribe v como JSON con el status indicado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail escribe {"detail": msg}.
func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, detailResponse{Detail: msg})
}

// Validation escribe 422 con la lista de problemas.
func Validation(w http.ResponseWriter, items []ValidationItem) {
	if items == nil {
		items = []ValidationItem{}
	}
	JSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: items})
}

// NotFound y MethodNotAllowed reemplazan los handlers por defecto de chi
// para que todos los errores tengan el mismo cuerpo.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	Detail(w, http.StatusNotFound, "Not Found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	Detail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
