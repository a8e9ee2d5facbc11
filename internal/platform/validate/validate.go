// Package validate envuelve go-playground/validator y traduce sus errores a
// items de detalle 422.
//
// Los structs a validar marcan cada campo con `loc:"<origen>,<nombre>"`
// (p.ej. `loc:"header,auth-key"` o `loc:"body,age"`), que se usa como
// ubicación del problema en la respuesta.
package validate

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"pet-registry/internal/platform/respond"

	"github.com/go-playground/validator/v10"
)

const locSep = ","

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		loc := f.Tag.Get("loc")
		if loc == "" {
			return f.Name
		}
		return loc
	})
	return v
}

// Problems acumula los problemas de un request para reportarlos juntos.
type Problems []respond.ValidationItem

func (p *Problems) Add(item respond.ValidationItem) {
	*p = append(*p, item)
}

func (p Problems) Empty() bool { return len(p) == 0 }

// Struct valida dst según sus tags `validate`.
func Struct(dst any) Problems {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Problems{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	out := make(Problems, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fromFieldError(fe))
	}
	return out
}

// Int convierte raw a entero; si no puede, devuelve el problema de tipo.
func Int(loc []string, raw string) (int, *respond.ValidationItem) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &respond.ValidationItem{
			Loc:  loc,
			Msg:  "value is not a valid integer",
			Type: "type_error.integer",
		}
	}
	return n, nil
}

// Loc arma la ubicación de un input a partir de su origen y nombre.
func Loc(in, name string) []string {
	return []string{in, name}
}

// ParseForm parsea el body como multipart o urlencoded según Content-Type.
// Un body vacío o sin Content-Type es válido y deja el form vacío.
func ParseForm(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(ct), "multipart/form-data") {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

const maxFormMemory = 1 << 20

func fromFieldError(fe validator.FieldError) respond.ValidationItem {
	loc := strings.Split(fe.Field(), locSep)

	switch fe.Tag() {
	case "required":
		return respond.ValidationItem{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	default:
		return respond.ValidationItem{Loc: loc, Msg: "invalid value", Type: "value_error." + fe.Tag()}
	}
}
