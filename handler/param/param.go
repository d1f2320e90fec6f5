package param

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/spf13/cast"
	"github.com/twitchtv/twirp"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// Binding bind query or body params into v and validate
func Binding(r *http.Request, v interface{}) error {
	switch r.Method {
	case http.MethodGet, http.MethodDelete:
		if err := decoder.Decode(v, r.URL.Query()); err != nil {
			return twirp.InvalidArgumentError("query", err.Error())
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
			return twirp.InvalidArgumentError("body", err.Error())
		}
	}

	if _, err := govalidator.ValidateStruct(v); err != nil {
		return twirp.InvalidArgumentError("params", err.Error())
	}

	return nil
}

// String read a route param as string
func String(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// Int read a route param as int
func Int(r *http.Request, key string) int {
	return cast.ToInt(chi.URLParam(r, key))
}
