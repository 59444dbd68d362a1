package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Struct valida un struct con las etiquetas `validate:"..."` de sus campos.
// El validador se construye una sola vez (es seguro para uso concurrente).
func Struct(s interface{}) error {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
	})
	return v.Struct(s)
}
