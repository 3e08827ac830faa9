package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única; los validadores de go-playground son seguros para uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve un error legible
// con los campos que fallaron, o nil si todo es válido.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
