package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"bookshop-be/internal/cart"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var setupOnce sync.Once

// setupValidator makes gin's validator report JSON field names and compare decimals numerically.
func setupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	})
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func decimalValue(v reflect.Value) any {
	d, ok := v.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	f, _ := d.Float64()
	return f
}

// bindErrors turns a gin binding error into the field map of a 422 response.
func bindErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fieldKey(fe.Namespace())] = fieldMessage(fe)
		}
		return fields
	}

	if errors.Is(err, cart.ErrInvalidCart) {
		fields["carts"] = "must be a list of {id, quantity}"
		return fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fields[typeErr.Field] = "must be a " + typeErr.Type.String()
		return fields
	}

	if errors.Is(err, io.EOF) {
		fields["body"] = "is required"
		return fields
	}

	fields["body"] = "is malformed"
	return fields
}

// fieldKey drops the struct name and flattens indexes: "req.items[0].price" becomes "items.0.price".
func fieldKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("may not be greater than %s characters", fe.Param())
		}
		return fmt.Sprintf("may not be greater than %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "eqfield":
		return "confirmation does not match"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
