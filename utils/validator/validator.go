package validatorx

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent, safe for concurrent use)
func Init() {
	once.Do(build)
}

func build() {
	v = gpvalidator.New()
	// report json names so errors match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// FieldError describes the first failing field of a validation error.
// The field is the json path without the root struct, e.g. "items[0].quantity".
func FieldError(err error) (field, tag string, ok bool) {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	fe := verrs[0]
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns, fe.Tag(), true
}
