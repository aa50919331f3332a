package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validator.v10 pada DTO dan mengembalikan
// map field → pesan untuk JsonValidationError. Nil artinya valid.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return map[string][]string{"_": {"invalid input"}}
		}
		out := make(map[string][]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
		return out
	}
	return nil
}
