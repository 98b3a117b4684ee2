// Package validation registers the custom binding tags used by the HTTP layer.
package validation

import (
	"errors"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// TagSkuCode validates SKU codes: letters, digits, '-' and '_', up to 64 characters,
// starting with a letter or digit.
const TagSkuCode = "skucode"

var (
	skuCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

	registerOnce sync.Once
	registerErr  error
)

// IsSkuCode reports whether s is a well-formed SKU code.
func IsSkuCode(s string) bool {
	return skuCodePattern.MatchString(s)
}

// Register adds the custom tags to gin's validator engine. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		registerErr = v.RegisterValidation(TagSkuCode, func(fl validator.FieldLevel) bool {
			return IsSkuCode(fl.Field().String())
		})
	})
	return registerErr
}
