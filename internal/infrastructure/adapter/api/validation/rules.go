package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// RegisterRules adds the service's custom binding tags to gin's validator
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("roomcode", roomCode)
}

// roomCode accepts codes that normalize to upper-case [A-Z0-9] of a valid length
func roomCode(fl validator.FieldLevel) bool {
	_, err := entity.NormalizeRoomCode(fl.Field().String())
	return err == nil
}
