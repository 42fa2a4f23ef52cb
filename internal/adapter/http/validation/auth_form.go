package validation

import (
	"strings"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

// ValidateLogin only checks presence; credentials are verified by the auth service.
func ValidateLogin(req dto.LoginRequest) (dto.LoginRequest, FieldErrors) {
	req.Username = strings.TrimSpace(req.Username)
	if fieldErrors := validateStruct(req); fieldErrors != nil {
		return req, fieldErrors
	}
	return req, nil
}

func BuildRegisterInput(req dto.RegisterRequest) (domain.RegisterInput, FieldErrors) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if fieldErrors := validateStruct(req); fieldErrors != nil {
		return domain.RegisterInput{}, fieldErrors
	}

	return domain.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, nil
}
