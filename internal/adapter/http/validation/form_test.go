package validation_test

import (
	"net/url"
	"strings"
	"testing"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestDecode_FillsTaskRequest(t *testing.T) {
	var req dto.TaskRequest
	err := validation.Decode(url.Values{
		"title":       {"Buy milk"},
		"description": {"two litres"},
		"priority":    {"high"},
		"due_date":    {"2026-02-20"},
	}, &req)

	require.NoError(t, err)
	require.Equal(t, "Buy milk", req.Title)
	require.Equal(t, "two litres", req.Description)
	require.Equal(t, "high", req.Priority)
	require.Equal(t, "", req.Category)
	require.Equal(t, "2026-02-20", req.DueDate)
}

func TestBuildTaskInput_Valid(t *testing.T) {
	input, fieldErrors := validation.BuildTaskInput(dto.TaskRequest{
		Title:       "  Buy milk ",
		Description: "two litres",
		Priority:    "High",
		DueDate:     "2026-02-20",
	})

	require.Nil(t, fieldErrors)
	require.Equal(t, "Buy milk", input.Title)
	require.Equal(t, "two litres", *input.Description)
	require.Equal(t, domain.TaskPriorityHigh, input.Priority)
	require.Equal(t, domain.TaskCategoryPersonal, input.Category)
	require.Equal(t, "2026-02-20", input.DueDate.Format("2006-01-02"))
}

func TestBuildTaskInput_Defaults(t *testing.T) {
	input, fieldErrors := validation.BuildTaskInput(dto.TaskRequest{Title: "Walk"})

	require.Nil(t, fieldErrors)
	require.Equal(t, domain.TaskPriorityMedium, input.Priority)
	require.Equal(t, domain.TaskCategoryPersonal, input.Category)
	require.Nil(t, input.Description)
	require.Nil(t, input.DueDate)
}

func TestBuildTaskInput_Errors(t *testing.T) {
	cases := []struct {
		name    string
		req     dto.TaskRequest
		field   string
		message string
		param   string
	}{
		{"missing title", dto.TaskRequest{}, "title", validation.MsgFieldRequired, ""},
		{"blank title", dto.TaskRequest{Title: "   "}, "title", validation.MsgFieldRequired, ""},
		{"long title", dto.TaskRequest{Title: strings.Repeat("a", 201)}, "title", validation.MsgFieldTooLong, "200"},
		{"bad priority", dto.TaskRequest{Title: "x", Priority: "urgent"}, "priority", validation.MsgInvalidChoice, "low medium high"},
		{"bad category", dto.TaskRequest{Title: "x", Category: "hobby"}, "category", validation.MsgInvalidChoice, "personal work shopping health"},
		{"bad date", dto.TaskRequest{Title: "x", DueDate: "20/02/2026"}, "due_date", validation.MsgInvalidDate, "2006-01-02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, fieldErrors := validation.BuildTaskInput(tc.req)
			require.Contains(t, fieldErrors, tc.field)
			require.Equal(t, tc.message, fieldErrors[tc.field].MessageID)
			require.Equal(t, tc.param, fieldErrors[tc.field].Param)
		})
	}
}

func TestBuildTaskInput_TitleAtLimit(t *testing.T) {
	_, fieldErrors := validation.BuildTaskInput(dto.TaskRequest{Title: strings.Repeat("a", 200)})
	require.Nil(t, fieldErrors)
}

func TestBuildRegisterInput(t *testing.T) {
	valid := dto.RegisterRequest{
		Username:             "alice",
		Email:                "alice@x.com",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}

	input, fieldErrors := validation.BuildRegisterInput(valid)
	require.Nil(t, fieldErrors)
	require.Equal(t, domain.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "secret1"}, input)

	cases := []struct {
		name    string
		mutate  func(req *dto.RegisterRequest)
		field   string
		message string
	}{
		{"short username", func(req *dto.RegisterRequest) { req.Username = "abc" }, "username", validation.MsgFieldTooShort},
		{"long username", func(req *dto.RegisterRequest) { req.Username = strings.Repeat("u", 21) }, "username", validation.MsgFieldTooLong},
		{"bad email", func(req *dto.RegisterRequest) { req.Email = "alice-at-x" }, "email", validation.MsgInvalidEmail},
		{"short password", func(req *dto.RegisterRequest) {
			req.Password = "12345"
			req.PasswordConfirmation = "12345"
		}, "password", validation.MsgFieldTooShort},
		{"long email", func(req *dto.RegisterRequest) {
			req.Email = strings.Repeat("a", 60) + "@" + strings.Repeat("b", 60) + ".com"
		}, "email", validation.MsgFieldTooLong},
		{"long password", func(req *dto.RegisterRequest) {
			req.Password = strings.Repeat("p", 73)
			req.PasswordConfirmation = req.Password
		}, "password", validation.MsgFieldTooLong},
		{"mismatch", func(req *dto.RegisterRequest) { req.PasswordConfirmation = "secret2" }, "password2", validation.MsgPasswordsMustMatch},
		{"missing confirmation", func(req *dto.RegisterRequest) { req.PasswordConfirmation = "" }, "password2", validation.MsgFieldRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			_, fieldErrors := validation.BuildRegisterInput(req)
			require.Contains(t, fieldErrors, tc.field)
			require.Equal(t, tc.message, fieldErrors[tc.field].MessageID)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	req, fieldErrors := validation.ValidateLogin(dto.LoginRequest{Username: " alice ", Password: "x"})
	require.Nil(t, fieldErrors)
	require.Equal(t, "alice", req.Username)

	_, fieldErrors = validation.ValidateLogin(dto.LoginRequest{})
	require.Len(t, fieldErrors, 2)
	require.Equal(t, validation.MsgFieldRequired, fieldErrors["username"].MessageID)
	require.Equal(t, validation.MsgFieldRequired, fieldErrors["password"].MessageID)
	require.Contains(t, fieldErrors.Error(), "password: fieldRequired")
}
