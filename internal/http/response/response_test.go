package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"key": "value"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"key": "value"}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something broke")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something broke", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	type request struct {
		Name     string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	validate := validator.New()

	tests := []struct {
		name string
		req  request
		want string
	}{
		{
			name: "missing name",
			req:  request{Email: "a@b.com", Password: "secret1"},
			want: "field Name is a required field",
		},
		{
			name: "bad email",
			req:  request{Name: "alice", Email: "not-an-email", Password: "secret1"},
			want: "field Email must be a valid email address",
		},
		{
			name: "short password",
			req:  request{Name: "alice", Email: "a@b.com", Password: "abc"},
			want: "field Password is too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}
