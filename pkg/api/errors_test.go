package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/chatstream/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.NewValidationError("question", "required"), http.StatusBadRequest},
		{fmt.Errorf("get interaction: %w", services.ErrNotFound), http.StatusNotFound},
		{services.ErrAlreadyCompleted, http.StatusConflict},
		{fmt.Errorf("create artifact: %w", services.ErrAlreadyExists), http.StatusConflict},
		{errors.New("connection reset by peer"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, mapServiceError(tc.err).Code, tc.err.Error())
	}
}

func TestMapServiceErrorHidesInternalDetail(t *testing.T) {
	he := mapServiceError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", he.Message)

	he = mapServiceError(services.NewValidationError("url", "must be an absolute http or https URL"))
	assert.Contains(t, he.Message, "url")
}
