package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  500,
			code:    serrors.ErrInternal.Error(),
			message: "internal error",
		},
		{
			name:    "bare kind uses default message",
			err:     serrors.ErrNotFound,
			status:  404,
			code:    serrors.ErrNotFound.Error(),
			message: "resource not found",
		},
		{
			name:    "semantic error keeps its message",
			err:     serrors.With(serrors.ErrBadRequest, "title is required"),
			status:  400,
			code:    serrors.ErrBadRequest.Error(),
			message: "title is required",
		},
		{
			name:    "cause is not exposed",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			status:  401,
			code:    serrors.ErrUnauthorized.Error(),
			message: "unauthorized",
		},
		{
			name:    "semantic error wrapped with fmt",
			err:     fmt.Errorf("could not get product: %w", serrors.With(serrors.ErrNotFound, "product not found")),
			status:  404,
			code:    serrors.ErrNotFound.Error(),
			message: "product not found",
		},
		{
			name:    "internal kind",
			err:     serrors.KindOnly(serrors.ErrInternal),
			status:  500,
			code:    serrors.ErrInternal.Error(),
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}
