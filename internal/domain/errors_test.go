package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulceria/sweetshop-api/internal/domain"
)

func TestStatus_PorVariante(t *testing.T) {
	cases := []struct {
		err    *domain.Error
		status int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrInsufficientStock, http.StatusBadRequest},
		{domain.ErrEmailAlreadyExists, http.StatusConflict},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status(), "mensaje %q", tc.err.Message)
	}
}

func TestIs_ComparaPorVariante(t *testing.T) {
	assert.ErrorIs(t, domain.Validation("price no puede ser negativo"), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.ErrInvalidCredentials, domain.ErrUnauthorized)
	assert.NotErrorIs(t, domain.ErrNotFound, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, errors.New("otro error"), domain.ErrInternal)
}

func TestIs_SobreviveEnvoltura(t *testing.T) {
	wrapped := fmt.Errorf("buscar dulce: %w", domain.ErrNotFound)
	assert.ErrorIs(t, wrapped, domain.ErrNotFound)

	var derr *domain.Error
	assert.ErrorAs(t, wrapped, &derr)
	assert.Equal(t, http.StatusNotFound, derr.Status())
}
