package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/consulta-notas/models"
	"github.com/blogem/consulta-notas/repositories/mocks"
)

func TestAuditService_GetAllConsultas(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	entries := []models.AuditEntry{
		{Timestamp: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), Codigo: "12345678", Encontrado: true},
		{Timestamp: time.Date(2025, 3, 14, 9, 1, 0, 0, time.UTC), Codigo: "99999999"},
	}
	repo.EXPECT().List(mock.Anything).Return(entries, nil)

	got, err := NewAuditService(repo).GetAllConsultas(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestAuditService_GetAllConsultas_Error(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	got, err := NewAuditService(repo).GetAllConsultas(context.Background())

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to load audit log")
}
