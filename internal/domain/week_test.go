package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWeekID(t *testing.T) {
	// Semana sem zero à esquerda, preservando o formato original
	assert.Equal(t, "2025-W42", FormatWeekID(2025, 42))
	assert.Equal(t, "2025-W7", FormatWeekID(2025, 7))
}

func TestParseWeekID(t *testing.T) {
	tests := []struct {
		name    string
		weekID  string
		want    WeekID
		wantErr bool
	}{
		{
			name:   "semana de dois dígitos",
			weekID: "2025-W42",
			want:   WeekID{Year: 2025, Week: 42},
		},
		{
			name:   "semana de um dígito",
			weekID: "2025-W7",
			want:   WeekID{Year: 2025, Week: 7},
		},
		{
			name:    "zero à esquerda não é aceito",
			weekID:  "2025-W07",
			wantErr: true,
		},
		{
			name:    "semana fora do intervalo",
			weekID:  "2025-W54",
			wantErr: true,
		},
		{
			name:    "semana zero",
			weekID:  "2025-W0",
			wantErr: true,
		},
		{
			name:    "formato inválido",
			weekID:  "semana-42",
			wantErr: true,
		},
		{
			name:    "vazio",
			weekID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekID(tt.weekID)
			if tt.wantErr {
				// Toda falha de validação carrega o sentinela, que é o
				// que os handlers usam para responder 400
				assert.ErrorIs(t, err, ErrInvalidWeekID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.weekID, got.String())
		})
	}
}

func TestWeekIDBefore(t *testing.T) {
	// A ordem é por (ano, semana), não pela forma textual: "2025-W9"
	// antecede "2025-W10" apesar de vir depois lexicograficamente
	assert.True(t, WeekID{Year: 2025, Week: 9}.Before(WeekID{Year: 2025, Week: 10}))
	assert.False(t, WeekID{Year: 2025, Week: 10}.Before(WeekID{Year: 2025, Week: 9}))
	assert.True(t, WeekID{Year: 2024, Week: 52}.Before(WeekID{Year: 2025, Week: 1}))
	assert.False(t, WeekID{Year: 2025, Week: 7}.Before(WeekID{Year: 2025, Week: 7}))
}

func TestCurrentWeekID(t *testing.T) {
	// 6 de janeiro de 2025 é a segunda-feira da semana ISO 2
	now := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W2", CurrentWeekID(now))
}
