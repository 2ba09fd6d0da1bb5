package utils

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "marie@bistro.fr", NormalizeEmail("  Marie @Bistro.FR "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "Email simples", email: "contact@bistro.fr", valid: true},
		{name: "Sem arroba", email: "contact.bistro.fr", valid: false},
		{name: "Sem domínio de topo", email: "contact@bistro", valid: false},
		{name: "Com nome de exibição", email: "Marie <marie@bistro.fr>", valid: false},
		{name: "Vazio", email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}

func TestFixedClock(t *testing.T) {
	date := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	clock := FixedClock(date)

	assert.Equal(t, date, clock())
	assert.Equal(t, date, clock())
}

func TestKeyedLocker_SerializaMesmaChave(t *testing.T) {
	locker := &KeyedLocker{}
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithLock(context.Background(), "user-1", func(ctx context.Context) error {
				current := counter
				time.Sleep(time.Microsecond)
				counter = current + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestParseMonth(t *testing.T) {
	date, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseMonth("02/2024")
	assert.Error(t, err)
}

func TestSameOrBeforeMonth(t *testing.T) {
	ref := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{name: "Mesmo mês", date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "Mês anterior", date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "Ano anterior com mês maior", date: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "Mês seguinte", date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), expected: false},
		{name: "Ano seguinte", date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameOrBeforeMonth(tt.date, ref))
		})
	}
}

func TestRoundTwoDecimals(t *testing.T) {
	assert.Equal(t, 4.33, RoundTwoDecimals(13.0/3.0))
	assert.Equal(t, 4.67, RoundTwoDecimals(14.0/3.0))
	assert.Zero(t, RoundTwoDecimals(0))
}
