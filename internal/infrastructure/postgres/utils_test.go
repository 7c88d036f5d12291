package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestPriceToDecimal_RedondeaACentavos(t *testing.T) {
	assert.Equal(t, "39.99", priceToDecimal(39.99).StringFixed(2))
	assert.Equal(t, "3.50", priceToDecimal(3.5).StringFixed(2))
	assert.Equal(t, "10.01", priceToDecimal(10.005000001).StringFixed(2))
}
