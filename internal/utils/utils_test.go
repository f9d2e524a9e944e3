package utils

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), "u-42", "buyer@example.com")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-42", id)
	assert.Equal(t, "buyer@example.com", GetUserEmailFromContext(ctx))

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{5}$`)

	for i := 0; i < 20; i++ {
		num := GenerateOrderNumber()
		assert.True(t, pattern.MatchString(num), "unexpected format: %s", num)
	}
}
