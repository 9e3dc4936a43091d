package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a-b-c-com", EmailSlug("a.b@c.com"))
	assert.Equal(t, "alice-example-com", EmailSlug("alice@example.com"))
	assert.Equal(t, "no-separators", EmailSlug("no-separators"))
}

func TestUserHasRole(t *testing.T) {
	t.Parallel()

	user := User{Roles: []string{"user", "Author"}}
	assert.True(t, user.HasRole("user"))
	assert.True(t, user.HasRole("author"))
	assert.False(t, user.HasRole("admin"))
	assert.False(t, User{}.HasRole("user"))
}
