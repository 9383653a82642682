package ws

import (
	"testing"

	"github.com/roobux/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanSubscribe(t *testing.T) {
	owner := models.NewClient("c1", nil)
	owner.UserID = "64b0c0ffee0000000000beef"

	admin := models.NewClient("c2", nil)
	admin.UserID = "64b0c0ffee0000000000cafe"
	admin.IsAdmin = true

	anon := models.NewClient("c3", nil)

	assert.True(t, canSubscribe(anon, "prices"))
	assert.True(t, canSubscribe(owner, "chat:64b0c0ffee0000000000beef"))
	assert.False(t, canSubscribe(owner, "chat:64b0c0ffee0000000000cafe"))
	assert.True(t, canSubscribe(admin, "chat:64b0c0ffee0000000000beef"))
	assert.False(t, canSubscribe(anon, "chat:64b0c0ffee0000000000beef"))
}
