package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/models"
)

func TestMessageLogOrdering(t *testing.T) {
	log := NewMessageLog()
	log.AppendUser("one")
	log.AppendAssistant("two", false)
	log.AppendSystem("three", true)

	msgs := log.Snapshot()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, models.RoleAssistant, msgs[1].Role)
	assert.Equal(t, models.RoleSystem, msgs[2].Role)
	assert.True(t, msgs[2].IsError)

	for _, m := range msgs {
		assert.NotEmpty(t, m.ID)
		assert.False(t, m.Timestamp.IsZero())
	}

	assert.Len(t, log.Since(1), 2)
	assert.Empty(t, log.Since(3))
}

func TestSubmitOpenFormFlipsExactlyOnce(t *testing.T) {
	log := NewMessageLog()
	log.AppendForm("fill this in", "Goa")

	require.True(t, log.SubmitOpenForm())
	assert.True(t, log.Snapshot()[0].FormSubmitted)

	// Already submitted; the flag never flips back and no second
	// transition happens.
	assert.False(t, log.SubmitOpenForm())
	assert.True(t, log.Snapshot()[0].FormSubmitted)
}

func TestSubmitOpenFormTargetsOldestOpenForm(t *testing.T) {
	log := NewMessageLog()
	log.AppendForm("first", "")
	log.AppendForm("second", "")

	require.True(t, log.SubmitOpenForm())
	msgs := log.Snapshot()
	assert.True(t, msgs[0].FormSubmitted)
	assert.False(t, msgs[1].FormSubmitted)

	require.True(t, log.SubmitOpenForm())
	assert.True(t, log.Snapshot()[1].FormSubmitted)
}

func TestSubmitOpenFormWithoutForm(t *testing.T) {
	log := NewMessageLog()
	log.AppendUser("no form here")
	assert.False(t, log.SubmitOpenForm())
}
