package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("picks up event identifiers from context", func(t *testing.T) {
		ctx := WithEventType(context.Background(), "ProjectCreated")
		ctx = WithMessageID(ctx, "1692000000000-0")

		log := WithContext(ctx)

		assert.Equal(t, "ProjectCreated", log.Entry.Data["event_type"])
		assert.Equal(t, "1692000000000-0", log.Entry.Data["message_id"])
	})

	t.Run("empty context yields no event fields", func(t *testing.T) {
		log := WithContext(context.Background())

		assert.NotContains(t, log.Entry.Data, "event_type")
		assert.NotContains(t, log.Entry.Data, "message_id")
	})
}

func TestWithField_DoesNotMutateParent(t *testing.T) {
	parent := New()
	child := parent.WithField("project_id", 1)

	assert.NotContains(t, parent.Entry.Data, "project_id")
	assert.Equal(t, 1, child.Entry.Data["project_id"])
}
