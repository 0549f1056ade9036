package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-jordan/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateTemplate(t *testing.T) {
	withDetails := errors.ErrInvalidFilter.WithDetails(map[string]interface{}{"category": "oneof"})

	assert.Equal(t, "oneof", withDetails.Details["category"])
	assert.Nil(t, errors.ErrInvalidFilter.Details)
	assert.Equal(t, http.StatusBadRequest, withDetails.StatusCode)
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", errors.ErrChatBusy.WithDetails(map[string]interface{}{"session": "x"}))

	assert.True(t, stderrors.Is(wrapped, errors.ErrChatBusy))
	assert.False(t, stderrors.Is(wrapped, errors.ErrChatSessionNotFound))
	assert.Equal(t, "CHAT_BUSY: The guide is still composing a reply", errors.ErrChatBusy.Error())
}
