package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/csspipe/internal/core/domain"
)

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, domain.Options{}.Validate())
	require.NoError(t, domain.Options{CacheMem: true, ConsumerID: "a.js"}.Validate())

	err := domain.Options{CacheMem: true}.Validate()
	require.ErrorIs(t, err, domain.ErrMissingConsumerID)
}

func TestOptions_Strategy(t *testing.T) {
	assert.Equal(t, domain.StrategySubprocess, domain.Options{}.Strategy())
	assert.Equal(t, domain.StrategyInProcess, domain.Options{InProcess: true}.Strategy())
}

func TestOptions_WithConsumer(t *testing.T) {
	base := domain.Options{Settings: map[string]any{"plugins": []any{}}}
	bound := base.WithConsumer("pages/index.js")

	assert.Equal(t, "pages/index.js", bound.ConsumerID)
	assert.Empty(t, base.ConsumerID)

	bound.Settings["extra"] = true
	assert.NotContains(t, base.Settings, "extra")
}

func TestNewTransformError(t *testing.T) {
	err := domain.NewTransformError("Unknown word at 1:3")

	require.ErrorIs(t, err, domain.ErrTransformFailed)
	assert.Contains(t, err.Error(), "Unknown word at 1:3")
}

func TestOutcome_Cached(t *testing.T) {
	assert.True(t, domain.Outcome{Source: domain.SourceMemory}.Cached())
	assert.True(t, domain.Outcome{Source: domain.SourceDisk}.Cached())
	assert.False(t, domain.Outcome{Source: domain.SourceDispatch}.Cached())
}
