package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultInputPath, s.InputPath)
	assert.Equal(t, DefaultOutputPath, s.OutputPath)
	assert.Equal(t, FormatAuto, s.Format)
	assert.Equal(t, "utf-8", s.Encoding)
	assert.Empty(t, s.ScratchDir)
	assert.True(t, s.Properties.IsZero())
	assert.Equal(t, DefaultCodeBlockPlaceholder, s.Transform.CodeBlockPlaceholder)
	assert.Equal(t, DefaultWatchDebounce, s.Watch.Debounce)
}

func TestDefaultTransformStages_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"code_blocks", "inline_code", "links", "emphasis", "tables"},
		DefaultTransformStages())
}

func TestDefaultTransformStages_ReturnsCopy(t *testing.T) {
	a := DefaultTransformStages()
	a[0] = "mutated"
	assert.Equal(t, StageCodeBlocks, DefaultTransformStages()[0])
}

func TestSettings_Request(t *testing.T) {
	s := DefaultSettings()
	s.Properties.Title = "INTERCONNECT"

	req := s.Request()
	assert.Equal(t, s.InputPath, req.InputPath)
	assert.Equal(t, s.OutputPath, req.OutputPath)
	assert.Equal(t, FormatAuto, req.Format)
	assert.Equal(t, "INTERCONNECT", req.Properties.Title)
}
