// Package transformers provides the Markdown flattening pipeline.
// Stages live in the markdown subpackage; this package chains them and
// builds them by name from configuration.
package transformers

import (
	"context"
	"fmt"

	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.TransformerPipeline = (*Pipeline)(nil)

// Pipeline chains multiple Transformers and runs them in order.
// Each stage receives the previous stage's output.
type Pipeline struct {
	stages []driven.Transformer
}

// NewPipeline creates a new pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Transformer) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Transform runs text through all stages in order.
// Cancellation is checked between stages.
func (p *Pipeline) Transform(ctx context.Context, text string) (string, error) {
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		before := len(text)
		out, err := stage.Transform(ctx, text)
		if err != nil {
			return "", fmt.Errorf("transformer %s: %w", stage.Name(), err)
		}
		logger.Step(stage.Name(), "%d -> %d bytes", before, len(out))
		text = out
	}

	return text, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Transformer) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Names returns the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
