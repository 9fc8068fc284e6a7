package driven

import "context"

// Transformer is one pure text-to-text rewrite stage.
// Stages are chained in a pipeline (code blocks, links, emphasis, tables).
type Transformer interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Transform rewrites text and returns the result.
	// Implementations must not retain or mutate shared state.
	Transform(ctx context.Context, text string) (string, error)
}

// TransformerPipeline chains multiple Transformers.
type TransformerPipeline interface {
	// Transform runs text through all stages in order.
	Transform(ctx context.Context, text string) (string, error)
}
