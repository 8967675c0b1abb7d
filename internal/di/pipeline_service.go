package di

import (
	"github.com/samber/do/v2"

	"github.com/folnorm/folnorm/internal/pipeline"
)

// PipelineService wraps the configured normalization pipeline.
type PipelineService struct {
	Pipeline *pipeline.Pipeline
}

// NewPipeline builds the rewrite pipeline from the configured step
// names.
func NewPipeline(i do.Injector) (*PipelineService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)

	p, err := pipeline.New(cfgSvc.Config.Normalize.GetEffectiveSteps())
	if err != nil {
		return nil, err
	}

	return &PipelineService{Pipeline: p}, nil
}
