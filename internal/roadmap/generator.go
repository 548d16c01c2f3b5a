package roadmap

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"skillbridge/internal/config"
	"skillbridge/internal/llm"
	"skillbridge/internal/llm/processors"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

var validate = validator.New()

// Generator produces learning roadmaps for a list of missing skills. It runs
// the same prompt/inference/normalization chain as the analyzer, with the
// roadmap task parameters.
type Generator struct {
	cfg      *config.Config
	prompts  *llm.PromptBuilder
	provider llm.Provider
	cleaner  *processors.JSONCleaner
	logger   *logrus.Logger
}

// New creates a new roadmap generator instance
func New(cfg *config.Config, provider llm.Provider) *Generator {
	return &Generator{
		cfg:      cfg,
		prompts:  llm.NewPromptBuilder(cfg),
		provider: provider,
		cleaner:  processors.NewJSONCleaner(),
		logger:   utils.GetLogger(),
	}
}

// Generate builds a remediation roadmap for the missing skills. An empty
// skill list short-circuits to a fixed sentinel without touching the model
// server. Inference and normalization failures yield an error-variant
// roadmap, never a raw fault.
func (g *Generator) Generate(ctx context.Context, missingSkills []string, jobRole string) *models.Roadmap {
	if len(missingSkills) == 0 {
		return &models.Roadmap{
			Title:       "No Remediation Needed",
			Description: "No missing skills provided. You are good to go!",
			Weeks:       []models.RoadmapWeek{},
		}
	}

	g.logger.WithFields(logrus.Fields{
		"job_role":    jobRole,
		"skill_count": len(missingSkills),
	}).Info("Generating learning roadmap")

	req := g.prompts.BuildRoadmapRequest(missingSkills, jobRole)

	raw, err := g.provider.Complete(ctx, req)
	if err != nil {
		return g.roadmapFromInferenceError(err)
	}

	var roadmap models.Roadmap
	if err := g.cleaner.Decode(raw, &roadmap); err != nil {
		g.logger.WithField("raw_response", raw).Error("Roadmap response was not valid JSON")
		return models.NewErrorRoadmap("AI response was not valid JSON. Please try again.")
	}

	if roadmap.Error != "" {
		return &roadmap
	}

	if err := validate.Struct(&roadmap); err != nil {
		g.logger.WithError(err).Error("Roadmap response did not match the expected schema")
		return models.NewErrorRoadmap("AI response did not match the expected roadmap format. Please try again.")
	}

	return &roadmap
}

func (g *Generator) roadmapFromInferenceError(err error) *models.Roadmap {
	var serverErr *utils.ServerError

	switch {
	case errors.Is(err, utils.ErrConnectionUnavailable):
		g.logger.WithError(err).Error("Model server unreachable")
		return models.NewErrorRoadmap(fmt.Sprintf("Could not connect to the model server. Is it running on %s?", g.cfg.LLM.BaseURL))
	case errors.Is(err, utils.ErrTimeout):
		g.logger.WithError(err).Error("Model server request timed out")
		return models.NewErrorRoadmap("The model server took too long to respond. Please try again.")
	case errors.As(err, &serverErr):
		g.logger.WithField("status", serverErr.Status).Error("Model server returned an error")
		return models.NewErrorRoadmap(fmt.Sprintf("Model server error: %s", serverErr.Body))
	default:
		g.logger.WithError(err).Error("Roadmap generation failed")
		return models.NewErrorRoadmap(fmt.Sprintf("Roadmap generation failed: %v", err))
	}
}
