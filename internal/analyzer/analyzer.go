package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"skillbridge/internal/config"
	"skillbridge/internal/extractor"
	"skillbridge/internal/llm"
	"skillbridge/internal/llm/processors"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

var validate = validator.New()

// Analyzer orchestrates extraction, prompt construction, inference and
// normalization for the resume/JD comparison task. Every invocation is
// stateless; concurrent analyses share nothing.
type Analyzer struct {
	cfg       *config.Config
	extractor *extractor.Extractor
	prompts   *llm.PromptBuilder
	provider  llm.Provider
	cleaner   *processors.JSONCleaner
	logger    *logrus.Logger
}

// New creates a new skill gap analyzer instance
func New(cfg *config.Config, provider llm.Provider) *Analyzer {
	return &Analyzer{
		cfg:       cfg,
		extractor: extractor.New(),
		prompts:   llm.NewPromptBuilder(cfg),
		provider:  provider,
		cleaner:   processors.NewJSONCleaner(),
		logger:    utils.GetLogger(),
	}
}

// Analyze compares an uploaded resume against a job description and returns
// the canonical skill gap report. Client-input problems (bad format, corrupt
// file, empty document) are returned as errors; model-server problems degrade
// into an error-variant report so the caller always receives a well-typed
// result instead of a transport fault.
func (a *Analyzer) Analyze(ctx context.Context, blob *models.DocumentBlob, jobDescription string) (*models.SkillGapReport, error) {
	if !extractor.SupportedFilename(blob.Filename) {
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedFormat, blob.Filename)
	}

	resumeText, err := a.extractor.Extract(blob)
	if err != nil {
		return nil, err
	}

	if resumeText == "" {
		return nil, fmt.Errorf("%w: %q", utils.ErrEmptyInput, blob.Filename)
	}

	a.logger.WithFields(logrus.Fields{
		"filename":    blob.Filename,
		"text_length": len(resumeText),
	}).Info("Resume text extracted, starting analysis")

	req := a.prompts.BuildAnalysisRequest(resumeText, jobDescription)

	raw, err := a.provider.Complete(ctx, req)
	if err != nil {
		return a.reportFromInferenceError(err), nil
	}

	var report models.SkillGapReport
	if err := a.cleaner.Decode(raw, &report); err != nil {
		a.logger.WithField("raw_response", raw).Error("Model response was not valid JSON")
		return models.NewErrorReport("AI response was not valid JSON. Please try again."), nil
	}

	if report.Error != "" {
		// The model itself emitted an error-variant report; pass it through
		// untouched.
		return &report, nil
	}

	if err := validate.Struct(&report); err != nil {
		a.logger.WithFields(logrus.Fields{
			"raw_response": raw,
		}).WithError(err).Error("Model response did not match the report schema")
		return models.NewErrorReport("AI response did not match the expected report format. Please try again."), nil
	}

	if report.MissingSkills == nil {
		report.MissingSkills = []models.SkillEntry{}
	}

	return &report, nil
}

func (a *Analyzer) reportFromInferenceError(err error) *models.SkillGapReport {
	var serverErr *utils.ServerError

	switch {
	case errors.Is(err, utils.ErrConnectionUnavailable):
		a.logger.WithError(err).Error("Model server unreachable")
		return models.NewErrorReport(fmt.Sprintf("Could not connect to the model server. Is it running on %s?", a.cfg.LLM.BaseURL))
	case errors.Is(err, utils.ErrTimeout):
		a.logger.WithError(err).Error("Model server request timed out")
		return models.NewErrorReport("The model server took too long to respond. Please try again.")
	case errors.As(err, &serverErr):
		a.logger.WithField("status", serverErr.Status).Error("Model server returned an error")
		return models.NewErrorReport(fmt.Sprintf("Model server error: %s", serverErr.Body))
	default:
		a.logger.WithError(err).Error("Analysis failed")
		return models.NewErrorReport(fmt.Sprintf("AI processing failed: %v", err))
	}
}
