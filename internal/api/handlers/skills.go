package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"skillbridge/internal/analyzer"
	"skillbridge/internal/config"
	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

var validate = validator.New()

// ParseSkillsHandler handles resume/JD skill gap analysis requests. The
// resume arrives as a multipart file upload alongside a job_description form
// field.
func ParseSkillsHandler(cfg *config.Config, anl *analyzer.Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := utils.GenerateRequestID()
		logger := utils.LogWithRequestID(requestID)

		logger.Info("Skill gap analysis request received")

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return writeError(c, requestID, "missing_resume",
				utils.NewBadRequestError("A resume file is required"))
		}

		jobDescription := strings.TrimSpace(c.FormValue("job_description"))
		if jobDescription == "" {
			return writeError(c, requestID, "missing_job_description",
				utils.NewBadRequestError("A job description is required"))
		}

		if fileHeader.Size > cfg.Upload.MaxFileSize {
			return writeError(c, requestID, "file_too_large",
				utils.NewFileTooLargeError("Uploaded file exceeds the maximum allowed size"))
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.WithError(err).Error("Failed to open uploaded file")
			return writeError(c, requestID, "unreadable_file",
				utils.NewBadRequestError("Could not read the uploaded file"))
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.WithError(err).Error("Failed to read uploaded file")
			return writeError(c, requestID, "unreadable_file",
				utils.NewBadRequestError("Could not read the uploaded file"))
		}

		blob := &models.DocumentBlob{
			Filename:  fileHeader.Filename,
			MediaType: fileHeader.Header.Get(echo.HeaderContentType),
			Data:      data,
		}

		report, err := anl.Analyze(c.Request().Context(), blob, jobDescription)
		if err != nil {
			slug, cerr := analysisError(err)
			return writeError(c, requestID, slug, cerr)
		}

		if report.Error != "" {
			logger.WithField("error", report.Error).Warn("Analysis degraded to error-variant report")
		}

		logger.WithField("processing_time", time.Since(startTime)).Info("Skill gap analysis completed")

		return c.JSON(http.StatusOK, report)
	}
}

// analysisError maps client-input failures from the analyzer onto the error
// taxonomy. Model-server failures never reach here; they arrive as
// error-variant reports instead.
func analysisError(err error) (string, *utils.CustomError) {
	switch {
	case errors.Is(err, utils.ErrUnsupportedFormat):
		return "invalid_file_format",
			utils.NewBadRequestError("Invalid file format. Please upload PDF, DOCX, or TXT.")
	case errors.Is(err, utils.ErrEmptyInput):
		return "no_extractable_text",
			utils.NewBadRequestError("Could not extract text from the file.")
	case errors.Is(err, utils.ErrExtractionFailed):
		return "extraction_failed", utils.NewExtractionError(err.Error())
	default:
		return "analysis_failed", utils.NewInternalServerError(err.Error())
	}
}
