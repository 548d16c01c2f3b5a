package extractor

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

const (
	mediaTypePDF  = "application/pdf"
	mediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mediaTypeTXT  = "text/plain"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
)

// Extractor converts uploaded documents into clean plain text.
type Extractor struct {
	logger *logrus.Logger
}

// New creates a new text extractor instance
func New() *Extractor {
	return &Extractor{
		logger: utils.GetLogger(),
	}
}

// SupportedFilename reports whether the filename carries one of the accepted
// extensions. Used by callers for cheap rejection before any extraction work.
func SupportedFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// Extract converts a document into cleaned plain text. Dispatch is by
// filename extension first, then by declared media type; uploaders often send
// generic or absent media types, so the filename wins when both are present.
func (e *Extractor) Extract(blob *models.DocumentBlob) (string, error) {
	ext := strings.ToLower(filepath.Ext(blob.Filename))

	var text string
	var err error

	switch {
	case ext == ".pdf" || (ext == "" && blob.MediaType == mediaTypePDF):
		text, err = extractPDF(blob.Data)
	case ext == ".docx" || (ext == "" && blob.MediaType == mediaTypeDOCX):
		text, err = extractDOCX(blob.Data)
	case ext == ".txt" || (ext == "" && strings.HasPrefix(blob.MediaType, mediaTypeTXT)):
		text, err = extractTXT(blob.Data)
	default:
		return "", fmt.Errorf("%w: %q (media type %q)", utils.ErrUnsupportedFormat, blob.Filename, blob.MediaType)
	}

	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"filename":   blob.Filename,
			"media_type": blob.MediaType,
		}).WithError(err).Error("Document parsing failed")
		return "", fmt.Errorf("%w: %v", utils.ErrExtractionFailed, err)
	}

	return CleanText(text), nil
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file is not valid UTF-8 text")
	}
	return string(data), nil
}

// CleanText collapses whitespace into the canonical extracted-text form:
// single newlines, single spaces, no leading or trailing whitespace. It is
// applied to every extraction result regardless of source format and is a
// no-op on already-clean text.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
