// Package api exposes the statement converter over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/stmtscan/internal/extractor"
	"github.com/insightdelivered/stmtscan/internal/models"
	"github.com/insightdelivered/stmtscan/internal/scanner"
	"github.com/insightdelivered/stmtscan/internal/writer"
)

const version = "1.0.0"

// ConvertResponse is the JSON body returned by /api/convert.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	Phase        string               `json:"phase,omitempty"`
	Line         int                  `json:"line,omitempty"`
	Credits      []models.Transaction `json:"credits"`
	Debits       []models.Transaction `json:"debits"`
	CSV          string               `json:"csv,omitempty"`
	TotalCredits string               `json:"totalCredits,omitempty"`
	TotalDebits  string               `json:"totalDebits,omitempty"`
	Count        int                  `json:"count"`
	Version      string               `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "stmtscan"})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleConvert accepts a multipart statement upload (form field "file",
// either a PDF or an already-extracted text file) or a pasted "text" form
// value, scans it, and returns the credit and debit tables as JSON plus a
// combined CSV blob. A document that never reaches the terminal scan phase
// maps to 422 with the stuck phase and line number.
func HandleConvert(c *fiber.Ctx) error {
	strict := c.FormValue("strict") == "true"

	text := c.FormValue("text")
	if text == "" {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "no statement provided; upload form field 'file' or post 'text'")
		}
		text, err = readUpload(fh)
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
	}

	sc := &scanner.Scanner{Strict: strict}
	st, err := sc.Scan(text)
	if err != nil {
		var malformed *scanner.MalformedDocumentError
		if errors.As(err, &malformed) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ConvertResponse{
				Error:   err.Error(),
				Phase:   malformed.Phase.String(),
				Line:    malformed.Line,
				Credits: []models.Transaction{},
				Debits:  []models.Transaction{},
			})
		}
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	stmt := &models.Statement{Credits: st.Credits, Debits: st.Debits}
	// nil slices marshal to JSON null, not []
	if stmt.Credits == nil {
		stmt.Credits = []models.Transaction{}
	}
	if stmt.Debits == nil {
		stmt.Debits = []models.Transaction{}
	}

	var csvBuf bytes.Buffer
	if err := (&writer.CSVWriter{}).Write(&csvBuf, stmt); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Credits:      stmt.Credits,
		Debits:       stmt.Debits,
		CSV:          csvBuf.String(),
		TotalCredits: models.Total(stmt.Credits).StringFixed(2),
		TotalDebits:  models.Total(stmt.Debits).StringFixed(2),
		Count:        len(stmt.Credits) + len(stmt.Debits),
		Version:      version,
	})
}

// readUpload returns the statement text for an uploaded file: PDFs go
// through the extractor, anything else is taken as pre-extracted text.
func readUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		tmp, err := os.CreateTemp("", "statement-*.pdf")
		if err != nil {
			return "", fmt.Errorf("failed to create temp file: %w", err)
		}
		defer os.Remove(tmp.Name())

		if _, err := io.Copy(tmp, f); err != nil {
			tmp.Close()
			return "", fmt.Errorf("failed to save upload: %w", err)
		}
		tmp.Close()

		return extractor.ExtractText(tmp.Name())
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return string(data), nil
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Error:   msg,
		Credits: []models.Transaction{},
		Debits:  []models.Transaction{},
	})
}
