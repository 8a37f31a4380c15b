package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"task-manager/internal/controller"
	"task-manager/internal/errors"

	"github.com/jung-kurt/gofpdf"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Format identifies a supported export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", errors.NewInvalidInputError(fmt.Sprintf("unsupported export format %q (json, csv, pdf)", raw), nil)
}

// DefaultFilename returns the conventional output name for a format.
func DefaultFilename(format Format) string {
	return "tasks." + string(format)
}

// Exporter renders task list snapshots into portable formats. It is
// read-only over the store: callers hand it the same sorted view the
// frontends render.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders tasks in the given format, preserving their order.
func (e *Exporter) Export(tasks []controller.TaskView, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return e.exportJSON(tasks)
	case FormatCSV:
		return e.exportCSV(tasks)
	case FormatPDF:
		return e.exportPDF(tasks)
	default:
		return nil, errors.NewInvalidInputError(fmt.Sprintf("unsupported export format %q (json, csv, pdf)", format), nil)
	}
}

func (e *Exporter) exportJSON(tasks []controller.TaskView) ([]byte, error) {
	if tasks == nil {
		tasks = []controller.TaskView{}
	}
	return json.MarshalIndent(tasks, "", "  ")
}

func (e *Exporter) exportCSV(tasks []controller.TaskView) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"ID", "Description", "DateTime", "When", "CreatedAt"}); err != nil {
		return nil, err
	}
	for _, task := range tasks {
		row := []string{
			task.ID,
			task.Description,
			task.DateTime,
			task.When,
			task.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func (e *Exporter) exportPDF(tasks []controller.TaskView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(40, 6, fmt.Sprintf("Generated %s", timeNow().Format("02/01/2006 15:04")))
	pdf.Ln(10)

	widths := []float64{30, 70, 45, 45}
	headers := []string{"ID", "Description", "When", "Created"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetFillColor(245, 245, 245)
	fill := false
	for _, task := range tasks {
		cells := []string{
			task.ID,
			task.Description,
			task.When,
			task.CreatedAt.Format("02/01/2006 15:04"),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	if len(tasks) == 0 {
		pdf.CellFormat(190, 6, "No tasks.", "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
