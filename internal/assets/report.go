package assets

import (
	_ "embed"
	"fmt"
	"io"
)

//go:embed parameters.yaml
var defaultParameters []byte

// DefaultParameters returns the bundled parameters document.
func DefaultParameters() []byte {
	return append([]byte(nil), defaultParameters...)
}

// ReportTemplate is the data rendered by the report template
type ReportTemplate struct {
	Source      string
	Nodes       []ReportEntry
	Elements    []ReportEntry
	Subassembly []ReportEntry
}

// ReportEntry is a single named setting in a report section
type ReportEntry struct {
	Name  string
	Value string
}

func WriteReport(output io.Writer, templatePath string, templateData ReportTemplate) error {
	tmpl, err := ParseReportTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseReportTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
