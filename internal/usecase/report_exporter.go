package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/pkg/logger"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "DSR"

// reportHeaderRow is the 1-based row holding column labels; data follows it.
const reportHeaderRow = 4

type reportColumn struct {
	label string
	width float64
	value func(job *entity.Job) string
}

var reportColumns = []reportColumn{
	{"Job No", 14, func(j *entity.Job) string { return j.JobNo }},
	{"Importer", 36, func(j *entity.Job) string { return j.Importer }},
	{"Custom House", 22, func(j *entity.Job) string { return j.CustomHouse }},
	{"BE No", 14, func(j *entity.Job) string { return j.BeNo }},
	{"BE Date", 14, func(j *entity.Job) string { return j.BeDate.String() }},
	{"Containers", 30, containerNumbers},
	{"Detailed Status", 30, func(j *entity.Job) string { return string(j.DetailedStatus) }},
	{"Sort Date", 14, func(j *entity.Job) string { return StatusTieBreak(j).String() }},
}

func containerNumbers(job *entity.Job) string {
	numbers := make([]string, 0, len(job.ContainerNos))
	for _, c := range job.ContainerNos {
		if c.ContainerNumber != "" {
			numbers = append(numbers, c.ContainerNumber)
		}
	}
	return strings.Join(numbers, ", ")
}

// ReportExporter renders the DSR list as an XLSX workbook
type ReportExporter struct {
	lists  *JobListService
	logger logger.Logger
	now    func() time.Time
}

// NewReportExporter creates a new report exporter
func NewReportExporter(lists *JobListService, logger logger.Logger) *ReportExporter {
	return &ReportExporter{
		lists:  lists,
		logger: logger,
		now:    time.Now,
	}
}

// ReportFilename is the attachment name offered for a download.
func ReportFilename(year, status string) string {
	return fmt.Sprintf("dsr_%s_%s.xlsx", year, strings.ToLower(status))
}

// Export builds the workbook for every DSR job of year with the given status,
// in status rank order.
func (e *ReportExporter) Export(ctx context.Context, year, status string) ([]byte, error) {
	jobs, err := e.lists.Collect(ctx, "dsr", ListQuery{Year: year, Status: status})
	if err != nil {
		return nil, err
	}

	f, err := e.buildWorkbook(fmt.Sprintf("DSR %s - %s", year, status), jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	e.logger.Info("Report generated", "year", year, "status", status, "rows", len(jobs))
	return buf.Bytes(), nil
}

func (e *ReportExporter) buildWorkbook(title string, jobs []*entity.Job) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	f.SetCellValue(reportSheet, "A1", title)
	f.SetCellStyle(reportSheet, "A1", "A1", titleStyle)
	f.SetRowHeight(reportSheet, 1, 30)
	f.SetCellValue(reportSheet, "A2", fmt.Sprintf("Generated: %s", e.now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	for colIdx, col := range reportColumns {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, reportHeaderRow)
		f.SetCellValue(reportSheet, cell, col.label)
		f.SetCellStyle(reportSheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(reportSheet, name, name, col.width)
	}

	for rowIdx, job := range jobs {
		for colIdx, col := range reportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, reportHeaderRow+1+rowIdx)
			f.SetCellValue(reportSheet, cell, col.value(job))
			f.SetCellStyle(reportSheet, cell, cell, dataStyle)
		}
	}

	if len(jobs) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(reportColumns), reportHeaderRow+len(jobs))
		first, _ := excelize.CoordinatesToCellName(1, reportHeaderRow)
		if err := f.AutoFilter(reportSheet, first+":"+last, nil); err != nil {
			e.logger.Warn("Failed to set report auto filter", "error", err)
		}
	}

	return f, nil
}
