// Package pdf renders the printable documents of the visit register using
// Maroto v2.
//
// A4 register layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  QUÂN ĐỘI NHÂN DÂN VIỆT NAM          │  SỔ ĐĂNG KÝ THĂM     │
//	│  <đơn vị>                            │  Ngày: <ngày>        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: STT | Thân nhân | SĐT | Quân nhân | Đơn vị | Giờ |  │
//	│         Trạng thái                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Tổng số lượt  +  khối ký tên CÁN BỘ PHỤ TRÁCH              │
//	└─────────────────────────────────────────────────────────────┘
//
// The gate pass is a separate one-page document carrying the visit code as a
// QR image for scanning at the gate.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/application/ports"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 27, Green: 77, Blue: 42}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implements ports.ReportPDFGenerator with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateVisitReport renders the register and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateVisitReport(_ context.Context, report *dto.VisitReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sổ đăng ký thăm quân nhân", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(len(report.Rows)))
	m.AddRows(signatureRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: render register: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateVisitPass renders the one-page gate pass for an approved request.
func (g *MarotoReportGenerator) GenerateVisitPass(_ context.Context, r *entity.VisitRequest) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Giấy hẹn thăm quân nhân", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("QUÂN ĐỘI NHÂN DÂN VIỆT NAM", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center,
			Color: colorPrimary, Top: 1,
		}),
		text.New("GIẤY HẸN THĂM QUÂN NHÂN", props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 7,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	m.AddRows(
		field("Thân nhân:", r.VisitorName),
		field("Số điện thoại:", r.VisitorPhone),
		field("Quân nhân được thăm:", r.SoldierName+" ("+r.SoldierRank+")"),
		field("Đơn vị:", r.UnitComposite()),
		field("Ngày thăm:", r.VisitDate),
		field("Khung giờ:", r.TimeSlot),
	)

	m.AddRows(line.NewRow(2))
	m.AddRows(row.New(48).Add(
		col.New(5).Add(code.NewQr(r.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(7).Add(
			text.New("Mã hẹn:", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6, Left: 2,
			}),
			text.New(r.ID, props.Text{
				Style: fontstyle.Bold, Size: 20, Top: 12, Left: 2,
				Color: colorPrimary,
			}),
			text.New("Xuất trình mã này cùng CCCD\ntại cổng đơn vị khi đến thăm.", props.Text{
				Size: 8, Top: 26, Left: 2, Color: colorGray,
			}),
		),
	))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Giấy hẹn chỉ có giá trị trong ngày thăm đã duyệt. "+
				"Không mang chất cấm, thiết bị ghi hình vào khu vực đơn vị.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: render gate pass: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: national header on the left, register title and date on the right.
func headerRow(report *dto.VisitReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("QUÂN ĐỘI NHÂN DÂN VIỆT NAM", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(report.UnitName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SỔ ĐĂNG KÝ THĂM QUÂN NHÂN", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Ngày: "+report.Date, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("STT", 1, align.Center),
		h("Họ tên Thân nhân", 2, align.Left),
		h("SĐT", 2, align.Left),
		h("Quân nhân được thăm", 2, align.Left),
		h("Đơn vị", 2, align.Left),
		h("Thời gian", 1, align.Center),
		h("Trạng thái", 2, align.Center),
	)
}

func tableRows(rows []dto.ReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", d.Seq), 1, align.Center),
			cell(d.VisitorName, 2, align.Left),
			cell(d.VisitorPhone, 2, align.Left),
			cell(d.SoldierName, 2, align.Left),
			cell(d.Unit, 2, align.Left),
			cell(d.TimeSlot, 1, align.Center),
			cell(d.StatusLabel, 2, align.Center),
		))
	}
	return result
}

func summaryRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Tổng số lượt đăng ký: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		}),
	))
}

// signatureRows: signing block on the right, empty space for the wet signature.
func signatureRows() []core.Row {
	return []core.Row{
		row.New(10),
		row.New(8).Add(
			col.New(7),
			col.New(5).Add(text.New("CÁN BỘ PHỤ TRÁCH", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
			})),
		),
		row.New(6).Add(
			col.New(7),
			col.New(5).Add(text.New("(Ký, ghi rõ họ tên)", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			})),
		),
	}
}
