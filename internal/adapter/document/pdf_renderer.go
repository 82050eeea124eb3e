// Package document renders exported quotes as PDF documents.
package document

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"go.uber.org/zap"

	"mvz_quote/internal/config"
	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/domain/pricing"
	"mvz_quote/internal/domain/quote"
	"mvz_quote/internal/locale"
	"mvz_quote/internal/usecase/interfaces"
)

const contentTypePDF = "application/pdf"

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
	brandBlue  = color.Color{Red: 0, Green: 86, Blue: 145}
)

// PDFRenderer lays out a QuoteExport as an A4 quote document.

type PDFRenderer struct {
	business config.BusinessConfig
	catalog  *locale.Catalog
	logger   *zap.Logger
}

var _ interfaces.IQuoteDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(business config.BusinessConfig, catalog *locale.Catalog, logger *zap.Logger) *PDFRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFRenderer{business: business, catalog: catalog, logger: logger}
}

func (r *PDFRenderer) Render(ctx context.Context, export entities.QuoteExport) (entities.QuoteDocument, error) {
	if err := ctx.Err(); err != nil {
		return entities.QuoteDocument{}, err
	}

	c := r.layout(export)
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)
	draw(m, c)

	buf, err := m.Output()
	if err != nil {
		r.logger.Error("[quote][document] failed to generate PDF", zap.Error(err))
		return entities.QuoteDocument{}, fmt.Errorf("render quote pdf: %w", err)
	}

	r.logger.Info("[quote][document] quote rendered",
		zap.Int("lines", len(export.Lines)),
		zap.Int("bytes", buf.Len()),
	)
	return entities.QuoteDocument{
		FileName:    export.FileName(),
		ContentType: contentTypePDF,
		Content:     buf.Bytes(),
	}, nil
}

type labeledValue struct {
	Label string
	Value string
}

type itemBlock struct {
	Heading string
	Details []labeledValue
	Price   string
}

// content is everything printed on the document, already localized.
type content struct {
	BusinessName string
	BusinessInfo []string
	Title        string
	Date         string
	CustomerHead string
	Customer     []labeledValue
	ItemsHead    string
	Items        []itemBlock
	TotalLabel   string
	Total        string
	Footer       []string
}

func (r *PDFRenderer) layout(export entities.QuoteExport) content {
	loc := r.catalog.Localizer(export.Locale)
	text := func(id string) string { return loc.Text(id, nil) }

	info := []string{r.business.Address}
	if len(r.business.Phones) > 0 {
		info = append(info, text(locale.MsgDocPhone)+": "+strings.Join(r.business.Phones, ", "))
	}

	contact := quote.ReviewContact(export.Contact)
	c := content{
		BusinessName: r.business.Name,
		BusinessInfo: info,
		Title:        text(locale.MsgDocTitle),
		Date:         text(locale.MsgDocDate) + ": " + export.IssuedAt.Format("02.01.2006"),
		CustomerHead: text(locale.MsgDocCustomer),
		Customer: []labeledValue{
			{text(locale.MsgDocName), contact.Name},
			{text(locale.MsgDocEmail), contact.Email},
			{text(locale.MsgDocPhone), contact.Phone},
			{text(locale.MsgDocAddress), contact.Address},
			{text(locale.MsgDocMessage), contact.Message},
		},
		ItemsHead:  text(locale.MsgDocItems),
		TotalLabel: text(locale.MsgDocTotal),
		Total:      pricing.FormatEUR(export.Total),
	}

	for _, line := range export.Lines {
		item := line.Item
		details := []labeledValue{
			{text(locale.MsgDocDimensions), formatDimension(item.Width) + " × " + formatDimension(item.Height) + " cm"},
			{text(locale.MsgDocMaterial), text(locale.MaterialID(item.Material))},
		}
		if item.Glass.IsPresent() {
			details = append(details, labeledValue{text(locale.MsgDocGlass), text(locale.GlassID(item.Glass))})
		}
		details = append(details,
			labeledValue{text(locale.MsgDocColor), text(locale.ColorID(item.Color))},
			labeledValue{text(locale.MsgDocQuantity), strconv.Itoa(pricing.EffectiveQuantity(item))},
		)
		c.Items = append(c.Items, itemBlock{
			Heading: text(locale.ItemTypeID(item.Type)) + " #" + strconv.Itoa(line.Position),
			Details: details,
			Price:   text(locale.MsgDocPrice) + ": " + pricing.FormatEUR(line.Price),
		})
	}

	c.Footer = append(c.Footer,
		loc.Text(locale.MsgDocValidity, map[string]any{"Days": export.ValidityDays}),
		text(locale.MsgDocInstallation),
	)
	c.Footer = append(c.Footer, r.business.FooterLines...)
	return c
}

func formatDimension(d entities.Dimension) string {
	return strconv.FormatFloat(d.OrZero(), 'f', -1, 64)
}

func draw(m pdf.Maroto, c content) {
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(c.BusinessName, props.Text{Size: 16, Style: consts.Bold, Color: brandBlue})
		})
	})
	for _, line := range c.BusinessInfo {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(8, func() {})
	m.Row(12, func() {
		m.Col(8, func() {
			m.Text(c.Title, props.Text{Size: 14, Style: consts.Bold, Color: darkGray})
		})
		m.Col(4, func() {
			m.Text(c.Date, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})

	heading(m, c.CustomerHead)
	for _, f := range c.Customer {
		detailRow(m, f)
	}

	heading(m, c.ItemsHead)
	for _, item := range c.Items {
		m.Row(7, func() {
			m.Col(8, func() {
				m.Text(item.Heading, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
			})
			m.Col(4, func() {
				m.Text(item.Price, props.Text{Size: 10, Style: consts.Bold, Color: darkGray, Align: consts.Right})
			})
		})
		for _, d := range item.Details {
			detailRow(m, d)
		}
		m.Row(3, func() {})
	}

	m.Line(1)
	m.Row(10, func() {
		m.Col(8, func() {
			m.Text(c.TotalLabel, props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(4, func() {
			m.Text(c.Total, props.Text{Size: 12, Style: consts.Bold, Color: brandBlue, Align: consts.Right})
		})
	})

	m.Row(12, func() {})
	for _, line := range c.Footer {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{Size: 8, Color: mediumGray})
			})
		})
	}
}

func heading(m pdf.Maroto, title string) {
	m.Row(6, func() {})
	m.Row(7, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{Size: 11, Style: consts.Bold, Color: brandBlue})
		})
	})
}

func detailRow(m pdf.Maroto, lv labeledValue) {
	m.Row(5, func() {
		m.Col(3, func() {
			m.Text(lv.Label+":", props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(9, func() {
			m.Text(lv.Value, props.Text{Size: 9, Color: darkGray})
		})
	})
}
