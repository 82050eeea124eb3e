package document

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mvz_quote/internal/config"
	"mvz_quote/internal/domain/entities"
	"mvz_quote/internal/locale"
)

func testExport() entities.QuoteExport {
	window := entities.NewLineItem("item-1", entities.ItemTypeWindow)
	window.Width = entities.DimensionOf(120)
	window.Height = entities.DimensionOf(150)

	door := entities.NewLineItem("item-2", entities.ItemTypeDoor)
	door.Width = entities.DimensionOf(90)
	door.Height = entities.DimensionOf(210)
	door.Quantity = 2

	return entities.QuoteExport{
		Contact: entities.ContactInfo{
			Name:  "Ana Novak",
			Email: "ana@example.si",
			Phone: "+386 31 234 567",
		},
		Lines: []entities.QuoteLine{
			{Position: 1, Item: window, Price: 270},
			{Position: 2, Item: door, Price: 1134},
		},
		Total:        1404,
		IssuedAt:     time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
		ValidityDays: 30,
		Locale:       "en",
	}
}

func newTestRenderer(t *testing.T) *PDFRenderer {
	t.Helper()
	return NewPDFRenderer(config.Defaults().Business, locale.MustCatalog(), nil)
}

func TestPDFRenderer_Render(t *testing.T) {
	r := newTestRenderer(t)

	doc, err := r.Render(context.Background(), testExport())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.FileName != "quote_2026-05-04.pdf" {
		t.Fatalf("unexpected file name %q", doc.FileName)
	}
	if doc.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", doc.ContentType)
	}
	if !bytes.HasPrefix(doc.Content, []byte("%PDF")) {
		t.Fatal("content is not a PDF")
	}
}

func TestPDFRenderer_CanceledContext(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, testExport()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPDFRenderer_Layout(t *testing.T) {
	r := newTestRenderer(t)
	c := r.layout(testExport())

	if c.BusinessName != "MVZ - PVC okna in vrata" {
		t.Fatalf("unexpected business name %q", c.BusinessName)
	}
	if c.Date != "Date: 04.05.2026" {
		t.Fatalf("unexpected date %q", c.Date)
	}
	if c.Total != "€1404.00" {
		t.Fatalf("unexpected total %q", c.Total)
	}

	t.Run("blank optional contact fields read N/A", func(t *testing.T) {
		for _, f := range c.Customer {
			if (f.Label == "Address" || f.Label == "Notes") && f.Value != "N/A" {
				t.Fatalf("expected N/A for %s, got %q", f.Label, f.Value)
			}
		}
	})

	t.Run("items keep order and only windows list glass", func(t *testing.T) {
		if len(c.Items) != 2 {
			t.Fatalf("expected 2 item blocks, got %d", len(c.Items))
		}
		if c.Items[0].Heading != "Window #1" || c.Items[1].Heading != "Door #2" {
			t.Fatalf("unexpected headings %q, %q", c.Items[0].Heading, c.Items[1].Heading)
		}
		if !hasDetail(c.Items[0], "Glass", "Double") {
			t.Fatal("window should list its glass")
		}
		if hasLabel(c.Items[1], "Glass") {
			t.Fatal("door must not list glass")
		}
		if !hasDetail(c.Items[1], "Dimensions", "90 × 210 cm") {
			t.Fatal("door dimensions missing")
		}
		if !hasDetail(c.Items[1], "Quantity", "2") {
			t.Fatal("door quantity missing")
		}
		if c.Items[1].Price != "Price: €1134.00" {
			t.Fatalf("unexpected door price %q", c.Items[1].Price)
		}
	})

	t.Run("footer carries validity installation and tagline", func(t *testing.T) {
		joined := strings.Join(c.Footer, "\n")
		for _, want := range []string{
			"valid for 30 days",
			"Includes installation",
			"25-letno tradicijo",
		} {
			if !strings.Contains(joined, want) {
				t.Fatalf("footer missing %q:\n%s", want, joined)
			}
		}
	})
}

func TestPDFRenderer_LayoutSlovenian(t *testing.T) {
	r := newTestRenderer(t)
	export := testExport()
	export.Locale = "sl"
	export.Contact.Address = "Okrog 5"

	c := r.layout(export)
	if c.Items[0].Heading != "Okno #1" {
		t.Fatalf("unexpected heading %q", c.Items[0].Heading)
	}
	if c.Customer[3].Value != "Okrog 5" {
		t.Fatalf("unexpected address %q", c.Customer[3].Value)
	}
}

func hasLabel(b itemBlock, label string) bool {
	for _, d := range b.Details {
		if d.Label == label {
			return true
		}
	}
	return false
}

func hasDetail(b itemBlock, label, value string) bool {
	for _, d := range b.Details {
		if d.Label == label && d.Value == value {
			return true
		}
	}
	return false
}
