package invoice

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// DocumentsUseCase genera las representaciones descargables de una factura (PDF y XML).
type DocumentsUseCase struct {
	repo      invoicedomain.Gateway
	pdf       InvoicePDFGenerator
	xmlWriter InvoiceXMLBuilder
}

// NewDocumentsUseCase construye el caso de uso inyectando sus generadores.
func NewDocumentsUseCase(repo invoicedomain.Gateway, pdf InvoicePDFGenerator, xmlWriter InvoiceXMLBuilder) *DocumentsUseCase {
	return &DocumentsUseCase{repo: repo, pdf: pdf, xmlWriter: xmlWriter}
}

// RenderPDF carga la factura y genera su PDF.
//
// Retorna domain.ErrNotFound si la factura no existe.
func (uc *DocumentsUseCase) RenderPDF(ctx context.Context, invoiceID string) (*dto.InvoiceDocument, error) {
	inv, err := uc.repo.Find(ctx, shared.ID(invoiceID))
	if err != nil {
		return nil, err
	}
	content, err := uc.pdf.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return &dto.InvoiceDocument{
		Filename:    filename(inv, "pdf"),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// ExportXML carga la factura y la serializa a XML junto con el digest canónico.
func (uc *DocumentsUseCase) ExportXML(ctx context.Context, invoiceID string) (*dto.InvoiceDocument, error) {
	inv, err := uc.repo.Find(ctx, shared.ID(invoiceID))
	if err != nil {
		return nil, err
	}
	content, digest, err := uc.xmlWriter.BuildInvoiceXML(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("xml: generación fallida: %w", err)
	}
	return &dto.InvoiceDocument{
		Filename:    filename(inv, "xml"),
		ContentType: "application/xml",
		Content:     content,
		Digest:      digest,
	}, nil
}

func filename(inv *invoicedomain.Invoice, ext string) string {
	return fmt.Sprintf("invoice_%s.%s", inv.ID(), ext)
}
