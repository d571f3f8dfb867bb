package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// InvoiceService consulta de facturas.
type InvoiceService interface {
	Find(ctx context.Context, in dto.FindInvoiceInput) (*dto.FindInvoiceOutput, error)
}

// InvoiceDocuments representaciones descargables de la factura.
type InvoiceDocuments interface {
	RenderPDF(ctx context.Context, invoiceID string) (*dto.InvoiceDocument, error)
	ExportXML(ctx context.Context, invoiceID string) (*dto.InvoiceDocument, error)
}

// DigestHeader header con el digest SHA-256 de la forma canónica del XML.
const DigestHeader = "X-Document-Digest"

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	svc  InvoiceService
	docs InvoiceDocuments
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(svc InvoiceService, docs InvoiceDocuments) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, docs: docs}
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoice
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.FindInvoiceOutput
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /invoice/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.Find(c.UserContext(), dto.FindInvoiceInput{ID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoice
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	doc, err := h.docs.RenderPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendDocument(c, doc)
}

// DownloadXML godoc
// @Summary      Descargar XML de la factura
// @Description  El header X-Document-Digest trae el SHA-256 (base64) de la forma canónica C14N.
// @Tags         invoice
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/{id}/xml [get]
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	doc, err := h.docs.ExportXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(DigestHeader, doc.Digest)
	return sendDocument(c, doc)
}

func sendDocument(c *fiber.Ctx, doc *dto.InvoiceDocument) error {
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, doc.Filename))
	return c.Send(doc.Content)
}
