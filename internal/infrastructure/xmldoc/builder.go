// Package xmldoc serializa facturas a un documento XML tipo UBL 2.1 y calcula su digest canónico.
package xmldoc

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appinvoice "github.com/jhoicas/ecommerce-api/internal/application/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/invoice"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

var _ appinvoice.InvoiceXMLBuilder = (*Builder)(nil)

// Builder construye el XML de la factura.
type Builder struct {
	currency string
}

// NewBuilder crea el builder. currency vacío usa "USD".
func NewBuilder(currency string) *Builder {
	if currency == "" {
		currency = "USD"
	}
	return &Builder{currency: currency}
}

// BuildInvoiceXML devuelve el documento indentado y el digest SHA-256 (base64) de su forma canónica C14N.
func (b *Builder) BuildInvoiceXML(_ context.Context, inv *invoice.Invoice) ([]byte, string, error) {
	doc := b.document(inv)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

func (b *Builder) document(inv *invoice.Invoice) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	root.CreateElement("cbc:UBLVersionID").SetText("2.1")
	root.CreateElement("cbc:ID").SetText(inv.ID().String())
	root.CreateElement("cbc:IssueDate").SetText(inv.CreatedAt().UTC().Format("2006-01-02"))
	root.CreateElement("cbc:IssueTime").SetText(inv.CreatedAt().UTC().Format("15:04:05Z"))
	root.CreateElement("cbc:DocumentCurrencyCode").SetText(b.currency)
	root.CreateElement("cbc:LineCountNumeric").SetText(strconv.Itoa(len(inv.Items)))

	// ---- Adquiriente
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	party.CreateElement("cac:PartyIdentification").CreateElement("cbc:ID").SetText(inv.Document)
	party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(inv.Name)
	addr := party.CreateElement("cac:PostalAddress")
	addr.CreateElement("cbc:StreetName").SetText(inv.Address.Street())
	addr.CreateElement("cbc:BuildingNumber").SetText(inv.Address.Number())
	if c := inv.Address.Complement(); c != "" {
		addr.CreateElement("cbc:AdditionalStreetName").SetText(c)
	}
	addr.CreateElement("cbc:CityName").SetText(inv.Address.City())
	addr.CreateElement("cbc:CountrySubentity").SetText(inv.Address.State())
	addr.CreateElement("cbc:PostalZone").SetText(inv.Address.ZipCode())

	// ---- Totales
	total := inv.Total().StringFixed(2)
	monetary := root.CreateElement("cac:LegalMonetaryTotal")
	b.amount(monetary, "cbc:LineExtensionAmount", total)
	b.amount(monetary, "cbc:PayableAmount", total)

	// ---- Líneas
	for i, it := range inv.Items {
		line := root.CreateElement("cac:InvoiceLine")
		line.CreateElement("cbc:ID").SetText(strconv.Itoa(i + 1))
		qty := line.CreateElement("cbc:InvoicedQuantity")
		qty.CreateAttr("unitCode", "EA")
		qty.SetText("1")
		b.amount(line, "cbc:LineExtensionAmount", it.Price.StringFixed(2))
		item := line.CreateElement("cac:Item")
		item.CreateElement("cbc:Description").SetText(it.Name)
		item.CreateElement("cac:SellersItemIdentification").CreateElement("cbc:ID").SetText(it.ID().String())
		b.amount(line.CreateElement("cac:Price"), "cbc:PriceAmount", it.Price.StringFixed(2))
	}
	return doc
}

func (b *Builder) amount(parent *etree.Element, tag, value string) {
	el := parent.CreateElement(tag)
	el.CreateAttr("currencyID", b.currency)
	el.SetText(value)
}

// Digest canonicaliza (C14N 1.0) y devuelve el SHA-256 en base64.
// El mismo contenido lógico produce el mismo digest sin importar indentación ni orden de atributos.
func Digest(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
