package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// decodeReader envuelve r según la codificación del archivo (utf-8 | latin1).
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// csvRecords lee el CSV con cabecera y devuelve cada fila como mapa columna -> valor.
// Acepta ',' o ';' como separador según la cabecera.
func csvRecords(r io.Reader, required ...string) ([]map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	text := strings.TrimPrefix(string(raw), "\ufeff")
	firstLine, _, _ := strings.Cut(text, "\n")

	cr := csv.NewReader(strings.NewReader(text))
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range required {
		if _, ok := cols[strings.ToLower(req)]; !ok {
			return nil, fmt.Errorf("falta columna %q", req)
		}
	}

	var out []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		row := make(map[string]string, len(cols))
		for name, i := range cols {
			if i < len(rec) {
				row[name] = strings.TrimSpace(rec[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// parseProducts columnas: id?, name, description, purchaseprice, salesprice?, stock.
func parseProducts(r io.Reader) ([]dto.AddProductInput, error) {
	rows, err := csvRecords(r, "name", "description", "purchasePrice", "stock")
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddProductInput, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		purchase, err := decimal.NewFromString(row["purchaseprice"])
		if err != nil {
			return nil, fmt.Errorf("línea %d: purchasePrice inválido %q", line, row["purchaseprice"])
		}
		stock, err := strconv.Atoi(row["stock"])
		if err != nil {
			return nil, fmt.Errorf("línea %d: stock inválido %q", line, row["stock"])
		}
		in := dto.AddProductInput{
			ID:            row["id"],
			Name:          row["name"],
			Description:   row["description"],
			PurchasePrice: &purchase,
			Stock:         &stock,
		}
		if s := row["salesprice"]; s != "" {
			sales, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("línea %d: salesPrice inválido %q", line, s)
			}
			in.SalesPrice = &sales
		}
		out = append(out, in)
	}
	return out, nil
}

// parseClients columnas: id?, name, email, document, street, number, complement?, city, state, zipcode.
func parseClients(r io.Reader) ([]dto.AddClientInput, error) {
	rows, err := csvRecords(r, "name", "email", "document", "street", "number", "city", "state", "zipCode")
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddClientInput, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.AddClientInput{
			ID:       row["id"],
			Name:     row["name"],
			Email:    row["email"],
			Document: row["document"],
			Address: &dto.AddressDTO{
				Street:     row["street"],
				Number:     row["number"],
				Complement: row["complement"],
				City:       row["city"],
				State:      row["state"],
				ZipCode:    row["zipcode"],
			},
		})
	}
	return out, nil
}
