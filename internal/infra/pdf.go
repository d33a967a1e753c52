package infra

// pdf.go — Printable purchase-order document using go-pdf/fpdf.
// Generated on demand from GET /v1/compras/:id/pdf so the orden can be
// forwarded to the proveedor. The output file is saved to
// storagePath/orden_compra_{id}.pdf and streamed back to the client.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/webplotcentersj-hash/stock2/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateOrdenCompraPDF renders an A5 purchase-order sheet.
// orden.Articulo and orden.Solicitante must be preloaded by the caller.
// Returns the absolute path to the generated file.
func GenerateOrdenCompraPDF(orden *model.OrdenCompra, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("orden_compra_%s.pdf", orden.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "Orden de Compra", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, orden.CreatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(4)

	// ── Detail rows ──────────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.35, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW*0.65, 6, value, "", "L", false)
	}

	if orden.Articulo != nil {
		row("Articulo:", fmt.Sprintf("%s — %s", orden.Articulo.Codigo, orden.Articulo.Descripcion))
		row("Sector:", orden.Articulo.Sector)
	}
	row("Cantidad:", fmt.Sprintf("%d unidades", orden.Cantidad))
	row("Proveedor:", orden.Proveedor)
	row("Estado:", orden.Status)
	if orden.Solicitante != nil {
		row("Solicitado por:", orden.Solicitante.Name)
	}
	if orden.PedidoID != nil {
		row("Pedido origen:", orden.PedidoID.String())
	}

	if orden.Observaciones != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, "Observaciones", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.MultiCell(contentW, 5, orden.Observaciones, "", "L", false)
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Referencia interna: %s", orden.ID), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
