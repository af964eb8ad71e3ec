// Package export serializa el historial de entradas para intercambio con
// sistemas externos (ERP) en XML.
package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

var _ report.HistoryExporter = (*XMLExporter)(nil)

// XMLExporter implementa report.HistoryExporter construyendo el documento con etree.
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// ExportInboundHistory genera:
//
//	<inboundHistory productId="..." sku="..." generatedAt="...">
//	  <record id="..." batchNumber="...">
//	    <quantity>5</quantity>
//	    <unitPrice>2.00</unitPrice>
//	    ...
//	  </record>
//	</inboundHistory>
func (e *XMLExporter) ExportInboundHistory(product *entity.Product, records []*entity.InboundRecord) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inboundHistory")
	root.CreateAttr("productId", product.ID)
	root.CreateAttr("sku", product.SKU)
	root.CreateAttr("productName", product.Name)
	root.CreateAttr("generatedAt", time.Now().Format(time.RFC3339))

	for _, r := range records {
		rec := root.CreateElement("record")
		rec.CreateAttr("id", strconv.FormatInt(r.ID, 10))
		rec.CreateAttr("batchNumber", r.BatchNumber)
		rec.CreateElement("quantity").SetText(strconv.FormatInt(r.Quantity, 10))
		rec.CreateElement("unitPrice").SetText(r.UnitPrice.StringFixed(2))
		rec.CreateElement("totalPrice").SetText(r.TotalPrice.StringFixed(2))
		rec.CreateElement("inboundDate").SetText(r.InboundDate.Format(time.DateOnly))
		rec.CreateElement("status").SetText(r.Status)
		if r.Supplier != "" {
			rec.CreateElement("supplier").SetText(r.Supplier)
		}
		if r.WarehouseLocation != "" {
			rec.CreateElement("warehouseLocation").SetText(r.WarehouseLocation)
		}
		if r.Notes != "" {
			rec.CreateElement("notes").SetText(r.Notes)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
