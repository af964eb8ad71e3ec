package dto

// ProductSearchResult elemento del listado de búsqueda por palabra clave.
type ProductSearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	Unit          string `json:"unit"`
	StockQuantity int64  `json:"stock_quantity"`
}

// ProductDetailResponse detalle de producto con su snapshot de stock derivado.
type ProductDetailResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
	Unit            string `json:"unit"`
	StockQuantity   int64  `json:"stock_quantity"`
	MinStockAlert   int    `json:"min_stock_alert"`
	LastInboundDate string `json:"last_inbound_date,omitempty"`
	LowStock        bool   `json:"low_stock"`
}

// LowStockItemDTO elemento del listado de productos en alerta de stock.
type LowStockItemDTO struct {
	ProductID       string `json:"product_id"`
	Name            string `json:"name"`
	SKU             string `json:"sku"`
	Unit            string `json:"unit"`
	StockQuantity   int64  `json:"stock_quantity"`
	MinStockAlert   int    `json:"min_stock_alert"`
	LastInboundDate string `json:"last_inbound_date,omitempty"`
}
