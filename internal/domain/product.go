package domain

// ProductSlug identifica um produto do portfólio monitorado pelo dashboard
type ProductSlug string

const (
	ProductSomara   ProductSlug = "somara"
	ProductULink    ProductSlug = "ulink"
	ProductPushFire ProductSlug = "pushfire"
)

// Product descreve a configuração estática de um produto
type Product struct {
	Slug               ProductSlug
	Name               string
	AnalyticsProperty  string
	HasBusinessMetrics bool
	HasSomaraMetrics   bool
	HasPushFireMetrics bool
}

// GetProduct retorna a configuração do produto pelo slug, ou nil se não existir
func GetProduct(products []Product, slug string) *Product {
	for i := range products {
		if products[i].Slug == ProductSlug(slug) {
			return &products[i]
		}
	}
	return nil
}

// IsValidProductSlug verifica se o slug informado corresponde a um produto conhecido
func IsValidProductSlug(products []Product, slug string) bool {
	return GetProduct(products, slug) != nil
}
