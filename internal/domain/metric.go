package domain

// MetricNotAvailable é o valor sentinela gravado quando a extração
// encontrou a marca mas não o número correspondente.
const MetricNotAvailable = "N/A"

// BrandMetrics representa as variações de venda e margem de uma marca,
// como strings percentuais já formatadas (ex: "+5%", "-1%").
type BrandMetrics struct {
	Sales  string `json:"sales"`
	Margin string `json:"margin"`
}

// WeeklyMetricsSet é o conjunto de métricas extraído para uma semana,
// indexado pelo nome da marca. É o formato produzido pela extração,
// antes da persistência.
type WeeklyMetricsSet map[string]BrandMetrics

// Merge incorpora outro conjunto de métricas neste. Em caso de marca
// duplicada, o valor do conjunto recebido sobrescreve o existente
// (o arquivo mais recente vence).
func (s WeeklyMetricsSet) Merge(other WeeklyMetricsSet) {
	for brand, metrics := range other {
		s[brand] = metrics
	}
}

// Normalized retorna uma cópia do conjunto com os campos ausentes
// substituídos pelo sentinela "N/A".
func (s WeeklyMetricsSet) Normalized() WeeklyMetricsSet {
	normalized := make(WeeklyMetricsSet, len(s))

	for brand, metrics := range s {
		if metrics.Sales == "" {
			metrics.Sales = MetricNotAvailable
		}
		if metrics.Margin == "" {
			metrics.Margin = MetricNotAvailable
		}
		normalized[brand] = metrics
	}

	return normalized
}

// MetricRecord representa uma linha persistida de métricas semanais.
// O par (week_id, brand) é chave única no banco.
type MetricRecord struct {
	WeekID    string `json:"week_id"`
	Brand     string `json:"brand"`
	SalesVar  string `json:"sales_var"`
	MarginVar string `json:"margin_var"`
}

// ComparisonRow é uma linha da comparação entre duas semanas para uma
// marca. Campos nil indicam que a marca não foi registrada naquela
// semana; isso é diferente do valor "N/A", que é um sentinela gravado.
type ComparisonRow struct {
	Brand       string  `json:"brand"`
	WeekASales  *string `json:"week_a_sales"`
	WeekAMargin *string `json:"week_a_margin"`
	WeekBSales  *string `json:"week_b_sales"`
	WeekBMargin *string `json:"week_b_margin"`
}
