package domain

// BriefFile é um arquivo enviado pelo caller para extração ou contexto.
type BriefFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// BriefRequest carrega todo o estado de uma ação de geração de brief.
// O estado é explícito e escopado por requisição; nada fica em
// variáveis globais entre uma geração e outra.
type BriefRequest struct {
	WeekID            string
	Notes             string
	StyleSample       string
	SystemInstruction string
	MetricsFiles      []BriefFile
	MarketFiles       []BriefFile
}

// BriefWarning reporta uma falha recuperada localmente durante o
// processamento de um arquivo do lote. O lote continua após o aviso.
type BriefWarning struct {
	Code     string `json:"code"`
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// BriefResult é o produto de uma geração: o texto do brief, as métricas
// extraídas (já mescladas e persistidas) e os avisos acumulados.
type BriefResult struct {
	WeekID   string           `json:"week_id"`
	Brief    string           `json:"brief"`
	Metrics  WeeklyMetricsSet `json:"metrics"`
	Warnings []BriefWarning   `json:"warnings,omitempty"`
}
