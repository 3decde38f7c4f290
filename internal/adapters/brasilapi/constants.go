package brasilapi

const (
	// Produção
	ViaCEPURL    = "https://viacep.com.br"
	BrasilAPIURL = "https://brasilapi.com.br"

	// Identificação nas respostas (domain.Address.Source / domain.Company.Source)
	SourceViaCEP    = "viacep"
	SourceBrasilAPI = "brasilapi"

	userAgent = "brtools/1.0"
)
