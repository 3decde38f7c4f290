// Package domain contém os tipos de valor compartilhados pelas ferramentas:
// resultados de validação de documentos, payloads PIX, boletos e folha de pagamento.
package domain

// DocumentType identifica o documento validado
type DocumentType string

const (
	DocumentCPF     DocumentType = "cpf"
	DocumentCNPJ    DocumentType = "cnpj"
	DocumentPIS     DocumentType = "pis"
	DocumentVoterID DocumentType = "voter_id"
	DocumentCEP     DocumentType = "cep"
)

// DocumentCheckResult é o resultado da validação de um documento.
// Formatted só é preenchido quando Valid é true.
type DocumentCheckResult struct {
	Document    DocumentType `json:"document"`
	Valid       bool         `json:"valid"`
	Formatted   string       `json:"formatted,omitempty"`
	Unformatted string       `json:"unformatted,omitempty"`
	ErrorKind   Kind         `json:"error_kind,omitempty"`
	Message     string       `json:"message,omitempty"`

	// Apenas para título de eleitor
	State     string `json:"state,omitempty"`
	StateCode string `json:"state_code,omitempty"`
}

// Invalid cria um resultado inválido com o motivo
func Invalid(doc DocumentType, digits string, kind Kind, message string) DocumentCheckResult {
	return DocumentCheckResult{
		Document:    doc,
		Valid:       false,
		Unformatted: digits,
		ErrorKind:   kind,
		Message:     message,
	}
}
