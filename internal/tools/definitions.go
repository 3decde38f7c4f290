package tools

// Nomes das ferramentas expostas
const (
	ToolValidateCPF      = "validate_cpf"
	ToolValidateCNPJ     = "validate_cnpj"
	ToolValidatePIS      = "validate_pis"
	ToolValidateVoterID  = "validate_voter_id"
	ToolGeneratePixQR    = "generate_pix_qr"
	ToolDecodePixPayload = "decode_pix_payload"
	ToolValidatePixKey   = "validate_pix_key"
	ToolGenerateBoleto   = "generate_boleto"
	ToolParseBoletoLine  = "parse_boleto_line"
	ToolIncomeTax        = "calculate_income_tax"
	ToolINSS             = "calculate_inss"
	ToolFGTS             = "calculate_fgts"
	ToolVacation         = "calculate_vacation"
	ToolThirteenthSalary = "calculate_13th_salary"
	ToolLookupCEP        = "lookup_cep"
	ToolLookupCNPJ       = "lookup_cnpj"
)

// Definition descreve uma ferramenta e o JSON Schema dos seus argumentos
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Definitions lista todas as ferramentas, na ordem em que são anunciadas
func Definitions() []Definition {
	return []Definition{
		{
			Name:        ToolValidateCPF,
			Description: "Valida um CPF (com ou sem pontuação) e devolve o número formatado",
			InputSchema: object([]string{"cpf"}, props{
				"cpf": str("CPF, ex: 111.444.777-35"),
			}),
		},
		{
			Name:        ToolValidateCNPJ,
			Description: "Valida um CNPJ (com ou sem pontuação) e devolve o número formatado",
			InputSchema: object([]string{"cnpj"}, props{
				"cnpj": str("CNPJ, ex: 11.222.333/0001-81"),
			}),
		},
		{
			Name:        ToolValidatePIS,
			Description: "Valida um PIS/PASEP/NIT",
			InputSchema: object([]string{"pis"}, props{
				"pis": str("PIS, ex: 120.54282.02-4"),
			}),
		},
		{
			Name:        ToolValidateVoterID,
			Description: "Valida um título de eleitor e identifica a UF de emissão",
			InputSchema: object([]string{"voter_id"}, props{
				"voter_id": str("Título de eleitor com 12 dígitos"),
			}),
		},
		{
			Name:        ToolGeneratePixQR,
			Description: "Gera o payload PIX copia e cola (BR Code) e o QR Code em PNG",
			InputSchema: object([]string{"key", "amount", "receiver_name", "city"}, props{
				"key":           str("Chave PIX do recebedor"),
				"amount":        num("Valor em reais, maior que zero"),
				"receiver_name": str("Nome do recebedor (até 25 caracteres após normalização)"),
				"city":          str("Cidade do recebedor (até 15 caracteres após normalização)"),
				"description":   str("Descrição opcional exibida ao pagador"),
				"txid":          str("Identificador da transação (até 25 caracteres alfanuméricos)"),
				"size":          integer("Tamanho do QR Code em pixels", MinQRSize, MaxQRSize),
			}),
		},
		{
			Name:        ToolDecodePixPayload,
			Description: "Lê um payload PIX copia e cola, confere o CRC16 e devolve os campos",
			InputSchema: object([]string{"payload"}, props{
				"payload": str("Payload BR Code completo, terminando no CRC"),
			}),
		},
		{
			Name:        ToolValidatePixKey,
			Description: "Valida uma chave PIX do tipo informado e devolve a forma normalizada",
			InputSchema: object([]string{"key", "key_type"}, props{
				"key":      str("Chave PIX"),
				"key_type": enum("Tipo da chave", "cpf", "cnpj", "email", "phone", "random"),
			}),
		},
		{
			Name:        ToolGenerateBoleto,
			Description: "Gera código de barras e linha digitável de boleto (campo livre não bancário, apenas para testes)",
			InputSchema: object([]string{"bank_code", "amount", "due_date", "document_number"}, props{
				"bank_code":       str("Código do banco com 3 dígitos, ex: 001"),
				"amount":          num("Valor em reais, maior que zero"),
				"due_date":        str("Vencimento em YYYY-MM-DD ou DD/MM/YYYY"),
				"document_number": str("Número do documento (somente os dígitos são usados)"),
			}),
		},
		{
			Name:        ToolParseBoletoLine,
			Description: "Lê uma linha digitável de 47 dígitos, confere os dígitos verificadores e reconstrói o código de barras",
			InputSchema: object([]string{"typeable_line"}, props{
				"typeable_line": str("Linha digitável, com ou sem pontuação"),
			}),
		},
		{
			Name:        ToolIncomeTax,
			Description: "Calcula o IRPF mensal retido na fonte",
			InputSchema: object([]string{"monthly_income"}, props{
				"monthly_income": num("Rendimento bruto mensal"),
				"dependents":     integer("Número de dependentes", 0, 0),
			}),
		},
		{
			Name:        ToolINSS,
			Description: "Calcula a contribuição ao INSS (progressiva para empregados)",
			InputSchema: object([]string{"salary"}, props{
				"salary": num("Salário bruto mensal"),
				"type":   enum("Tipo de vínculo", "employee", "self-employed"),
			}),
		},
		{
			Name:        ToolFGTS,
			Description: "Calcula o depósito mensal de FGTS e a multa rescisória",
			InputSchema: object([]string{"salary"}, props{
				"salary": num("Salário bruto mensal"),
			}),
		},
		{
			Name:        ToolVacation,
			Description: "Calcula férias com terço constitucional, abono pecuniário e descontos",
			InputSchema: object([]string{"salary"}, props{
				"salary":    num("Salário bruto mensal"),
				"days":      integer("Dias de férias (padrão 30)", 0, 30),
				"sell_days": integer("Dias vendidos (padrão 0)", 0, 10),
			}),
		},
		{
			Name:        ToolThirteenthSalary,
			Description: "Calcula o 13º salário em duas parcelas",
			InputSchema: object([]string{"salary"}, props{
				"salary":        num("Salário bruto mensal"),
				"months_worked": integer("Meses trabalhados no ano (padrão 12)", 0, 12),
			}),
		},
		{
			Name:        ToolLookupCEP,
			Description: "Consulta o endereço de um CEP",
			InputSchema: object([]string{"cep"}, props{
				"cep": str("CEP com 8 dígitos"),
			}),
		},
		{
			Name:        ToolLookupCNPJ,
			Description: "Consulta os dados públicos de um CNPJ na Receita Federal",
			InputSchema: object([]string{"cnpj"}, props{
				"cnpj": str("CNPJ válido"),
			}),
		},
	}
}

type props map[string]interface{}

func object(required []string, properties props) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}(properties),
		"required":   required,
	}
}

func str(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func num(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

// integer com maximum 0 não impõe limite superior
func integer(description string, minimum, maximum int) map[string]interface{} {
	schema := map[string]interface{}{
		"type":        "integer",
		"description": description,
		"minimum":     minimum,
	}
	if maximum > 0 {
		schema["maximum"] = maximum
	}
	return schema
}

func enum(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description, "enum": values}
}
