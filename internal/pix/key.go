package pix

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/magnani/brtools/internal/documents"
	"github.com/magnani/brtools/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateKey valida uma chave PIX conforme o tipo informado.
// Chaves inválidas retornam Valid=false; apenas um tipo desconhecido retorna erro.
func ValidateKey(key string, keyType domain.PixKeyType) (*domain.PixKeyResult, error) {
	keyType = domain.PixKeyType(strings.ToLower(strings.TrimSpace(string(keyType))))
	if !keyType.IsValid() {
		return nil, domain.Errorf(domain.KindUnknownEnumValue, "key_type",
			"tipo de chave desconhecido %q (use cpf, cnpj, email, phone ou random)", keyType)
	}

	key = strings.TrimSpace(key)
	result := &domain.PixKeyResult{Key: key, KeyType: keyType}
	if key == "" {
		return invalidKey(result, domain.KindInvalidFormat, "chave PIX é obrigatória"), nil
	}

	switch keyType {
	case domain.PixKeyCPF:
		return fromDocument(result, documents.ValidateCPF(key)), nil
	case domain.PixKeyCNPJ:
		return fromDocument(result, documents.ValidateCNPJ(key)), nil
	case domain.PixKeyEmail:
		return validateEmail(result), nil
	case domain.PixKeyPhone:
		return validatePhone(result), nil
	default:
		return validateRandom(result), nil
	}
}

func invalidKey(result *domain.PixKeyResult, kind domain.Kind, message string) *domain.PixKeyResult {
	result.Valid = false
	result.ErrorKind = kind
	result.Message = message
	return result
}

func fromDocument(result *domain.PixKeyResult, check domain.DocumentCheckResult) *domain.PixKeyResult {
	if !check.Valid {
		return invalidKey(result, check.ErrorKind, check.Message)
	}
	result.Valid = true
	// O DICT registra CPF/CNPJ apenas com dígitos
	result.Formatted = check.Unformatted
	return result
}

func validateEmail(result *domain.PixKeyResult) *domain.PixKeyResult {
	if len(result.Key) > 77 {
		return invalidKey(result, domain.KindInvalidFormat, "e-mail excede 77 caracteres")
	}
	if !emailPattern.MatchString(result.Key) {
		return invalidKey(result, domain.KindInvalidFormat, "e-mail em formato inválido")
	}
	result.Valid = true
	result.Formatted = strings.ToLower(result.Key)
	return result
}

// validatePhone aceita 13 dígitos com DDI 55 ou 11 dígitos (DDD + número)
func validatePhone(result *domain.PixKeyResult) *domain.PixKeyResult {
	digits := documents.OnlyDigits(result.Key)
	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "55"):
		result.Formatted = "+" + digits
	case len(digits) == 11:
		result.Formatted = "+55" + digits
	default:
		return invalidKey(result, domain.KindInvalidFormat,
			"telefone deve ter 11 dígitos (DDD + número) ou 13 dígitos começando com 55")
	}
	result.Valid = true
	return result
}

// validateRandom aceita apenas UUID versão 4 no formato canônico com hífens
func validateRandom(result *domain.PixKeyResult) *domain.PixKeyResult {
	if len(result.Key) != 36 {
		return invalidKey(result, domain.KindInvalidFormat, "chave aleatória deve ser um UUID v4 com 36 caracteres")
	}
	id, err := uuid.Parse(result.Key)
	if err != nil {
		return invalidKey(result, domain.KindInvalidFormat, "chave aleatória não é um UUID válido")
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		return invalidKey(result, domain.KindInvalidFormat, "chave aleatória deve ser UUID versão 4")
	}
	result.Valid = true
	result.Formatted = id.String()
	return result
}
