// Package documents valida e formata documentos brasileiros: CPF, CNPJ,
// PIS/PASEP, título de eleitor e CEP.
//
// Todos os validadores removem caracteres não numéricos antes de verificar
// tamanho e dígitos verificadores. Nenhum deles retorna erro: o motivo da
// rejeição vai em DocumentCheckResult.ErrorKind.
package documents

import (
	"strings"
)

// OnlyDigits remove todos os caracteres que não são dígitos ASCII
func OnlyDigits(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit verifica sequências como 00000000000 ou 11111111111
func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// toInts converte uma string de dígitos em inteiros
func toInts(digits string) []int {
	out := make([]int, len(digits))
	for i := range digits {
		out[i] = int(digits[i] - '0')
	}
	return out
}

// weightedSum soma digits[i]*weights[i]
func weightedSum(digits []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum
}

// mod11Digit converte o resto em dígito: 0 se resto < 2, senão 11 - resto
func mod11Digit(sum int) int {
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// mask aplica um padrão onde '#' é substituído pelos dígitos em ordem.
// Se a quantidade de dígitos não bate com o padrão, devolve digits sem máscara.
func mask(digits, pattern string) string {
	if strings.Count(pattern, "#") != len(digits) {
		return digits
	}
	var b strings.Builder
	b.Grow(len(pattern))
	i := 0
	for _, r := range pattern {
		if r == '#' {
			b.WriteByte(digits[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
