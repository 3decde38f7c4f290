package pix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magnani/brtools/internal/domain"
)

const maxFieldLength = 99

// tlv codifica um campo como tag(2) + tamanho(2) + valor.
// O tamanho é em bytes.
func tlv(tag, value string) (string, error) {
	if len(value) > maxFieldLength {
		return "", domain.Errorf(domain.KindInvalidFormat, "",
			"campo %s excede %d bytes (%d)", tag, maxFieldLength, len(value))
	}
	return fmt.Sprintf("%s%02d%s", tag, len(value), value), nil
}

// tlvWriter acumula campos TLV guardando o primeiro erro
type tlvWriter struct {
	b   strings.Builder
	err error
}

func (w *tlvWriter) add(tag, value string) {
	if w.err != nil {
		return
	}
	field, err := tlv(tag, value)
	if err != nil {
		w.err = err
		return
	}
	w.b.WriteString(field)
}

func (w *tlvWriter) String() string {
	return w.b.String()
}

// rawField é um TLV lido do payload
type rawField struct {
	Tag   string
	Value string
}

// parseTLV quebra uma string em campos TLV consecutivos
func parseTLV(data string) ([]rawField, error) {
	var fields []rawField
	for pos := 0; pos < len(data); {
		if pos+4 > len(data) {
			return nil, domain.Errorf(domain.KindInvalidFormat, "payload", "campo truncado na posição %d", pos)
		}
		tag, rawLength := data[pos:pos+2], data[pos+2:pos+4]
		if !isDigit(rawLength[0]) || !isDigit(rawLength[1]) {
			return nil, domain.Errorf(domain.KindInvalidFormat, "payload", "tamanho inválido no campo %s", tag)
		}
		length, err := strconv.Atoi(rawLength)
		if err != nil {
			return nil, domain.Errorf(domain.KindInvalidFormat, "payload", "tamanho inválido no campo %s", tag)
		}
		start := pos + 4
		end := start + length
		if end > len(data) {
			return nil, domain.Errorf(domain.KindInvalidFormat, "payload", "campo %s excede o payload", tag)
		}
		fields = append(fields, rawField{Tag: tag, Value: data[start:end]})
		pos = end
	}
	return fields, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
