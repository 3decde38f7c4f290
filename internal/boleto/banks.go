package boleto

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnknownBank é o nome devolvido para códigos fora do registro
const UnknownBank = "Unknown"

//go:embed banks.yaml
var banksYAML []byte

// Bank é um banco emissor
type Bank struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Registry mapeia códigos COMPE para nomes de bancos
type Registry struct {
	Version string `yaml:"version"`
	Banks   []Bank `yaml:"banks"`

	byCode map[string]string
}

// LoadRegistry lê um registro de bancos em YAML
func LoadRegistry(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("falha ao ler registro de bancos: %w", err)
	}

	r.byCode = make(map[string]string, len(r.Banks))
	for _, b := range r.Banks {
		if len(b.Code) != 3 || !isDigits(b.Code) {
			return nil, fmt.Errorf("código de banco inválido no registro: %q", b.Code)
		}
		if _, dup := r.byCode[b.Code]; dup {
			return nil, fmt.Errorf("código de banco duplicado no registro: %s", b.Code)
		}
		r.byCode[b.Code] = b.Name
	}
	return &r, nil
}

// Name retorna o nome do banco ou "Unknown"
func (r *Registry) Name(code string) string {
	if name, ok := r.byCode[code]; ok {
		return name
	}
	return UnknownBank
}

// Banks é o registro embutido no binário
var Banks = mustLoadRegistry(banksYAML)

func mustLoadRegistry(data []byte) *Registry {
	r, err := LoadRegistry(data)
	if err != nil {
		panic(err)
	}
	return r
}
