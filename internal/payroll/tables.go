package payroll

import (
	"embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/magnani/brtools/internal/money"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// DefaultVersion é a versão das tabelas embutidas usada quando nenhum arquivo é informado
const DefaultVersion = "2024"

var cent = decimal.New(1, -2)

// Bracket é uma faixa de tabela progressiva. Max nulo indica faixa sem limite.
type Bracket struct {
	Min       decimal.Decimal
	Max       *decimal.Decimal
	Rate      decimal.Decimal
	Deduction decimal.Decimal
}

// Contains verifica se value está dentro da faixa (limite superior inclusivo)
func (b Bracket) Contains(value decimal.Decimal) bool {
	return b.Max == nil || value.LessThanOrEqual(*b.Max)
}

// IRPFTable é a tabela mensal do imposto de renda
type IRPFTable struct {
	EffectiveFrom      string
	DependentDeduction decimal.Decimal
	Brackets           []Bracket
}

// INSSTable é a tabela de contribuição previdenciária
type INSSTable struct {
	EffectiveFrom    string
	Ceiling          decimal.Decimal
	EmployerRate     decimal.Decimal
	SelfEmployedRate decimal.Decimal
	Brackets         []Bracket
}

// FGTSTable contém as alíquotas do FGTS
type FGTSTable struct {
	Rate              decimal.Decimal
	DismissalFineRate decimal.Decimal
	MonthsPerYear     int
}

// RateTable agrupa as tabelas de um ano. Atualizações anuais trocam o arquivo,
// não o código do cálculo.
type RateTable struct {
	Version string
	IRPF    IRPFTable
	INSS    INSSTable
	FGTS    FGTSTable
}

// Estruturas de leitura do YAML. Valores ficam como string e só viram
// decimal na conversão, para não passar por float64.
type rawBracket struct {
	Max       string `yaml:"max"`
	Rate      string `yaml:"rate"`
	Deduction string `yaml:"deduction"`
}

type rawTable struct {
	Version string `yaml:"version"`
	IRPF    struct {
		EffectiveFrom      string       `yaml:"effective_from"`
		DependentDeduction string       `yaml:"dependent_deduction"`
		Brackets           []rawBracket `yaml:"brackets"`
	} `yaml:"irpf"`
	INSS struct {
		EffectiveFrom    string       `yaml:"effective_from"`
		Ceiling          string       `yaml:"ceiling"`
		EmployerRate     string       `yaml:"employer_rate"`
		SelfEmployedRate string       `yaml:"self_employed_rate"`
		Brackets         []rawBracket `yaml:"brackets"`
	} `yaml:"inss"`
	FGTS struct {
		Rate              string `yaml:"rate"`
		DismissalFineRate string `yaml:"dismissal_fine_rate"`
		MonthsPerYear     int    `yaml:"months_per_year"`
	} `yaml:"fgts"`
}

// DefaultTables retorna as tabelas embutidas da versão padrão
func DefaultTables() (*RateTable, error) {
	return EmbeddedTables(DefaultVersion)
}

// EmbeddedTables retorna as tabelas embutidas de uma versão (ex: "2024")
func EmbeddedTables(version string) (*RateTable, error) {
	data, err := embeddedTables.ReadFile("tables/" + version + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("tabela %s não encontrada: %w", version, err)
	}
	return ParseTables(data)
}

// LoadTables lê as tabelas de um arquivo YAML. Caminho vazio usa as embutidas.
func LoadTables(path string) (*RateTable, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler tabelas %s: %w", path, err)
	}
	return ParseTables(data)
}

// ParseTables converte e valida um documento YAML de tabelas
func ParseTables(data []byte) (*RateTable, error) {
	var raw rawTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("falha ao ler YAML de tabelas: %w", err)
	}
	if raw.Version == "" {
		return nil, fmt.Errorf("tabelas sem versão")
	}

	p := &parser{}
	table := &RateTable{
		Version: raw.Version,
		IRPF: IRPFTable{
			EffectiveFrom:      raw.IRPF.EffectiveFrom,
			DependentDeduction: p.decimal("irpf.dependent_deduction", raw.IRPF.DependentDeduction),
			Brackets:           p.brackets("irpf", raw.IRPF.Brackets, cent),
		},
		INSS: INSSTable{
			EffectiveFrom:    raw.INSS.EffectiveFrom,
			Ceiling:          p.decimal("inss.ceiling", raw.INSS.Ceiling),
			EmployerRate:     p.decimal("inss.employer_rate", raw.INSS.EmployerRate),
			SelfEmployedRate: p.decimal("inss.self_employed_rate", raw.INSS.SelfEmployedRate),
			Brackets:         p.brackets("inss", raw.INSS.Brackets, decimal.Zero),
		},
		FGTS: FGTSTable{
			Rate:              p.decimal("fgts.rate", raw.FGTS.Rate),
			DismissalFineRate: p.decimal("fgts.dismissal_fine_rate", raw.FGTS.DismissalFineRate),
			MonthsPerYear:     raw.FGTS.MonthsPerYear,
		},
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("tabelas %s inválidas: %w", table.Version, err)
	}
	return table, nil
}

// parser guarda o primeiro erro de conversão
type parser struct {
	err error
}

func (p *parser) decimal(field, value string) decimal.Decimal {
	if p.err != nil {
		return decimal.Zero
	}
	d, err := money.Parse(value)
	if err != nil {
		p.err = fmt.Errorf("%s: %w", field, err)
		return decimal.Zero
	}
	return d
}

// brackets converte as faixas; o mínimo de cada faixa é o máximo da anterior
// somado de gap (um centavo no IRPF, zero no INSS)
func (p *parser) brackets(name string, raw []rawBracket, gap decimal.Decimal) []Bracket {
	out := make([]Bracket, 0, len(raw))
	lower := decimal.Zero
	for i, rb := range raw {
		field := fmt.Sprintf("%s.brackets[%d]", name, i)
		b := Bracket{Min: lower, Rate: p.decimal(field+".rate", rb.Rate)}
		if rb.Deduction != "" {
			b.Deduction = p.decimal(field+".deduction", rb.Deduction)
		}
		if rb.Max != "" {
			upper := p.decimal(field+".max", rb.Max)
			b.Max = &upper
			lower = upper.Add(gap)
		}
		out = append(out, b)
	}
	return out
}

func (t *RateTable) validate() error {
	if err := validateBrackets("irpf", t.IRPF.Brackets); err != nil {
		return err
	}
	if t.IRPF.Brackets[len(t.IRPF.Brackets)-1].Max != nil {
		return fmt.Errorf("irpf: última faixa deve ser ilimitada")
	}
	if err := validateBrackets("inss", t.INSS.Brackets); err != nil {
		return err
	}
	last := t.INSS.Brackets[len(t.INSS.Brackets)-1]
	if last.Max == nil || !last.Max.Equal(t.INSS.Ceiling) {
		return fmt.Errorf("inss: última faixa deve terminar no teto %s", t.INSS.Ceiling)
	}
	if t.FGTS.MonthsPerYear <= 0 {
		return fmt.Errorf("fgts: months_per_year deve ser positivo")
	}
	return nil
}

func validateBrackets(name string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s: nenhuma faixa definida", name)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s: alíquota fora de [0, 1] na faixa %d", name, i)
		}
		if b.Max == nil && i != len(brackets)-1 {
			return fmt.Errorf("%s: apenas a última faixa pode ser ilimitada", name)
		}
		if b.Max != nil && b.Max.LessThan(b.Min) {
			return fmt.Errorf("%s: faixa %d fora de ordem", name, i)
		}
	}
	return nil
}
