package domain

import "github.com/magnani/brtools/internal/money"

// Address representa um endereço retornado pela consulta de CEP
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"ibge_code,omitempty"`
	DDD          string `json:"ddd,omitempty"`
	Source       string `json:"source"`
}

// Company representa os dados cadastrais de um CNPJ
type Company struct {
	CNPJ             string           `json:"cnpj"`
	LegalName        string           `json:"legal_name"`
	TradeName        string           `json:"trade_name,omitempty"`
	Status           string           `json:"status,omitempty"`
	OpeningDate      string           `json:"opening_date,omitempty"`
	MainActivity     string           `json:"main_activity,omitempty"`
	MainActivityCode int              `json:"main_activity_code,omitempty"`
	LegalNature      string           `json:"legal_nature,omitempty"`
	Address          Address          `json:"address"`
	Phone            string           `json:"phone,omitempty"`
	Email            string           `json:"email,omitempty"`
	ShareCapital     money.Amount     `json:"share_capital"`
	Partners         []CompanyPartner `json:"partners,omitempty"`
	Source           string           `json:"source"`
}

// CompanyPartner representa um sócio do quadro societário
type CompanyPartner struct {
	Name          string `json:"name"`
	Qualification string `json:"qualification,omitempty"`
	Since         string `json:"since,omitempty"`
}
