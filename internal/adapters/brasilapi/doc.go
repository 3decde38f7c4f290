// Package brasilapi implementa os adaptadores de consulta a APIs públicas
// brasileiras: endereço por CEP (ViaCEP) e dados cadastrais por CNPJ (BrasilAPI).
//
// Nenhuma das APIs exige autenticação. O cliente não faz retentativas:
// falhas são classificadas e devolvidas ao chamador.
//
// # Início Rápido
//
// Criar o cliente:
//
//	client := brasilapi.NewClient(&cfg.Lookup)
//
// Consultar um CEP (8 dígitos, sem máscara):
//
//	addr, err := client.LookupCEP(ctx, "01001000")
//
// Consultar um CNPJ (14 dígitos, sem máscara):
//
//	company, err := client.LookupCNPJ(ctx, "19131243000197")
//
// # Tratamento de Erros
//
// O pacote fornece erros tipados para condições comuns:
//
//	if brasilapi.IsNotFound(err) {
//	    // CEP ou CNPJ inexistente
//	}
//	if brasilapi.IsRateLimited(err) {
//	    // Limite de requisições da API pública
//	}
//
// # Documentação das APIs
//
// https://viacep.com.br e https://brasilapi.com.br/docs
package brasilapi
