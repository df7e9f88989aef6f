package user

import "fmt"

// EmitterSettings is the business identity printed on invoices and quotes
// generated for the user's clients.
type EmitterSettings struct {
	BusinessName    string  `json:"business_name"`
	BusinessAddress string  `json:"business_address"`
	BusinessCity    string  `json:"business_city"`
	BusinessPhone   string  `json:"business_phone"`
	BusinessEmail   string  `json:"business_email"`
	BusinessSiret   string  `json:"business_siret"`
	BankHolder      string  `json:"bank_holder"`
	BankName        string  `json:"bank_name"`
	BankIBAN        string  `json:"bank_iban"`
	BankBIC         string  `json:"bank_bic"`
	VATApplicable   bool    `json:"vat_applicable"`
	VATRate         float64 `json:"vat_rate"`
	VATNumber       string  `json:"vat_number"`
}

func (s EmitterSettings) Validate() error {
	if s.VATRate < 0 || s.VATRate > 100 {
		return fmt.Errorf("vat rate must be between 0 and 100")
	}
	if s.VATApplicable && s.VATRate == 0 {
		return fmt.Errorf("vat rate is required when vat applies")
	}
	return nil
}
