package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SAPCompany holds one company's ERP endpoints and credentials. Each company
// code maps to its own service-layer URL, company schema and read-replica
// connection, so the registry stays out of compiled code.
type SAPCompany struct {
	CompanyCode     string `json:"company_code"`
	ServiceLayerURL string `json:"service_layer_url"`
	CompanyDB       string `json:"company_db"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	BranchId        int    `json:"branch_id"`

	// Read path: direct query connection against the ERP schema.
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBName     string `json:"db_name"`
}

var sapCompanies map[string]SAPCompany

// LoadSAPRegistry loads the company registry file once at startup. The
// resulting lookup is immutable afterwards.
func LoadSAPRegistry() error {
	data, err := os.ReadFile(SAPRegistryFile)
	if err != nil {
		return fmt.Errorf("read SAP registry %s: %w", SAPRegistryFile, err)
	}

	var companies []SAPCompany
	if err := json.Unmarshal(data, &companies); err != nil {
		return fmt.Errorf("parse SAP registry %s: %w", SAPRegistryFile, err)
	}

	reg := make(map[string]SAPCompany, len(companies))
	for _, c := range companies {
		if c.CompanyCode == "" {
			return fmt.Errorf("SAP registry entry without company_code")
		}
		reg[c.CompanyCode] = c
	}
	sapCompanies = reg
	return nil
}

// SAPCompanyByCode resolves a company's SAP configuration.
func SAPCompanyByCode(code string) (SAPCompany, bool) {
	c, ok := sapCompanies[code]
	return c, ok
}

// SAPCompanies lists every registered company.
func SAPCompanies() []SAPCompany {
	out := make([]SAPCompany, 0, len(sapCompanies))
	for _, c := range sapCompanies {
		out = append(out, c)
	}
	return out
}
