package sap

import (
	"gate-app/config"
	"gate-app/models"
)

// Registry holds one client per registered company, constructed once at
// process start and passed by reference to every consumer.
type Registry struct {
	clients map[string]*Client
}

func NewRegistry(companies []config.SAPCompany) *Registry {
	r := &Registry{clients: make(map[string]*Client, len(companies))}
	for _, c := range companies {
		r.clients[c.CompanyCode] = NewClient(c)
	}
	return r
}

func (r *Registry) Client(companyCode string) (*Client, error) {
	c, ok := r.clients[companyCode]
	if !ok {
		return nil, &models.ValidationError{Field: "company_code", Detail: "no SAP company registered for " + companyCode}
	}
	return c, nil
}
