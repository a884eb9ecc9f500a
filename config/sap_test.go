package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sap_companies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	SAPRegistryFile = path
}

func TestLoadSAPRegistry(t *testing.T) {
	writeRegistry(t, `[
		{"company_code":"C001","service_layer_url":"https://sap1:50000/b1s/v1","company_db":"SBO_PLANT1","username":"svc","password":"pw","branch_id":1},
		{"company_code":"C002","service_layer_url":"https://sap2:50000/b1s/v1","company_db":"SBO_PLANT2","username":"svc","password":"pw","branch_id":2}
	]`)

	require.NoError(t, LoadSAPRegistry())

	company, ok := SAPCompanyByCode("C001")
	require.True(t, ok)
	assert.Equal(t, "https://sap1:50000/b1s/v1", company.ServiceLayerURL)
	assert.Equal(t, "SBO_PLANT1", company.CompanyDB)
	assert.Equal(t, 1, company.BranchId)

	_, ok = SAPCompanyByCode("C999")
	assert.False(t, ok)

	assert.Len(t, SAPCompanies(), 2)
}

func TestLoadSAPRegistryMissingCompanyCode(t *testing.T) {
	writeRegistry(t, `[{"service_layer_url":"https://sap1:50000/b1s/v1"}]`)

	err := LoadSAPRegistry()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company_code")
}

func TestLoadSAPRegistryMissingFile(t *testing.T) {
	SAPRegistryFile = filepath.Join(t.TempDir(), "does_not_exist.json")
	assert.Error(t, LoadSAPRegistry())
}

func TestLoadSAPRegistryMalformed(t *testing.T) {
	writeRegistry(t, `{"not":"an array"}`)
	assert.Error(t, LoadSAPRegistry())
}
