package sap

import (
	"gate-app/config"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// OpenPOItem is one open purchase-order line from the ERP schema.
type OpenPOItem struct {
	DocEntry     int     `gorm:"column:doc_entry" json:"doc_entry"`
	LineNum      int     `gorm:"column:line_num" json:"line_num"`
	ItemCode     string  `gorm:"column:item_code" json:"item_code"`
	ItemName     string  `gorm:"column:item_name" json:"item_name"`
	Uom          string  `gorm:"column:uom" json:"uom"`
	WhsCode      string  `gorm:"column:whs_code" json:"whs_code"`
	UnitPrice    float64 `gorm:"column:unit_price" json:"unit_price"`
	TaxCode      string  `gorm:"column:tax_code" json:"tax_code"`
	OrderedQty   float64 `gorm:"column:ordered_qty" json:"ordered_qty"`
	ReceivedQty  float64 `gorm:"column:received_qty" json:"received_qty"`
	RemainingQty float64 `gorm:"column:remaining_qty" json:"remaining_qty"`
}

// OpenPO is one purchase order with its still-open lines.
type OpenPO struct {
	PONumber     string       `json:"po_number"`
	DocEntry     int          `json:"doc_entry"`
	SupplierCode string       `json:"supplier_code"`
	SupplierName string       `json:"supplier_name"`
	Items        []OpenPOItem `json:"items"`
}

type OpenPORow struct {
	PONumber     string `gorm:"column:po_number"`
	SupplierName string `gorm:"column:supplier_name"`
	OpenPOItem   `gorm:"embedded"`
}

// FetchOpenPOs queries the company's ERP schema for all open PO lines of a
// supplier and groups the flat rows into a PO -> items structure. The
// underlying handle is always released, whatever the exit path.
func FetchOpenPOs(company config.SAPCompany, supplierCode string) ([]OpenPO, error) {
	dsn := "sqlserver://" + company.DBUser + ":" + company.DBPassword + "@" +
		company.DBHost + ":" + company.DBPort + "?database=" + company.DBName

	db, err := gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, &ConnectionError{CompanyCode: company.CompanyCode, Op: "FetchOpenPOs", Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &ConnectionError{CompanyCode: company.CompanyCode, Op: "FetchOpenPOs", Err: err}
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return nil, &ConnectionError{CompanyCode: company.CompanyCode, Op: "FetchOpenPOs", Err: err}
	}

	query := `SELECT h.DocNum AS po_number, h.DocEntry AS doc_entry, h.CardName AS supplier_name,
		l.LineNum AS line_num, l.ItemCode AS item_code, l.Dscription AS item_name,
		l.unitMsr AS uom, l.WhsCode AS whs_code, l.Price AS unit_price, l.TaxCode AS tax_code,
		l.Quantity AS ordered_qty, (l.Quantity - l.OpenQty) AS received_qty, l.OpenQty AS remaining_qty
		FROM OPOR h
		INNER JOIN POR1 l ON h.DocEntry = l.DocEntry
		WHERE h.CardCode = ? AND h.DocStatus = 'O' AND l.LineStatus = 'O' AND l.OpenQty > 0
		ORDER BY h.DocNum, l.LineNum`

	var rows []OpenPORow
	if err := db.Raw(query, supplierCode).Scan(&rows).Error; err != nil {
		return nil, &DataError{CompanyCode: company.CompanyCode, Op: "FetchOpenPOs", Err: err}
	}

	return GroupOpenPORows(supplierCode, rows), nil
}

// GroupOpenPORows turns flat PO lines into the nested PO -> items shape,
// preserving row order.
func GroupOpenPORows(supplierCode string, rows []OpenPORow) []OpenPO {
	pos := []OpenPO{}
	index := map[string]int{}

	for _, row := range rows {
		i, ok := index[row.PONumber]
		if !ok {
			pos = append(pos, OpenPO{
				PONumber:     row.PONumber,
				DocEntry:     row.DocEntry,
				SupplierCode: supplierCode,
				SupplierName: row.SupplierName,
			})
			i = len(pos) - 1
			index[row.PONumber] = i
		}
		pos[i].Items = append(pos[i].Items, row.OpenPOItem)
	}

	return pos
}
