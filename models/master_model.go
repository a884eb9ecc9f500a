package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name" gorm:"unique"`
	CompanyCode  string `json:"company_code"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Transporter struct {
	gorm.Model
	TransporterCode    string `json:"transporter_code" gorm:"unique"`
	TransporterName    string `json:"transporter_name" gorm:"unique"`
	TransporterAddress string `json:"transporter_address"`
	CreatedBy          int
	UpdatedBy          int
	DeletedBy          int
}

type VehicleMaster struct {
	gorm.Model
	VehicleNo   string `json:"vehicle_no" gorm:"unique"`
	VehicleType string `json:"vehicle_type"`
	Description string `json:"vehicle_description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type DriverMaster struct {
	gorm.Model
	Name          string `json:"driver_name"`
	LicenseNo     string `json:"license_no" gorm:"unique"`
	Phone         string `json:"phone"`
	TransporterId int    `json:"transporter_id"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

type Department struct {
	gorm.Model
	DepartmentCode string `json:"department_code" gorm:"unique"`
	DepartmentName string `json:"department_name"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

type MaterialType struct {
	gorm.Model
	TypeCode  string `json:"type_code" gorm:"unique"`
	TypeName  string `json:"type_name"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type MaterialCategory struct {
	gorm.Model
	CategoryCode string `json:"category_code" gorm:"unique"`
	CategoryName string `json:"category_name"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
