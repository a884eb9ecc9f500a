package seed

import (
	"gate-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders loads the baseline rows a fresh install needs.
func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedDepartments(db)
	SeedMaterialTypes(db)
	SeedQCParameters(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != gorm.ErrRecordNotFound {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	db.Create(&models.User{
		Username: "admin",
		Name:     "Administrator",
		Email:    "admin@factory.local",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	})
}

func SeedDepartments(db *gorm.DB) {
	departments := []models.Department{
		{DepartmentCode: "PRD", DepartmentName: "Production"},
		{DepartmentCode: "MNT", DepartmentName: "Maintenance"},
		{DepartmentCode: "STR", DepartmentName: "Stores"},
		{DepartmentCode: "QA", DepartmentName: "Quality Assurance"},
	}

	for _, d := range departments {
		var existing models.Department
		if err := db.Where("department_code = ?", d.DepartmentCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&d)
			}
		}
	}
}

func SeedMaterialTypes(db *gorm.DB) {
	materialTypes := []models.MaterialType{
		{TypeCode: "SOLVENT", TypeName: "Solvent"},
		{TypeCode: "RESIN", TypeName: "Resin"},
		{TypeCode: "PIGMENT", TypeName: "Pigment"},
		{TypeCode: "ADDITIVE", TypeName: "Additive"},
	}

	for _, m := range materialTypes {
		var existing models.MaterialType
		if err := db.Where("type_code = ?", m.TypeCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&m)
			}
		}
	}
}

func SeedQCParameters(db *gorm.DB) {
	var solvent models.MaterialType
	if err := db.Where("type_code = ?", "SOLVENT").First(&solvent).Error; err != nil {
		return
	}

	var count int64
	db.Model(&models.QCParameterMaster{}).
		Where("material_type_id = ?", solvent.ID).
		Count(&count)
	if count > 0 {
		return
	}

	fp := func(v float64) *float64 { return &v }
	parameters := []models.QCParameterMaster{
		{MaterialTypeId: int(solvent.ID), ParameterName: "Purity", ParameterType: models.ParameterTypeNumeric, Uom: "%", MinValue: fp(99.0), MaxValue: fp(100.0), SortOrder: 1, IsActive: true},
		{MaterialTypeId: int(solvent.ID), ParameterName: "Moisture", ParameterType: models.ParameterTypeNumeric, Uom: "%", MinValue: fp(0), MaxValue: fp(0.5), SortOrder: 2, IsActive: true},
		{MaterialTypeId: int(solvent.ID), ParameterName: "Appearance", ParameterType: models.ParameterTypeText, SortOrder: 3, IsActive: true},
	}
	for _, p := range parameters {
		db.Create(&p)
	}
}
