package services

import "inventory/internal/models"

// supplierField applies one field of a SupplierUpdate onto a Supplier and reports
// whether the caller set it.
type supplierField struct {
	name  string
	apply func(s *models.Supplier, in models.SupplierUpdate) bool
}

// supplierFields lists every mutable supplier field, in write order.
var supplierFields = []supplierField{
	{"name", func(s *models.Supplier, in models.SupplierUpdate) bool {
		if in.Name == nil {
			return false
		}
		s.Name = *in.Name
		return true
	}},
	{"company", func(s *models.Supplier, in models.SupplierUpdate) bool {
		if in.Company == nil {
			return false
		}
		s.Company = *in.Company
		return true
	}},
	{"email", func(s *models.Supplier, in models.SupplierUpdate) bool {
		if in.Email == nil {
			return false
		}
		s.Email = *in.Email
		return true
	}},
	{"phone", func(s *models.Supplier, in models.SupplierUpdate) bool {
		if in.Phone == nil {
			return false
		}
		s.Phone = *in.Phone
		return true
	}},
}

type productField struct {
	name  string
	apply func(p *models.Product, in models.ProductUpdate) bool
}

// productFields lists every mutable product field, in write order. Fields are
// independent: revenue is taken as given and never derived here.
var productFields = []productField{
	{"name", func(p *models.Product, in models.ProductUpdate) bool {
		if in.Name == nil {
			return false
		}
		p.Name = *in.Name
		return true
	}},
	{"quantity_in_stock", func(p *models.Product, in models.ProductUpdate) bool {
		if in.QuantityInStock == nil {
			return false
		}
		p.QuantityInStock = *in.QuantityInStock
		return true
	}},
	{"unit_price", func(p *models.Product, in models.ProductUpdate) bool {
		if in.UnitPrice == nil {
			return false
		}
		p.UnitPrice = models.Amount(*in.UnitPrice)
		return true
	}},
	{"supplied_by", func(p *models.Product, in models.ProductUpdate) bool {
		if in.SuppliedBy == nil {
			return false
		}
		p.SuppliedByID = *in.SuppliedBy
		p.SuppliedBy = nil
		return true
	}},
	{"revenue", func(p *models.Product, in models.ProductUpdate) bool {
		if in.Revenue == nil {
			return false
		}
		p.Revenue = models.Amount(*in.Revenue)
		return true
	}},
	// Accumulates.
	{"quantity_sold", func(p *models.Product, in models.ProductUpdate) bool {
		if in.QuantitySold == nil {
			return false
		}
		p.QuantitySold += *in.QuantitySold
		return true
	}},
}

// ApplySupplierUpdate merges in onto s and returns the names of the fields it changed.
func ApplySupplierUpdate(s *models.Supplier, in models.SupplierUpdate) []string {
	applied := []string{}
	for _, f := range supplierFields {
		if f.apply(s, in) {
			applied = append(applied, f.name)
		}
	}
	return applied
}

// ApplyProductUpdate merges in onto p and returns the names of the fields it changed.
func ApplyProductUpdate(p *models.Product, in models.ProductUpdate) []string {
	applied := []string{}
	for _, f := range productFields {
		if f.apply(p, in) {
			applied = append(applied, f.name)
		}
	}
	return applied
}
