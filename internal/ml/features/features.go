// Package features fixes the feature ordering each model was trained with.
// Serialized forests carry no column names, so every call site builds its
// input through one of these structs instead of an ad-hoc float slice.
package features

// CategoryDemand feeds the subcategory monthly regression.
// Order: [subcategoria_id, mes, ventas_mes_anterior].
type CategoryDemand struct {
	SubcategoriaID    uint
	Mes               int
	VentasMesAnterior float64
}

func (f CategoryDemand) Vector() []float64 {
	return []float64{float64(f.SubcategoriaID), float64(f.Mes), f.VentasMesAnterior}
}

// ProductDemand feeds the product weekly regression.
// Order: [producto_id, mes, semana_del_anio, ventas_semana_anterior].
type ProductDemand struct {
	ProductoID           uint
	Mes                  int
	SemanaDelAnio        int
	VentasSemanaAnterior float64
}

func (f ProductDemand) Vector() []float64 {
	return []float64{float64(f.ProductoID), float64(f.Mes), float64(f.SemanaDelAnio), f.VentasSemanaAnterior}
}

// Affinity feeds the co-purchase classifier.
// Order: [producto_a, producto_b].
type Affinity struct {
	ProductoA uint
	ProductoB uint
}

func (f Affinity) Vector() []float64 {
	return []float64{float64(f.ProductoA), float64(f.ProductoB)}
}
