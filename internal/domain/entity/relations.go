package entity

// Nombres de las relaciones del servicio remoto de datos (Supabase).
const (
	RelationCategories = "categorias"
	RelationProducts   = "productos"
	RelationSuppliers  = "proveedores"
	RelationReceipts   = "entradas_inventario"
	RelationSales      = "ventas"
	RelationSaleLines  = "detalle_ventas"
)
