package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de negocio puras de la venta: subtotal, total y resolución de precio.
// Son el núcleo contable — cualquier regresión aquí corrompe tickets y cierres.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// TestComputeSubtotal_AritmeticaExacta valida que 3 × 19.90 dé exactamente
// 59.70 y no 59.699999... (decimal, no float).
func TestComputeSubtotal_AritmeticaExacta(t *testing.T) {
	d := &entity.SaleDetail{Quantity: dec("3"), UnitPrice: dec("19.90")}
	d.ComputeSubtotal()
	assert.True(t, d.Subtotal.Equal(dec("59.70")),
		"subtotal esperado 59.70, obtenido %s", d.Subtotal)
}

func TestComputeSubtotal_CantidadFraccionaria(t *testing.T) {
	// Medio kilo a $ 1.250,50 el kilo.
	d := &entity.SaleDetail{Quantity: dec("0.5"), UnitPrice: dec("1250.50")}
	d.ComputeSubtotal()
	assert.True(t, d.Subtotal.Equal(dec("625.25")),
		"subtotal esperado 625.25, obtenido %s", d.Subtotal)
}

// TestCalculateTotal_SumaSubtotales valida la suma de subtotales con varias líneas.
func TestCalculateTotal_SumaSubtotales(t *testing.T) {
	details := []*entity.SaleDetail{
		{Subtotal: dec("59.70")},
		{Subtotal: dec("625.25")},
		{Subtotal: dec("10.05")},
	}
	total := entity.CalculateTotal(details)
	require.NotNil(t, total)
	assert.True(t, total.Equal(dec("695.00")),
		"total esperado 695.00, obtenido %s", total)
}

// TestCalculateTotal_SinDetallesDevuelveNil valida el modo venta rápida: con
// cero líneas el total calculado es nil y el total informado queda en pie.
func TestCalculateTotal_SinDetallesDevuelveNil(t *testing.T) {
	assert.Nil(t, entity.CalculateTotal(nil))
	assert.Nil(t, entity.CalculateTotal([]*entity.SaleDetail{}))
}

// ── Resolución de precio unitario ─────────────────────────────────────────────

func TestResolveUnitPrice_PanaderiaConMayorista(t *testing.T) {
	p := &entity.Product{PublicPrice: dec("100"), WholesalePrice: decPtr("80")}
	got := entity.ResolveUnitPrice(true, p)
	assert.True(t, got.Equal(dec("80")), "venta de panadería debe usar precio mayorista")
}

func TestResolveUnitPrice_PanaderiaSinMayoristaCaeAlPublico(t *testing.T) {
	p := &entity.Product{PublicPrice: dec("100"), WholesalePrice: nil}
	got := entity.ResolveUnitPrice(true, p)
	assert.True(t, got.Equal(dec("100")), "sin precio mayorista se cobra el público")
}

func TestResolveUnitPrice_VentaComunIgnoraMayorista(t *testing.T) {
	p := &entity.Product{PublicPrice: dec("100"), WholesalePrice: decPtr("80")}
	got := entity.ResolveUnitPrice(false, p)
	assert.True(t, got.Equal(dec("100")), "venta común siempre usa precio público")
}

// ── Métodos de pago ───────────────────────────────────────────────────────────

func TestValidPaymentMethod(t *testing.T) {
	cases := []struct {
		method string
		valid  bool
	}{
		{"efv", true},
		{"trf", true},
		{"crd", true},
		{"qr", true},
		{"", false},
		{"EFV", false}, // case-sensitive
		{"cash", false},
		{"bitcoin", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, entity.ValidPaymentMethod(tc.method),
			"método %q", tc.method)
	}
}
