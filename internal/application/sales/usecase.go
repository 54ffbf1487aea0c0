package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pyme-api/internal/application/dataservice"
	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// SaleUseCase crea y revierte ventas integrando la mutación de stock:
// cada línea descuenta existencias vía el rastreador (origen "sale") y la
// eliminación de una venta las devuelve (origen "return").
//
// La secuencia venta+stock no es atómica entre líneas: un fallo a mitad deja
// las líneas anteriores ya aplicadas. Mismo comportamiento al restaurar.
type SaleUseCase struct {
	svc     *dataservice.Service
	tracker *stock.Tracker
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(svc *dataservice.Service, tracker *stock.Tracker) *SaleUseCase {
	return &SaleUseCase{svc: svc, tracker: tracker}
}

// CreateSale completa las líneas desde el catálogo, calcula totales,
// persiste la venta y descuenta stock línea por línea.
func (uc *SaleUseCase) CreateSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	if len(sale.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Completar precio/nombre/IVA desde el producto cuando la línea no los trae
	// y verificar existencias antes de tocar nada. Las cantidades se agregan
	// por producto: dos líneas del mismo producto compiten por el mismo stock.
	needed := make(map[string]int, len(sale.Items))
	for i := range sale.Items {
		item := &sale.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		p := uc.svc.GetProduct(item.ProductID)
		if p == nil {
			return nil, domain.ErrNotFound
		}
		needed[item.ProductID] += item.Quantity
		if p.Stock < needed[item.ProductID] {
			return nil, domain.ErrInsufficientStock
		}
		if item.ProductName == "" {
			item.ProductName = p.Name
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = p.SellingPrice
		}
		if item.TaxRate.IsZero() {
			item.TaxRate = p.TaxRate
		}
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	}

	computeTotals(sale)

	stored, err := uc.svc.CreateSale(sale)
	if err != nil {
		return nil, err
	}

	// Releer el producto en cada línea: con líneas repetidas del mismo
	// producto, un valor capturado antes del primer descuento quedaría viejo.
	for _, item := range stored.Items {
		p := uc.svc.GetProduct(item.ProductID)
		if p == nil {
			continue
		}
		uc.tracker.UpdateProductStock(ctx, p.ID, p.Stock-item.Quantity, entity.StockSourceSale)
	}
	return stored, nil
}

// DeleteSale restaura el stock de las líneas y elimina la venta.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	sale := uc.svc.GetSale(id)
	if sale == nil {
		return domain.ErrNotFound
	}
	uc.tracker.RestoreFromSale(ctx, sale.Items)
	return uc.svc.DeleteSale(id)
}

// PurchaseUseCase crea compras; una compra completada ingresa stock por línea
// (origen "purchase").
type PurchaseUseCase struct {
	svc     *dataservice.Service
	tracker *stock.Tracker
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(svc *dataservice.Service, tracker *stock.Tracker) *PurchaseUseCase {
	return &PurchaseUseCase{svc: svc, tracker: tracker}
}

// CreatePurchase completa líneas y totales, persiste y, si la compra llega
// completada, suma las cantidades al stock.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, purchase *entity.Purchase) (*entity.Purchase, error) {
	if len(purchase.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for i := range purchase.Items {
		item := &purchase.Items[i]
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		p := uc.svc.GetProduct(item.ProductID)
		if p == nil {
			return nil, domain.ErrNotFound
		}
		if item.ProductName == "" {
			item.ProductName = p.Name
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = p.PurchasePrice
		}
		if item.TaxRate.IsZero() {
			item.TaxRate = p.TaxRate
		}
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	}

	computeTotalsPurchase(purchase)

	stored, err := uc.svc.CreatePurchase(purchase)
	if err != nil {
		return nil, err
	}

	if stored.Status == entity.PurchaseCompleted {
		for _, item := range stored.Items {
			p := uc.svc.GetProduct(item.ProductID)
			if p == nil {
				continue
			}
			uc.tracker.UpdateProductStock(ctx, p.ID, p.Stock+item.Quantity, entity.StockSourcePurchase)
		}
	}
	return stored, nil
}

// computeTotals agrega subtotal, impuesto y total de una venta desde sus líneas.
func computeTotals(s *entity.Sale) {
	subtotal, tax := sumItems(s.Items)
	s.Subtotal = subtotal
	s.TaxTotal = tax
	s.Total = subtotal.Add(tax)
}

func computeTotalsPurchase(p *entity.Purchase) {
	subtotal, tax := sumItems(p.Items)
	p.Subtotal = subtotal
	p.TaxTotal = tax
	p.Total = subtotal.Add(tax)
}

func sumItems(items []entity.LineItem) (subtotal, tax decimal.Decimal) {
	subtotal = decimal.Zero
	tax = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
		tax = tax.Add(item.Total.Mul(item.TaxRate))
	}
	return subtotal, tax
}
