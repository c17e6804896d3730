package inventory

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// idealStockFactor múltiplo del estoque mínimo al que se quiere reponer.
const idealStockFactor = 1.5

// ReplenishmentUseCase genera la lista de reposición de los productos con stock bajo.
type ReplenishmentUseCase struct {
	store repository.InventoryReader
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(store repository.InventoryReader) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{store: store}
}

// GenerateReplenishmentList devuelve los productos en o bajo el mínimo con la cantidad
// sugerida de pedido, del más crítico (menor cantidad/mínimo) al menos crítico.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList() *dto.ReplenishmentListResponse {
	products := uc.store.Products()

	// 1. Productos con stock bajo
	low := products[:0:0]
	for _, p := range products {
		if inventory.IsLowStock(p) {
			low = append(low, p)
		}
	}

	// 2. Ordenar por criticidad; empates por déficit absoluto
	sort.SliceStable(low, func(i, j int) bool {
		ri, rj := inventory.StockRatio(low[i]), inventory.StockRatio(low[j])
		if ri != rj {
			return ri < rj
		}
		return low[i].MinStock-low[i].Quantity > low[j].MinStock-low[j].Quantity
	})

	// 3. Construir las sugerencias
	out := &dto.ReplenishmentListResponse{
		Items:     make([]dto.ReplenishmentSuggestionDTO, 0, len(low)),
		TotalCost: decimal.Zero,
	}
	for i, p := range low {
		ideal := int(math.Ceil(float64(p.MinStock) * idealStockFactor))
		suggested := ideal - p.Quantity
		if suggested < 0 {
			suggested = 0
		}
		cost := p.Price.Mul(decimal.NewFromInt(int64(suggested)))
		out.TotalCost = out.TotalCost.Add(cost)

		out.Items = append(out.Items, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			Code:               p.Code,
			ProductName:        p.Name,
			SupplierID:         p.SupplierID,
			CurrentStock:       p.Quantity,
			MinStock:           p.MinStock,
			IdealStock:         ideal,
			SuggestedOrderQty:  suggested,
			UnitPrice:          p.Price,
			EstimatedOrderCost: cost,
			Priority:           i + 1,
		})
	}
	out.TotalLabel = format.Currency(out.TotalCost)
	return out
}
