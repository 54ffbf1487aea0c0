package notify

import (
	"fmt"
	"os"

	"github.com/jhoicas/pyme-api/internal/application/stock"
	"github.com/jhoicas/pyme-api/internal/domain/entity"
	"github.com/jhoicas/pyme-api/pkg/logger"
)

var _ stock.Notifier = (*LogNotifier)(nil)

// LogNotifier emite los avisos del rastreador por el log estructurado.
// Con Audible activo escribe además BEL a stderr, la versión de terminal de
// la alerta sonora del escritorio.
type LogNotifier struct {
	log     *logger.Logger
	audible bool
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger, audible bool) *LogNotifier {
	return &LogNotifier{log: log, audible: audible}
}

// LowStock avisa que el producto quedó en o bajo su umbral de reposición.
func (n *LogNotifier) LowStock(p *entity.Product, newStock, threshold int) {
	n.log.Warn().
		Str("product_id", p.ID).
		Str("product", p.Name).
		Int("stock", newStock).
		Int("threshold", threshold).
		Msg("stock bajo: revisar reposición")
	if n.audible {
		fmt.Fprint(os.Stderr, "\a")
	}
}

// OperationFailed avisa que una mutación de stock no se completó.
func (n *LogNotifier) OperationFailed(productID, reason string) {
	n.log.Error().
		Str("product_id", productID).
		Str("reason", reason).
		Msg("operación de stock fallida")
}
