package selection

import (
	"fmt"

	"creditcore/risk"
)

// Request routes one selection run: the method identifier, a seed, and the
// matching parameter block. A nil block falls back to the method defaults.
type Request struct {
	Method Method
	Seed   int64
	Tree   *TreeParams
	Lasso  *LassoParams
	WoeIV  *WoeIVParams
	Boruta *BorutaParams
	Shap   *ShapParams
}

// Select dispatches the request over the closed method set. Unrecognized
// identifiers fail with ErrUnknownMethod.
func Select(x [][]float64, y []int, names []string, req Request) (Result, error) {
	switch req.Method {
	case MethodTreeImportance:
		p := DefaultTreeParams()
		if req.Tree != nil {
			p = *req.Tree
		}
		return TreeImportance(x, y, names, p, req.Seed)
	case MethodLasso:
		p := DefaultLassoParams()
		if req.Lasso != nil {
			p = *req.Lasso
		}
		return Lasso(x, y, names, p, req.Seed)
	case MethodWoeIV:
		p := DefaultWoeIVParams()
		if req.WoeIV != nil {
			p = *req.WoeIV
		}
		return WoeIV(x, y, names, p, req.Seed)
	case MethodBoruta:
		p := DefaultBorutaParams()
		if req.Boruta != nil {
			p = *req.Boruta
		}
		return Boruta(x, y, names, p, req.Seed)
	case MethodShap:
		p := DefaultShapParams()
		if req.Shap != nil {
			p = *req.Shap
		}
		return Shap(x, y, names, p, req.Seed)
	default:
		return Result{}, fmt.Errorf("method %q: %w", req.Method, risk.ErrUnknownMethod)
	}
}
