package response

import (
	"commerce_2checkout/internal/domain/entities"
)

// RedirectResponse describes the redirect the host must send the payer to.
// Parameters keep the order they were built in.
type RedirectResponse struct {
	TargetURL   string               `json:"target_url"`
	Method      string               `json:"method"`
	Parameters  *entities.Parameters `json:"parameters" swaggertype:"object"`
	RedirectURL string               `json:"redirect_url"`
	Correlation CorrelationResponse  `json:"correlation"`
}

func FromRedirect(req entities.RedirectRequest, record entities.OrderCorrelationRecord) RedirectResponse {
	params := req.Parameters
	if params == nil {
		params = entities.NewParameters()
	}
	return RedirectResponse{
		TargetURL:   req.TargetURL,
		Method:      string(req.Method),
		Parameters:  params,
		RedirectURL: req.URL(),
		Correlation: FromCorrelation(record),
	}
}
