package request

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type SetCommissionRequest struct {
	Commission float64 `json:"commission" binding:"min=0,max=1"`
}
